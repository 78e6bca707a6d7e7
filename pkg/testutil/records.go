package testutil

import (
	"github.com/ajxudir/depcheck/pkg/formats"
)

// RecordBuilder provides a fluent API for building test records.
//
// Use this builder to construct Record objects for testing purposes
// without needing to set all fields manually.
type RecordBuilder struct {
	rec formats.Record
}

// NewRecord creates a new RecordBuilder with the given name.
//
// Parameters:
//   - name: Package name to set
//
// Returns:
//   - *RecordBuilder: New builder instance ready for method chaining
func NewRecord(name string) *RecordBuilder {
	return &RecordBuilder{rec: formats.Record{Name: name}}
}

// WithVersions sets the installed and latest versions.
func (b *RecordBuilder) WithVersions(installed, latest string) *RecordBuilder {
	b.rec.Installed = installed
	b.rec.Latest = latest
	return b
}

// WithDeclared sets the version declared in package.json.
func (b *RecordBuilder) WithDeclared(v string) *RecordBuilder {
	b.rec.PackageJSON = v
	return b
}

// WithBump sets the bump.
func (b *RecordBuilder) WithBump(bump formats.Bump) *RecordBuilder {
	b.rec.Bump = bump
	return b
}

// WithHomepage sets the homepage link.
func (b *RecordBuilder) WithHomepage(url string) *RecordBuilder {
	b.rec.Homepage = url
	return b
}

// WithRegError sets the registry error message.
func (b *RecordBuilder) WithRegError(msg string) *RecordBuilder {
	b.rec.RegError = msg
	return b
}

// Mismatch marks the record as mismatched with package.json.
func (b *RecordBuilder) Mismatch() *RecordBuilder {
	b.rec.Mismatch = true
	return b
}

// Missing marks the record as not installed.
func (b *RecordBuilder) Missing() *RecordBuilder {
	b.rec.NotInstalled = true
	return b
}

// Dev marks the record as a devDependency.
func (b *RecordBuilder) Dev() *RecordBuilder {
	b.rec.DevDependency = true
	return b
}

// Build returns the constructed Record.
func (b *RecordBuilder) Build() formats.Record {
	return b.rec
}

// BumpRecord creates a record with a bump and matching versions.
//
// Parameters:
//   - name: Package name
//   - installed: Installed version
//   - latest: Latest version
//   - bump: Update severity
//
// Returns:
//   - formats.Record: Record with Homepage set to a registry URL
func BumpRecord(name, installed, latest string, bump formats.Bump) formats.Record {
	return NewRecord(name).
		WithVersions(installed, latest).
		WithBump(bump).
		WithHomepage("https://www.npmjs.com/package/" + name).
		Build()
}

// SampleReport returns a report that fills every menu group once, plus one
// record that is up to date.
//
// Order: up to date, major, mismatch, minor (dev), missing, patch, nonSemver.
func SampleReport() []formats.Record {
	return []formats.Record{
		NewRecord("express").WithVersions("4.18.2", "4.18.2").Build(),
		BumpRecord("rimraf", "2.7.1", "5.0.5", formats.BumpMajor),
		NewRecord("left-pad").WithVersions("1.3.0", "1.3.0").WithDeclared("1.1.0").Mismatch().Build(),
		NewRecord("jest").WithVersions("29.5.0", "29.7.0").WithBump(formats.BumpMinor).Dev().Build(),
		NewRecord("lodash").WithVersions("", "4.17.21").Missing().Build(),
		BumpRecord("chalk", "4.1.0", "4.1.2", formats.BumpPatch),
		BumpRecord("pkg-zero", "0.1.0", "0.2.0", formats.BumpNonSemver),
	}
}
