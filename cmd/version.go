package cmd

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/output"
	"github.com/spf13/cobra"
)

// Version information set at build time via ldflags.
// Example: go build -ldflags="-X github.com/ajxudir/depcheck/cmd.Version=1.0.0"
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// BuildTime is the timestamp of the build.
	BuildTime = ""
	// GitCommit is the git commit hash of the build.
	GitCommit = ""
	// BuildOS is the target OS the binary was built for.
	BuildOS = ""
	// BuildArch is the target architecture the binary was built for.
	BuildArch = ""
)

var versionFormatFlag string

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Long:  `Show version, build date, and system information.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(os.Stdout, output.ParseFormat(versionFormatFlag))
	},
}

func init() {
	versionCmd.Flags().StringVar(&versionFormatFlag, "format", "table", "Output format: table, json, yaml, xml, csv")
}

// buildInfo describes the running binary.
type buildInfo struct {
	XMLName   xml.Name `json:"-" yaml:"-" xml:"version"`
	Version   string   `json:"version" yaml:"version" xml:"version"`
	Build     string   `json:"build" yaml:"build" xml:"build"`
	Runtime   string   `json:"runtime" yaml:"runtime" xml:"runtime"`
	GoVersion string   `json:"go" yaml:"go" xml:"go"`
	BuildTime string   `json:"date,omitempty" yaml:"date,omitempty" xml:"date,omitempty"`
	GitCommit string   `json:"commit,omitempty" yaml:"commit,omitempty" xml:"commit,omitempty"`
}

// currentBuildInfo collects the build-time and runtime platform values.
func currentBuildInfo() buildInfo {
	buildOS, buildArch := getBuildTarget()
	return buildInfo{
		Version:   Version,
		Build:     buildOS + "/" + buildArch,
		Runtime:   runtime.GOOS + "/" + runtime.GOARCH,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
}

// writeVersion writes the build information in the requested format.
//
// The table form lists the build target, the runtime platform when it
// differs, the Go version, build date, git commit, and version.
//
// Parameters:
//   - w: Destination writer
//   - format: Output format; FormatTable writes aligned lines
//
// Returns:
//   - error: Write failure for structured formats
func writeVersion(w io.Writer, format output.Format) error {
	info := currentBuildInfo()
	f := output.NewFormatter(format, w)

	switch format {
	case output.FormatJSON:
		return f.WriteJSON(info)
	case output.FormatYAML:
		return f.WriteYAML(info)
	case output.FormatXML:
		return f.WriteXML(info)
	case output.FormatCSV:
		return f.WriteCSV(
			[]string{"VERSION", "BUILD", "RUNTIME", "GO", "DATE", "COMMIT"},
			[][]string{{info.Version, info.Build, info.Runtime, info.GoVersion, info.BuildTime, info.GitCommit}},
		)
	}

	_, _ = fmt.Fprintf(w, "  Build:   %s\n", info.Build)
	if info.Runtime != info.Build {
		_, _ = fmt.Fprintf(w, "  Runtime: %s\n", info.Runtime)
	}
	_, _ = fmt.Fprintf(w, "  Go:      %s\n", info.GoVersion)
	if info.BuildTime != "" {
		_, _ = fmt.Fprintf(w, "  Date:    %s\n", info.BuildTime)
	}
	_, _ = fmt.Fprintln(w)
	if info.GitCommit != "" {
		_, _ = fmt.Fprintf(w, "  Git:     %s\n", info.GitCommit)
	}
	_, _ = fmt.Fprintf(w, "  Version: %s\n", info.Version)
	return nil
}

// GetVersion returns the current version string.
//
// Returns:
//   - string: Version string (e.g., "1.0.0", "dev", "1.2.0-rc.1")
func GetVersion() string {
	return Version
}

// getBuildTarget returns the OS and architecture the binary was built for.
//
// Falls back to runtime values if build-time values weren't set (dev builds).
//
// Returns:
//   - string: Target operating system (e.g., "linux", "darwin", "windows")
//   - string: Target architecture (e.g., "amd64", "arm64")
func getBuildTarget() (string, string) {
	buildOS := BuildOS
	buildArch := BuildArch

	if buildOS == "" {
		buildOS = runtime.GOOS
	}
	if buildArch == "" {
		buildArch = runtime.GOARCH
	}

	return buildOS, buildArch
}

// HasArchMismatch returns true if the binary was built for a different
// OS or architecture than what it's running on.
func HasArchMismatch() bool {
	// Dev builds carry no target
	if BuildOS == "" && BuildArch == "" {
		return false
	}

	buildOS, buildArch := getBuildTarget()
	return buildOS != runtime.GOOS || buildArch != runtime.GOARCH
}

// IsDevBuild returns true if this is a development build (no release tag).
func IsDevBuild() bool {
	return Version == "dev"
}

// IsPrerelease returns true if the version carries a semver prerelease
// suffix such as "1.2.0-rc.1".
func IsPrerelease() bool {
	return !IsDevBuild() && strings.Contains(Version, "-")
}

// GetBuildWarnings returns all build-related warnings combined.
//
// It performs the following operations:
//   - Step 1: Warns when the binary targets another platform
//   - Step 2: Warns when running an untagged dev build
//   - Step 3: Warns when running a release candidate
//
// Returns:
//   - string: Combined warning messages; empty string if no warnings
func GetBuildWarnings() string {
	var b strings.Builder

	if HasArchMismatch() {
		buildOS, buildArch := getBuildTarget()
		fmt.Fprintf(&b, "%s  Architecture mismatch: binary built for %s/%s but running on %s/%s\n"+
			"   This may cause unexpected behavior. Please download the correct binary.\n",
			constants.IconWarn, buildOS, buildArch, runtime.GOOS, runtime.GOARCH)
	}

	if IsDevBuild() {
		b.WriteString(constants.IconWarn + "  Development build: this is an unreleased version without a version tag.\n")
	}

	if IsPrerelease() {
		b.WriteString(constants.IconWarn + "  Prerelease build: " + Version + "\n" +
			"   Install a stable release (vX.Y.Z) for everyday use.\n")
	}

	return b.String()
}
