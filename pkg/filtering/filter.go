package filtering

import (
	"fmt"
	"strings"

	"github.com/ajxudir/depcheck/pkg/constants"
	"github.com/ajxudir/depcheck/pkg/formats"
)

// BoolConstraint is an optional expectation on a boolean attribute.
//
// Fields:
//   - Set: Whether the attribute is checked at all
//   - Value: The expected value when Set is true
type BoolConstraint struct {
	Set   bool
	Value bool
}

// Allows reports whether v satisfies the constraint.
func (c BoolConstraint) Allows(v bool) bool {
	return !c.Set || c.Value == v
}

// BumpConstraint is an optional expectation on the bump attribute.
//
// A set constraint with BumpNone requires the bump to be absent.
//
// Fields:
//   - Set: Whether the attribute is checked at all
//   - Value: The expected bump when Set is true
type BumpConstraint struct {
	Set   bool
	Value formats.Bump
}

// Allows reports whether b satisfies the constraint.
func (c BumpConstraint) Allows(b formats.Bump) bool {
	return !c.Set || c.Value == b
}

// Filter is a partial predicate over a record's status attributes.
//
// Fields:
//   - Mismatch: Constraint on Record.Mismatch
//   - NotInstalled: Constraint on Record.NotInstalled
//   - DevDependency: Constraint on Record.DevDependency
//   - Bump: Constraint on Record.Bump
type Filter struct {
	Mismatch      BoolConstraint
	NotInstalled  BoolConstraint
	DevDependency BoolConstraint
	Bump          BumpConstraint
}

// Option sets one constraint of a Filter.
type Option func(*Filter)

// MismatchIs requires Record.Mismatch to equal v.
func MismatchIs(v bool) Option {
	return func(f *Filter) { f.Mismatch = BoolConstraint{Set: true, Value: v} }
}

// NotInstalledIs requires Record.NotInstalled to equal v.
func NotInstalledIs(v bool) Option {
	return func(f *Filter) { f.NotInstalled = BoolConstraint{Set: true, Value: v} }
}

// DevDependencyIs requires Record.DevDependency to equal v.
func DevDependencyIs(v bool) Option {
	return func(f *Filter) { f.DevDependency = BoolConstraint{Set: true, Value: v} }
}

// BumpIs requires Record.Bump to equal b.
func BumpIs(b formats.Bump) Option {
	return func(f *Filter) { f.Bump = BumpConstraint{Set: true, Value: b} }
}

// BumpAbsent requires Record.Bump to be unset.
func BumpAbsent() Option {
	return BumpIs(formats.BumpNone)
}

// NewFilter builds a Filter from constraint options.
//
// Parameters:
//   - opts: Constraints to apply; later options override earlier ones on the same attribute
//
// Returns:
//   - Filter: The composed filter
//
// Example:
//
//	f := filtering.NewFilter(filtering.NotInstalledIs(true), filtering.BumpAbsent())
func NewFilter(opts ...Option) Filter {
	var f Filter
	for _, opt := range opts {
		opt(&f)
	}
	return f
}

// Matches reports whether every constraint of the filter holds for r.
//
// Parameters:
//   - r: The record to test
//
// Returns:
//   - bool: true if r satisfies all set constraints; always true for the zero Filter
func (f Filter) Matches(r formats.Record) bool {
	return f.Mismatch.Allows(r.Mismatch) &&
		f.NotInstalled.Allows(r.NotInstalled) &&
		f.DevDependency.Allows(r.DevDependency) &&
		f.Bump.Allows(r.Bump)
}

// IsEmpty reports whether the filter has no constraints.
func (f Filter) IsEmpty() bool {
	return !f.Mismatch.Set && !f.NotInstalled.Set && !f.DevDependency.Set && !f.Bump.Set
}

// String renders the set constraints, e.g. "{mismatch=true bump=<absent>}".
func (f Filter) String() string {
	var parts []string
	if f.Mismatch.Set {
		parts = append(parts, fmt.Sprintf("mismatch=%t", f.Mismatch.Value))
	}
	if f.NotInstalled.Set {
		parts = append(parts, fmt.Sprintf("notInstalled=%t", f.NotInstalled.Value))
	}
	if f.DevDependency.Set {
		parts = append(parts, fmt.Sprintf("devDependency=%t", f.DevDependency.Value))
	}
	if f.Bump.Set {
		if f.Bump.Value.IsSet() {
			parts = append(parts, "bump="+f.Bump.Value.String())
		} else {
			parts = append(parts, "bump=<absent>")
		}
	}
	return "{" + strings.Join(parts, " ") + "}"
}

// Select returns the records matching f, preserving input order.
//
// The input slice is not modified.
func Select(records []formats.Record, f Filter) []formats.Record {
	var out []formats.Record
	for _, r := range records {
		if f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// FromTypeFlag builds a filter from a dependency type flag value.
//
// Parameters:
//   - value: "all" (or empty), "prod" or "dev"
//
// Returns:
//   - Filter: The zero filter for "all", otherwise a devDependency constraint
//   - error: Returns an error for any other value
func FromTypeFlag(value string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", constants.FilterAll:
		return Filter{}, nil
	case constants.TypeProd:
		return NewFilter(DevDependencyIs(false)), nil
	case constants.TypeDev:
		return NewFilter(DevDependencyIs(true)), nil
	default:
		return Filter{}, fmt.Errorf("invalid type %q: expected all, prod or dev", value)
	}
}
