package interactive

import (
	"github.com/ajxudir/depcheck/pkg/display"
	"github.com/ajxudir/depcheck/pkg/formats"
)

// Choice is a selectable menu entry.
//
// Fields:
//   - Record: The record the choice was built from; returned on selection
//   - Row: The formatted fields of the record
//   - Label: The table-aligned line shown in the menu
//   - Short: The collapsed label shown once selected (name@latest)
type Choice struct {
	Record formats.Record
	Row    display.Row
	Label  string
	Short  string
}

// NewChoice builds a choice for a record.
//
// Records that are up to date produce no choice.
//
// Returns:
//   - Choice: The choice; its Label is set later by the group table
//   - bool: false when the record has nothing to update
func NewChoice(r formats.Record) (Choice, bool) {
	if !r.Upgradable() {
		return Choice{}, false
	}

	return Choice{
		Record: r,
		Row:    display.FormatRecord(r),
		Short:  display.Short(r),
	}, true
}

// Separator is a non-selectable menu line. An empty Title is a blank line.
type Separator struct {
	Title display.Field
}

// IsBlank reports whether the separator has no title.
func (s Separator) IsBlank() bool {
	return s.Title.IsEmpty()
}

// Entry is one line of the menu: exactly one of Choice and Separator is set.
type Entry struct {
	Choice    *Choice
	Separator *Separator
}

// ChoiceEntry wraps a choice.
func ChoiceEntry(c Choice) Entry {
	return Entry{Choice: &c}
}

// SeparatorEntry wraps a separator with the given title.
func SeparatorEntry(title display.Field) Entry {
	return Entry{Separator: &Separator{Title: title}}
}

// BlankEntry returns a blank separator.
func BlankEntry() Entry {
	return SeparatorEntry(nil)
}

// IsSelectable reports whether the entry is a choice.
func (e Entry) IsSelectable() bool {
	return e.Choice != nil
}

// Text returns the plain text of the entry: the choice label or the separator title.
func (e Entry) Text() string {
	if e.Choice != nil {
		return e.Choice.Label
	}
	if e.Separator != nil {
		return e.Separator.Title.Text()
	}
	return ""
}
