package display

import "strings"

// Style is a semantic presentation tag.
//
// Styles say what a piece of text is, not how it looks; a Theme decides the
// look.
type Style int

// Known styles.
const (
	StylePlain Style = iota
	StyleName
	StyleDevTag
	StyleMissingTag
	StyleVersion
	StyleArrow
	StyleLatest
	StyleLink
	StyleError
	StyleTitleSafe
	StyleNoteSafe
	StyleTitleCaution
	StyleNoteCaution
	StyleTitleDanger
	StyleNoteDanger
	StyleTitleUnstable
	StyleNoteUnstable
	StyleInstructions
)

// Span is a run of text with one style.
type Span struct {
	Text  string
	Style Style
}

// Field is one display field made of styled spans.
type Field []Span

// NewField builds a field from spans, dropping empty ones.
func NewField(spans ...Span) Field {
	var f Field
	for _, s := range spans {
		if s.Text != "" {
			f = append(f, s)
		}
	}
	return f
}

// Plain builds a single-span field with StylePlain.
func Plain(text string) Field {
	return NewField(Span{Text: text, Style: StylePlain})
}

// Text returns the field's text without styling.
func (f Field) Text() string {
	var sb strings.Builder
	for _, s := range f {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// IsEmpty reports whether the field has no visible text.
func (f Field) IsEmpty() bool {
	return f.Text() == ""
}

// RowFields is the number of fields in a formatted row.
const RowFields = 5

// Field positions within a Row.
const (
	FieldName = iota
	FieldCurrent
	FieldArrow
	FieldLatest
	FieldLink
)

// Row is a formatted record: name, current version, arrow, latest version, link or error.
type Row [RowFields]Field

// Texts returns the plain text of every field, in field order.
func (r Row) Texts() []string {
	texts := make([]string, RowFields)
	for i, f := range r {
		texts[i] = f.Text()
	}
	return texts
}
