package quizform

import (
	"strings"
	"unicode/utf8"
)

// Field is an editable leaf value. Its validity is derived from the current
// value on every read and is never stored.
type Field struct {
	value     string
	validator Validator

	// touched is set once focus has left the field.
	touched bool
	// dirty is set once the value has been edited.
	dirty bool
}

func newField(v Validator) *Field {
	return &Field{validator: v}
}

// Value returns the stored value exactly as entered.
func (f *Field) Value() string {
	return f.value
}

// Validity evaluates the field's validator against the current value.
func (f *Field) Validity() Validity {
	return f.validator.Validate(f.value)
}

// Valid is shorthand for Validity().IsValid().
func (f *Field) Valid() bool {
	return f.Validity().IsValid()
}

// TrimmedLength is the rune length the validators measure.
func (f *Field) TrimmedLength() int {
	return utf8.RuneCountInString(strings.TrimSpace(f.value))
}

// Touched reports whether focus has left the field at least once.
func (f *Field) Touched() bool {
	return f.touched
}

// Dirty reports whether the value has been edited at least once.
func (f *Field) Dirty() bool {
	return f.dirty
}

// ShowErrors reports whether the field's failure should be displayed.
// Pristine, untouched fields stay quiet even when invalid.
func (f *Field) ShowErrors() bool {
	return (f.touched || f.dirty) && !f.Valid()
}

func (f *Field) set(v string) {
	f.value = v
	f.dirty = true
}

func (f *Field) touch() {
	f.touched = true
}
