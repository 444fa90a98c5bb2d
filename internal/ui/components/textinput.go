package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizform/internal/ui/theme"
)

// FieldInput wraps bubbles/textinput with a label and an error line. The
// caller decides whether an error is shown; the input only renders it.
type FieldInput struct {
	Model textinput.Model
	Label string
}

// NewFieldInput creates a blurred input holding value.
func NewFieldInput(label, placeholder, value string, width int) FieldInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.SetValue(value)
	if width > 0 {
		ti.SetWidth(width)
	}
	return FieldInput{Model: ti, Label: label}
}

// Focus focuses the input and returns the cursor blink command.
func (f *FieldInput) Focus() tea.Cmd {
	return f.Model.Focus()
}

func (f *FieldInput) Blur() {
	f.Model.Blur()
}

func (f FieldInput) Focused() bool {
	return f.Model.Focused()
}

// Update forwards msg to the underlying input.
func (f FieldInput) Update(msg tea.Msg) (FieldInput, tea.Cmd) {
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

func (f FieldInput) Value() string {
	return f.Model.Value()
}

// SetValue replaces the text without touching focus.
func (f *FieldInput) SetValue(v string) {
	f.Model.SetValue(v)
}

// View renders the label, the bordered input and errMsg when non-empty.
func (f FieldInput) View(errMsg string) string {
	box := theme.FieldBlurred
	switch {
	case errMsg != "":
		box = theme.FieldInvalid
	case f.Model.Focused():
		box = theme.FieldFocused
	}

	view := theme.Label.Render(f.Label) + "\n" + box.Render(f.Model.View())
	if errMsg != "" {
		view += "\n" + theme.ErrorText.Render(errMsg)
	}
	return view
}
