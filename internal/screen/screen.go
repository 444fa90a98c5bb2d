package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizform/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a summary on the
// right side of the header, such as the current question count.
type StatusProvider interface {
	Status() string
}

// Resumer is implemented by screens that refresh when a pop makes them
// active again, such as the home menu recounting stored submissions.
type Resumer interface {
	Resume() tea.Cmd
}
