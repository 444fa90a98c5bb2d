package draft

import (
	"context"
	"fmt"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizform/internal/drafter"
	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/router"
	"github.com/abhisek/quizform/internal/screen"
	"github.com/abhisek/quizform/internal/screens/form"
	"github.com/abhisek/quizform/internal/session"
	"github.com/abhisek/quizform/internal/ui/components"
	"github.com/abhisek/quizform/internal/ui/layout"
	"github.com/abhisek/quizform/internal/ui/theme"
)

// Drafter is the part of drafter.Drafter this screen needs.
type Drafter interface {
	Draft(ctx context.Context, in drafter.Input) (*quizdoc.Document, error)
}

type draftReadyMsg struct {
	Doc *quizdoc.Document
	Err error
}

// DraftScreen asks for a topic, drafts a quiz with the LLM and opens the
// result in the form editor.
type DraftScreen struct {
	drafter Drafter
	limits  quizform.Limits
	deps    session.Deps
	topic   components.FieldInput
	spinner spinner.Model
	busy    bool
	errMsg  string
}

var _ screen.Screen = (*DraftScreen)(nil)
var _ screen.KeyHintProvider = (*DraftScreen)(nil)

func New(d Drafter, limits quizform.Limits, deps session.Deps) *DraftScreen {
	return &DraftScreen{
		drafter: d,
		limits:  limits,
		deps:    deps,
		topic:   components.NewFieldInput("Topic", "e.g. Go concurrency", "", 40),
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(lipgloss.NewStyle().Foreground(theme.Primary))),
	}
}

func (s *DraftScreen) Init() tea.Cmd {
	return s.topic.Focus()
}

func (s *DraftScreen) Title() string {
	return "Draft Quiz"
}

func (s *DraftScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Draft"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DraftScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case draftReadyMsg:
		return s, s.handleReady(msg)

	case spinner.TickMsg:
		if !s.busy {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case tea.KeyPressMsg:
		if s.busy {
			return s, nil
		}
		if msg.String() == "enter" {
			return s, s.start()
		}
	}

	var cmd tea.Cmd
	s.topic, cmd = s.topic.Update(msg)
	return s, cmd
}

func (s *DraftScreen) start() tea.Cmd {
	topic := s.topic.Value()
	if topic == "" {
		s.errMsg = "Topic is required"
		return nil
	}
	s.errMsg = ""
	s.busy = true
	d := s.drafter
	return tea.Batch(s.spinner.Tick, func() tea.Msg {
		doc, err := d.Draft(context.Background(), drafter.Input{Topic: topic})
		return draftReadyMsg{Doc: doc, Err: err}
	})
}

// handleReady loads the draft into a new session and swaps in the editor.
// A draft that still breaks the limits opens anyway so it can be fixed.
func (s *DraftScreen) handleReady(msg draftReadyMsg) tea.Cmd {
	s.busy = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return nil
	}
	qz, err := quizdoc.Load(msg.Doc, s.limits)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	sess := session.Resume(qz, s.deps)
	sess.SetTitle(msg.Doc.Title)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: form.New(sess)}
	}
}

func (s *DraftScreen) View(width, height int) string {
	body := s.topic.View(s.errMsg)
	if s.busy {
		body += "\n\n" + s.spinner.View() + " " + theme.Hint.Render("Drafting...")
	} else {
		body += "\n\n" + theme.Hint.Render(fmt.Sprintf("%d questions, %d answers each",
			s.limits.DefaultQuestionCount, s.limits.DefaultAnswerCount))
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}
