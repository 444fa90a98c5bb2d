package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/router"
	"github.com/abhisek/quizform/internal/screen"
	"github.com/abhisek/quizform/internal/screens/form"
	"github.com/abhisek/quizform/internal/session"
	"github.com/abhisek/quizform/internal/store"
	"github.com/abhisek/quizform/internal/ui/layout"
	"github.com/abhisek/quizform/internal/ui/theme"
)

// pageSize bounds how many submissions the screen loads.
const pageSize = 50

type historyLoadedMsg struct {
	Submissions []store.Submission
	Err         error
}

// HistoryScreen lists accepted submissions, newest first.
type HistoryScreen struct {
	repo        store.SubmissionRepo
	limits      quizform.Limits
	deps        session.Deps
	submissions []store.Submission
	selected    int
	expanded    map[int]bool
	loaded      bool
	errMsg      string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a HistoryScreen. Editing a copy starts a new session with
// limits and deps.
func New(repo store.SubmissionRepo, limits quizform.Limits, deps session.Deps) *HistoryScreen {
	return &HistoryScreen{
		repo:     repo,
		limits:   limits,
		deps:     deps,
		expanded: make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		subs, err := s.repo.List(context.Background(), store.QueryOpts{Limit: pageSize})
		return historyLoadedMsg{Submissions: subs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "E", Description: "Edit copy"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.submissions = msg.Submissions
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.submissions)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		case "e":
			return s, s.editCopy()
		}
	}
	return s, nil
}

// editCopy opens the selected submission in the form editor as a new,
// unsaved quiz.
func (s *HistoryScreen) editCopy() tea.Cmd {
	if s.selected >= len(s.submissions) {
		return nil
	}
	sub := s.submissions[s.selected]
	qz, err := quizdoc.Load(quizdoc.FromData(sub.Title, sub.Data), s.limits)
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	sess := session.Resume(qz, s.deps)
	sess.SetTitle(sub.Title)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: form.New(sess)}
	}
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.submissions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No submissions yet. Fill in a quiz and press Ctrl+S!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, sub := range s.submissions {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		title := sub.Title
		if title == "" {
			title = "(untitled)"
		}
		line := fmt.Sprintf("%s%s  %-24s  %d questions  %d answers",
			prefix, sub.CreatedAt.Local().Format("Jan 02, 2006 15:04"), title,
			sub.QuestionCount(), sub.Data.AnswerCount())

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")

		if s.expanded[i] {
			for qi, q := range sub.Data.Questions {
				b.WriteString(theme.Body.Render(fmt.Sprintf("      %d. %s", qi+1, q.Question)))
				b.WriteString("\n")
				for _, a := range q.Answers {
					b.WriteString(theme.Hint.Render("         - " + a))
					b.WriteString("\n")
				}
			}
		}
	}

	return b.String()
}
