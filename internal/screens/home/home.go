package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/router"
	"github.com/abhisek/quizform/internal/screen"
	"github.com/abhisek/quizform/internal/screens/draft"
	"github.com/abhisek/quizform/internal/screens/form"
	"github.com/abhisek/quizform/internal/screens/history"
	"github.com/abhisek/quizform/internal/session"
	"github.com/abhisek/quizform/internal/store"
	"github.com/abhisek/quizform/internal/ui/components"
	"github.com/abhisek/quizform/internal/ui/layout"
)

// Deps holds everything the home menu needs to open the other screens.
// Submissions and Drafter are optional; their menu items are disabled
// when nil.
type Deps struct {
	Limits      quizform.Limits
	Session     session.Deps
	Submissions store.SubmissionRepo
	Drafter     draft.Drafter
}

type countMsg struct {
	n   int
	err error
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps   Deps
	menu   components.Menu
	labels []string

	// submissions is -1 when no store is configured.
	submissions int
	countErr    error
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{deps: deps, submissions: -1}

	h.labels = []string{"NEW QUIZ", "DRAFT WITH AI", "HISTORY", "QUIT"}
	items := []components.MenuItem{
		{Label: h.labels[0], Shortcut: "n", Action: func() tea.Cmd {
			return h.open(form.New(session.New(deps.Limits, deps.Session)))
		}},
		{Label: h.labels[1], Shortcut: "d", Disabled: deps.Drafter == nil, Action: func() tea.Cmd {
			return h.open(draft.New(deps.Drafter, deps.Limits, deps.Session))
		}},
		{Label: h.labels[2], Shortcut: "h", Disabled: deps.Submissions == nil, Action: func() tea.Cmd {
			return h.open(history.New(deps.Submissions, deps.Limits, deps.Session))
		}},
		{Label: h.labels[3], Shortcut: "q", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) open(s screen.Screen) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: s}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadCount()
}

func (h *HomeScreen) loadCount() tea.Cmd {
	repo := h.deps.Submissions
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		n, err := repo.Count(context.Background())
		return countMsg{n: n, err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(countMsg); ok {
		h.countErr = m.err
		if m.err == nil {
			h.submissions = m.n
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// Resume recounts submissions; the closed editor may have stored one.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadCount()
}

func (h *HomeScreen) View(width, height int) string {
	compact := height < 22 || width < 80
	cw := contentWidth(width)

	disabled := make(map[int]bool)
	for i, item := range h.menu.Items {
		disabled[i] = item.Disabled
	}

	l := h.deps.Limits
	limitsLine := fmt.Sprintf("%d-%d QUESTIONS · %d-%d ANSWERS",
		l.MinQuestionCount, l.MaxQuestionCount, l.MinAnswerCount, l.MaxAnswerCount)

	sections := []string{
		renderTitle(cw, compact),
		renderStatsBar(h.submissions, limitsLine, cw),
		renderMenu(h.labels, h.menu.Selected, cw, disabled, compact),
	}
	switch {
	case h.countErr != nil:
		sections = append(sections, renderNote("Could not read history: "+h.countErr.Error(), cw))
	case h.deps.Drafter == nil:
		sections = append(sections, renderNote("Configure an LLM provider to draft quizzes", cw))
	}

	return renderFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑/↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "n/d/h", Description: "New/Draft/History"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}
