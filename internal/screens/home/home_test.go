package home

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizform/internal/drafter"
	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/router"
	"github.com/abhisek/quizform/internal/screen"
	"github.com/abhisek/quizform/internal/screens/draft"
	"github.com/abhisek/quizform/internal/screens/form"
	"github.com/abhisek/quizform/internal/screens/history"
	"github.com/abhisek/quizform/internal/store"
)

type countRepo struct {
	n     int
	err   error
	calls int
}

func (r *countRepo) Save(context.Context, *store.Submission) error { return nil }
func (r *countRepo) Get(context.Context, string) (*store.Submission, error) {
	return nil, nil
}
func (r *countRepo) List(context.Context, store.QueryOpts) ([]store.Submission, error) {
	return nil, nil
}
func (r *countRepo) Count(context.Context) (int, error) {
	r.calls++
	return r.n, r.err
}

type stubDrafter struct{}

func (stubDrafter) Draft(context.Context, drafter.Input) (*quizdoc.Document, error) {
	return nil, errors.New("not used")
}

var (
	keyDown  = tea.KeyPressMsg{Code: tea.KeyDown}
	keyEnter = tea.KeyPressMsg{Code: tea.KeyEnter}
)

func pushed(t *testing.T, cmd tea.Cmd) any {
	t.Helper()
	require.NotNil(t, cmd)
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c == nil {
				continue
			}
			if push, ok := c().(router.PushScreenMsg); ok {
				return push.Screen
			}
		}
		t.Fatal("no push in batch")
	}
	push, ok := msg.(router.PushScreenMsg)
	require.True(t, ok, "expected PushScreenMsg, got %T", msg)
	return push.Screen
}

func TestHome_MenuOpensScreens(t *testing.T) {
	deps := Deps{
		Limits:      quizform.DefaultLimits(),
		Submissions: &countRepo{},
		Drafter:     stubDrafter{},
	}

	tests := []struct {
		name  string
		downs int
		check func(t *testing.T, s any)
	}{
		{"new quiz", 0, func(t *testing.T, s any) {
			f, ok := s.(*form.FormScreen)
			require.True(t, ok)
			assert.Equal(t, 1, f.Session().Len())
		}},
		{"draft", 1, func(t *testing.T, s any) {
			_, ok := s.(*draft.DraftScreen)
			assert.True(t, ok)
		}},
		{"history", 2, func(t *testing.T, s any) {
			_, ok := s.(*history.HistoryScreen)
			assert.True(t, ok)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := New(deps)
			for i := 0; i < tt.downs; i++ {
				h.Update(keyDown)
			}
			_, cmd := h.Update(keyEnter)
			tt.check(t, pushed(t, cmd))
		})
	}
}

func TestHome_DisabledWithoutDeps(t *testing.T) {
	h := New(Deps{Limits: quizform.DefaultLimits()})

	assert.True(t, h.menu.Items[1].Disabled)
	assert.True(t, h.menu.Items[2].Disabled)
	assert.Nil(t, h.Init())

	// Down skips both disabled items and lands on QUIT.
	h.Update(keyDown)
	assert.Equal(t, 3, h.menu.Selected)

	view := h.View(100, 30)
	assert.Contains(t, view, "NO STORE")
	assert.Contains(t, view, "Configure an LLM provider")
}

func TestHome_ShowsSubmissionCount(t *testing.T) {
	repo := &countRepo{n: 7}
	h := New(Deps{Limits: quizform.DefaultLimits(), Submissions: repo, Drafter: stubDrafter{}})

	h.Update(h.Init()())
	view := h.View(100, 30)
	assert.Contains(t, view, "7 SUBMITTED")
	assert.Contains(t, view, "1-10 QUESTIONS")
}

func TestHome_CountError(t *testing.T) {
	repo := &countRepo{err: errors.New("disk gone")}
	h := New(Deps{Limits: quizform.DefaultLimits(), Submissions: repo, Drafter: stubDrafter{}})

	h.Update(h.Init()())
	view := h.View(100, 30)
	assert.True(t, strings.Contains(view, "disk gone"), view)
}

func TestHome_RefreshesAfterReturning(t *testing.T) {
	repo := &countRepo{n: 1}
	h := New(Deps{Limits: quizform.DefaultLimits(), Submissions: repo})
	r := router.New(h)
	r.Update(h.Init()())
	require.Equal(t, 1, repo.calls)

	r.Update(router.PushScreenMsg{Screen: pushed(t, h.menu.Items[0].Action()).(screen.Screen)})
	repo.n = 2

	cmd := r.Update(router.PopScreenMsg{})
	require.NotNil(t, cmd)
	r.Update(cmd())
	assert.Equal(t, 2, repo.calls)
	assert.Equal(t, 2, h.submissions)
}

func TestHome_ShortcutOpensHistory(t *testing.T) {
	h := New(Deps{Limits: quizform.DefaultLimits(), Submissions: &countRepo{}})
	_, cmd := h.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	_, ok := pushed(t, cmd).(*history.HistoryScreen)
	assert.True(t, ok)
	assert.Equal(t, 2, h.menu.Selected)
}
