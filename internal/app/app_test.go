package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/router"
	"github.com/abhisek/quizform/internal/screens/form"
	"github.com/abhisek/quizform/internal/screens/home"
	"github.com/abhisek/quizform/internal/session"
)

func testModel(t *testing.T) AppModel {
	t.Helper()
	m := newAppModel(Deps{Limits: quizform.DefaultLimits()}, false)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(AppModel)
}

func TestApp_StartsOnHome(t *testing.T) {
	m := testModel(t)
	_, ok := m.router.Active().(*home.HomeScreen)
	assert.True(t, ok)

	out := m.render()
	assert.Contains(t, out, "quizform")
	assert.Contains(t, out, "NEW QUIZ")
}

func TestApp_HeaderShowsStatus(t *testing.T) {
	m := testModel(t)
	sess := session.New(quizform.DefaultLimits(), session.Deps{})
	m.router.Update(router.PushScreenMsg{Screen: form.New(sess)})

	out := m.render()
	assert.Contains(t, out, "1 questions")
	assert.Contains(t, out, "Submit")
}

func TestApp_EscPops(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Nil(t, cmd, "esc on the root screen is a no-op")

	sess := session.New(quizform.DefaultLimits(), session.Deps{})
	m.router.Update(router.PushScreenMsg{Screen: form.New(sess)})
	require.Equal(t, 2, m.router.Depth())

	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, 1, m.router.Depth())
}

func TestApp_TooSmall(t *testing.T) {
	m := newAppModel(Deps{Limits: quizform.DefaultLimits()}, false)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Contains(t, updated.(AppModel).render(), "Terminal too small")
}
