package quizform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssuesDocumentOrder(t *testing.T) {
	qz := New(DefaultLimits())
	require.NoError(t, qz.SetQuestionText(0, "What is a goroutine?"))
	require.NoError(t, qz.SetAnswerText(0, 0, "A lightweight thread"))
	require.NoError(t, qz.SetAnswerText(0, 1, "abc"))
	require.NoError(t, qz.RemoveAnswer(0, 2))

	issues := qz.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, Issue{
		Path:    "/questions/0/answers/1/answer",
		Code:    CodeTooShort,
		Limit:   5,
		Actual:  3,
		Message: "Minimum 5 characters required. Current : 3",
	}, issues[0])

	require.NoError(t, qz.RemoveQuestion(0))
	issues = qz.Issues()
	require.Len(t, issues, 1)
	assert.Equal(t, "/questions", issues[0].Path)
	assert.Equal(t, CodeTooFew, issues[0].Code)
}

func TestIssuesFreshQuiz(t *testing.T) {
	qz := New(DefaultLimits())
	var paths []string
	for _, is := range qz.Issues() {
		paths = append(paths, is.Path)
		assert.Equal(t, CodeRequired, is.Code)
	}
	assert.Equal(t, []string{
		"/questions/0/question",
		"/questions/0/answers/0/answer",
		"/questions/0/answers/1/answer",
		"/questions/0/answers/2/answer",
	}, paths)
}

func TestSnapshotIsDetached(t *testing.T) {
	qz := New(DefaultLimits())
	st := qz.Snapshot()
	require.NoError(t, qz.SetQuestionText(0, "changed text"))
	qz.AddQuestion()

	assert.Equal(t, "", st.Questions[0].Question.Value)
	assert.Len(t, st.Questions, 1)
	assert.False(t, st.Valid)
}
