package form

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizform/internal/quizform"
	"github.com/abhisek/quizform/internal/ui/components"
	"github.com/abhisek/quizform/internal/ui/layout"
	"github.com/abhisek/quizform/internal/ui/theme"
)

func (f *FormScreen) View(width, height int) string {
	state := f.sess.Snapshot()
	limits := f.sess.Limits()
	fieldWidth := max(width-8, 20)

	var blocks []string
	focusBlock := 0

	gauge := components.NewGauge("Questions", len(state.Questions),
		limits.MinQuestionCount, limits.MaxQuestionCount, min(fieldWidth, 50))
	head := gauge.View()
	if msg := quizform.MessageOf(quizform.SubjectQuestions, state.QuestionsValidity); msg != "" {
		head += "\n" + theme.ErrorText.Render(msg)
	}
	blocks = append(blocks, head)

	for qi, q := range state.Questions {
		t := target{Question: qi, Answer: -1}
		if t == f.focus {
			focusBlock = len(blocks)
		}
		blocks = append(blocks, f.renderField(t, fmt.Sprintf("Question %d", qi+1),
			q.Question, quizform.SubjectQuestion, fieldWidth))

		for ai, a := range q.Answers {
			t := target{Question: qi, Answer: ai}
			if t == f.focus {
				focusBlock = len(blocks)
			}
			blocks = append(blocks, indent(f.renderField(t, fmt.Sprintf("Answer %d", ai+1),
				a.Answer, quizform.SubjectAnswer, fieldWidth-4)))
		}
		if msg := quizform.MessageOf(quizform.SubjectAnswers, q.AnswersValidity); msg != "" {
			blocks = append(blocks, indent(theme.ErrorText.Render(msg)))
		}
	}

	if f.status != "" {
		style := theme.StatusErr
		if f.statusOK {
			style = theme.StatusOK
		}
		blocks = append(blocks, style.Render(f.status))
	}

	return lipgloss.NewStyle().Padding(0, 2).Render(window(blocks, focusBlock, height))
}

// renderField draws the live input for the focused field and a static box
// for the rest.
func (f *FormScreen) renderField(t target, label string, fs quizform.FieldState, subject quizform.Subject, width int) string {
	errMsg := ""
	if fs.ShowErrors {
		errMsg = quizform.MessageOf(subject, fs.Validity)
	}
	if t == f.focus {
		f.input.Model.SetWidth(width)
		return f.input.View(errMsg)
	}

	box := theme.FieldBlurred
	if errMsg != "" {
		box = theme.FieldInvalid
	}
	value := fs.Value
	if value == "" {
		value = theme.Hint.Render("empty")
	}
	view := theme.Label.Render(label) + "\n" + box.Width(width).Render(value)
	if errMsg != "" {
		view += "\n" + theme.ErrorText.Render(errMsg)
	}
	return view
}

func indent(s string) string {
	return lipgloss.NewStyle().PaddingLeft(4).Render(s)
}

// window keeps the focused block visible, cutting whole blocks from the top
// and bottom to fit height lines.
func window(blocks []string, focus, height int) string {
	var lines []string
	focusLine := 0
	for i, b := range blocks {
		if i == focus {
			focusLine = len(lines)
		}
		lines = append(lines, strings.Split(b, "\n")...)
	}
	start, end := layout.Window(len(lines), focusLine, height)
	return strings.Join(lines[start:end], "\n")
}
