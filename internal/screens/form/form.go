package form

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizform/internal/screen"
	"github.com/abhisek/quizform/internal/session"
	"github.com/abhisek/quizform/internal/ui/components"
	"github.com/abhisek/quizform/internal/ui/layout"
)

// target identifies a focusable field. Answer is -1 for the question text.
type target struct {
	Question int
	Answer   int
}

var noTarget = target{Question: -1, Answer: -1}

// FormScreen edits one quiz. Every keystroke is forwarded to the session
// as it arrives, so validity is always current.
type FormScreen struct {
	sess     *session.Session
	focus    target
	input    components.FieldInput
	status   string
	statusOK bool
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)
var _ screen.StatusProvider = (*FormScreen)(nil)

// New creates a FormScreen editing the quiz owned by sess.
func New(sess *session.Session) *FormScreen {
	f := &FormScreen{sess: sess, focus: noTarget}
	f.focusTarget(f.first())
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return f.input.Focus()
}

func (f *FormScreen) Title() string {
	return "Quiz Form"
}

func (f *FormScreen) Status() string {
	return fmt.Sprintf("%d questions", f.sess.Len())
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next"},
		{Key: "^Q/^X", Description: "Add/Del question"},
		{Key: "^A/^D", Description: "Add/Del answer"},
		{Key: "^T", Description: "Show errors"},
		{Key: "^S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

// Session returns the session being edited.
func (f *FormScreen) Session() *session.Session {
	return f.sess
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		if f.focus == noTarget {
			return f, nil
		}
		var cmd tea.Cmd
		f.input, cmd = f.input.Update(msg)
		return f, cmd
	}

	switch kmsg.String() {
	case "tab", "down":
		return f, f.move(1)
	case "shift+tab", "up":
		return f, f.move(-1)
	case "ctrl+q":
		f.clearStatus()
		qi := f.sess.AddQuestion()
		f.leave()
		return f, f.focusTarget(target{Question: qi, Answer: -1})
	case "ctrl+x":
		return f, f.removeQuestion()
	case "ctrl+a":
		return f, f.addAnswer()
	case "ctrl+d":
		return f, f.removeAnswer()
	case "ctrl+t":
		f.sess.MarkAllTouched()
		return f, nil
	case "ctrl+s":
		return f, f.submit()
	}

	return f, f.edit(kmsg)
}

// edit forwards a key to the focused input and the new value to the session.
func (f *FormScreen) edit(msg tea.KeyPressMsg) tea.Cmd {
	if f.focus == noTarget {
		return nil
	}
	before := f.input.Value()
	var cmd tea.Cmd
	f.input, cmd = f.input.Update(msg)
	if v := f.input.Value(); v != before {
		f.clearStatus()
		if f.focus.Answer < 0 {
			f.sess.SetQuestionText(f.focus.Question, v)
		} else {
			f.sess.SetAnswerText(f.focus.Question, f.focus.Answer, v)
		}
	}
	return cmd
}

// targets lists every focusable field in document order.
func (f *FormScreen) targets() []target {
	state := f.sess.Snapshot()
	var out []target
	for qi, q := range state.Questions {
		out = append(out, target{Question: qi, Answer: -1})
		for ai := range q.Answers {
			out = append(out, target{Question: qi, Answer: ai})
		}
	}
	return out
}

func (f *FormScreen) first() target {
	if ts := f.targets(); len(ts) > 0 {
		return ts[0]
	}
	return noTarget
}

// move shifts focus by delta, wrapping around, touching the field it leaves.
func (f *FormScreen) move(delta int) tea.Cmd {
	ts := f.targets()
	if len(ts) == 0 {
		return nil
	}
	idx := 0
	for i, t := range ts {
		if t == f.focus {
			idx = (i + delta + len(ts)) % len(ts)
			break
		}
	}
	f.leave()
	return f.focusTarget(ts[idx])
}

// leave touches the focused field, which is what "focus left the field"
// means for error display.
func (f *FormScreen) leave() {
	switch {
	case f.focus == noTarget:
	case f.focus.Answer < 0:
		f.sess.TouchQuestion(f.focus.Question)
	default:
		f.sess.TouchAnswer(f.focus.Question, f.focus.Answer)
	}
}

// focusTarget rebuilds the input for t from the session's current value.
func (f *FormScreen) focusTarget(t target) tea.Cmd {
	f.focus = t
	if t == noTarget {
		f.input = components.FieldInput{}
		return nil
	}

	state := f.sess.Snapshot()
	q := state.Questions[t.Question]
	label := fmt.Sprintf("Question %d", t.Question+1)
	value := q.Question.Value
	placeholder := "Type a question"
	if t.Answer >= 0 {
		label = fmt.Sprintf("Answer %d", t.Answer+1)
		value = q.Answers[t.Answer].Answer.Value
		placeholder = "Type an answer"
	}
	f.input = components.NewFieldInput(label, placeholder, value, 0)
	return f.input.Focus()
}

func (f *FormScreen) removeQuestion() tea.Cmd {
	if f.focus == noTarget {
		return nil
	}
	f.clearStatus()
	qi := f.focus.Question
	if err := f.sess.RemoveQuestion(qi); err != nil {
		return nil
	}
	if f.sess.Len() == 0 {
		return f.focusTarget(noTarget)
	}
	return f.focusTarget(target{Question: min(qi, f.sess.Len()-1), Answer: -1})
}

func (f *FormScreen) addAnswer() tea.Cmd {
	if f.focus == noTarget {
		return nil
	}
	f.clearStatus()
	ai, err := f.sess.AddAnswer(f.focus.Question)
	if err != nil {
		return nil
	}
	f.leave()
	return f.focusTarget(target{Question: f.focus.Question, Answer: ai})
}

func (f *FormScreen) removeAnswer() tea.Cmd {
	if f.focus == noTarget || f.focus.Answer < 0 {
		return nil
	}
	f.clearStatus()
	qi, ai := f.focus.Question, f.focus.Answer
	if err := f.sess.RemoveAnswer(qi, ai); err != nil {
		return nil
	}
	left := len(f.sess.Snapshot().Questions[qi].Answers)
	if left == 0 {
		return f.focusTarget(target{Question: qi, Answer: -1})
	}
	return f.focusTarget(target{Question: qi, Answer: min(ai, left-1)})
}

// submit runs the gate in place; the session is only ever touched from
// Update.
func (f *FormScreen) submit() tea.Cmd {
	out, err := f.sess.Submit(context.Background())
	f.status = out.Status()
	f.statusOK = out.Accepted
	if err != nil {
		f.status += " (not saved: " + err.Error() + ")"
	}
	if out.Accepted {
		return f.focusTarget(f.first())
	}
	return nil
}

func (f *FormScreen) clearStatus() {
	f.status = ""
}
