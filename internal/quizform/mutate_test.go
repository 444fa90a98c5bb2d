package quizform

import (
	"errors"
	"testing"
)

func TestAddRemoveQuestionRoundTrip(t *testing.T) {
	l := DefaultLimits()
	l.DefaultQuestionCount = 2
	qz := New(l)
	_ = qz.SetQuestionText(0, "first question")
	_ = qz.SetQuestionText(1, "second question")
	_ = qz.SetAnswerText(1, 2, "an answer")
	before := qz.Extract()

	idx := qz.AddQuestion()
	if idx != 2 || qz.Len() != 3 {
		t.Fatalf("AddQuestion() = %d, Len() = %d", idx, qz.Len())
	}
	if err := qz.RemoveQuestion(idx); err != nil {
		t.Fatal(err)
	}

	after := qz.Extract()
	if len(after.Questions) != len(before.Questions) {
		t.Fatalf("len = %d, want %d", len(after.Questions), len(before.Questions))
	}
	for i := range before.Questions {
		if after.Questions[i].Question != before.Questions[i].Question {
			t.Errorf("question %d = %q, want %q", i, after.Questions[i].Question, before.Questions[i].Question)
		}
		if len(after.Questions[i].Answers) != len(before.Questions[i].Answers) {
			t.Errorf("question %d answer count changed", i)
		}
	}
}

func TestRemoveQuestionKeepsSiblingOrder(t *testing.T) {
	l := DefaultLimits()
	l.DefaultQuestionCount = 3
	qz := New(l)
	for i, s := range []string{"zero", "one", "two"} {
		_ = qz.SetQuestionText(i, s)
	}

	if err := qz.RemoveQuestion(1); err != nil {
		t.Fatal(err)
	}
	data := qz.Extract()
	if data.Questions[0].Question != "zero" || data.Questions[1].Question != "two" {
		t.Errorf("questions = %+v", data.Questions)
	}
}

func TestAddAnswer(t *testing.T) {
	qz := New(DefaultLimits())
	_ = qz.SetAnswerText(0, 0, "kept")

	idx, err := qz.AddAnswer(0)
	if err != nil {
		t.Fatal(err)
	}
	q, _ := qz.Question(0)
	if idx != 3 || q.Len() != 4 {
		t.Errorf("AddAnswer = %d, Len = %d", idx, q.Len())
	}
	a, _ := q.Answer(0)
	if a.Text().Value() != "kept" {
		t.Errorf("sibling value = %q", a.Text().Value())
	}
	added, _ := q.Answer(idx)
	if added.Text().Dirty() || added.Text().Touched() {
		t.Error("new answer should be pristine")
	}
}

func TestAddAnswerTooMany(t *testing.T) {
	l := DefaultLimits()
	qz := New(l)
	for range l.MaxAnswerCount - l.DefaultAnswerCount + 1 {
		if _, err := qz.AddAnswer(0); err != nil {
			t.Fatal(err)
		}
	}
	q, _ := qz.Question(0)
	f, ok := q.AnswersValidity().Failure()
	if !ok || f.Code != CodeTooMany || f.Actual != l.MaxAnswerCount+1 {
		t.Errorf("validity = %s, want too_many(%d)", q.AnswersValidity(), l.MaxAnswerCount+1)
	}
}

func TestRemoveAnswerDownToZero(t *testing.T) {
	qz := New(DefaultLimits())
	for range 3 {
		if err := qz.RemoveAnswer(0, 0); err != nil {
			t.Fatal(err)
		}
	}
	q, _ := qz.Question(0)
	f, ok := q.AnswersValidity().Failure()
	if !ok || f.Code != CodeTooFew || f.Actual != 0 {
		t.Errorf("validity = %s, want too_few(0)", q.AnswersValidity())
	}
}

func TestOutOfRangeIndex(t *testing.T) {
	qz := New(DefaultLimits())
	before := qz.Snapshot()

	tests := []struct {
		name  string
		op    func() error
		level string
	}{
		{"remove question", func() error { return qz.RemoveQuestion(5) }, "question"},
		{"remove negative", func() error { return qz.RemoveQuestion(-1) }, "question"},
		{"set question", func() error { return qz.SetQuestionText(1, "x") }, "question"},
		{"add answer", func() error { _, err := qz.AddAnswer(1); return err }, "question"},
		{"remove answer", func() error { return qz.RemoveAnswer(0, 3) }, "answer"},
		{"set answer", func() error { return qz.SetAnswerText(0, -1, "x") }, "answer"},
		{"touch answer", func() error { return qz.TouchAnswer(0, 9) }, "answer"},
		{"touch question", func() error { return qz.TouchQuestion(2) }, "question"},
	}

	for _, tt := range tests {
		err := tt.op()
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("%s: err = %v, want ErrIndexOutOfRange", tt.name, err)
			continue
		}
		var ie *IndexError
		if !errors.As(err, &ie) || ie.Level != tt.level {
			t.Errorf("%s: err = %#v, want level %q", tt.name, err, tt.level)
		}
	}

	after := qz.Snapshot()
	if len(after.Questions) != len(before.Questions) || len(after.Questions[0].Answers) != 3 {
		t.Error("out-of-range mutations changed the quiz")
	}
}

func TestTouchAndDirty(t *testing.T) {
	qz := New(DefaultLimits())
	q, _ := qz.Question(0)

	if q.Text().ShowErrors() {
		t.Error("pristine field should not show errors")
	}
	if q.Text().Valid() {
		t.Error("empty field should be invalid")
	}

	_ = qz.TouchQuestion(0)
	if !q.Text().Touched() || !q.Text().ShowErrors() {
		t.Error("touched invalid field should show errors")
	}

	a, _ := q.Answer(0)
	_ = qz.SetAnswerText(0, 0, "ab")
	if !a.Text().Dirty() || !a.Text().ShowErrors() {
		t.Error("edited invalid field should show errors")
	}
	_ = qz.SetAnswerText(0, 0, "abcdef")
	if a.Text().ShowErrors() {
		t.Error("valid field should not show errors")
	}
}

func TestMarkAllTouched(t *testing.T) {
	qz := New(DefaultLimits())
	qz.MarkAllTouched()
	for _, q := range qz.Snapshot().Questions {
		if !q.Question.Touched || !q.Question.ShowErrors {
			t.Error("question not touched")
		}
		for _, a := range q.Answers {
			if !a.Answer.Touched {
				t.Error("answer not touched")
			}
		}
	}
}

func TestEditThenCardinalityOrdering(t *testing.T) {
	qz := New(DefaultLimits())
	_ = qz.SetAnswerText(0, 2, "third answer")
	_ = qz.RemoveAnswer(0, 0)

	q, _ := qz.Question(0)
	a, _ := q.Answer(1)
	if a.Text().Value() != "third answer" {
		t.Errorf("answer 1 = %q, want the edit applied before removal", a.Text().Value())
	}
}
