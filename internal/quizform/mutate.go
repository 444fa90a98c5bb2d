package quizform

import (
	"errors"
	"fmt"
	"slices"
)

// ErrIndexOutOfRange is returned by mutators given an index outside the
// addressed collection. The quiz is left unchanged.
var ErrIndexOutOfRange = errors.New("index out of range")

// IndexError describes an out-of-range index passed to a mutator.
type IndexError struct {
	Level string // "question" or "answer"
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Level, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func (qz *Quiz) question(i int) (*Question, error) {
	q, ok := qz.Question(i)
	if !ok {
		return nil, &IndexError{Level: "question", Index: i, Len: len(qz.questions)}
	}
	return q, nil
}

func (qz *Quiz) answer(qi, ai int) (*Answer, error) {
	q, err := qz.question(qi)
	if err != nil {
		return nil, err
	}
	a, ok := q.Answer(ai)
	if !ok {
		return nil, &IndexError{Level: "answer", Index: ai, Len: len(q.answers)}
	}
	return a, nil
}

// SetQuestionText replaces the text of question qi.
func (qz *Quiz) SetQuestionText(qi int, text string) error {
	q, err := qz.question(qi)
	if err != nil {
		return err
	}
	q.text.set(text)
	return nil
}

// SetAnswerText replaces the text of answer ai within question qi.
func (qz *Quiz) SetAnswerText(qi, ai int, text string) error {
	a, err := qz.answer(qi, ai)
	if err != nil {
		return err
	}
	a.text.set(text)
	return nil
}

// TouchQuestion marks the text of question qi as touched.
func (qz *Quiz) TouchQuestion(qi int) error {
	q, err := qz.question(qi)
	if err != nil {
		return err
	}
	q.text.touch()
	return nil
}

// TouchAnswer marks answer ai within question qi as touched.
func (qz *Quiz) TouchAnswer(qi, ai int) error {
	a, err := qz.answer(qi, ai)
	if err != nil {
		return err
	}
	a.text.touch()
	return nil
}

// MarkAllTouched marks every leaf as touched so that all failures display.
func (qz *Quiz) MarkAllTouched() {
	for _, q := range qz.questions {
		q.touchAll()
	}
}

// AddQuestion appends a fresh default question and returns its index.
func (qz *Quiz) AddQuestion() int {
	qz.questions = append(qz.questions, NewQuestion(qz.limits))
	return len(qz.questions) - 1
}

// RemoveQuestion removes question qi. Removing below the minimum count is
// allowed; the count failure is reported until the count is restored.
func (qz *Quiz) RemoveQuestion(qi int) error {
	if _, err := qz.question(qi); err != nil {
		return err
	}
	qz.questions = slices.Delete(qz.questions, qi, qi+1)
	return nil
}

// AddAnswer appends a fresh answer to question qi and returns its index.
func (qz *Quiz) AddAnswer(qi int) (int, error) {
	q, err := qz.question(qi)
	if err != nil {
		return 0, err
	}
	q.answers = append(q.answers, NewAnswer(qz.limits))
	return len(q.answers) - 1, nil
}

// RemoveAnswer removes answer ai from question qi. Like RemoveQuestion it
// may take the collection below its minimum, down to zero.
func (qz *Quiz) RemoveAnswer(qi, ai int) error {
	if _, err := qz.answer(qi, ai); err != nil {
		return err
	}
	q := qz.questions[qi]
	q.answers = slices.Delete(q.answers, ai, ai+1)
	return nil
}
