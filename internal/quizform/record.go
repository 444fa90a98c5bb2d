package quizform

import "slices"

// Answer is one answer option of a question.
type Answer struct {
	text *Field
}

// NewAnswer creates an empty answer carrying the answer validator stack.
func NewAnswer(l Limits) *Answer {
	return &Answer{text: newField(l.AnswerRules())}
}

// Text returns the answer's leaf field.
func (a *Answer) Text() *Field {
	return a.text
}

// Question holds the question text and its ordered answers. The answer
// collection carries its own cardinality bound.
type Question struct {
	text    *Field
	answers []*Answer
	count   Cardinality
}

// NewQuestion creates an empty question with DefaultAnswerCount empty answers.
func NewQuestion(l Limits) *Question {
	q := &Question{
		text:    newField(l.QuestionRules()),
		answers: make([]*Answer, 0, l.DefaultAnswerCount),
		count:   l.AnswerCount(),
	}
	for range l.DefaultAnswerCount {
		q.answers = append(q.answers, NewAnswer(l))
	}
	return q
}

// Text returns the question's leaf field.
func (q *Question) Text() *Field {
	return q.text
}

// Len returns the number of answers.
func (q *Question) Len() int {
	return len(q.answers)
}

// Answer returns the answer at index i.
func (q *Question) Answer(i int) (*Answer, bool) {
	if i < 0 || i >= len(q.answers) {
		return nil, false
	}
	return q.answers[i], true
}

// Answers returns the answers in order. The returned slice is a copy.
func (q *Question) Answers() []*Answer {
	return slices.Clone(q.answers)
}

// AnswersValidity evaluates the answer-count bound only.
func (q *Question) AnswersValidity() Validity {
	return q.count.Check(len(q.answers))
}

// Valid reports whether the text, the answer count and every answer are valid.
func (q *Question) Valid() bool {
	if !q.text.Valid() || !q.AnswersValidity().IsValid() {
		return false
	}
	for _, a := range q.answers {
		if !a.text.Valid() {
			return false
		}
	}
	return true
}

func (q *Question) touchAll() {
	q.text.touch()
	for _, a := range q.answers {
		a.text.touch()
	}
}
