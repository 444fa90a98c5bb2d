package quizform

import "slices"

// Quiz is the root of the form: an ordered collection of questions bounded
// by the question-count limits. A Quiz belongs to the session that created
// it and is not safe for concurrent use.
type Quiz struct {
	limits    Limits
	questions []*Question
	count     Cardinality
}

// New creates a quiz populated with DefaultQuestionCount empty questions,
// each holding DefaultAnswerCount empty answers.
func New(l Limits) *Quiz {
	qz := &Quiz{
		limits: l,
		count:  l.QuestionCount(),
	}
	qz.populate()
	return qz
}

func (qz *Quiz) populate() {
	qz.questions = make([]*Question, 0, qz.limits.DefaultQuestionCount)
	for range qz.limits.DefaultQuestionCount {
		qz.questions = append(qz.questions, NewQuestion(qz.limits))
	}
}

// Limits returns the limits the quiz was built with.
func (qz *Quiz) Limits() Limits {
	return qz.limits
}

// Len returns the number of questions.
func (qz *Quiz) Len() int {
	return len(qz.questions)
}

// Question returns the question at index i.
func (qz *Quiz) Question(i int) (*Question, bool) {
	if i < 0 || i >= len(qz.questions) {
		return nil, false
	}
	return qz.questions[i], true
}

// Questions returns the questions in order. The returned slice is a copy.
func (qz *Quiz) Questions() []*Question {
	return slices.Clone(qz.questions)
}

// QuestionsValidity evaluates the question-count bound only.
func (qz *Quiz) QuestionsValidity() Validity {
	return qz.count.Check(len(qz.questions))
}

// Valid reports whether the question count and every question are valid.
func (qz *Quiz) Valid() bool {
	if !qz.QuestionsValidity().IsValid() {
		return false
	}
	for _, q := range qz.questions {
		if !q.Valid() {
			return false
		}
	}
	return true
}

// Reset discards all questions and repopulates the defaults.
func (qz *Quiz) Reset() {
	qz.populate()
}
