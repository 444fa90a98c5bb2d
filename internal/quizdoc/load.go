package quizdoc

import (
	"fmt"

	"github.com/abhisek/quizform/internal/quizform"
)

// Load builds a quiz holding the document's questions. The quiz is grown or
// shrunk through the ordinary mutators, so bounds are never bypassed, and
// every field is touched so all violations are displayable.
func Load(doc *Document, l quizform.Limits) (*quizform.Quiz, error) {
	qz := quizform.New(l)

	for qz.Len() < len(doc.Questions) {
		qz.AddQuestion()
	}
	for qz.Len() > len(doc.Questions) {
		if err := qz.RemoveQuestion(qz.Len() - 1); err != nil {
			return nil, err
		}
	}

	for qi, qd := range doc.Questions {
		if err := qz.SetQuestionText(qi, qd.Question); err != nil {
			return nil, err
		}
		if err := loadAnswers(qz, qi, qd.Answers); err != nil {
			return nil, fmt.Errorf("question %d: %w", qi, err)
		}
	}

	qz.MarkAllTouched()
	return qz, nil
}

func loadAnswers(qz *quizform.Quiz, qi int, answers []string) error {
	q, ok := qz.Question(qi)
	if !ok {
		return &quizform.IndexError{Level: "question", Index: qi, Len: qz.Len()}
	}
	for q.Len() < len(answers) {
		if _, err := qz.AddAnswer(qi); err != nil {
			return err
		}
	}
	for q.Len() > len(answers) {
		if err := qz.RemoveAnswer(qi, q.Len()-1); err != nil {
			return err
		}
	}
	for ai, text := range answers {
		if err := qz.SetAnswerText(qi, ai, text); err != nil {
			return err
		}
	}
	return nil
}
