package quizform

import "errors"

// ErrStructureInvalid is returned by Submit when any leaf or collection is
// invalid.
var ErrStructureInvalid = errors.New("structure invalid")

// Data is the plain, validation-free content of a quiz.
type Data struct {
	Questions []QuestionData `json:"questions" yaml:"questions"`
}

// QuestionData is the plain content of one question.
type QuestionData struct {
	Question string   `json:"question" yaml:"question"`
	Answers  []string `json:"answers" yaml:"answers"`
}

// AnswerCount returns the total number of answers across all questions.
func (d Data) AnswerCount() int {
	n := 0
	for _, q := range d.Questions {
		n += len(q.Answers)
	}
	return n
}

// Submission is the result of an accepted submit.
type Submission struct {
	Data  Data
	Count int // number of questions submitted
}

// Extract returns the raw values of every question and answer in order,
// regardless of validity. Values are not trimmed.
func (qz *Quiz) Extract() Data {
	data := Data{Questions: make([]QuestionData, 0, len(qz.questions))}
	for _, q := range qz.questions {
		qd := QuestionData{
			Question: q.text.value,
			Answers:  make([]string, 0, len(q.answers)),
		}
		for _, a := range q.answers {
			qd.Answers = append(qd.Answers, a.text.value)
		}
		data.Questions = append(data.Questions, qd)
	}
	return data
}

// Submit is the submission gate. When the whole quiz is valid it returns the
// extracted data and resets the quiz to a fresh default instance. Otherwise
// it returns ErrStructureInvalid and leaves the quiz exactly as it was.
func (qz *Quiz) Submit() (Submission, error) {
	if !qz.Valid() {
		return Submission{}, ErrStructureInvalid
	}
	data := qz.Extract()
	qz.Reset()
	return Submission{Data: data, Count: len(data.Questions)}, nil
}
