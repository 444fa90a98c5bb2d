package quizform

import "strconv"

// Issue is one current failure located by a JSON pointer into the
// extracted data.
type Issue struct {
	Path    string `json:"path" yaml:"path"`
	Code    Code   `json:"code" yaml:"code"`
	Limit   int    `json:"limit,omitempty" yaml:"limit,omitempty"`
	Actual  int    `json:"actual,omitempty" yaml:"actual,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// Issues lists every failure in document order: the question count first,
// then for each question its text, its answer count and its answers.
// Display timing is ignored; every failure is listed.
func (qz *Quiz) Issues() []Issue {
	var out []Issue
	add := func(path string, s Subject, v Validity) {
		f, ok := v.Failure()
		if !ok {
			return
		}
		out = append(out, Issue{
			Path:    path,
			Code:    f.Code,
			Limit:   f.Limit,
			Actual:  f.Actual,
			Message: Message(s, f),
		})
	}

	add("/questions", SubjectQuestions, qz.QuestionsValidity())
	for i, q := range qz.questions {
		base := "/questions/" + strconv.Itoa(i)
		add(base+"/question", SubjectQuestion, q.text.Validity())
		add(base+"/answers", SubjectAnswers, q.AnswersValidity())
		for j, a := range q.answers {
			add(base+"/answers/"+strconv.Itoa(j)+"/answer", SubjectAnswer, a.text.Validity())
		}
	}
	return out
}
