package quizform

// FieldState is a read-only view of a leaf.
type FieldState struct {
	Value         string
	Validity      Validity
	TrimmedLength int
	Touched       bool
	Dirty         bool
	ShowErrors    bool
}

type AnswerState struct {
	Answer FieldState
}

type QuestionState struct {
	Question        FieldState
	Answers         []AnswerState
	AnswersValidity Validity
	Valid           bool
}

// State is a value copy of the whole quiz. Later mutations of the quiz do
// not affect a State already taken.
type State struct {
	Questions         []QuestionState
	QuestionsValidity Validity
	Valid             bool
}

func fieldState(f *Field) FieldState {
	v := f.Validity()
	return FieldState{
		Value:         f.value,
		Validity:      v,
		TrimmedLength: f.TrimmedLength(),
		Touched:       f.touched,
		Dirty:         f.dirty,
		ShowErrors:    (f.touched || f.dirty) && !v.IsValid(),
	}
}

// Snapshot derives the current state of every node.
func (qz *Quiz) Snapshot() State {
	st := State{
		Questions:         make([]QuestionState, 0, len(qz.questions)),
		QuestionsValidity: qz.QuestionsValidity(),
		Valid:             qz.Valid(),
	}
	for _, q := range qz.questions {
		qs := QuestionState{
			Question:        fieldState(q.text),
			Answers:         make([]AnswerState, 0, len(q.answers)),
			AnswersValidity: q.AnswersValidity(),
			Valid:           q.Valid(),
		}
		for _, a := range q.answers {
			qs.Answers = append(qs.Answers, AnswerState{Answer: fieldState(a.text)})
		}
		st.Questions = append(st.Questions, qs)
	}
	return st
}
