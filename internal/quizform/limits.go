package quizform

// Limits are the structural and content bounds of a quiz. All bounds are
// inclusive. Callers must ensure Min <= Default <= Max for both counts and
// Min <= Max for both lengths; the core does not check it.
type Limits struct {
	DefaultQuestionCount int
	MinQuestionCount     int
	MaxQuestionCount     int

	DefaultAnswerCount int
	MinAnswerCount     int
	MaxAnswerCount     int

	MinQuestionLength int
	MaxQuestionLength int

	MinAnswerLength int
	MaxAnswerLength int
}

// DefaultLimits returns the limits used when no configuration overrides them.
func DefaultLimits() Limits {
	return Limits{
		DefaultQuestionCount: 1,
		MinQuestionCount:     1,
		MaxQuestionCount:     10,

		DefaultAnswerCount: 3,
		MinAnswerCount:     2,
		MaxAnswerCount:     6,

		MinQuestionLength: 5,
		MaxQuestionLength: 200,

		MinAnswerLength: 5,
		MaxAnswerLength: 100,
	}
}

// QuestionRules is the validator stack attached to every question text.
func (l Limits) QuestionRules() Validator {
	return Trimmed(Required(), MinLength(l.MinQuestionLength), MaxLength(l.MaxQuestionLength))
}

// AnswerRules is the validator stack attached to every answer text.
func (l Limits) AnswerRules() Validator {
	return Trimmed(Required(), MinLength(l.MinAnswerLength), MaxLength(l.MaxAnswerLength))
}

// QuestionCount bounds the quiz's question collection.
func (l Limits) QuestionCount() Cardinality {
	return Between(l.MinQuestionCount, l.MaxQuestionCount)
}

// AnswerCount bounds each question's answer collection.
func (l Limits) AnswerCount() Cardinality {
	return Between(l.MinAnswerCount, l.MaxAnswerCount)
}
