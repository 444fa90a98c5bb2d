package quizform

import "fmt"

// Subject names what a failure is about when it is rendered for a user.
type Subject struct {
	Noun string // used by the required message
	Unit string // counted thing in length and count messages
}

var (
	SubjectQuestion  = Subject{Noun: "Question", Unit: "character"}
	SubjectAnswer    = Subject{Noun: "Answer", Unit: "character"}
	SubjectQuestions = Subject{Noun: "Questions", Unit: "question"}
	SubjectAnswers   = Subject{Noun: "Answers", Unit: "answer"}
)

// Message renders a failure the way the form shows it, numbers verbatim.
// Length and count messages end with the current value for every subject.
func Message(s Subject, f Failure) string {
	switch f.Code {
	case CodeRequired:
		return s.Noun + " is required"
	case CodeTooShort, CodeTooFew:
		return fmt.Sprintf("Minimum %d %s required. Current : %d", f.Limit, plural(s.Unit, f.Limit), f.Actual)
	case CodeTooLong, CodeTooMany:
		return fmt.Sprintf("Maximum %d %s allowed. Current : %d", f.Limit, plural(s.Unit, f.Limit), f.Actual)
	}
	return string(f.Code)
}

// MessageOf renders v for s, or "" when v is valid.
func MessageOf(s Subject, v Validity) string {
	f, ok := v.Failure()
	if !ok {
		return ""
	}
	return Message(s, f)
}

func plural(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
