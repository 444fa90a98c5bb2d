package drafter

import (
	"fmt"
	"strings"

	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/quizform"
)

// Validator checks a drafted document.
type Validator interface {
	Name() string
	Validate(doc *quizdoc.Document, in Input, l quizform.Limits) *ValidationError
}

// ValidationError describes why a draft failed validation.
type ValidationError struct {
	Validator string
	Message   string
	Issues    []quizform.Issue // set by LimitsValidator
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// StructuralValidator checks that the draft has the requested counts and no
// blank entries.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(doc *quizdoc.Document, in Input, _ quizform.Limits) *ValidationError {
	if len(doc.Questions) != in.Questions {
		return v.fail("expected %d questions, got %d", in.Questions, len(doc.Questions))
	}
	for i, q := range doc.Questions {
		if strings.TrimSpace(q.Question) == "" {
			return v.fail("question %d is blank", i+1)
		}
		if len(q.Answers) != in.Answers {
			return v.fail("question %d: expected %d answers, got %d", i+1, in.Answers, len(q.Answers))
		}
		for j, a := range q.Answers {
			if strings.TrimSpace(a) == "" {
				return v.fail("question %d: answer %d is blank", i+1, j+1)
			}
		}
	}
	return nil
}

func (v *StructuralValidator) fail(format string, args ...any) *ValidationError {
	return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf(format, args...)}
}

// DuplicateValidator rejects repeated questions, repeated answers within a
// question, and questions from the avoid list. Comparison ignores case and
// surrounding space.
type DuplicateValidator struct{}

func (v *DuplicateValidator) Name() string { return "duplicate" }

func (v *DuplicateValidator) Validate(doc *quizdoc.Document, in Input, _ quizform.Limits) *ValidationError {
	seen := make(map[string]bool, len(doc.Questions)+len(in.Avoid))
	for _, q := range in.Avoid {
		seen[normalize(q)] = true
	}
	for i, q := range doc.Questions {
		key := normalize(q.Question)
		if seen[key] {
			return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("question %d repeats an earlier question", i+1)}
		}
		seen[key] = true

		answers := make(map[string]bool, len(q.Answers))
		for _, a := range q.Answers {
			k := normalize(a)
			if answers[k] {
				return &ValidationError{Validator: v.Name(), Message: fmt.Sprintf("question %d has duplicate answer %q", i+1, a)}
			}
			answers[k] = true
		}
	}
	return nil
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LimitsValidator loads the draft into a quiz and fails when the quiz
// reports any issue.
type LimitsValidator struct{}

func (v *LimitsValidator) Name() string { return "limits" }

func (v *LimitsValidator) Validate(doc *quizdoc.Document, _ Input, l quizform.Limits) *ValidationError {
	qz, err := quizdoc.Load(doc, l)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	issues := qz.Issues()
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   fmt.Sprintf("%d issue(s), first: %s %s", len(issues), issues[0].Path, issues[0].Message),
		Issues:    issues,
	}
}
