package drafter

import (
	"testing"

	"github.com/abhisek/quizform/internal/quizdoc"
	"github.com/abhisek/quizform/internal/quizform"
)

func doc(questions ...quizform.QuestionData) *quizdoc.Document {
	return &quizdoc.Document{Version: quizdoc.Version, Questions: questions}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "structural", Message: "question 1 is blank"}
	want := `validator "structural": question 1 is blank`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestDefaultConfig_ValidatorChain(t *testing.T) {
	cfg := DefaultConfig()
	want := []string{"structural", "duplicate", "limits"}
	if len(cfg.Validators) != len(want) {
		t.Fatalf("expected %d validators, got %d", len(want), len(cfg.Validators))
	}
	for i, v := range cfg.Validators {
		if v.Name() != want[i] {
			t.Errorf("validator %d = %q, want %q", i, v.Name(), want[i])
		}
	}
}

func TestStructuralValidator(t *testing.T) {
	in := Input{Questions: 1, Answers: 2}
	tests := []struct {
		name string
		doc  *quizdoc.Document
		ok   bool
	}{
		{"valid", doc(quizform.QuestionData{Question: "q", Answers: []string{"a", "b"}}), true},
		{"wrong question count", doc(), false},
		{"blank question", doc(quizform.QuestionData{Question: " ", Answers: []string{"a", "b"}}), false},
		{"wrong answer count", doc(quizform.QuestionData{Question: "q", Answers: []string{"a"}}), false},
		{"blank answer", doc(quizform.QuestionData{Question: "q", Answers: []string{"a", "\t"}}), false},
	}
	v := &StructuralValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.doc, in, quizform.DefaultLimits())
			if tt.ok != (err == nil) {
				t.Errorf("Validate() = %v, want ok=%t", err, tt.ok)
			}
		})
	}
}

func TestDuplicateValidator(t *testing.T) {
	tests := []struct {
		name  string
		doc   *quizdoc.Document
		avoid []string
		ok    bool
	}{
		{"distinct", doc(
			quizform.QuestionData{Question: "One", Answers: []string{"a", "b"}},
			quizform.QuestionData{Question: "Two", Answers: []string{"a", "b"}},
		), nil, true},
		{"repeated question", doc(
			quizform.QuestionData{Question: "One", Answers: []string{"a", "b"}},
			quizform.QuestionData{Question: " one ", Answers: []string{"a", "b"}},
		), nil, false},
		{"repeated answer", doc(
			quizform.QuestionData{Question: "One", Answers: []string{"Yes", "yes"}},
		), nil, false},
		{"avoided question", doc(
			quizform.QuestionData{Question: "One", Answers: []string{"a", "b"}},
		), []string{"ONE"}, false},
	}
	v := &DuplicateValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.doc, Input{Avoid: tt.avoid}, quizform.DefaultLimits())
			if tt.ok != (err == nil) {
				t.Errorf("Validate() = %v, want ok=%t", err, tt.ok)
			}
		})
	}
}
