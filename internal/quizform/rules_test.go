package quizform

import (
	"strings"
	"testing"
)

func TestRuleValidate(t *testing.T) {
	tests := []struct {
		name  string
		rule  Validator
		value any
		want  Code
	}{
		{"required empty", Required(), "", CodeRequired},
		{"required nil", Required(), nil, CodeRequired},
		{"required empty slice", Required(), []string{}, CodeRequired},
		{"required nil slice", Required(), []string(nil), CodeRequired},
		{"required nil map", Required(), map[string]int(nil), CodeRequired},
		{"required typed nil", Required(), (*Question)(nil), CodeRequired},
		{"required spaces untrimmed", Required(), "   ", ""},
		{"required ok", Required(), "x", ""},
		{"min short", MinLength(5), "abcd", CodeTooShort},
		{"min exact", MinLength(5), "abcde", ""},
		{"min empty string", MinLength(5), "", CodeTooShort},
		{"min runes", MinLength(5), "ééééé", ""},
		{"min no length", MinLength(5), 42, ""},
		{"max long", MaxLength(3), "abcd", CodeTooLong},
		{"max exact", MaxLength(3), "abc", ""},
		{"max slice", MaxLength(1), []int{1, 2}, CodeTooLong},
	}

	for _, tt := range tests {
		got := tt.rule.Validate(tt.value)
		if got.Code() != tt.want {
			t.Errorf("%s: code = %q, want %q", tt.name, got.Code(), tt.want)
		}
	}
}

func TestRuleCarriesNumbers(t *testing.T) {
	f, ok := MinLength(5).Validate("abc").Failure()
	if !ok {
		t.Fatal("expected failure")
	}
	if f.Limit != 5 || f.Actual != 3 {
		t.Errorf("failure = %+v, want limit 5 actual 3", f)
	}

	f, ok = MaxLength(2).Validate("abcd").Failure()
	if !ok {
		t.Fatal("expected failure")
	}
	if f.Limit != 2 || f.Actual != 4 {
		t.Errorf("failure = %+v, want limit 2 actual 4", f)
	}
}

func TestStackShortCircuits(t *testing.T) {
	s := Stack{Required(), MinLength(5), MaxLength(3)}

	// "abcd" fails both MinLength(5) and MaxLength(3); only the first is reported.
	if got := s.Validate("abcd").Code(); got != CodeTooShort {
		t.Errorf("code = %q, want %q", got, CodeTooShort)
	}
	if got := s.Validate("").Code(); got != CodeRequired {
		t.Errorf("code = %q, want %q", got, CodeRequired)
	}
}

func TestTrimmedWhitespaceIsRequired(t *testing.T) {
	v := Trimmed(Required(), MinLength(5), MaxLength(10))
	for _, s := range []string{"", " ", "\t", "\n  \t", strings.Repeat(" ", 50)} {
		if got := v.Validate(s).Code(); got != CodeRequired {
			t.Errorf("Validate(%q) = %q, want %q", s, got, CodeRequired)
		}
	}
}

func TestTrimmedMeasuresTrimmedLength(t *testing.T) {
	v := Trimmed(Required(), MinLength(5), MaxLength(6))

	f, ok := v.Validate("   abc   ").Failure()
	if !ok || f.Code != CodeTooShort || f.Actual != 3 {
		t.Errorf("failure = %+v, want too_short actual 3", f)
	}
	if !v.Validate("  abcdef  ").IsValid() {
		t.Error("padded 6-char value should pass MaxLength(6)")
	}
}

func TestTrimmedPassesNonStrings(t *testing.T) {
	v := Trimmed(MaxLength(1))
	if got := v.Validate([]int{1, 2}).Code(); got != CodeTooLong {
		t.Errorf("code = %q, want %q", got, CodeTooLong)
	}
	if !v.Validate(3.5).IsValid() {
		t.Error("value without length should pass")
	}
}

func TestTrimmedDoesNotMutateField(t *testing.T) {
	qz := New(DefaultLimits())
	if err := qz.SetQuestionText(0, "  What is Go?  "); err != nil {
		t.Fatal(err)
	}
	q, _ := qz.Question(0)
	if got := q.Text().Value(); got != "  What is Go?  " {
		t.Errorf("Value() = %q, want untrimmed input", got)
	}
	if got := q.Text().TrimmedLength(); got != 11 {
		t.Errorf("TrimmedLength() = %d, want 11", got)
	}
	if !q.Text().Valid() {
		t.Errorf("validity = %s, want valid", q.Text().Validity())
	}
}
