package quizform

import (
	"strings"
	"unicode/utf8"
)

// Validator evaluates a value and reports its validity.
// Implementations must be pure: the same value always yields the same result.
type Validator interface {
	Validate(value any) Validity
}

type ruleKind uint8

const (
	ruleRequired ruleKind = iota + 1
	ruleMinLength
	ruleMaxLength
)

// Rule is a single leaf check. Construct rules with Required, MinLength and
// MaxLength and compose them with Stack or Trimmed.
type Rule struct {
	kind ruleKind
	n    int
}

var _ Validator = Rule{}

// Required fails when the value is nil (typed nils included), an empty string
// or an empty collection.
func Required() Rule {
	return Rule{kind: ruleRequired}
}

// MinLength fails when the value's length is below n.
func MinLength(n int) Rule {
	return Rule{kind: ruleMinLength, n: n}
}

// MaxLength fails when the value's length is above n.
func MaxLength(n int) Rule {
	return Rule{kind: ruleMaxLength, n: n}
}

// Validate applies the rule. Values without a length pass the length rules.
func (r Rule) Validate(value any) Validity {
	switch r.kind {
	case ruleRequired:
		if isEmpty(value) {
			return Invalid(Failure{Code: CodeRequired})
		}
	case ruleMinLength:
		if n, ok := lengthOf(value); ok && n < r.n {
			return Invalid(Failure{Code: CodeTooShort, Limit: r.n, Actual: n})
		}
	case ruleMaxLength:
		if n, ok := lengthOf(value); ok && n > r.n {
			return Invalid(Failure{Code: CodeTooLong, Limit: r.n, Actual: n})
		}
	}
	return Valid()
}

// Stack runs validators in declaration order and stops at the first failure,
// so only the first failing reason is reported.
type Stack []Validator

func (s Stack) Validate(value any) Validity {
	for _, v := range s {
		if res := v.Validate(value); !res.IsValid() {
			return res
		}
	}
	return Valid()
}

type trimmed struct {
	inner Stack
}

// Trimmed wraps the given validators so that string values are evaluated
// with surrounding whitespace removed. The trim applies to the evaluation
// copy only; the caller's value is left untouched. Non-string values are
// passed through unchanged.
func Trimmed(inner ...Validator) Validator {
	return trimmed{inner: Stack(inner)}
}

func (t trimmed) Validate(value any) Validity {
	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}
	return t.inner.Validate(value)
}

func isEmpty(value any) bool {
	if isNil(value) {
		return true
	}
	n, ok := lengthOf(value)
	return ok && n == 0
}

// lengthOf measures strings in runes and everything else through CountOf.
func lengthOf(value any) (int, bool) {
	if s, ok := value.(string); ok {
		return utf8.RuneCountInString(s), true
	}
	return CountOf(value)
}
