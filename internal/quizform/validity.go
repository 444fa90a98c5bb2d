package quizform

import "fmt"

// Code identifies why a leaf value or a collection failed validation.
type Code string

const (
	CodeRequired Code = "required"  // leaf is empty after trimming
	CodeTooShort Code = "too_short" // leaf shorter than the minimum length
	CodeTooLong  Code = "too_long"  // leaf longer than the maximum length
	CodeTooFew   Code = "too_few"   // collection has fewer elements than the minimum
	CodeTooMany  Code = "too_many"  // collection has more elements than the maximum
)

// Failure is a single failing reason.
type Failure struct {
	Code Code

	// Limit is the bound that was violated. Zero for CodeRequired.
	Limit int

	// Actual is the measured length or element count. Zero for CodeRequired.
	Actual int
}

// Validity is the derived classification of a leaf or a collection.
// The zero value is valid.
type Validity struct {
	failure *Failure
}

// Valid returns a passing Validity.
func Valid() Validity {
	return Validity{}
}

// Invalid returns a Validity carrying the given failure.
func Invalid(f Failure) Validity {
	return Validity{failure: &f}
}

// IsValid reports whether no failure is present.
func (v Validity) IsValid() bool {
	return v.failure == nil
}

// Failure returns the failing reason, if any.
func (v Validity) Failure() (Failure, bool) {
	if v.failure == nil {
		return Failure{}, false
	}
	return *v.failure, true
}

// Code returns the failure code, or "" when valid.
func (v Validity) Code() Code {
	if v.failure == nil {
		return ""
	}
	return v.failure.Code
}

func (v Validity) String() string {
	if v.failure == nil {
		return "valid"
	}
	if v.failure.Code == CodeRequired {
		return string(CodeRequired)
	}
	return fmt.Sprintf("%s(limit=%d, actual=%d)", v.failure.Code, v.failure.Limit, v.failure.Actual)
}
