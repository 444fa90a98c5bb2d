package quizform

import (
	"math"
	"reflect"
	"unicode/utf8"
)

// Cardinality bounds the number of elements in a collection. Both ends are
// inclusive.
type Cardinality struct {
	Min int
	Max int
}

var _ Validator = Cardinality{}

// Between returns a Cardinality accepting min..max elements.
func Between(min, max int) Cardinality {
	return Cardinality{Min: min, Max: max}
}

// AtLeast returns a Cardinality with no upper bound.
func AtLeast(min int) Cardinality {
	return Cardinality{Min: min, Max: math.MaxInt}
}

// Validate checks the element count of collection. A nil collection, or a
// value that has no notion of length, yields no verdict and passes.
func (c Cardinality) Validate(collection any) Validity {
	n, ok := CountOf(collection)
	if !ok {
		return Valid()
	}
	return c.Check(n)
}

// Check evaluates an element count directly.
func (c Cardinality) Check(n int) Validity {
	switch {
	case n < c.Min:
		return Invalid(Failure{Code: CodeTooFew, Limit: c.Min, Actual: n})
	case n > c.Max:
		return Invalid(Failure{Code: CodeTooMany, Limit: c.Max, Actual: n})
	}
	return Valid()
}

// CountOf reports the element count of v. It understands values with a
// Len() int method, strings (counted in runes), slices, arrays, maps and
// channels. Nil values, typed nil pointers included, count as absent.
func CountOf(v any) (int, bool) {
	if isNil(v) {
		return 0, false
	}
	switch t := v.(type) {
	case interface{ Len() int }:
		return t.Len(), true
	case string:
		return utf8.RuneCountInString(t), true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

// isNil reports whether v is nil or a typed nil pointer, interface, slice or map.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return false
}
