// Package numparse converts text into integer, floating-point and
// boolean values with precise failure reporting.
//
// Every kind comes in two forms: a strict form returning a detailed
// *ParseError, and a fallible Try form that collapses every failure to
// a false second result. Both run the same implementation and agree on
// every success value. All operations are pure and safe for concurrent
// use.
package numparse

import "golang.org/x/exp/constraints"

// Int parses s as a decimal integer of type T.
func Int[T constraints.Integer](s string) (T, error) {
	return IntBase[T](s, 10)
}

// IntBase parses s as an integer of type T in the given base. The base
// must be in [2,62], or 0 to select base 10 unless s carries a 0b, 0o
// or 0x prefix. Digits beyond 9 are letters, case-insensitive up to
// base 36 and case-sensitive above it.
func IntBase[T constraints.Integer](s string, base int) (T, error) {
	n, err := parseInt[T](s, base)
	if err != nil {
		return 0, err
	}
	return n, nil
}

// TryInt parses s as a decimal integer of type T, reporting failure as
// a false second result.
func TryInt[T constraints.Integer](s string) (T, bool) {
	return TryIntBase[T](s, 10)
}

// TryIntBase is the fallible form of IntBase.
func TryIntBase[T constraints.Integer](s string, base int) (T, bool) {
	n, err := parseInt[T](s, base)
	return n, err == nil
}

// Float parses s as a floating-point value of type T. A float32 target
// parses at 64 bits and narrows.
func Float[T constraints.Float](s string) (T, error) {
	return FloatWith[T](s, defaultFloatConverter)
}

// FloatWith parses s using the given conversion primitive in place of
// the strconv-backed default.
func FloatWith[T constraints.Float](s string, conv FloatConverter) (T, error) {
	f, err := parseFloat[T](s, conv)
	if err != nil {
		return 0, err
	}
	return f, nil
}

// TryFloat is the fallible form of Float.
func TryFloat[T constraints.Float](s string) (T, bool) {
	return TryFloatWith[T](s, defaultFloatConverter)
}

// TryFloatWith is the fallible form of FloatWith.
func TryFloatWith[T constraints.Float](s string, conv FloatConverter) (T, bool) {
	f, err := parseFloat[T](s, conv)
	return f, err == nil
}

// Bool parses s as one of the literals "true" or "false", ignoring
// surrounding whitespace.
func Bool(s string) (bool, error) {
	v, err := parseBool(s)
	if err != nil {
		return false, err
	}
	return v, nil
}

// TryBool is the fallible form of Bool.
func TryBool(s string) (bool, bool) {
	v, err := parseBool(s)
	return v, err == nil
}
