package numparse

import (
	"errors"
	"strconv"

	"golang.org/x/exp/constraints"
)

// FloatConverter is the decimal-to-binary conversion primitive behind
// the floating-point entry points. Convert reports whether the span is
// a valid floating-point literal and returns its correctly rounded
// 64-bit value.
type FloatConverter interface {
	Convert(s string) (float64, bool)
}

// strconvFloat is the package default, backed by strconv.ParseFloat.
type strconvFloat struct{}

func (strconvFloat) Convert(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			// too large a magnitude rounds to an infinity, which is
			// still a definite value
			return f, true
		}
		return 0, false
	}
	return f, true
}

var defaultFloatConverter FloatConverter = strconvFloat{}

// parseFloat trims the span, delegates it to conv and narrows the
// result to T. Reduced-precision targets parse at 64 bits first and
// accept the composed rounding.
func parseFloat[T constraints.Float](s string, conv FloatConverter) (T, *ParseError) {
	t := trimSpace(s)
	if t == "" {
		return 0, &ParseError{Kind: ParseEmpty, Input: s, Type: typeName[T]()}
	}
	f, ok := conv.Convert(t)
	if !ok {
		return 0, &ParseError{Kind: ParseBadFloat, Input: s, Type: typeName[T]()}
	}
	return T(f), nil
}
