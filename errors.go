package numparse

import "fmt"

// ParseError describes a conversion failure.
type ParseError struct {
	Kind  ParseErrKind
	Input string // original input, unmodified
	Base  int    // effective base, for integer failures
	Char  byte   // offending character, for digit failures
	Type  string // target type name, e.g. "int8"
}

// Error returns the formatted error message.
func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	switch e.Kind {
	case ParseEmpty:
		switch {
		case e.Input == "":
			return fmt.Sprintf("cannot parse %q as %s: empty input", e.Input, e.Type)
		case isSpaceOnly(e.Input):
			return fmt.Sprintf("cannot parse %q as %s: whitespace-only input", e.Input, e.Type)
		default:
			return fmt.Sprintf("cannot parse %q as %s: no digits", e.Input, e.Type)
		}
	case ParseBadBase:
		return fmt.Sprintf("invalid base %d: must be 0 or in range 2..62", e.Base)
	case ParseBadDigit:
		return fmt.Sprintf("invalid base %d digit %q in %q", e.Base, e.Char, e.Input)
	case ParseOverflow:
		return fmt.Sprintf("cannot parse %q as %s: value out of range", e.Input, e.Type)
	case ParseTrailing:
		return fmt.Sprintf("cannot parse %q as %s: extra characters after number", e.Input, e.Type)
	case ParseBadBool:
		return fmt.Sprintf("invalid boolean literal %q (must be \"true\" or \"false\")", trimSpace(e.Input))
	case ParseBadFloat:
		return fmt.Sprintf("cannot parse %q as %s", e.Input, e.Type)
	default:
		return fmt.Sprintf("cannot parse %q as %s: %s", e.Input, e.Type, e.Kind)
	}
}

// ParseErrKind identifies a parse failure category.
type ParseErrKind uint8

const (
	ParseInvalid ParseErrKind = iota
	ParseEmpty
	ParseBadBase
	ParseBadDigit
	ParseOverflow
	ParseTrailing
	ParseBadBool
	ParseBadFloat
)

// String returns a stable label for the parse error kind.
func (k ParseErrKind) String() string {
	switch k {
	case ParseEmpty:
		return "empty input"
	case ParseBadBase:
		return "invalid base"
	case ParseBadDigit:
		return "invalid digit"
	case ParseOverflow:
		return "value out of range"
	case ParseTrailing:
		return "extra characters"
	case ParseBadBool:
		return "invalid boolean"
	case ParseBadFloat:
		return "invalid float"
	default:
		return "invalid"
	}
}
