package numparse

import "golang.org/x/exp/constraints"

const (
	minBase = 2
	maxBase = 62
)

// maxOf returns the largest value representable by T.
func maxOf[T constraints.Integer]() T {
	var zero T
	if ^zero > zero { // unsigned
		return ^zero
	}
	var max T
	for bit := T(1); bit > 0; bit <<= 1 {
		max |= bit
	}
	return max
}

// parseInt is the single implementation behind the integer entry
// points. Base 0 selects base 10 unless s carries a 0b, 0o or 0x
// prefix; any other base is used verbatim and no prefix is stripped.
func parseInt[T constraints.Integer](s string, base int) (T, *ParseError) {
	if base != 0 && (base < minBase || base > maxBase) {
		return 0, &ParseError{Kind: ParseBadBase, Input: s, Base: base, Type: typeName[T]()}
	}

	var zero T
	signed := ^zero < zero

	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i == len(s) {
		return 0, &ParseError{Kind: ParseEmpty, Input: s, Type: typeName[T]()}
	}

	neg := false
	if s[i] == '+' || s[i] == '-' {
		if !signed {
			msgBase := base
			if msgBase == 0 {
				msgBase = 10
			}
			return 0, &ParseError{Kind: ParseBadDigit, Input: s, Base: msgBase, Char: s[i], Type: typeName[T]()}
		}
		neg = s[i] == '-'
		i++
		// the sign may be whitespace-separated from the digits
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i == len(s) {
			return 0, &ParseError{Kind: ParseEmpty, Input: s, Type: typeName[T]()}
		}
	}

	effBase := base
	if base == 0 {
		effBase = 10
		if s[i] == '0' && i+1 < len(s) {
			switch s[i+1] {
			case 'b':
				effBase, i = 2, i+2
			case 'o':
				effBase, i = 8, i+2
			case 'x':
				effBase, i = 16, i+2
			}
			// any other follower keeps base 10 with the zero as an
			// ordinary digit
		}
		if i == len(s) {
			return 0, &ParseError{Kind: ParseEmpty, Input: s, Type: typeName[T]()}
		}
	}

	max := maxOf[T]()
	baseT := T(effBase)
	// largest value that still takes one more multiply-add unchecked
	m := (max - baseT + 1) / baseT

	var n T
	hasDigit := false
	for i < len(s) && n <= m {
		d, ok := digitVal(s[i], effBase)
		if !ok {
			break
		}
		if d >= effBase {
			return 0, &ParseError{Kind: ParseBadDigit, Input: s, Base: effBase, Char: s[i], Type: typeName[T]()}
		}
		n = n*baseT + T(d)
		hasDigit = true
		i++
	}

	// Fold the sign in before any digit can overflow, so accumulating
	// down to the most negative value never represents its magnitude.
	if neg {
		n = -n
	}

	for i < len(s) {
		d, ok := digitVal(s[i], effBase)
		if !ok {
			break
		}
		if d >= effBase {
			return 0, &ParseError{Kind: ParseBadDigit, Input: s, Base: effBase, Char: s[i], Type: typeName[T]()}
		}
		prod := n * baseT
		if prod/baseT != n {
			return 0, &ParseError{Kind: ParseOverflow, Input: s, Base: effBase, Type: typeName[T]()}
		}
		add := T(d)
		if neg {
			add = -add
		}
		sum := prod + add
		if (add >= 0 && sum < prod) || (add < 0 && sum > prod) {
			return 0, &ParseError{Kind: ParseOverflow, Input: s, Base: effBase, Type: typeName[T]()}
		}
		n = sum
		hasDigit = true
		i++
	}

	for ; i < len(s); i++ {
		if !isSpace(s[i]) {
			return 0, &ParseError{Kind: ParseTrailing, Input: s, Base: effBase, Type: typeName[T]()}
		}
	}
	if !hasDigit {
		return 0, &ParseError{Kind: ParseEmpty, Input: s, Type: typeName[T]()}
	}
	return n, nil
}
