package numparse

import "fmt"

// isSpace reports whether c is ASCII whitespace.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// trimSpace trims leading and trailing ASCII whitespace without copying.
func trimSpace(s string) string {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}
	j := len(s)
	for j > i && isSpace(s[j-1]) {
		j--
	}
	return s[i:j]
}

func isSpaceOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if !isSpace(s[i]) {
			return false
		}
	}
	return true
}

// digitVal maps c to its value in the given base. Decimal digits come
// first, then uppercase letters from 10. Lowercase letters alias their
// uppercase counterparts up to base 36 and carry their own values from
// 36 in larger bases. ok is false when c is not alphanumeric at all;
// a returned value at or above base is the caller's failure to report.
func digitVal(c byte, base int) (d int, ok bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10, true
	case 'a' <= c && c <= 'z':
		if base <= 36 {
			return int(c-'a') + 10, true
		}
		return int(c-'a') + 36, true
	}
	return 0, false
}

// typeName returns the Go name of T for diagnostics.
func typeName[T any]() string {
	var zero T
	return fmt.Sprintf("%T", zero)
}
