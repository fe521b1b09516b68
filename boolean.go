package numparse

// parseBool matches the two boolean literals after trimming ASCII
// whitespace. The match is exact and case-sensitive.
func parseBool(s string) (bool, *ParseError) {
	switch trimSpace(s) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "":
		return false, &ParseError{Kind: ParseEmpty, Input: s, Type: "bool"}
	}
	return false, &ParseError{Kind: ParseBadBool, Input: s, Type: "bool"}
}
