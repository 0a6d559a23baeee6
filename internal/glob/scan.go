package glob

import "strings"

// locateOpenBrace returns the offset of the first unescaped '{' in pattern.
//
// With NoEscape the search is literal, so "\{" still counts as an opening
// brace. Otherwise a backslash always takes the next byte with it.
func locateOpenBrace(pattern string, flags Flag) (int, bool) {
	if flags&NoEscape != 0 {
		i := strings.IndexByte(pattern, '{')
		return i, i >= 0
	}

	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			i++
		case '{':
			return i, true
		}
	}
	return 0, false
}

// nextBoundary returns the offset of the ',' or '}' that ends the
// alternative starting at start. Nested groups are skipped as a whole.
// It reports false when the pattern ends first.
func nextBoundary(pattern string, start int, flags Flag) (int, bool) {
	escape := flags&NoEscape == 0
	depth := 0

	for i := start; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\':
			if escape {
				i++
			}
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i, true
			}
			depth--
		case ',':
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}
