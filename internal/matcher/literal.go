package matcher

import "bytes"

// LiteralMatcher handles patterns with no metacharacters as a substring
// search.
type LiteralMatcher struct {
	needle []byte
}

func (lm LiteralMatcher) Match(line []byte) bool {
	return bytes.Contains(line, lm.needle)
}
