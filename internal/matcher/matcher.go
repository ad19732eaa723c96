// internal/matcher/matcher.go
package matcher

import (
	"strings"

	"github.com/mygrep/mygrep/internal/regex"
)

// Matcher decides whether a single input line contains a match.
type Matcher interface {
	Match(line []byte) bool
}

// metachars are the pattern bytes that carry meaning in the dialect; a
// pattern without any of them is a plain substring.
const metachars = `\[]().^$+?*|`

// New compiles pattern into a Matcher. Metacharacter-free patterns get
// the literal fast path; everything else goes through the regex engine.
func New(pattern string) (Matcher, error) {
	if !strings.ContainsAny(pattern, metachars) {
		return LiteralMatcher{needle: []byte(pattern)}, nil
	}
	re, err := regex.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return RegexMatcher{re: re}, nil
}
