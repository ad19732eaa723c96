package matcher

import "github.com/mygrep/mygrep/internal/regex"

// RegexMatcher runs a compiled pattern against each line.
type RegexMatcher struct {
	re *regex.Regexp
}

func (rm RegexMatcher) Match(line []byte) bool {
	return rm.re.Match(line)
}
