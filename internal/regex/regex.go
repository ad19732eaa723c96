// Package regex implements a small backtracking regular-expression
// engine over a restricted dialect:
//
//	literal characters, . \d \w, \c for a literal metacharacter c,
//	[abc] and [^abc] classes (characters only, '-' is literal),
//	capturing groups (...) scoping alternation |,
//	greedy quantifiers ? + *,
//	back-references \1..\9,
//	a leading ^ and a trailing $ anchor.
//
// There are no ranges in bracket classes, no {m,n} repetition bounds, no
// non-greedy quantifiers, and no lookaround. Matching is ASCII:
// \d is 0-9 and \w is a letter, digit, or underscore.
package regex

// Regexp is a compiled pattern. It is immutable and safe for concurrent
// use by multiple goroutines; every match attempt carries its own state.
type Regexp struct {
	expr     string
	root     Node
	groups   int
	anchored bool
}

// Compile parses the pattern into a match tree. Malformed patterns
// return a *ParseError naming the offending construct.
func Compile(pattern string) (*Regexp, error) {
	root, groups, err := parsePattern(pattern)
	if err != nil {
		return nil, err
	}
	_, anchored := root.(StartAnchor)
	return &Regexp{
		expr:     pattern,
		root:     root,
		groups:   groups,
		anchored: anchored,
	}, nil
}

// MustCompile is Compile for patterns known to be valid; it panics on
// error.
func MustCompile(pattern string) *Regexp {
	re, err := Compile(pattern)
	if err != nil {
		panic(`regex: Compile(` + pattern + `): ` + err.Error())
	}
	return re
}

// String returns the source pattern.
func (re *Regexp) String() string {
	return re.expr
}

// NumGroups returns the number of capturing groups in the pattern.
func (re *Regexp) NumGroups() int {
	return re.groups
}

// MatchString reports whether the pattern matches a substring of input.
// Unanchored patterns are retried at each start position left to right;
// a ^-anchored pattern is attempted at position 0 only.
func (re *Regexp) MatchString(input string) bool {
	for start := 0; start <= len(input); start++ {
		var c captures
		if ok, _ := re.matchAt(input, start, &c); ok {
			return true
		}
		if re.anchored {
			break
		}
	}
	return false
}

// Match reports whether the pattern matches a substring of b.
func (re *Regexp) Match(b []byte) bool {
	return re.MatchString(string(b))
}

// FindStringSubmatch returns the text of the leftmost match followed by
// one entry per capturing group, holding the text captured on the
// accepting path (empty for groups that did not participate). Only the
// first nine groups record text, matching the \1..\9 back-reference
// range. It returns nil if there is no match.
func (re *Regexp) FindStringSubmatch(input string) []string {
	for start := 0; start <= len(input); start++ {
		var c captures
		if ok, end := re.matchAt(input, start, &c); ok {
			out := make([]string, re.groups+1)
			out[0] = input[start:end]
			for i := 1; i <= re.groups && i < maxCaptures; i++ {
				out[i] = c.val[i]
			}
			return out
		}
		if re.anchored {
			break
		}
	}
	return nil
}

// matchAt runs one attempt from start and reports the position after the
// consumed characters.
func (re *Regexp) matchAt(input string, start int, c *captures) (bool, int) {
	end := -1
	ok := matchNode(re.root, input, start, c, func(pos int) bool {
		end = pos
		return true
	})
	return ok, end
}
