package regex

import "strings"

// maxCaptures bounds the capture vector: back-references address \1..\9.
const maxCaptures = 10

// captures holds the substrings recorded by capturing groups on the
// current tentative path. It is a value type on purpose: speculative
// branches snapshot it by plain assignment and restore the same way.
type captures struct {
	val [maxCaptures]string
	set [maxCaptures]bool
}

// matchNode matches n against input at pos and, on success, hands the
// position after the consumed characters to the continuation k. The
// continuation carries the rest of the enclosing sequence, so quantifiers
// can retry it at every admissible repetition count. matchNode returns
// whatever k returns on the accepted path, and false if no path through n
// lets k succeed. Captures mutated on failed paths are restored before
// returning.
func matchNode(n Node, input string, pos int, c *captures, k func(int) bool) bool {
	switch t := n.(type) {
	case Literal:
		return pos < len(input) && input[pos] == t.Ch && k(pos+1)

	case AnyChar:
		return pos < len(input) && k(pos+1)

	case DigitClass:
		return pos < len(input) && isDigit(input[pos]) && k(pos+1)

	case WordClass:
		return pos < len(input) && isWordChar(input[pos]) && k(pos+1)

	case Bracket:
		if pos >= len(input) {
			return false
		}
		in := strings.IndexByte(t.Set, input[pos]) >= 0
		return in != t.Negated && k(pos+1)

	case Sequence:
		return matchSeq(t.Children, input, pos, c, k)

	case Alternation:
		for _, alt := range t.Alts {
			snap := *c
			if matchNode(alt, input, pos, c, k) {
				return true
			}
			*c = snap
		}
		return false

	case ZeroOrOne:
		snap := *c
		if matchNode(t.Child, input, pos, c, k) {
			return true
		}
		*c = snap
		return k(pos)

	case OneOrMore:
		return matchNode(t.Child, input, pos, c, func(end int) bool {
			return matchStar(t.Child, input, end, c, k)
		})

	case ZeroOrMore:
		return matchStar(t.Child, input, pos, c, k)

	case Group:
		if t.Index >= maxCaptures {
			// Only \1..\9 can refer back, so groups past that
			// match without recording.
			return matchNode(t.Child, input, pos, c, k)
		}
		return matchNode(t.Child, input, pos, c, func(end int) bool {
			prevVal, prevSet := c.val[t.Index], c.set[t.Index]
			c.val[t.Index] = input[pos:end]
			c.set[t.Index] = true
			if k(end) {
				return true
			}
			c.val[t.Index], c.set[t.Index] = prevVal, prevSet
			return false
		})

	case StartAnchor:
		return pos == 0 && matchNode(t.Child, input, pos, c, k)

	case EndAnchor:
		return matchNode(t.Child, input, pos, c, func(end int) bool {
			return end == len(input) && k(end)
		})

	case Backref:
		if !c.set[t.Index] {
			return false
		}
		ref := c.val[t.Index]
		return strings.HasPrefix(input[pos:], ref) && k(pos+len(ref))
	}
	return false
}

// matchSeq chains the children of a sequence through continuations so a
// failure deep in the tail backtracks into earlier quantifiers.
func matchSeq(children []Node, input string, pos int, c *captures, k func(int) bool) bool {
	if len(children) == 0 {
		return k(pos)
	}
	return matchNode(children[0], input, pos, c, func(next int) bool {
		return matchSeq(children[1:], input, next, c, k)
	})
}

// matchStar runs child zero or more times, greedily: it first tries to
// extend the repetition, and only when no longer run lets the tail
// succeed does it hand the current position to k. A repetition must
// consume input; an empty-width match of child ends the expansion so the
// recursion terminates. The snapshot discipline makes sure captures from
// abandoned longer runs never leak into the accepted shorter one.
func matchStar(child Node, input string, pos int, c *captures, k func(int) bool) bool {
	snap := *c
	if matchNode(child, input, pos, c, func(end int) bool {
		if end == pos {
			return false
		}
		return matchStar(child, input, end, c, k)
	}) {
		return true
	}
	*c = snap
	return k(pos)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWordChar(b byte) bool {
	return b == '_' || isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
