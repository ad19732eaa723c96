package regex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchString(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		input    string
		expected bool
	}{
		// Literals and dot
		{"literal substring", "ell", "hello", true},
		{"literal mismatch", "hella", "hello", false},
		{"dot matches any char", "a.c", "abc", true},
		{"dot needs a char", "a.c", "ac", false},
		{"three digits", `\d\d\d`, "abc123xyz", true},
		{"word class", `\w`, "---_---", true},
		{"word class mismatch", `\w`, "--- ---", false},

		// Character classes
		{"positive class match", "[abc]", "a", true},
		{"positive class mismatch", "[abc]", "d", false},
		{"negative class match", "[^abc]", "d", true},
		{"negative class mismatch", "[^abc]", "cab", false},
		{"dash is literal in class", "[a-c]", "-", true},
		{"dash class has no range", "[a-c]", "b", false},

		// Anchors
		{"start anchor match", "^log", "log line", true},
		{"start anchor mismatch", "^log", "xlog", false},
		{"end anchor match", "cat$", "the cat", true},
		{"end anchor mismatch", "cat$", "cats", false},
		{"both anchors exact", "^cat$", "cat", true},
		{"both anchors longer input", "^cat$", "catalog", false},
		{"empty line against ^$", "^$", "", true},
		{"nonempty line against ^$", "^$", "x", false},

		// Quantifiers
		{"one or more", "a+b", "aaab", true},
		{"one or more needs one", "a+b", "b", false},
		{"zero or one present", "colou?r", "colour", true},
		{"zero or one absent", "colou?r", "color", true},
		{"zero or one mismatch", "colou?r", "colr", false},
		{"zero or more", "ab*c", "ac", true},
		{"zero or more many", "ab*c", "abbbbc", true},
		{"greedy plus backs off for the tail", "a+ab", "aaab", true},
		{"greedy star backs off for the tail", `\w*s`, "dogs", true},
		{"quantified group", "(ab)+c", "ababc", true},
		{"quantified group missing rep", "(ab)+c", "c", false},
		{"quantified class", "[abc]+z", "cabz", true},

		// Alternation
		{"alternation first branch", "(cat|dog)s", "cats", true},
		{"alternation second branch", "(cat|dog)s", "dogs", true},
		{"alternation mismatch", "(cat|dog)s", "cows", false},
		{"top-level alternation", "cat|dog", "hotdog stand", true},
		{"nested alternation", "((a|b)c|d)e", "bce", true},
		{"empty alternative matches anywhere", "a|", "zzz", true},

		// Back-references
		{"backref repeat", `(cat) and \1`, "cat and cat", true},
		{"backref mismatch", `(cat) and \1`, "cat and dog", false},
		{"backref word", `(\w+) and \1`, "abc and abc", true},
		{"backref word mismatch", `(\w+) and \1`, "abc and abd", false},
		{"backref doubled prefix", `(a+)\1`, "aaaa", true},
		{"backref needs a set group", `(a)?x\1`, "bx", false},

		// Escapes
		{"escaped plus", `a\+b`, "a+b", true},
		{"escaped plus not a quantifier", `a\+b`, "aab", false},
		{"escaped backslash", `a\\b`, `a\b`, true},
		{"escaped dollar mid-input", `a\$b`, "xa$by", true},

		// Empty-width corners
		{"empty pattern matches everything", "", "anything", true},
		{"empty pattern matches empty", "", "", true},
		{"optional at end of input", "a?$", "", true},
		{"plus over empty-capable group", "(a?)+b", "b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, re.MatchString(tt.input),
				"pattern %q against %q", tt.pattern, tt.input)
		})
	}
}

func TestFindStringSubmatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []string
	}{
		{"no match returns nil", "(cat|dog)s", "cows", nil},
		{"alternation capture", "(cat|dog)s", "dogs", []string{"dogs", "dog"}},
		{"backref capture", `(\w+) and \1`, "abc and abc", []string{"abc and abc", "abc"}},
		{"nested groups", `((a)b)(c)`, "abc", []string{"abc", "ab", "a", "c"}},
		{"leftmost match wins", `a(\d)`, "x a1 a2", []string{"a1", "1"}},
		{"unparticipating group is empty", `(a)?b`, "b", []string{"b", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			require.NoError(t, err)
			assert.Equal(t, tt.want, re.FindStringSubmatch(tt.input))
		})
	}
}

// A quantified capturing group must record the repetition the accepted
// witness actually used, not the greediest run the matcher tried first.
func TestCaptureReflectsAcceptedWitness(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		input   string
		want    []string
	}{
		{"plus backs off one rep", `(a+)a`, "aaa", []string{"aaa", "aa"}},
		{"group per repetition keeps the last", `(a|b)+`, "ab", []string{"ab", "b"}},
		{"backref pins the group length", `(a+)\1`, "aaa", []string{"aa", "a"}},
		{"abandoned long run leaves no trace", `(\w+)x`, "aax", []string{"aax", "aa"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := MustCompile(tt.pattern)
			assert.Equal(t, tt.want, re.FindStringSubmatch(tt.input))
		})
	}
}

func TestAlternationLeavesNoCaptureTrace(t *testing.T) {
	// The first branch matches "ab" and captures, but the tail "c" then
	// fails; the second branch must start from clean captures.
	re := MustCompile(`((a)b c|a(b) d)`)
	got := re.FindStringSubmatch("ab d")
	require.Equal(t, []string{"ab d", "ab d", "", "b"}, got)
}

func TestRegexpIsReusable(t *testing.T) {
	re := MustCompile(`(\d+)`)
	assert.True(t, re.MatchString("order 12"))
	assert.False(t, re.MatchString("no digits"))
	assert.Equal(t, []string{"7", "7"}, re.FindStringSubmatch("x7"))
}

func TestMoreThanNineGroupsStillMatch(t *testing.T) {
	re := MustCompile("(a)(b)(c)(d)(e)(f)(g)(h)(i)(j)")
	require.Equal(t, 10, re.NumGroups())
	assert.True(t, re.MatchString("abcdefghij"))

	got := re.FindStringSubmatch("abcdefghij")
	require.Len(t, got, 11)
	assert.Equal(t, "i", got[9])
	assert.Equal(t, "", got[10])
}

func TestMustCompilePanicsOnBadPattern(t *testing.T) {
	assert.Panics(t, func() { MustCompile("(") })
}
