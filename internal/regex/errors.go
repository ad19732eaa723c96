package regex

import (
	"fmt"
	"strings"
)

// ParseError reports a malformed pattern. Pos is the byte offset of the
// offending construct within Pattern.
type ParseError struct {
	Pattern string
	Pos     int
	Message string
}

func (e *ParseError) Error() string {
	if e.Pattern == "" {
		return fmt.Sprintf("invalid pattern: %s", e.Message)
	}
	col := e.Pos
	if col > len(e.Pattern) {
		col = len(e.Pattern)
	}
	return fmt.Sprintf("invalid pattern: %s\n  %s\n  %s^", e.Message, e.Pattern, strings.Repeat(" ", col))
}

func parseErrorf(pattern string, pos int, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Pattern: pattern,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}
