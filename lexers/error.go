package lexers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnterminatedQuote = errors.New("unterminated quote")
	ErrDanglingEscape    = errors.New("dangling escape")
)

// LexError reports a malformed command line along with the rune column of
// the offending character.
type LexError struct {
	Err    error
	Input  string
	Column int
}

func (e LexError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s at column %d\n", e.Err.Error(), e.Column+1))
	sb.WriteString(e.Input)
	sb.WriteString("\n")
	for i, r := range []rune(e.Input) {
		if i >= e.Column {
			break
		}
		if r == '\t' {
			sb.WriteString("\t")
		} else {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("^")
	return sb.String()
}

func (e LexError) Unwrap() error {
	return e.Err
}
