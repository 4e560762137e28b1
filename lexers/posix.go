package lexers

import (
	"strings"
	"unicode"
)

// PosixLexer implements shell-like tokenizing: whitespace separates
// tokens, single quotes preserve everything literally, double quotes
// preserve whitespace but let backslash escape `"` and `\`, and a bare
// backslash escapes the single following character. Quoted and unquoted
// runs that touch concatenate into one token, and an explicit '' or ""
// produces an empty token.
type PosixLexer struct{}

func (PosixLexer) Name() string {
	return "posix"
}

type posixState uint8

const (
	posixPlain posixState = iota
	posixSingle
	posixDouble
)

func (PosixLexer) Tokenize(line string) ([]string, error) {
	var tokens []string
	var buf strings.Builder
	started := false
	state := posixPlain
	quoteAt := 0

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch state {

		case posixSingle:
			if r == '\'' {
				state = posixPlain
			} else {
				buf.WriteRune(r)
			}

		case posixDouble:
			switch {
			case r == '"':
				state = posixPlain
			case r == '\\' && i+1 < len(runes) && (runes[i+1] == '"' || runes[i+1] == '\\'):
				i++
				buf.WriteRune(runes[i])
			default:
				buf.WriteRune(r)
			}

		default:
			switch {
			case r == '\'':
				state = posixSingle
				quoteAt = i
				started = true
			case r == '"':
				state = posixDouble
				quoteAt = i
				started = true
			case r == '\\':
				if i+1 >= len(runes) {
					return nil, LexError{
						Err:    ErrDanglingEscape,
						Input:  line,
						Column: i,
					}
				}
				i++
				buf.WriteRune(runes[i])
				started = true
			case unicode.IsSpace(r):
				if started {
					tokens = append(tokens, buf.String())
					buf.Reset()
					started = false
				}
			default:
				buf.WriteRune(r)
				started = true
			}
		}
	}

	if state != posixPlain {
		return nil, LexError{
			Err:    ErrUnterminatedQuote,
			Input:  line,
			Column: quoteAt,
		}
	}
	if started {
		tokens = append(tokens, buf.String())
	}

	return tokens, nil
}
