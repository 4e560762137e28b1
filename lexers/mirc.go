package lexers

import (
	"strings"
	"unicode"
)

// MircLexer implements mIRC-like tokenizing: whitespace separates tokens
// and a double quote delimits a whitespace-carrying token only when it
// opens one. Anywhere else a quote is an ordinary character, and there is
// no escape mechanism at all.
type MircLexer struct{}

func (MircLexer) Name() string {
	return "mirc"
}

func (MircLexer) Tokenize(line string) ([]string, error) {
	var tokens []string

	runes := []rune(line)
	i := 0
	for i < len(runes) {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}

		if runes[i] == '"' {
			quoteAt := i
			i++
			var buf strings.Builder
			closed := false
			for i < len(runes) {
				if runes[i] == '"' {
					closed = true
					i++
					break
				}
				buf.WriteRune(runes[i])
				i++
			}
			if !closed {
				return nil, LexError{
					Err:    ErrUnterminatedQuote,
					Input:  line,
					Column: quoteAt,
				}
			}
			tokens = append(tokens, buf.String())
			continue
		}

		start := i
		for i < len(runes) && !unicode.IsSpace(runes[i]) {
			i++
		}
		tokens = append(tokens, string(runes[start:i]))
	}

	return tokens, nil
}
