package lexers

import (
	"errors"
	"slices"
	"testing"
)

func TestMircTokenize(t *testing.T) {
	tests := []struct {
		input  string
		tokens []string
	}{
		{
			input:  "",
			tokens: nil,
		},
		{
			input:  "cmd",
			tokens: []string{"cmd"},
		},
		{
			input:  "ls -l",
			tokens: []string{"ls", "-l"},
		},
		{
			input:  "  foo   bar  ",
			tokens: []string{"foo", "bar"},
		},
		{
			input:  `!send "my file.zip" now`,
			tokens: []string{"!send", "my file.zip", "now"},
		},
		{
			// no escape mechanism, backslash is literal
			input:  `a\b`,
			tokens: []string{`a\b`},
		},
		{
			// a quote away from a token boundary is literal
			input:  `the O"Neill story`,
			tokens: []string{"the", `O"Neill`, "story"},
		},
		{
			// single quotes carry no meaning
			input:  "bar the 'A B C' thing.ijk",
			tokens: []string{"bar", "the", "'A", "B", "C'", "thing.ijk"},
		},
		{
			input:  `""`,
			tokens: []string{""},
		},
		{
			input:  "say \"a\tb\"",
			tokens: []string{"say", "a\tb"},
		},
	}

	for _, test := range tests {
		tokens, err := MircLexer{}.Tokenize(test.input)
		if err != nil {
			t.Fatalf("input %q: %v", test.input, err)
		}
		if !slices.Equal(tokens, test.tokens) {
			t.Fatalf("input %q: got %q, expected %q", test.input, tokens, test.tokens)
		}
	}
}

func TestMircUnterminatedQuote(t *testing.T) {
	_, err := MircLexer{}.Tokenize(`"abc`)
	if !errors.Is(err, ErrUnterminatedQuote) {
		t.Fatalf("got %v", err)
	}

	var lexErr LexError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %T", err)
	}
	if lexErr.Column != 0 {
		t.Fatalf("got column %d", lexErr.Column)
	}
}

func TestMircName(t *testing.T) {
	if name := (MircLexer{}).Name(); name != "mirc" {
		t.Fatalf("got %q", name)
	}
}
