package lexers

import (
	"slices"
	"strings"
	"testing"
)

func TestByName(t *testing.T) {
	for _, name := range []string{"mirc", "posix"} {
		lexer, ok := ByName(name)
		if !ok {
			t.Fatalf("missing dialect %q", name)
		}
		if lexer.Name() != name {
			t.Fatalf("got %q", lexer.Name())
		}
	}

	if _, ok := ByName("smart"); ok {
		t.Fatal("should not resolve")
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.Equal(names, []string{"mirc", "posix"}) {
		t.Fatalf("got %q", names)
	}
}

// Joining plain tokens with single spaces and tokenizing the result gives
// back the original sequence, in every dialect.
func TestRoundTrip(t *testing.T) {
	sequences := [][]string{
		{"!send", "file.zip"},
		{"ls", "-l", "*.py"},
		{"one", "two", "three"},
	}
	for _, lexer := range Dialects {
		for _, tokens := range sequences {
			got, err := lexer.Tokenize(strings.Join(tokens, " "))
			if err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(got, tokens) {
				t.Fatalf("%s: got %q, expected %q", lexer.Name(), got, tokens)
			}
		}
	}
}

func TestLexErrorRendering(t *testing.T) {
	_, err := PosixLexer{}.Tokenize(`get "file name`)
	if err == nil {
		t.Fatal("should error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "unterminated quote at column 5") {
		t.Fatalf("got %q", msg)
	}
	if !strings.Contains(msg, "\n    ^") {
		t.Fatalf("got %q", msg)
	}
}
