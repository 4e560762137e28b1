package lexers

// A Lexer splits one raw command line into argv-style tokens according to
// one quoting dialect. Implementations are stateless values; callers pick
// a dialect once and reuse it for every line.
type Lexer interface {
	// Name is a short textual ID for the dialect.
	Name() string

	// Tokenize converts a single line into its ordered token sequence.
	// An empty line yields an empty sequence. Malformed input is reported
	// as a LexError wrapping ErrUnterminatedQuote or ErrDanglingEscape,
	// never as a truncated result.
	Tokenize(line string) ([]string, error)
}

// Dialects lists all built-in lexers.
var Dialects = []Lexer{
	MircLexer{},
	PosixLexer{},
}

func ByName(name string) (Lexer, bool) {
	for _, lexer := range Dialects {
		if lexer.Name() == name {
			return lexer, true
		}
	}
	return nil, false
}

func Names() []string {
	names := make([]string, 0, len(Dialects))
	for _, lexer := range Dialects {
		names = append(names, lexer.Name())
	}
	return names
}
