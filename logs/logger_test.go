package logs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/ssokolow/snakebyte/modes"
)

func TestHandler(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestToJournalKey(t *testing.T) {
	tests := map[string]string{
		"hello":     "HELLO",
		"logs.span": "LOGS_SPAN",
		"a-b c1":    "A_B_C1",
	}
	for input, expected := range tests {
		if got := toJournalKey(input); got != expected {
			t.Fatalf("got %q", got)
		}
	}
}
