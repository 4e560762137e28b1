package debugs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/ssokolow/snakebyte/modes"
)

func TestTap(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Call(func(
		tap Tap,
	) {
		tap(t.Context(), "test", map[string]any{
			"foo": 42,
		})
	})
}
