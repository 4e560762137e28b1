package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the current span ID into err so out-of-band error
// reports stay correlatable with the log stream.
func WrapSpan(ctx context.Context, err error) error {
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
