package logs

// Span is an opaque ID correlating all log records of one unit of work,
// e.g. one command line moving through lexing and dispatch.
type Span string

type spanKeyType struct{}

var SpanKey spanKeyType
