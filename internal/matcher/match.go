package matcher

// Span is a single match within one line: a half-open byte range
// [Start, End) plus the exact substring it covers. Start < End always;
// zero-width matches are never represented as spans.
type Span struct {
	Start int
	End   int
	Text  string
}
