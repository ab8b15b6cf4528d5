package output

import "github.com/gchait/minigrep/internal/matcher"

// LineResult describes a single matching line: the file it came from, its
// zero-based line number, the raw line text, and the spans that matched.
// It is only constructed for lines with at least one span — non-matching
// lines produce no result and no record.
type LineResult struct {
	FileID  string
	LineNum int // zero-based; rendered 1-based
	Line    string
	Spans   []matcher.Span
}
