package matcher

import "regexp"

// Matcher finds regex matches in single lines using Go's RE2 regexp engine.
// It holds only the compiled pattern, so FindMatches is a pure function of
// (pattern, line).
type Matcher struct {
	re *regexp.Regexp
}

// New compiles pattern and returns a Matcher. Compilation happens once,
// before any file is opened — an invalid pattern is a configuration error,
// not a per-line one.
func New(pattern string, ignoreCase bool) (*Matcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &Matcher{re: re}, nil
}

// Pattern returns the compiled pattern's source text.
func (m *Matcher) Pattern() string {
	return m.re.String()
}

// FindMatches scans line left to right and returns every non-overlapping
// match as a Span, ordered by ascending Start. Scanning resumes at the end
// of the previous match, so spans never overlap.
//
// Zero-width matches are discarded: they cannot satisfy Start < End, and the
// engine advances one rune past each, so a pattern like `a*` against a line
// with no `a` terminates with no spans instead of looping.
func (m *Matcher) FindMatches(line string) []Span {
	locs := m.re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return nil
	}

	spans := make([]Span, 0, len(locs))
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if start == end {
			continue
		}
		spans = append(spans, Span{
			Start: start,
			End:   end,
			Text:  line[start:end],
		})
	}
	return spans
}
