package matcher

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestNew_InvalidPattern(t *testing.T) {
	if _, err := New("(unclosed", false); err == nil {
		t.Fatal("expected error for invalid pattern, got nil")
	}
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		name       string
		pattern    string
		ignoreCase bool
		line       string
		want       []Span
	}{
		{
			name:    "single match",
			pattern: "duck",
			line:    "The first duck to travel in time wins it all.",
			want:    []Span{{Start: 10, End: 14, Text: "duck"}},
		},
		{
			name:    "optional group extends match",
			pattern: `(a )?duck`,
			line:    "The first thing to be called a duck has already won it all.",
			want:    []Span{{Start: 29, End: 35, Text: "a duck"}},
		},
		{
			name:    "case sensitive by default",
			pattern: "duck",
			line:    "Ducks are great in doing things.",
			want:    nil,
		},
		{
			name:       "ignore case",
			pattern:    "duck",
			ignoreCase: true,
			line:       "Ducks are great in doing things.",
			want:       []Span{{Start: 0, End: 4, Text: "Duck"}},
		},
		{
			name:    "multiple matches in one line",
			pattern: "i.?s",
			line:    "The first duck to travel in time wins it all.",
			want: []Span{
				{Start: 5, End: 8, Text: "irs"},
				{Start: 34, End: 37, Text: "ins"},
			},
		},
		{
			name:    "adjacent matches do not overlap",
			pattern: "ab",
			line:    "ababab",
			want: []Span{
				{Start: 0, End: 2, Text: "ab"},
				{Start: 2, End: 4, Text: "ab"},
				{Start: 4, End: 6, Text: "ab"},
			},
		},
		{
			name:    "leftmost greedy",
			pattern: "a+",
			line:    "baaab aa",
			want: []Span{
				{Start: 1, End: 4, Text: "aaa"},
				{Start: 6, End: 8, Text: "aa"},
			},
		},
		{
			name:    "zero-width matches dropped",
			pattern: "a*",
			line:    "bbb",
			want:    nil,
		},
		{
			name:    "zero-width between real matches",
			pattern: "a*",
			line:    "baab",
			want:    []Span{{Start: 1, End: 3, Text: "aa"}},
		},
		{
			name:    "anchored pattern matches once",
			pattern: "^The",
			line:    "The theme of The Thing",
			want:    []Span{{Start: 0, End: 3, Text: "The"}},
		},
		{
			name:    "empty line",
			pattern: "duck",
			line:    "",
			want:    nil,
		},
		{
			name:    "no match",
			pattern: "goose",
			line:    "The first duck to travel in time wins it all.",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := New(tt.pattern, tt.ignoreCase)
			if err != nil {
				t.Fatalf("New(%q): %v", tt.pattern, err)
			}
			got := m.FindMatches(tt.line)
			if diff := cmp.Diff(tt.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("FindMatches(%q) mismatch (-want +got):\n%s", tt.line, diff)
			}
		})
	}
}

func TestFindMatches_SpansOrderedAndDisjoint(t *testing.T) {
	m, err := New("i.?s", false)
	if err != nil {
		t.Fatal(err)
	}
	line := "This file is neither empty nor eternal."
	spans := m.FindMatches(line)
	if len(spans) == 0 {
		t.Fatal("expected at least one span")
	}
	prev := 0
	for i, s := range spans {
		if s.Start >= s.End {
			t.Errorf("span %d: empty range [%d,%d)", i, s.Start, s.End)
		}
		if s.Start < prev {
			t.Errorf("span %d: start %d overlaps previous end %d", i, s.Start, prev)
		}
		if s.Text != line[s.Start:s.End] {
			t.Errorf("span %d: text %q does not cover line[%d:%d] = %q", i, s.Text, s.Start, s.End, line[s.Start:s.End])
		}
		prev = s.End
	}
}

func TestFindMatches_Deterministic(t *testing.T) {
	m, err := New(`(a )?duck`, false)
	if err != nil {
		t.Fatal(err)
	}
	line := "The vast majority of duck species are not even yellow!"
	first := m.FindMatches(line)
	second := m.FindMatches(line)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated scans differ (-first +second):\n%s", diff)
	}
}
