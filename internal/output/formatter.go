package output

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrIncompatibleModes is returned when both highlighted and machine output
// are requested. Detected eagerly at construction, before any file is read.
var ErrIncompatibleModes = errors.New("color mode and machine mode cannot be used together")

// Formatter renders LineResults in a single output mode, fixed at
// construction.
type Formatter struct {
	mode Mode
}

// New creates a Formatter from the two CLI mode flags. Requesting both is a
// configuration error. This constructor exists so callers bypassing the CLI
// still hit the same validation.
func New(highlighted, machine bool) (*Formatter, error) {
	if highlighted && machine {
		return nil, ErrIncompatibleModes
	}
	mode := ModePlain
	switch {
	case highlighted:
		mode = ModeHighlighted
	case machine:
		mode = ModeMachine
	}
	return NewWithMode(mode), nil
}

// NewWithMode creates a Formatter for callers that already hold a Mode.
// For ModeHighlighted it performs the one-time platform setup needed for
// ANSI escapes to render; failure there is non-fatal.
func NewWithMode(mode Mode) *Formatter {
	if mode == ModeHighlighted {
		enableANSIOnce()
	}
	return &Formatter{mode: mode}
}

// Mode returns the formatter's output mode.
func (f *Formatter) Mode() Mode {
	return f.mode
}

// Render appends the rendered record(s) for r to buf and returns the
// extended buffer. Callers can pass buf[:0] to reuse the underlying array
// without allocating. Plain and Highlighted produce one record per line,
// Machine one record per span; every record is newline-terminated.
func (f *Formatter) Render(buf []byte, r LineResult) []byte {
	switch f.mode {
	case ModePlain:
		return renderPlain(buf, r)
	case ModeHighlighted:
		return renderHighlighted(buf, r)
	case ModeMachine:
		return renderMachine(buf, r)
	default:
		panic(fmt.Sprintf("output: unknown mode %d", f.mode))
	}
}

// renderPlain emits `{file}, line {n}: "{line}"` — one record per matching
// line regardless of span count.
func renderPlain(buf []byte, r LineResult) []byte {
	buf = appendRecordPrefix(buf, r.FileID, r.LineNum)
	buf = append(buf, r.Line...)
	return appendRecordSuffix(buf)
}

// renderHighlighted reassembles the line, copying unmatched segments
// verbatim and wrapping each span's text in a color escape pair, then emits
// it through the plain record template. Spans arrive ordered and disjoint;
// anything else is an invariant violation and panics rather than silently
// corrupting output.
func renderHighlighted(buf []byte, r LineResult) []byte {
	buf = appendRecordPrefix(buf, r.FileID, r.LineNum)
	prev := 0
	for _, s := range r.Spans {
		if s.Start < prev || s.Start >= s.End || s.End > len(r.Line) {
			panic(fmt.Sprintf("output: invalid span [%d,%d) at offset %d in line of length %d",
				s.Start, s.End, prev, len(r.Line)))
		}
		buf = append(buf, r.Line[prev:s.Start]...)
		buf = append(buf, ansiRed...)
		buf = append(buf, r.Line[s.Start:s.End]...)
		buf = append(buf, ansiReset...)
		prev = s.End
	}
	buf = append(buf, r.Line[prev:]...)
	return appendRecordSuffix(buf)
}

// renderMachine emits one `{file}:{line}:{column}:{text}` record per span,
// with 1-based line and column. Surrounding-line context is intentionally
// dropped in exchange for exact, parseable coordinates.
func renderMachine(buf []byte, r LineResult) []byte {
	for _, s := range r.Spans {
		buf = append(buf, r.FileID...)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(r.LineNum+1), 10)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(s.Start+1), 10)
		buf = append(buf, ':')
		buf = append(buf, s.Text...)
		buf = append(buf, '\n')
	}
	return buf
}

// appendRecordPrefix writes `{file}, line {n}: "`. Line numbers are tracked
// zero-based internally but rendered 1-based — humans and editors have no
// line 0.
func appendRecordPrefix(buf []byte, fileID string, lineNum int) []byte {
	buf = append(buf, fileID...)
	buf = append(buf, ", line "...)
	buf = strconv.AppendInt(buf, int64(lineNum+1), 10)
	buf = append(buf, ':', ' ', '"')
	return buf
}

func appendRecordSuffix(buf []byte) []byte {
	return append(buf, '"', '\n')
}
