package input

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Reader opens an input source and yields its lines.
type Reader interface {
	Open(id string) (*Lines, error)
}

// FileReader opens regular files by path.
type FileReader struct{}

// NewFileReader creates a new FileReader.
func NewFileReader() *FileReader {
	return &FileReader{}
}

func (r *FileReader) Open(path string) (*Lines, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return newLines(f, f.Close), nil
}

// Lines iterates over the lines of one input source. Line endings are
// normalized away: the scanner strips the trailing \n and Next drops a
// trailing \r, so CRLF files read the same as LF files.
type Lines struct {
	sc    *bufio.Scanner
	close func() error
	line  string
	num   int
}

func newLines(r io.Reader, close func() error) *Lines {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &Lines{sc: sc, close: close, num: -1}
}

// Next advances to the next line, returning false at end of input or on a
// read error (check Err).
func (l *Lines) Next() bool {
	if !l.sc.Scan() {
		return false
	}
	l.line = strings.TrimSuffix(l.sc.Text(), "\r")
	l.num++
	return true
}

// Line returns the current line, without line-ending characters.
func (l *Lines) Line() string {
	return l.line
}

// LineNum returns the zero-based index of the current line.
func (l *Lines) LineNum() int {
	return l.num
}

// Err returns the first error encountered while reading, if any.
func (l *Lines) Err() error {
	return l.sc.Err()
}

// Close releases the underlying source.
func (l *Lines) Close() error {
	if l.close == nil {
		return nil
	}
	return l.close()
}
