package input

import "os"

// StdinReader serves lines from standard input, used when a file argument
// is "-".
type StdinReader struct{}

// NewStdinReader creates a new StdinReader.
func NewStdinReader() *StdinReader {
	return &StdinReader{}
}

func (r *StdinReader) Open(_ string) (*Lines, error) {
	return newLines(os.Stdin, nil), nil
}
