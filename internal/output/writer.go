package output

import (
	"bufio"
	"io"
)

// Writer buffers rendered records on their way to the output stream.
// Records are written in the order they arrive — file order, then line
// order, then span order — with no reordering.
type Writer struct {
	bw *bufio.Writer
}

// NewWriter creates a Writer over w (stdout in production, a bytes.Buffer
// in tests).
func NewWriter(w io.Writer) *Writer {
	return &Writer{bw: bufio.NewWriterSize(w, 64*1024)}
}

// Write appends p to the output buffer.
func (w *Writer) Write(p []byte) error {
	_, err := w.bw.Write(p)
	return err
}

// Flush drains any buffered records to the underlying stream. Must be
// called before exit.
func (w *Writer) Flush() error {
	return w.bw.Flush()
}
