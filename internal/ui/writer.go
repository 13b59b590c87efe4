package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/footprint-tools/fm/internal/domain"
)

// Writer implements domain.OutputWriter over a buffered stream.
// Output is held until Flush, which the session calls after every command.
type Writer struct {
	out *bufio.Writer
}

// NewWriter creates a new Writer that writes to stdout.
func NewWriter() *Writer {
	return NewWriterTo(os.Stdout)
}

// NewWriterTo creates a new Writer that writes to the specified writer.
func NewWriterTo(out io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(out)}
}

// Write implements io.Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	return w.out.Write(p)
}

// Printf formats and prints to the output.
func (w *Writer) Printf(format string, args ...any) (int, error) {
	return fmt.Fprintf(w.out, format, args...)
}

// Println prints a line to the output.
func (w *Writer) Println(args ...any) (int, error) {
	return fmt.Fprintln(w.out, args...)
}

// Flush writes any buffered output to the underlying writer.
func (w *Writer) Flush() error {
	return w.out.Flush()
}

// Verify Writer implements domain.OutputWriter
var _ domain.OutputWriter = (*Writer)(nil)
