/*
Package literal writes the C array initializer text consumed by the POV
display firmware.

A Writer buffers output and remembers the first error encountered so callers
can emit a whole table and check for failure once, on Flush.
*/
package literal

import (
	"bufio"
	"fmt"
	"io"
)

// Writer emits hex literals and punctuation to an underlying io.Writer.
type Writer struct {
	w   *bufio.Writer
	err error
}

// NewWriter returns a Writer buffering output to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// String writes s verbatim.
func (w *Writer) String(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.WriteString(s)
}

// Printf writes a formatted string.
func (w *Writer) Printf(format string, a ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.w, format, a...)
}

// Word writes v as a four digit upper case hex literal, e.g. 0x00FF.
func (w *Writer) Word(v uint32) {
	w.Printf("0x%04X", v&0xffff)
}

// Byte writes b as a two digit lower case hex literal, e.g. 0x0f.
func (w *Writer) Byte(b byte) {
	if w.err != nil {
		return
	}
	var tmp = [4]byte{'0', 'x', hexDigits[b>>4], hexDigits[b&0x0f]}
	_, w.err = w.w.Write(tmp[:])
}

const hexDigits = "0123456789abcdef"

// Err returns the first error encountered, if any.
func (w *Writer) Err() error {
	return w.err
}

// Flush writes any buffered data and returns the first error encountered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}
