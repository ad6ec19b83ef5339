package output

import (
	"fmt"
	"io"
)

// maxLineLength is the wrap column for move lists.
const maxLineLength = 80

// lineWriter writes space-separated words, wrapping before maxLineLength.
type lineWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
	err           error
}

func newLineWriter(w io.Writer, maxLineLength int) *lineWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &lineWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a word, adding a space separator or a line break as needed.
func (o *lineWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			o.print("\n")
			o.lineLength = 0
		} else {
			o.print(" ")
			o.lineLength++
		}
	}

	o.print(s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine ends the current line.
func (o *lineWriter) NewLine() {
	o.print("\n")
	o.lineLength = 0
	o.needsSpace = false
}

// Err returns the first write error.
func (o *lineWriter) Err() error {
	return o.err
}

func (o *lineWriter) print(s string) {
	if o.err == nil {
		_, o.err = fmt.Fprint(o.w, s)
	}
}
