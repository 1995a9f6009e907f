package format

import (
	"bytes"

	"github.com/mattn/go-runewidth"
)

// Writer accumulates formatted output and tracks the display column of the
// cursor, so padding decisions account for wide runes rather than bytes.
type Writer struct {
	buf []byte
	col int
}

func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Col returns the display column of the cursor on the current line.
func (w *Writer) Col() int {
	return w.col
}

// WriteString appends s and advances the column, resetting it across
// newlines embedded in s.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.buf = append(w.buf, s...)
	if i := lastNewline(s); i >= 0 {
		w.col = runewidth.StringWidth(s[i+1:])
	} else {
		w.col += runewidth.StringWidth(s)
	}
}

// Newline ends the current line. It never trims: a trailing line comment's
// text may legitimately end in spaces and must survive byte for byte.
func (w *Writer) Newline() {
	w.buf = append(w.buf, '\n')
	w.col = 0
}

// BlankLine ensures exactly one empty line precedes the next content. At the
// start of the output it does nothing, so leading blank runs disappear.
func (w *Writer) BlankLine() {
	if len(w.buf) == 0 {
		return
	}
	if w.col != 0 {
		w.Newline()
	}
	if !bytes.HasSuffix(w.buf, []byte("\n\n")) {
		w.buf = append(w.buf, '\n')
	}
}

// PadTo pads with spaces until the cursor reaches col. When the cursor is
// already at or past col it writes the single-space fallback instead and
// reports false.
func (w *Writer) PadTo(col int) bool {
	if w.col >= col {
		w.WriteString(" ")
		return false
	}
	for w.col < col {
		w.WriteString(" ")
	}
	return true
}

// Indent writes level*width spaces at the start of a line.
func (w *Writer) Indent(level, width int) {
	w.Spaces(level * width)
}

// Spaces writes n spaces.
func (w *Writer) Spaces(n int) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, ' ')
	}
	w.col += n
}

// Finalize trims trailing blank lines and guarantees the output ends with a
// single newline. Only newlines are trimmed; spaces belong to the last
// line's content.
func (w *Writer) Finalize() {
	w.buf = bytes.TrimRight(w.buf, "\n")
	if len(w.buf) > 0 {
		w.buf = append(w.buf, '\n')
	}
	w.col = 0
}

func lastNewline(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return i
		}
	}
	return -1
}
