// Package stream decodes line-delimited subprocess output, both as plain
// lines and as newline-delimited JSON event records.
package stream

import (
	"bytes"
	"io"
)

// LineDecoder incrementally splits a chunked byte stream into discrete
// lines. A decoder is bound to one logical source; create a new decoder
// for each source rather than reusing an exhausted one.
type LineDecoder struct {
	buf []byte
}

// Feed appends chunk to the buffered input and returns every line the
// chunk completes, in order. A line is only ever returned once its
// terminating newline has arrived; the trailing partial line, if any,
// stays buffered for a later Feed. Terminators (LF or CRLF) are stripped.
func (d *LineDecoder) Feed(chunk []byte) []string {
	d.buf = append(d.buf, chunk...)

	var lines []string
	for {
		i := bytes.IndexByte(d.buf, '\n')
		if i < 0 {
			return lines
		}
		line := d.buf[:i]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, string(line))
		d.buf = d.buf[i+1:]
	}
}

// Rest returns buffered input that has not yet been completed by a
// newline.
func (d *LineDecoder) Rest() string {
	return string(d.buf)
}

// EachLine reads r until exhaustion, delivering each decoded line to fn in
// order. If fn returns false, EachLine detaches from r: no further reads
// are issued and nil is returned immediately, leaving any remaining input
// unread. A final unterminated line is delivered when r reaches EOF.
func EachLine(r io.Reader, fn func(line string) bool) error {
	var d LineDecoder
	buf := make([]byte, 4096)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			for _, line := range d.Feed(buf[:n]) {
				if !fn(line) {
					return nil
				}
			}
		}
		if err == io.EOF {
			if rest := d.Rest(); rest != "" {
				fn(rest)
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}
