package stream

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/xdg/flotilla/internal/proc"
)

// Event is one decoded record from a newline-delimited JSON event stream.
type Event struct {
	Time       string            `json:"time"`
	Type       string            `json:"type"`
	Action     string            `json:"action"`
	ID         string            `json:"id"`
	Service    string            `json:"service"`
	Attributes map[string]string `json:"attributes,omitempty"`
}

// ParseEvent decodes a single JSON event line.
func ParseEvent(line string) (Event, error) {
	var ev Event
	if err := json.Unmarshal([]byte(line), &ev); err != nil {
		return Event{}, fmt.Errorf("decode event line: %w", err)
	}
	return ev, nil
}

// EventStream delivers decoded events from a running subprocess's output.
//
// C is unbuffered: a slow consumer blocks the pump, which in turn stops
// reading from the subprocess, so nothing buffers without bound. The
// stream terminates normally when the subprocess exits with code 0 and
// with an error on non-zero exit or on a malformed event line.
type EventStream struct {
	// C carries decoded events. It is closed when the stream terminates.
	C <-chan Event

	// Process is the live subprocess backing the stream, exposed so the
	// caller can signal it directly; stopping the subprocess is the only
	// way to end the subscription. Nil for streams without a subprocess.
	Process *proc.Handle

	done chan struct{}
	err  error
}

// NewEventStream decodes events from r until exhaustion, then reports the
// subprocess outcome obtained from wait. A malformed line stops decoding;
// the remaining input is drained so the subprocess is never blocked
// writing to a full pipe.
func NewEventStream(r io.Reader, wait func() error) *EventStream {
	ch := make(chan Event)
	s := &EventStream{
		C:    ch,
		done: make(chan struct{}),
	}

	go func() {
		defer close(s.done)

		var decodeErr error
		readErr := EachLine(r, func(line string) bool {
			if strings.TrimSpace(line) == "" {
				return true
			}
			ev, err := ParseEvent(line)
			if err != nil {
				decodeErr = err
				return false
			}
			ch <- ev
			return true
		})
		close(ch)

		// Drain whatever decoding did not consume before reaping the
		// subprocess.
		_, _ = io.Copy(io.Discard, r)
		waitErr := wait()

		switch {
		case decodeErr != nil:
			s.err = decodeErr
		case readErr != nil:
			s.err = readErr
		default:
			s.err = waitErr
		}
	}()

	return s
}

// Wait blocks until the stream has terminated and returns its outcome:
// nil after a clean end of stream, otherwise the decode, read, or
// subprocess error that ended it.
func (s *EventStream) Wait() error {
	<-s.done
	return s.err
}
