package compose

import (
	"io"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/stream"
)

// Events subscribes to the project's event stream by spawning
// `events --json` and decoding one JSON event record per output line.
//
// The returned stream terminates normally when the subprocess exits with
// code 0 and with an error on non-zero exit or a malformed event line.
// There is no cancellation primitive: to stop the subscription, signal
// the subprocess through the returned stream's process handle.
func (c *Compose) Events(opts flags.Options, services ...string) (*stream.EventStream, error) {
	encoded, err := c.encode("events", opts)
	if err != nil {
		return nil, err
	}
	args := c.args("events", append(encoded, "--json"), services)

	// The subprocess writes into a pipe owned by the stream pump. The
	// write end is closed only after the process has been reaped, so the
	// pump sees EOF exactly when the event stream ends.
	pr, pw := io.Pipe()
	spawn := c.captureOpts()
	spawn.Stdout = pw

	h, err := c.run.Start(args, spawn)
	if err != nil {
		_ = pw.Close()
		return nil, err
	}

	waitc := make(chan error, 1)
	go func() {
		err := h.Wait()
		_ = pw.Close()
		waitc <- err
	}()

	s := stream.NewEventStream(pr, func() error { return <-waitc })
	s.Process = h
	return s, nil
}
