package compose

import (
	"errors"
	"strings"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/proc"
)

// ErrImageTableUnsupported is returned by Images when table output is
// requested. Only ID-only listing is implemented; the failure is
// synchronous and no subprocess is spawned.
var ErrImageTableUnsupported = errors.New("compose images: table output is not supported, request ids only")

// Images lists the image IDs used by the project's services, one
// identifier per output line of `images -q`.
func (c *Compose) Images(opts flags.Options, idsOnly bool, services ...string) ([]string, error) {
	if !idsOnly {
		return nil, ErrImageTableUnsupported
	}

	encoded, err := c.encode("images", opts)
	if err != nil {
		return nil, err
	}

	out, err := c.run.Output(c.args("images", append(encoded, "-q"), services), c.captureOpts())
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			ids = append(ids, line)
		}
	}
	return ids, nil
}

// Version returns docker-compose's short version string.
func (c *Compose) Version() (string, error) {
	out, err := c.run.Output(c.args("version", []string{"--short"}, nil), c.captureOpts())
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}

// captureOpts is spawnOpts without attached streams, for operations that
// capture and interpret output themselves.
func (c *Compose) captureOpts() proc.SpawnOpts {
	opts := c.spawnOpts()
	opts.Stdout = nil
	opts.Stderr = nil
	return opts
}
