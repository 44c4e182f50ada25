// Package compose wraps the docker-compose CLI. A Compose façade holds
// the per-project state (compose files, working directory, an optionally
// bound docker-machine host) and translates each operation into one
// subprocess invocation.
package compose

import (
	"io"
	"maps"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/machine"
	"github.com/xdg/flotilla/internal/proc"
)

// Program is the external orchestration tool driven by this package.
const Program = "docker-compose"

// Config seeds a Compose façade.
type Config struct {
	// Files lists compose files applied to every invocation, in order,
	// as repeated `-f <path>` flags.
	Files []string
	// Dir is the working directory for spawned subprocesses.
	Dir string
	// Env adds environment variables to every spawned subprocess,
	// overriding same-named variables from a bound Host.
	Env map[string]string
	// Host, when set, contributes its provisioning environment to every
	// spawned subprocess.
	Host *machine.Host
	// Stdout and Stderr attach the streams of non-capturing operations.
	// Nil leaves a stream unattached.
	Stdout io.Writer
	Stderr io.Writer
}

// runner abstracts docker-compose execution so tests can record argument
// vectors without spawning processes.
type runner interface {
	Start(args []string, opts proc.SpawnOpts) (*proc.Handle, error)
	Output(args []string, opts proc.SpawnOpts) (string, error)
}

// procRunner executes docker-compose through the process facade.
type procRunner struct{}

func (procRunner) Start(args []string, opts proc.SpawnOpts) (*proc.Handle, error) {
	return proc.Start(Program, args, opts)
}

func (procRunner) Output(args []string, opts proc.SpawnOpts) (string, error) {
	return proc.Output(Program, args, opts)
}

// Compose is the docker-compose command façade.
type Compose struct {
	cfg Config
	run runner
}

// New creates a Compose façade backed by the real docker-compose CLI.
func New(cfg Config) *Compose {
	return &Compose{cfg: cfg, run: procRunner{}}
}

// setRunner substitutes the CLI runner. Test hook.
func (c *Compose) setRunner(r runner) {
	c.run = r
}

// args assembles the full argument vector for one subcommand: configured
// file flags first, then the subcommand, its encoded option flags, and
// the trailing positional service names.
func (c *Compose) args(command string, encoded []string, services []string) []string {
	args := make([]string, 0, 2*len(c.cfg.Files)+1+len(encoded)+len(services))
	for _, f := range c.cfg.Files {
		args = append(args, "-f", f)
	}
	args = append(args, command)
	args = append(args, encoded...)
	args = append(args, services...)
	return args
}

// spawnOpts builds the spawn configuration shared by every invocation.
// A bound host's environment is applied first so explicit Env entries win.
func (c *Compose) spawnOpts() proc.SpawnOpts {
	var env map[string]string
	if c.cfg.Host != nil || len(c.cfg.Env) > 0 {
		env = make(map[string]string)
		if c.cfg.Host != nil {
			maps.Copy(env, c.cfg.Host.Env())
		}
		maps.Copy(env, c.cfg.Env)
	}
	return proc.SpawnOpts{
		Dir:    c.cfg.Dir,
		Env:    env,
		Stdout: c.cfg.Stdout,
		Stderr: c.cfg.Stderr,
	}
}

// encode translates opts into flag tokens for command, routing the few
// fields that do not follow the generic encoding rules around the
// encoder:
//
//   - kill's `signal` renders as `-s <signal>`
//   - run/exec's `detach` renders as a bare `-d`
//   - run/exec's `env` list expands into repeated `-e <entry>` pairs
//     instead of a single comma-joined token
//
// Generic flags come first, special-cased flags after.
func (c *Compose) encode(command string, opts flags.Options) ([]string, error) {
	var special []string
	generic := make(flags.Options, 0, len(opts))

	for _, o := range opts {
		switch {
		case command == "kill" && o.Name == "signal":
			if s, ok := o.Value.(flags.String); ok {
				special = append(special, "-s", string(s))
				continue
			}
		case (command == "run" || command == "exec") && o.Name == "detach":
			if b, ok := o.Value.(flags.Bool); ok {
				if b {
					special = append(special, "-d")
				}
				continue
			}
		case (command == "run" || command == "exec") && o.Name == "env":
			if l, ok := o.Value.(flags.List); ok {
				for _, el := range l {
					special = append(special, "-e", el.Token())
				}
				continue
			}
		}
		generic = append(generic, o)
	}

	encoded, err := flags.Encode(generic, "")
	if err != nil {
		return nil, err
	}
	return append(encoded, special...), nil
}

// start encodes opts and spawns one subcommand invocation. Encoding
// validation errors are returned before any subprocess is spawned.
func (c *Compose) start(command string, opts flags.Options, services []string) (*proc.Handle, error) {
	encoded, err := c.encode(command, opts)
	if err != nil {
		return nil, err
	}
	return c.run.Start(c.args(command, encoded, services), c.spawnOpts())
}
