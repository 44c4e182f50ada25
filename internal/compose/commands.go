package compose

import (
	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/proc"
)

// Every operation below accepts an optional options list (encoded per the
// rules in internal/flags) followed by zero or more service names, spawns
// one docker-compose subprocess, and returns its handle immediately. The
// terminal outcome arrives through the handle's completion signal.

// Build builds or rebuilds service images.
func (c *Compose) Build(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("build", opts, services)
}

// Bundle generates a distributed application bundle from the project.
func (c *Compose) Bundle(opts flags.Options) (*proc.Handle, error) {
	return c.start("bundle", opts, nil)
}

// Config validates and prints the resolved project configuration.
func (c *Compose) Config(opts flags.Options) (*proc.Handle, error) {
	return c.start("config", opts, nil)
}

// Down stops services and removes their containers and networks.
func (c *Compose) Down(opts flags.Options) (*proc.Handle, error) {
	return c.start("down", opts, nil)
}

// Exec runs a command in a running service container.
func (c *Compose) Exec(opts flags.Options, service string, command ...string) (*proc.Handle, error) {
	return c.start("exec", opts, append([]string{service}, command...))
}

// Kill sends a signal to service containers.
func (c *Compose) Kill(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("kill", opts, services)
}

// Logs streams service log output.
func (c *Compose) Logs(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("logs", opts, services)
}

// Pause pauses running service containers.
func (c *Compose) Pause(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("pause", opts, services)
}

// Ps lists project containers.
func (c *Compose) Ps(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("ps", opts, services)
}

// Pull pulls service images.
func (c *Compose) Pull(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("pull", opts, services)
}

// Push pushes service images.
func (c *Compose) Push(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("push", opts, services)
}

// Restart restarts service containers.
func (c *Compose) Restart(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("restart", opts, services)
}

// Rm removes stopped service containers.
func (c *Compose) Rm(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("rm", opts, services)
}

// Run runs a one-off command in a new service container.
func (c *Compose) Run(opts flags.Options, service string, command ...string) (*proc.Handle, error) {
	return c.start("run", opts, append([]string{service}, command...))
}

// Start starts existing service containers.
func (c *Compose) Start(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("start", opts, services)
}

// Stop stops running service containers without removing them.
func (c *Compose) Stop(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("stop", opts, services)
}

// Top shows the running processes of service containers.
func (c *Compose) Top(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("top", opts, services)
}

// Unpause unpauses paused service containers.
func (c *Compose) Unpause(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("unpause", opts, services)
}

// Up creates and starts the project's services.
func (c *Compose) Up(opts flags.Options, services ...string) (*proc.Handle, error) {
	return c.start("up", opts, services)
}
