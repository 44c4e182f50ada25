// Package proc spawns the external tool subprocesses and exposes their
// completion as a one-shot signal alongside the live process.
package proc

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"
	"sync"
)

// ExitError reports a subprocess that ran but terminated with a non-zero
// exit code.
type ExitError struct {
	Program string
	Code    int
	// Stderr holds captured standard error when the invocation captured
	// it; empty otherwise.
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s exited with code %d\nstderr: %s", e.Program, e.Code, e.Stderr)
	}
	return fmt.Sprintf("%s exited with code %d", e.Program, e.Code)
}

// SpawnOpts configures a subprocess spawn.
type SpawnOpts struct {
	// Dir is the working directory. Empty means the caller's directory.
	Dir string
	// Env is merged over the parent process environment.
	Env map[string]string
	// Stdin, Stdout, and Stderr attach the subprocess's streams. Nil
	// streams are left unattached; reading output is the caller's
	// responsibility unless the operation captures it explicitly.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Handle combines the one-shot completion signal of a subprocess with a
// reference to the live process. A handle is single use: one subprocess
// per handle.
type Handle struct {
	// Cmd is the live subprocess, available for stream access and
	// signalling until completion.
	Cmd *exec.Cmd

	program string
	once    sync.Once
	err     error
}

// Start spawns program with the given argument vector. A spawn failure
// (missing executable, unspawnable process) is returned immediately;
// otherwise the returned handle owns the running process.
//
// Console window suppression is always forced on platforms that have one,
// regardless of caller configuration.
func Start(program string, args []string, opts SpawnOpts) (*Handle, error) {
	cmd := exec.Command(program, args...)
	cmd.Dir = opts.Dir
	cmd.Stdin = opts.Stdin
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr
	if len(opts.Env) > 0 {
		cmd.Env = mergeEnv(opts.Env)
	}
	hideConsoleWindow(cmd)

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("start %s: %w", program, err)
	}
	return &Handle{Cmd: cmd, program: program}, nil
}

// Wait blocks until the subprocess terminates and returns nil on exit
// code 0 and an *ExitError otherwise. Wait is idempotent and safe to call
// from multiple goroutines; every call returns the same outcome.
func (h *Handle) Wait() error {
	h.once.Do(func() {
		err := h.Cmd.Wait()
		if err == nil {
			return
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			h.err = &ExitError{Program: h.program, Code: exitErr.ExitCode()}
			return
		}
		h.err = fmt.Errorf("wait for %s: %w", h.program, err)
	})
	return h.err
}

// Done returns a channel that delivers the completion outcome once, for
// callers that select on completion instead of blocking in Wait.
func (h *Handle) Done() <-chan error {
	ch := make(chan error, 1)
	go func() { ch <- h.Wait() }()
	return ch
}

// Output runs program to completion and returns its captured standard
// output. On a non-zero exit the returned ExitError carries the captured
// standard error for diagnostics.
func Output(program string, args []string, opts SpawnOpts) (string, error) {
	var stdout, stderr bytes.Buffer
	opts.Stdout = &stdout
	opts.Stderr = &stderr

	h, err := Start(program, args, opts)
	if err != nil {
		return "", err
	}
	if err := h.Wait(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			exitErr.Stderr = strings.TrimSpace(stderr.String())
		}
		return "", err
	}
	return stdout.String(), nil
}

// mergeEnv layers overrides on top of the parent environment, in sorted
// key order so spawns are deterministic.
func mergeEnv(overrides map[string]string) []string {
	env := os.Environ()
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		env = append(env, k+"="+overrides[k])
	}
	return env
}
