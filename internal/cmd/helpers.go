package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xdg/flotilla/internal/compose"
	"github.com/xdg/flotilla/internal/config"
	"github.com/xdg/flotilla/internal/flog"
	"github.com/xdg/flotilla/internal/machine"
	"github.com/xdg/flotilla/internal/proc"
	"github.com/xdg/flotilla/internal/term"
)

// projectDir resolves the project directory from the --project-dir flag,
// defaulting to the current directory.
func projectDir() string {
	if flagProjectDir != "" {
		return flagProjectDir
	}
	return "."
}

// newCompose builds the compose façade from global config, project
// config, and command-line flags. Flags override the project config,
// which overrides global defaults.
func newCompose() (*compose.Compose, error) {
	global, err := config.LoadGlobalConfig()
	if err != nil {
		return nil, err
	}
	project, err := config.LoadProjectConfig(projectDir())
	if err != nil {
		return nil, err
	}

	files := flagFiles
	if len(files) == 0 {
		files = project.Files
	}

	machineName := flagMachine
	if machineName == "" {
		machineName = project.Machine
	}
	if machineName == "" {
		machineName = global.Defaults.Machine
	}

	cfg := compose.Config{
		Files:  files,
		Dir:    projectDir(),
		Env:    project.Env,
		Stdout: term.Stdout(),
		Stderr: term.Stderr(),
	}

	if machineName != "" {
		host, err := machine.New().Get(machineName, nil)
		if err != nil {
			return nil, fmt.Errorf("resolve machine %q: %w", machineName, err)
		}
		cfg.Host = host
	}

	flog.Debug("compose façade: files=%s machine=%q dir=%s",
		strings.Join(files, ","), machineName, cfg.Dir)
	return compose.New(cfg), nil
}

// waitHandle reduces the usual (handle, error) operation result to a
// command error, converting a non-zero subprocess exit into an
// ExitCodeError so main can propagate the code.
func waitHandle(h *proc.Handle, err error) error {
	if err != nil {
		return err
	}
	return exitCodeError(h.Wait())
}

// exitCodeError maps a subprocess ExitError to an ExitCodeError and
// passes every other error through.
func exitCodeError(err error) error {
	var exitErr *proc.ExitError
	if errors.As(err, &exitErr) {
		return &ExitCodeError{Code: exitErr.Code}
	}
	return err
}
