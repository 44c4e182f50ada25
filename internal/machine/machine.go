// Package machine wraps the docker-machine CLI for provisioning remote
// Docker hosts and resolving their connection environments.
package machine

import (
	"strings"

	"github.com/xdg/flotilla/internal/flags"
	"github.com/xdg/flotilla/internal/proc"
)

// Program is the external provisioning tool driven by this package.
const Program = "docker-machine"

// runner abstracts docker-machine CLI execution so tests can substitute a
// fake without spawning processes.
type runner interface {
	Output(args []string, opts proc.SpawnOpts) (string, error)
}

// procRunner executes docker-machine through the process facade.
type procRunner struct{}

func (procRunner) Output(args []string, opts proc.SpawnOpts) (string, error) {
	return proc.Output(Program, args, opts)
}

// Machine is the docker-machine command façade.
type Machine struct {
	// StoragePath overrides docker-machine's certificate and machine
	// store, applied as a leading `-s <path>` on every invocation.
	StoragePath string

	run runner
}

// New creates a Machine façade backed by the real docker-machine CLI.
func New() *Machine {
	return &Machine{run: procRunner{}}
}

// setRunner substitutes the CLI runner. Test hook.
func (m *Machine) setRunner(r runner) {
	m.run = r
}

func (m *Machine) runner() runner {
	if m.run == nil {
		return procRunner{}
	}
	return m.run
}

// baseArgs returns the invocation prefix applied before every subcommand.
func (m *Machine) baseArgs() []string {
	if m.StoragePath != "" {
		return []string{"-s", m.StoragePath}
	}
	return nil
}

// Env queries the provisioning environment of the named host and returns
// it as a variable-to-value mapping.
func (m *Machine) Env(name string, opts flags.Options) (map[string]string, error) {
	encoded, err := flags.Encode(opts, "")
	if err != nil {
		return nil, err
	}

	args := append(m.baseArgs(), "env")
	args = append(args, encoded...)
	args = append(args, name)

	out, err := m.runner().Output(args, proc.SpawnOpts{})
	if err != nil {
		return nil, err
	}
	return ParseEnv(out, name)
}

// Get resolves the named host into a populated Host handle by querying its
// environment. envOpts are reused by later Host.RefreshEnv calls.
func (m *Machine) Get(name string, envOpts flags.Options) (*Host, error) {
	env, err := m.Env(name, envOpts)
	if err != nil {
		return nil, err
	}
	return &Host{name: name, machine: m, envOpts: envOpts, env: env}, nil
}

// Create provisions a new host with the named driver, waits for the
// provisioning run to complete, then re-queries the environment to return
// a fully populated Host.
//
// Driver options are encoded with the driver name as flag prefix, so a
// driverOpts entry `memory` becomes `--<driver>-memory` the way
// docker-machine names its per-driver flags.
func (m *Machine) Create(name, driver string, driverOpts flags.Options) (*Host, error) {
	encoded, err := flags.Encode(driverOpts, driver+"-")
	if err != nil {
		return nil, err
	}

	args := append(m.baseArgs(), "create", "--driver", driver)
	args = append(args, encoded...)
	args = append(args, name)

	if _, err := m.runner().Output(args, proc.SpawnOpts{}); err != nil {
		return nil, err
	}
	return m.Get(name, nil)
}

// List returns the names of all configured hosts, one identifier per
// output line of `docker-machine ls -q`.
func (m *Machine) List() ([]string, error) {
	out, err := m.runner().Output(append(m.baseArgs(), "ls", "-q"), proc.SpawnOpts{})
	if err != nil {
		return nil, err
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			names = append(names, line)
		}
	}
	return names, nil
}
