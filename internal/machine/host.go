package machine

import "github.com/xdg/flotilla/internal/flags"

// Host represents a provisioned docker-machine target and owns its
// resolved connection environment. Hosts are obtained from Machine.Get or
// Machine.Create, never constructed directly: a Host only exists after a
// successful environment query.
type Host struct {
	name    string
	machine *Machine
	envOpts flags.Options
	env     map[string]string
}

// Name returns the host's machine name.
func (h *Host) Name() string {
	return h.name
}

// Env returns the host's current environment mapping.
func (h *Host) Env() map[string]string {
	return h.env
}

// RefreshEnv re-runs the environment query and replaces the mapping in
// place. On failure the previous mapping is kept untouched and the error
// is returned; the host is never left partially updated.
func (h *Host) RefreshEnv() error {
	env, err := h.machine.Env(h.name, h.envOpts)
	if err != nil {
		return err
	}
	h.env = env
	return nil
}
