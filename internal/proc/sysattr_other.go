//go:build !windows

package proc

import "os/exec"

// hideConsoleWindow is a no-op on platforms without console windows.
func hideConsoleWindow(_ *exec.Cmd) {}
