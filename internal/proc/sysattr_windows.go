//go:build windows

package proc

import (
	"os/exec"
	"syscall"
)

// createNoWindow prevents a console window from being allocated for the
// child process.
const createNoWindow = 0x08000000

// hideConsoleWindow forces console window suppression. The external tools
// otherwise flash a console per invocation when spawned from a GUI
// process.
func hideConsoleWindow(cmd *exec.Cmd) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.HideWindow = true
	cmd.SysProcAttr.CreationFlags |= createNoWindow
}
