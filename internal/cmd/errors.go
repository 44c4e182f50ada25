package cmd

import "fmt"

// ExitCodeError carries a specific process exit code to main. It is used
// to propagate the exit code of a failed subprocess instead of the
// generic exit code 1.
type ExitCodeError struct {
	Code int
}

func (e *ExitCodeError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}
