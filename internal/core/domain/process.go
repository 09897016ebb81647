package domain

import "fmt"

// ProcessResult is the outcome of one external command.
type ProcessResult struct {
	ExitCode int
	Output   string
}

// ProcessFailure is returned when an external command exits with a non-zero status.
// Output holds everything the command wrote to stdout and stderr.
type ProcessFailure struct {
	ExitCode int
	Output   string
}

// Error implements the error interface.
func (f *ProcessFailure) Error() string {
	return fmt.Sprintf("process exited with status %d", f.ExitCode)
}
