package cli

import (
	"errors"
)

// ExitError carries the process exit code for a failed command
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func usageError(err error) error {
	return &ExitError{Code: 2, Err: err}
}

// ExitCode maps a command error to a process exit code: 0 on success,
// 1 when some files were moved before a failure, 2 otherwise
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 2
}
