package errors

type ExitCode int

const (
	// Generic command failure (bad input, not found, server rejection).
	CommandFailureExitCode ExitCode = 1

	// Usage errors (unknown command, bad flags).
	UsageFailureExitCode ExitCode = 2
)

// ExitCodeError pairs an error with the process exit code it should
// produce.
type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}
