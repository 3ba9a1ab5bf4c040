// Package errors associates process exit codes with fatal errors so the
// binary can terminate with a code that identifies the failure class.
package errors

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

// CodeOf extracts the exit code from an ExitCodeError, or returns def for
// any other error.
func CodeOf(err error, def ExitCode) ExitCode {
	if ec, ok := err.(*ExitCodeError); ok {
		return ec.GetExitCode()
	}
	return def
}
