package errors

// ExitError wraps an error with a process exit code.
type ExitError struct {
	// Err is the underlying error.
	Err error

	// Code is the process exit code.
	Code int

	// Printed marks errors the command layer already reported, so the
	// entry point does not print them twice.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}
