package cmd

import "fmt"

// ExitError asks main to exit with Code.
// Err is printed by main when set; a nil Err means the command already
// reported its problems.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

// Unwrap returns the underlying error for error wrapping support.
func (e *ExitError) Unwrap() error {
	return e.Err
}
