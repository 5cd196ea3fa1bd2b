package commands

import (
	"errors"
	"fmt"
)

// Error codes for execution failures. These are stable and appear in
// --json output.
const (
	ErrCodeInvalidIndex        = "INVALID_INDEX"
	ErrCodeDuplicatePerson     = "DUPLICATE_PERSON"
	ErrCodePersonNotFound      = "PERSON_NOT_FOUND"
	ErrCodeAppointmentConflict = "APPOINTMENT_CONFLICT"
	ErrCodeUnknownField        = "UNKNOWN_FIELD"
	ErrCodeInvalidAppointment  = "INVALID_APPOINTMENT"
	// ErrCodeInvalidPersonState covers archiving an archived person and
	// unarchiving a current one.
	ErrCodeInvalidPersonState = "INVALID_PERSON_STATE"
)

// ExecutionError reports a precondition that failed while executing a
// command. The model is left unchanged.
type ExecutionError struct {
	Code    string
	Message string
	Err     error
}

func (e *ExecutionError) Error() string {
	return e.Message
}

func (e *ExecutionError) Unwrap() error {
	return e.Err
}

func executionError(code string, cause error, format string, args ...interface{}) *ExecutionError {
	return &ExecutionError{Code: code, Message: fmt.Sprintf(format, args...), Err: cause}
}

// IsExecutionError reports whether err is an *ExecutionError with the given
// code. An empty code matches any execution error.
func IsExecutionError(err error, code string) bool {
	var ee *ExecutionError
	if !errors.As(err, &ee) {
		return false
	}
	return code == "" || ee.Code == code
}
