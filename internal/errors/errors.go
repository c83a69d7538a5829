package errors

import "fmt"

// ErrorCode represents a kprune error code.
type ErrorCode string

const (
	ErrUsage           ErrorCode = "USAGE"            // wrong argument count
	ErrNotFound        ErrorCode = "NOT_FOUND"        // config file does not exist
	ErrInvalidArgument ErrorCode = "INVALID_ARGUMENT" // prompt misconfigured (programmer error)
	ErrIOFailure       ErrorCode = "IO_FAILURE"       // read, parse, backup, or write failure
)

// PruneError represents a structured error with code and details.
type PruneError struct {
	Code    ErrorCode
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *PruneError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUsage creates a usage error for bad command-line arguments.
func NewUsage(msg string) *PruneError {
	return &PruneError{
		Code:    ErrUsage,
		Message: msg,
	}
}

// NewNotFound creates an error for a missing config file.
func NewNotFound(path string) *PruneError {
	return &PruneError{
		Code:    ErrNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Details: map[string]any{"path": path},
	}
}

// NewInvalidArgument creates an error for a violated calling contract.
func NewInvalidArgument(msg string) *PruneError {
	return &PruneError{
		Code:    ErrInvalidArgument,
		Message: msg,
	}
}

// NewIOFailure creates an error for a failed file or stream operation.
func NewIOFailure(err error) *PruneError {
	msg := "i/o failure"
	if err != nil {
		msg = err.Error()
	}
	return &PruneError{
		Code:    ErrIOFailure,
		Message: msg,
	}
}

// Is checks if an error is a PruneError with the given code.
func Is(err error, code ErrorCode) bool {
	if pErr, ok := err.(*PruneError); ok {
		return pErr.Code == code
	}
	return false
}
