package search

import "fmt"

// Error is a failed search, carrying the correlation ID of the request.
type Error struct {
	Op        string
	RequestID string
	Err       error
}

func (e *Error) Error() string {
	if e.RequestID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.RequestID, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
