package common

import "fmt"

// RequestFailedError is reported by the completion handler when a call did
// not succeed. Validation, transport and server errors all end up here.
type RequestFailedError struct {
	Kind    string
	Message string
	Err     error
}

func NewRequestFailed(kind, message string, err error) *RequestFailedError {
	return &RequestFailedError{Kind: kind, Message: message, Err: err}
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Is reports a match for ErrRequestFailed so callers need not know the type.
func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *RequestFailedError) Unwrap() error {
	return e.Err
}
