package service

import "fmt"

// ValidationError marks a failure caused by the caller's input. Handlers
// map it to a 400; any other service error is a server-side failure.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
