package duneapix

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrUnexpectedResponse = errors.New("unexpected response")
	ErrServerError        = errors.New("server error")
)

// Error is returned for any response the API sent back that could not be
// turned into a result. Use errors.As with a *Error to get at the details.
type Error struct {
	Cause error
	Inner error

	StatusCode int
	Endpoint   string
	Path       string
	Message    string
}

func (e Error) Error() string {
	desc := e.Cause.Error()
	if e.Message != "" {
		desc += ": " + e.Message
	} else if e.Inner != nil {
		desc += ": " + e.Inner.Error()
	}
	return fmt.Sprintf("dune api error: %s (status: %d, path: %s)", desc, e.StatusCode, e.Path)
}

func (e Error) Unwrap() []error {
	if e.Inner != nil {
		return []error{e.Cause, e.Inner}
	}
	return []error{e.Cause}
}

type invalidArgError struct {
	Name   string
	Reason string
}

func (e invalidArgError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Name, e.Reason)
}

func (e invalidArgError) Unwrap() error {
	return ErrInvalidArgument
}
