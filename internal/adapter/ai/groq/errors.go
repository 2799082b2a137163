package groq

import (
	"errors"
	"fmt"
	"net"
)

// StatusError is returned when the provider answers with a non-200 status.
// Body is the raw response body, unmodified.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("groq: status %d: %s", e.Code, e.Body)
}

// TransportError covers failures before a response status was received:
// request construction, connection errors and timeouts.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the transport failure was a deadline being hit.
func (e *TransportError) Timeout() bool {
	var ne net.Error
	if errors.As(e.Err, &ne) {
		return ne.Timeout()
	}
	return false
}

// DecodeError means a 200 response could not be turned into an answer.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return e.Err.Error()
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

var (
	ErrNoChoices = errors.New("response contained no choices")
	ErrNoContent = errors.New("first choice has no message content")
)

// IsTimeout reports whether err is a TransportError caused by a timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout()
}
