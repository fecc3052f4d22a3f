package transport

import (
	"errors"
	"fmt"
)

// Kind tags the two failure classes the client can report: the request
// never produced a response, or the backend answered with an error
// status. Callers branch on the tag, never on message text.
type Kind int

const (
	// KindConnection means no response was received (refused,
	// unreachable, DNS failure, timeout).
	KindConnection Kind = iota + 1
	// KindServer means a response arrived carrying an error status.
	KindServer
)

// TransportError is the single error type the client returns for
// failed requests. For KindServer it carries the backend's code and
// message verbatim.
type TransportError struct {
	Kind       Kind
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *TransportError) Error() string {
	switch e.Kind {
	case KindConnection:
		return fmt.Sprintf("connection error: %v", e.Err)
	case KindServer:
		if e.Code != "" {
			return fmt.Sprintf("%s: %s", e.Code, e.Message)
		}
		return fmt.Sprintf("server error (status %d): %s", e.StatusCode, e.Message)
	}
	return "transport error"
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// IsConnectionError reports whether err is a transport failure where no
// response was ever received. Server-reported errors return false.
func IsConnectionError(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Kind == KindConnection
}
