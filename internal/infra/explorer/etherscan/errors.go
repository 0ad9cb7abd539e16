package etherscan

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("explorer transport failure")

	// ErrAPI matches every *APIError.
	ErrAPI = errors.New("explorer api error")

	// ErrInvalidRecord matches every *RecordError.
	ErrInvalidRecord = errors.New("invalid explorer record")
)

// TransportError is returned when the explorer could not be reached or kept
// answering with a non-2xx status after every retry was spent.
type TransportError struct {
	StatusCode int   // last HTTP status, zero when no response was received
	Err        error // last transport or decoding error, if any
}

func (e *TransportError) Error() string {
	switch {
	case e.Err != nil && e.StatusCode != 0:
		return fmt.Sprintf("%s: HTTP %d: %v", ErrTransport, e.StatusCode, e.Err)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
	default:
		return fmt.Sprintf("%s: HTTP %d %s", ErrTransport, e.StatusCode, http.StatusText(e.StatusCode))
	}
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

func (e *TransportError) Unwrap() error { return e.Err }

// APIError is a failure reported by the explorer itself (status "0" with an
// error message). Message is kept verbatim.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string { return e.Message }

func (e *APIError) Is(target error) bool { return target == ErrAPI }

// RecordError describes a single record that failed schema validation and was
// dropped from an otherwise successful response.
type RecordError struct {
	Action string // explorer action, "txlist" or "tokentx"
	Index  int    // position of the record in the result array
	Err    error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s: %s[%d]: %v", ErrInvalidRecord, e.Action, e.Index, e.Err)
}

func (e *RecordError) Is(target error) bool { return target == ErrInvalidRecord }

func (e *RecordError) Unwrap() error { return e.Err }
