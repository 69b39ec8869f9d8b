package completion

import (
	"errors"
	"fmt"
)

var (
	// ErrCredentialMissing means no key could be resolved; no network call was made.
	ErrCredentialMissing = errors.New("completion credential missing")
	// ErrCredentialInvalid maps an upstream 401.
	ErrCredentialInvalid = errors.New("completion credential rejected")
	// ErrRateLimited maps an upstream 429.
	ErrRateLimited = errors.New("completion endpoint rate limited")
	// ErrTimeout means the single attempt hit the hard deadline.
	ErrTimeout = errors.New("completion request timed out")
	// ErrEmptyCompletion means a 2xx response carried no usable content.
	ErrEmptyCompletion = errors.New("completion returned no content")
	// ErrUnparseable means every extraction strategy was exhausted.
	ErrUnparseable = errors.New("completion text contains no parseable JSON")
)

// RequestError covers non-2xx statuses outside the classified cases, keeping
// the server-provided message when one was present in the body.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("completion request failed with status %d", e.Status)
	}
	return fmt.Sprintf("completion request failed with status %d: %s", e.Status, e.Message)
}
