package search

import (
	"errors"
	"fmt"
)

// MissingParamError names the query parameter a fetch cannot proceed without.
type MissingParamError struct {
	Field string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("missing required query parameter: %s", e.Field)
}

// ErrInvalidDomainData means the completion parsed but did not contain a
// non-empty list of records. Callers downgrade this to synthetic data; it
// never reaches a client as a hard failure.
var ErrInvalidDomainData = errors.New("parsed completion is not a non-empty record list")

// ErrLoadMoreBusy means an overlapping load-more request was rejected by the
// per-session busy flag.
var ErrLoadMoreBusy = errors.New("a load-more request is already in flight for this session")
