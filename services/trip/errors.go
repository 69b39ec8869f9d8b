package trip

import (
	"errors"
	"fmt"

	"voyago/models"
)

// ErrSessionNotFound means the session ID has no stored (or unexpired) state.
var ErrSessionNotFound = errors.New("trip session not found or expired")

// ErrNotRoundTrip is returned when a return flight is selected on a one-way
// session.
var ErrNotRoundTrip = errors.New("return flight requires a round-trip session")

// ErrLodgingNotFound is returned when removing a lodging that is not in the
// selection.
var ErrLodgingNotFound = errors.New("lodging is not part of the selection")

// IllegalTransitionError reports a stage change the trip state machine does
// not allow.
type IllegalTransitionError struct {
	From models.TripStage
	To   models.TripStage
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("illegal trip transition: %s -> %s", e.From, e.To)
}
