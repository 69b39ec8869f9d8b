package models

import "time"

// TripStage is the explicit progress state of a trip session.
type TripStage string

const (
	StageSearching        TripStage = "searching"
	StageOutboundSelected TripStage = "outbound_selected"
	StageReturnSelected   TripStage = "return_selected"
	StageLodgingSelected  TripStage = "lodging_selected"
	StageLodgingSkipped   TripStage = "lodging_skipped"
	StageCheckout         TripStage = "checkout"
	StageConfirmed        TripStage = "confirmed"
)

// TripSession holds a user's in-progress booking selections. Selected flights
// and lodgings are snapshot copies captured at selection time; re-fetching a
// search list never retroactively changes a selection.
type TripSession struct {
	ID         string    `json:"id"`
	Stage      TripStage `json:"stage"`
	RoundTrip  bool      `json:"roundTrip"`
	SkipHotels bool      `json:"skipHotels"`
	Outbound   *Flight   `json:"outbound,omitempty"`
	Return     *Flight   `json:"return,omitempty"`
	Lodgings   []Hotel   `json:"lodgings,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
