package models

import "time"

// Itinerary is the snapshot of selections frozen into a booking record.
type Itinerary struct {
	Outbound *Flight `json:"outbound,omitempty" bson:"outbound,omitempty"`
	Return   *Flight `json:"return,omitempty" bson:"return,omitempty"`
	Lodgings []Hotel `json:"lodgings,omitempty" bson:"lodgings,omitempty"`
}

// Invoice records the payment outcome for a booking.
type Invoice struct {
	InvoiceID string    `json:"invoiceId" bson:"invoiceId"`
	Amount    float64   `json:"amount" bson:"amount"`
	Currency  string    `json:"currency" bson:"currency"`
	Method    string    `json:"method" bson:"method"`
	Status    string    `json:"status" bson:"status"`
	PaymentID string    `json:"paymentId,omitempty" bson:"paymentId,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// BookingRecord is the persisted confirmation of a completed checkout.
type BookingRecord struct {
	ID           string    `json:"id" bson:"id"`
	SessionID    string    `json:"sessionId" bson:"sessionId"`
	Itinerary    Itinerary `json:"itinerary" bson:"itinerary"`
	Total        float64   `json:"total" bson:"total"`
	Fee          float64   `json:"fee" bson:"fee"`
	Invoice      Invoice   `json:"invoice" bson:"invoice"`
	ReminderSent bool      `json:"reminderSent" bson:"reminderSent"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PaymentInput is what the client submits at checkout.
type PaymentInput struct {
	Method   string `json:"method" binding:"required"` // "card" or "cash"
	Currency string `json:"currency"`
}

// ReminderPayload is the asynq task payload for departure reminders.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"`
}
