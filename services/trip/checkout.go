package trip

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"voyago/models"
	"voyago/services/tasks"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// reminderLead is how far ahead of departure the reminder fires.
const reminderLead = 24 * time.Hour

// Checkout finalizes a session in the checkout stage: computes the total
// server-side, takes payment, persists the booking record, transitions the
// session to confirmed and clears the selection for a new search.
func (s *DefaultTripSessionService) Checkout(ctx context.Context, id string, payment models.PaymentInput) (*models.BookingRecord, error) {
	session, err := s.Store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transition(session, models.StageConfirmed); err != nil {
		return nil, err
	}

	total := s.total(session)
	currency := payment.Currency
	if currency == "" {
		currency = "USD"
	}

	invoice, err := s.processPayment(payment.Method, total, currency)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	record := models.BookingRecord{
		ID:        uuid.New().String(),
		SessionID: session.ID,
		Itinerary: models.Itinerary{
			Outbound: session.Outbound,
			Return:   session.Return,
			Lodgings: session.Lodgings,
		},
		Total:     total,
		Fee:       s.BookingFee,
		Invoice:   *invoice,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.Bookings.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to persist booking record: %w", err)
	}

	s.scheduleReminder(record)

	// Confirmed; wipe the selection so the session can start a new search.
	session.Stage = models.StageSearching
	session.Outbound = nil
	session.Return = nil
	session.Lodgings = nil
	session.SkipHotels = false
	if _, err := s.save(ctx, session); err != nil {
		s.Logger.Error("failed to reset session after checkout",
			zap.String("sessionID", session.ID), zap.Error(err))
	}

	s.Logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.Float64("total", total))
	return &record, nil
}

// processPayment creates a stripe PaymentIntent when a key is configured;
// cash payments and keyless deployments get a simulated reference.
func (s *DefaultTripSessionService) processPayment(method string, amount float64, currency string) (*models.Invoice, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("invalid payment amount: %.2f", amount)
	}

	now := time.Now()
	inv := &models.Invoice{
		InvoiceID: uuid.New().String(),
		Amount:    amount,
		Currency:  currency,
		Method:    method,
		Status:    "pending",
		CreatedAt: now,
		UpdatedAt: now,
	}

	switch method {
	case "card":
		if s.StripeKey != "" {
			pi, err := paymentintent.New(&stripe.PaymentIntentParams{
				Amount:   stripe.Int64(int64(math.Round(amount * 100))),
				Currency: stripe.String(strings.ToLower(currency)),
				AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
					Enabled: stripe.Bool(true),
				},
			})
			if err != nil {
				return nil, fmt.Errorf("stripe payment intent failed: %w", err)
			}
			inv.PaymentID = pi.ID
		} else {
			inv.PaymentID = "pi_" + uuid.New().String()
		}
		inv.Status = "paid"
	case "cash":
		// Remains pending until settled in person.
	default:
		return nil, fmt.Errorf("unsupported payment method: %s", method)
	}

	inv.UpdatedAt = time.Now()
	return inv, nil
}

// scheduleReminder enqueues a departure reminder when the outbound carries a
// parseable future departure. Failures are logged, never fatal to checkout.
func (s *DefaultTripSessionService) scheduleReminder(record models.BookingRecord) {
	if s.TaskClient == nil || record.Itinerary.Outbound == nil {
		return
	}
	out := record.Itinerary.Outbound
	if out.Date == "" || out.DepartureTime == "" {
		return
	}
	departure, err := time.ParseInLocation("2006-01-02 15:04", out.Date+" "+out.DepartureTime, time.Local)
	if err != nil {
		return
	}
	fireAt := departure.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	payload := models.ReminderPayload{
		BookingID: record.ID,
		Title:     "Your trip is coming up",
		Body:      fmt.Sprintf("Flight %s to %s departs %s at %s.", out.FlightNumber, out.To, out.Date, out.DepartureTime),
		FireDate:  fireAt.Format(time.RFC3339),
	}
	task, opts, err := tasks.NewDepartureReminderTask(payload, fireAt)
	if err != nil {
		s.Logger.Error("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.TaskClient.Enqueue(task, opts...); err != nil {
		s.Logger.Error("failed to enqueue reminder task", zap.Error(err))
	}
}
