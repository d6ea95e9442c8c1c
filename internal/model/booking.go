package model

import "time"

// Booking status values. A confirmed booking is never mutated afterwards;
// cancellation before payment simply discards the draft.
const (
	StatusConfirmed = "CONFIRMED"
)

// GuestOwner is the owner identity used when no authenticated user is
// attached to the request or session.
const GuestOwner = "guest"

// BookingDraft is the transient, unconfirmed booking a session builds up.
// It references its venue by id only; the catalog remains the single source
// of truth for venue data.
//
// Fields:
//
//	TurfID – identifier of the selected venue.
//	Date   – calendar date "YYYY-MM-DD"; must be today or later.
//	Slots  – selected slots drawn from the venue's slot list.
//	Amount – rupee total, recomputed on every slot toggle.
type BookingDraft struct {
	TurfID int      `json:"turf_id"`
	Date   string   `json:"date"`
	Slots  []string `json:"slots"`
	Amount int      `json:"amount"`
}

// ConfirmedBooking is the record appended to the booking log once the
// payment provider accepts a charge. Venue name and amount are denormalized
// so the log is readable without the catalog.
//
// Fields:
//
//	ID         – millisecond timestamp, monotonic within the process.
//	TurfID     – venue identifier at confirmation time.
//	TurfName   – denormalized venue name.
//	Date       – booked calendar date "YYYY-MM-DD".
//	Slots      – booked slots.
//	Amount     – rupee total charged.
//	Owner      – email of the booking user, or "guest".
//	Status     – always CONFIRMED in this log.
//	PaymentRef – reference returned by the payment provider.
//	CreatedAt  – confirmation timestamp (UTC).
type ConfirmedBooking struct {
	ID         int64     `json:"id"`
	TurfID     int       `json:"turf_id"`
	TurfName   string    `json:"turf_name"`
	Date       string    `json:"date"`
	Slots      []string  `json:"slots"`
	Amount     int       `json:"amount"`
	Owner      string    `json:"user"`
	Status     string    `json:"status"`
	PaymentRef string    `json:"payment_ref"`
	CreatedAt  time.Time `json:"created_at"`
}
