// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingConfirmedEvent is published when a turf booking is successfully
// confirmed. It carries enough denormalized detail for downstream consumers
// to log or notify without touching the catalog or the booking log.
type BookingConfirmedEvent struct {
	BookingID   int64    `json:"booking_id"`
	TurfID      int      `json:"turf_id"`
	TurfName    string   `json:"turf_name"`
	Location    string   `json:"location"`
	Date        string   `json:"date"`
	Slots       []string `json:"slots"`
	AmountINR   int      `json:"amount_inr"`
	Owner       string   `json:"owner"`
	ConfirmedAt string   `json:"confirmed_at"`
}
