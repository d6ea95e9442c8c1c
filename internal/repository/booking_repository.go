package repository

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/AyushTomarOG/besturf/internal/model"
)

// Redis keys for the booking log. "bookings" is the global append-only list;
// each owner additionally gets their own list under "userBookings:<owner>".
// Entries are JSON-encoded ConfirmedBooking values and are never rewritten.
const (
	bookingsKey        = "bookings"
	userBookingsPrefix = "userBookings:"
)

// BookingRepo appends confirmed bookings to Redis and reads them back as
// lists. A nil client is tolerated; every method then reports
// ErrLogUnavailable.
type BookingRepo struct{ RDB *redis.Client }

// NewBookingRepo wraps a Redis client, which may be nil.
func NewBookingRepo(rdb *redis.Client) *BookingRepo { return &BookingRepo{RDB: rdb} }

// Append writes the booking to the global log and the owner's log.
func (r *BookingRepo) Append(ctx context.Context, b model.ConfirmedBooking) error {
	if r.RDB == nil {
		return ErrLogUnavailable
	}
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	if err := r.RDB.RPush(ctx, bookingsKey, raw).Err(); err != nil {
		return err
	}
	return r.RDB.RPush(ctx, userBookingsPrefix+b.Owner, raw).Err()
}

// ListByOwner returns the owner's bookings in append order.
func (r *BookingRepo) ListByOwner(ctx context.Context, owner string) ([]model.ConfirmedBooking, error) {
	return r.list(ctx, userBookingsPrefix+owner)
}

// ListAll returns every booking in append order.
func (r *BookingRepo) ListAll(ctx context.Context) ([]model.ConfirmedBooking, error) {
	return r.list(ctx, bookingsKey)
}

func (r *BookingRepo) list(ctx context.Context, key string) ([]model.ConfirmedBooking, error) {
	if r.RDB == nil {
		return nil, ErrLogUnavailable
	}
	raws, err := r.RDB.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, err
	}
	out := make([]model.ConfirmedBooking, 0, len(raws))
	for _, raw := range raws {
		var b model.ConfirmedBooking
		if err := json.Unmarshal([]byte(raw), &b); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}
