package booking

import (
	"time"

	"github.com/AyushTomarOG/besturf/internal/model"
)

// DateLayout is the calendar-date format used across drafts and bookings.
const DateLayout = "2006-01-02"

// ComputeAmount returns the rupee total for a slot selection at the given
// hourly price. Zero selected slots yields zero: an incomplete draft is a
// valid state for the UI to show, not a computation failure.
func ComputeAmount(unitPrice, selectedSlotCount int) int {
	if selectedSlotCount <= 0 {
		return 0
	}
	return unitPrice * selectedSlotCount
}

// ValidateDraft checks whether a draft may proceed to payment. today is the
// caller's current wall-clock time; only its calendar date matters. Errors
// are reported in a fixed precedence: missing date, invalid date, empty slot
// selection.
func ValidateDraft(d model.BookingDraft, today time.Time) error {
	if d.Date == "" {
		return ErrMissingDate
	}
	date, err := time.Parse(DateLayout, d.Date)
	if err != nil {
		return ErrInvalidDate
	}
	// Compare calendar dates, not instants: booking for later today is fine.
	if date.Format(DateLayout) < today.Format(DateLayout) {
		return ErrInvalidDate
	}
	if len(d.Slots) == 0 {
		return ErrNoSlotsSelected
	}
	return nil
}
