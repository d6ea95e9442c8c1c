// Package booking implements the amount calculator, the draft validation
// rules and the per-session booking state machine. Validation failures are
// sentinel errors so handlers can distinguish them with errors.Is; none of
// them corrupts session state.
package booking

import "errors"

// Draft validation errors. All are recoverable: the session stays where it
// was and the caller surfaces the failure to the user.
var (
	// ErrMissingDate is returned when the draft has no booking date.
	ErrMissingDate = errors.New("booking date is required")
	// ErrInvalidDate is returned when the booking date is before today or
	// not a valid calendar date.
	ErrInvalidDate = errors.New("booking date must be today or later")
	// ErrNoSlotsSelected is returned when the slot selection is empty.
	ErrNoSlotsSelected = errors.New("select at least one time slot")
)

// Session transition errors.
var (
	// ErrUnknownVenue is returned when the selected venue id is not in the
	// catalog.
	ErrUnknownVenue = errors.New("unknown venue")
	// ErrSlotNotOffered is returned when a toggled slot is not on the
	// selected venue's slot list.
	ErrSlotNotOffered = errors.New("slot not offered by this venue")
	// ErrNoVenueSelected is returned for slot/date/payment operations
	// attempted before a venue was chosen.
	ErrNoVenueSelected = errors.New("no venue selected")
	// ErrNotPaymentPending is returned when Confirm is called outside the
	// payment-pending state.
	ErrNotPaymentPending = errors.New("booking is not awaiting payment")
	// ErrSessionClosed is returned for any operation on a confirmed or
	// cancelled session; both states are terminal.
	ErrSessionClosed = errors.New("booking session already finished")
)
