package booking

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/AyushTomarOG/besturf/internal/catalog"
	"github.com/AyushTomarOG/besturf/internal/model"
	"github.com/AyushTomarOG/besturf/internal/payment"
)

// State names the stages of a single booking session. The UI drives the
// transitions; this core validates each transition's preconditions.
type State string

const (
	StateBrowsing       State = "BROWSING"
	StateSlotSelection  State = "SLOT_SELECTION"
	StateAmountReview   State = "AMOUNT_REVIEW"
	StatePaymentPending State = "PAYMENT_PENDING"
	StateConfirmed      State = "CONFIRMED"
	StateCancelled      State = "CANCELLED"
)

// terminal reports whether no further transitions exist from s.
func (s State) terminal() bool {
	return s == StateConfirmed || s == StateCancelled
}

// Session is the explicit context object for one booking attempt. The
// catalog and owner identity are injected at construction instead of living
// in package globals; the session owns its draft exclusively.
type Session struct {
	catalog *catalog.Store
	owner   string
	now     func() time.Time

	state State
	venue model.VenueRecord
	draft model.BookingDraft
}

// NewSession starts a browsing session for the given owner identity
// (an email, or model.GuestOwner).
func NewSession(cat *catalog.Store, owner string) *Session {
	if owner == "" {
		owner = model.GuestOwner
	}
	return &Session{
		catalog: cat,
		owner:   owner,
		now:     time.Now,
		state:   StateBrowsing,
	}
}

// State returns the current session state.
func (s *Session) State() State { return s.state }

// Owner returns the identity the session was opened for.
func (s *Session) Owner() string { return s.owner }

// Draft returns a copy of the in-progress draft.
func (s *Session) Draft() model.BookingDraft {
	d := s.draft
	d.Slots = append([]string(nil), s.draft.Slots...)
	return d
}

// SelectVenue chooses the venue to book and moves the session to slot
// selection. Re-selecting is allowed before payment and resets the slot
// selection and date.
func (s *Session) SelectVenue(id int) error {
	if s.state.terminal() {
		return ErrSessionClosed
	}
	v, ok := s.catalog.Get(id)
	if !ok {
		return ErrUnknownVenue
	}
	s.venue = v
	s.draft = model.BookingDraft{TurfID: v.ID}
	s.state = StateSlotSelection
	return nil
}

// ToggleSlot adds the slot to the selection, or removes it when already
// selected, and recomputes the amount. It returns the new amount. With at
// least one slot selected the session sits in amount review; toggling the
// last slot off drops it back to slot selection.
func (s *Session) ToggleSlot(slot string) (int, error) {
	if s.state.terminal() {
		return 0, ErrSessionClosed
	}
	if s.state == StateBrowsing {
		return 0, ErrNoVenueSelected
	}
	if !slices.Contains(s.venue.Slots, slot) {
		return s.draft.Amount, ErrSlotNotOffered
	}
	if i := slices.Index(s.draft.Slots, slot); i >= 0 {
		s.draft.Slots = slices.Delete(s.draft.Slots, i, i+1)
	} else {
		s.draft.Slots = append(s.draft.Slots, slot)
	}
	s.draft.Amount = ComputeAmount(s.venue.Price, len(s.draft.Slots))
	if len(s.draft.Slots) > 0 {
		s.state = StateAmountReview
	} else {
		s.state = StateSlotSelection
	}
	return s.draft.Amount, nil
}

// SetDate records the requested calendar date ("YYYY-MM-DD"). The value is
// validated when the session proceeds to payment.
func (s *Session) SetDate(date string) error {
	if s.state.terminal() {
		return ErrSessionClosed
	}
	if s.state == StateBrowsing {
		return ErrNoVenueSelected
	}
	s.draft.Date = date
	return nil
}

// ProceedToPayment validates the draft and, on success, moves the session to
// payment pending. On validation failure the session stays where it was and
// the distinguishable error is returned to the caller.
func (s *Session) ProceedToPayment() error {
	if s.state.terminal() {
		return ErrSessionClosed
	}
	if s.state == StateBrowsing {
		return ErrNoVenueSelected
	}
	if err := ValidateDraft(s.draft, s.now()); err != nil {
		return err
	}
	s.state = StatePaymentPending
	return nil
}

// Confirm charges the draft amount through the provider and, on success,
// converts the draft into a ConfirmedBooking. A declined charge leaves the
// session in payment pending so the user may retry or cancel.
func (s *Session) Confirm(ctx context.Context, provider payment.Provider) (model.ConfirmedBooking, error) {
	if s.state.terminal() {
		return model.ConfirmedBooking{}, ErrSessionClosed
	}
	if s.state != StatePaymentPending {
		return model.ConfirmedBooking{}, ErrNotPaymentPending
	}
	receipt, err := provider.Charge(ctx, s.owner, s.draft.Amount)
	if err != nil {
		return model.ConfirmedBooking{}, err
	}
	now := s.now().UTC()
	b := model.ConfirmedBooking{
		ID:         nextBookingID(now),
		TurfID:     s.venue.ID,
		TurfName:   s.venue.Name,
		Date:       s.draft.Date,
		Slots:      append([]string(nil), s.draft.Slots...),
		Amount:     s.draft.Amount,
		Owner:      s.owner,
		Status:     model.StatusConfirmed,
		PaymentRef: receipt.Ref,
		CreatedAt:  now,
	}
	s.state = StateConfirmed
	return b, nil
}

// Cancel discards the draft and closes the session. Cancelling an already
// cancelled session is a no-op; a confirmed session cannot be cancelled.
func (s *Session) Cancel() error {
	if s.state == StateConfirmed {
		return ErrSessionClosed
	}
	s.draft = model.BookingDraft{}
	s.state = StateCancelled
	return nil
}

var (
	idMu   sync.Mutex
	lastID int64
)

// nextBookingID derives a booking id from the wall clock in milliseconds,
// bumped when two confirmations land in the same millisecond so ids stay
// strictly increasing within the process.
func nextBookingID(now time.Time) int64 {
	idMu.Lock()
	defer idMu.Unlock()
	id := now.UnixMilli()
	if id <= lastID {
		id = lastID + 1
	}
	lastID = id
	return id
}
