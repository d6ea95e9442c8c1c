package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushTomarOG/besturf/internal/catalog"
	"github.com/AyushTomarOG/besturf/internal/model"
	"github.com/AyushTomarOG/besturf/internal/payment"
	"github.com/AyushTomarOG/besturf/internal/seed"
)

// acceptAll is a provider that approves every charge.
type acceptAll struct{ charged int }

func (p *acceptAll) Charge(_ context.Context, _ string, amountINR int) (payment.Receipt, error) {
	p.charged = amountINR
	return payment.Receipt{Ref: "test-ref", AmountINR: amountINR}, nil
}

// declineAll refuses every charge.
type declineAll struct{}

func (declineAll) Charge(context.Context, string, int) (payment.Receipt, error) {
	return payment.Receipt{}, payment.ErrDeclined
}

func testSession(t *testing.T, owner string) *Session {
	t.Helper()
	store := catalog.New()
	require.NoError(t, store.Load(seed.Venues()))
	s := NewSession(store, owner)
	// Fixed clock keeps date validation deterministic.
	s.now = func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }
	return s
}

func TestSession_HappyPath(t *testing.T) {
	s := testSession(t, "ayush@example.com")
	assert.Equal(t, StateBrowsing, s.State())

	require.NoError(t, s.SelectVenue(1)) // Green Valley Sports, ₹800/hour
	assert.Equal(t, StateSlotSelection, s.State())

	amount, err := s.ToggleSlot("06:00-07:00")
	require.NoError(t, err)
	assert.Equal(t, 800, amount)
	assert.Equal(t, StateAmountReview, s.State())

	amount, err = s.ToggleSlot("07:00-08:00")
	require.NoError(t, err)
	assert.Equal(t, 1600, amount, "two slots at ₹800")

	require.NoError(t, s.SetDate("2026-09-02"))
	require.NoError(t, s.ProceedToPayment())
	assert.Equal(t, StatePaymentPending, s.State())

	provider := &acceptAll{}
	b, err := s.Confirm(context.Background(), provider)
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, s.State())
	assert.Equal(t, 1600, provider.charged)
	assert.Equal(t, 1, b.TurfID)
	assert.Equal(t, "Green Valley Sports", b.TurfName)
	assert.Equal(t, []string{"06:00-07:00", "07:00-08:00"}, b.Slots)
	assert.Equal(t, "ayush@example.com", b.Owner)
	assert.Equal(t, model.StatusConfirmed, b.Status)
	assert.Equal(t, "test-ref", b.PaymentRef)
	assert.Positive(t, b.ID)
}

func TestSession_ToggleRecomputesAmount(t *testing.T) {
	s := testSession(t, "")
	require.NoError(t, s.SelectVenue(3)) // Tennis Academy, ₹600/hour

	amount, _ := s.ToggleSlot("06:00-07:00")
	assert.Equal(t, 600, amount)
	amount, _ = s.ToggleSlot("17:00-18:00")
	assert.Equal(t, 1200, amount)

	// Toggling a selected slot removes it again.
	amount, err := s.ToggleSlot("06:00-07:00")
	require.NoError(t, err)
	assert.Equal(t, 600, amount)

	amount, err = s.ToggleSlot("17:00-18:00")
	require.NoError(t, err)
	assert.Equal(t, 0, amount)
	assert.Equal(t, StateSlotSelection, s.State(), "no slots left drops back to slot selection")
}

func TestSession_SlotMustBeOffered(t *testing.T) {
	s := testSession(t, "")
	require.NoError(t, s.SelectVenue(1))
	_, err := s.ToggleSlot("03:00-04:00")
	assert.ErrorIs(t, err, ErrSlotNotOffered)
	assert.Equal(t, StateSlotSelection, s.State())
}

func TestSession_ValidationFailuresKeepState(t *testing.T) {
	s := testSession(t, "")
	require.NoError(t, s.SelectVenue(1))

	// No slots, no date.
	assert.ErrorIs(t, s.ProceedToPayment(), ErrMissingDate)
	assert.Equal(t, StateSlotSelection, s.State())

	_, err := s.ToggleSlot("06:00-07:00")
	require.NoError(t, err)

	require.NoError(t, s.SetDate("2026-08-31")) // yesterday
	assert.ErrorIs(t, s.ProceedToPayment(), ErrInvalidDate)
	assert.Equal(t, StateAmountReview, s.State())

	require.NoError(t, s.SetDate("2026-09-01")) // today is fine
	_, err = s.ToggleSlot("06:00-07:00")        // deselect the only slot
	require.NoError(t, err)
	assert.ErrorIs(t, s.ProceedToPayment(), ErrNoSlotsSelected)
}

func TestSession_DeclinedChargeStaysPaymentPending(t *testing.T) {
	s := testSession(t, "")
	require.NoError(t, s.SelectVenue(2))
	_, err := s.ToggleSlot("18:00-19:00")
	require.NoError(t, err)
	require.NoError(t, s.SetDate("2026-09-03"))
	require.NoError(t, s.ProceedToPayment())

	_, err = s.Confirm(context.Background(), declineAll{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, payment.ErrDeclined))
	assert.Equal(t, StatePaymentPending, s.State(), "a declined charge allows retry or cancel")

	// Retry with a working provider succeeds.
	_, err = s.Confirm(context.Background(), &acceptAll{})
	assert.NoError(t, err)
}

func TestSession_TerminalStates(t *testing.T) {
	s := testSession(t, "")
	require.NoError(t, s.SelectVenue(1))
	_, err := s.ToggleSlot("06:00-07:00")
	require.NoError(t, err)
	require.NoError(t, s.SetDate("2026-09-02"))
	require.NoError(t, s.ProceedToPayment())
	_, err = s.Confirm(context.Background(), &acceptAll{})
	require.NoError(t, err)

	// No transition exists back from Confirmed.
	assert.ErrorIs(t, s.SelectVenue(2), ErrSessionClosed)
	_, err = s.ToggleSlot("06:00-07:00")
	assert.ErrorIs(t, err, ErrSessionClosed)
	assert.ErrorIs(t, s.Cancel(), ErrSessionClosed)

	// Cancel discards the draft and is itself terminal.
	s2 := testSession(t, "")
	require.NoError(t, s2.SelectVenue(1))
	require.NoError(t, s2.Cancel())
	assert.Equal(t, StateCancelled, s2.State())
	assert.Empty(t, s2.Draft().Slots)
	assert.ErrorIs(t, s2.SelectVenue(1), ErrSessionClosed)
	_, err = s2.Confirm(context.Background(), &acceptAll{})
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_UnknownVenue(t *testing.T) {
	s := testSession(t, "")
	assert.ErrorIs(t, s.SelectVenue(999), ErrUnknownVenue)
	assert.Equal(t, StateBrowsing, s.State())

	_, err := s.ToggleSlot("06:00-07:00")
	assert.ErrorIs(t, err, ErrNoVenueSelected)
	assert.ErrorIs(t, s.ProceedToPayment(), ErrNoVenueSelected)
}

func TestSession_GuestOwnerDefault(t *testing.T) {
	s := testSession(t, "")
	assert.Equal(t, model.GuestOwner, s.Owner())
}

func TestNextBookingID_Monotonic(t *testing.T) {
	now := time.Now()
	a := nextBookingID(now)
	b := nextBookingID(now) // same millisecond must still increase
	c := nextBookingID(now.Add(time.Second))
	assert.Greater(t, b, a)
	assert.Greater(t, c, b)
}
