// Package payment defines the boundary to the external payment provider.
// The booking core only ever calls through the Provider interface; it never
// implements payment processing itself.
package payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrDeclined is returned when the provider refuses a charge. The booking
// session stays in its payment-pending state so the user may retry or cancel.
var ErrDeclined = errors.New("payment declined")

// Receipt is the provider's proof of a successful charge.
type Receipt struct {
	Ref       string // provider-side payment reference
	AmountINR int    // amount actually charged, whole rupees
}

// Provider charges the booking owner for the draft amount. Implementations
// are expected to be idempotent per (owner, amount, external context) at
// their own discretion; this core treats each Charge call as a new attempt.
type Provider interface {
	Charge(ctx context.Context, owner string, amountINR int) (Receipt, error)
}

// DemoProvider approves every charge inside the configured rupee bounds and
// issues a uuid reference. It stands in for a real gateway during local
// runs; nothing in it should be mistaken for payment processing.
type DemoProvider struct {
	MinINR int
	MaxINR int
}

// Charge implements Provider.
func (p DemoProvider) Charge(_ context.Context, _ string, amountINR int) (Receipt, error) {
	if amountINR < p.MinINR || amountINR > p.MaxINR {
		return Receipt{}, fmt.Errorf("%w: amount %d outside [%d,%d]", ErrDeclined, amountINR, p.MinINR, p.MaxINR)
	}
	return Receipt{Ref: uuid.NewString(), AmountINR: amountINR}, nil
}
