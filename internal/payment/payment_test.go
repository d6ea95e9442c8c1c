package payment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemoProvider_Bounds(t *testing.T) {
	p := DemoProvider{MinINR: 100, MaxINR: 50000}
	ctx := context.Background()

	_, err := p.Charge(ctx, "guest", 99)
	assert.ErrorIs(t, err, ErrDeclined)

	_, err = p.Charge(ctx, "guest", 50001)
	assert.ErrorIs(t, err, ErrDeclined)

	r, err := p.Charge(ctx, "guest", 100)
	require.NoError(t, err)
	assert.Equal(t, 100, r.AmountINR)

	r, err = p.Charge(ctx, "guest", 50000)
	require.NoError(t, err)
	assert.NotEmpty(t, r.Ref)
}

func TestDemoProvider_UniqueReferences(t *testing.T) {
	p := DemoProvider{MinINR: 100, MaxINR: 50000}
	a, err := p.Charge(context.Background(), "guest", 800)
	require.NoError(t, err)
	b, err := p.Charge(context.Background(), "guest", 800)
	require.NoError(t, err)
	assert.NotEqual(t, a.Ref, b.Ref)
}
