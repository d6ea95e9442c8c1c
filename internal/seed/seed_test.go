package seed

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushTomarOG/besturf/internal/model"
)

func TestVenues_Shape(t *testing.T) {
	venues := Venues()
	require.Len(t, venues, 6)

	seenIDs := map[int]bool{}
	seenSports := map[string]bool{}
	for _, v := range venues {
		assert.False(t, seenIDs[v.ID], "duplicate id %d", v.ID)
		seenIDs[v.ID] = true
		seenSports[strings.ToLower(v.Sport)] = true

		assert.GreaterOrEqual(t, v.ID, 1)
		assert.NotEmpty(t, v.Name)
		assert.NotEmpty(t, v.Location)
		assert.Positive(t, v.Price)
		assert.GreaterOrEqual(t, v.Rating, 0.0)
		assert.LessOrEqual(t, v.Rating, 5.0)
		assert.GreaterOrEqual(t, v.Latitude, -90.0)
		assert.LessOrEqual(t, v.Latitude, 90.0)
		assert.GreaterOrEqual(t, v.Longitude, -180.0)
		assert.LessOrEqual(t, v.Longitude, 180.0)
		assert.NotEmpty(t, v.Slots)

		distinct := map[string]bool{}
		for _, s := range v.Slots {
			assert.False(t, distinct[s], "venue %d repeats slot %s", v.ID, s)
			distinct[s] = true
		}
	}

	// Every sport category has a venue in the demo catalog.
	for _, sport := range model.Sports {
		assert.True(t, seenSports[sport], "no venue for sport %q", sport)
	}
}

func TestVenues_ReturnsFreshCopies(t *testing.T) {
	a := Venues()
	a[0].Slots[0] = "mutated"
	b := Venues()
	assert.NotEqual(t, "mutated", b[0].Slots[0])
}
