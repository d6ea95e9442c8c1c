package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AyushTomarOG/besturf/internal/model"
	"github.com/AyushTomarOG/besturf/internal/seed"
)

func seededStore(t *testing.T) *Store {
	t.Helper()
	s := New()
	require.NoError(t, s.Load(seed.Venues()))
	return s
}

func TestLoad_RejectsDuplicateIDs(t *testing.T) {
	s := New()
	require.NoError(t, s.Load(seed.Venues()))
	before := s.Len()

	dup := []model.VenueRecord{
		{ID: 7, Name: "A", Location: "X", Sport: "Football", Price: 100},
		{ID: 7, Name: "B", Location: "Y", Sport: "Cricket", Price: 200},
	}
	err := s.Load(dup)
	require.Error(t, err)

	var dupErr *DuplicateIDError
	require.ErrorAs(t, err, &dupErr)
	assert.Equal(t, 7, dupErr.ID)

	// Failed load leaves the prior catalog intact.
	assert.Equal(t, before, s.Len())
	_, ok := s.Get(1)
	assert.True(t, ok)
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	s := seededStore(t)

	for _, q := range []string{"cricket", "CRICKET", "Cricket", "crick"} {
		got := s.Search(q)
		require.Len(t, got, 1, "query %q", q)
		assert.Equal(t, "City Cricket Ground", got[0].Name)
	}

	// Location matches too.
	got := s.Search("mumbai")
	require.Len(t, got, 1)
	assert.Equal(t, "Green Valley Sports", got[0].Name)
}

func TestSearch_EmptyQueryReturnsFullCatalogInOrder(t *testing.T) {
	s := seededStore(t)
	got := s.Search("")
	require.Len(t, got, s.Len())
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID)
	}
}

func TestFilterBySport(t *testing.T) {
	s := seededStore(t)

	got := s.FilterBySport("tennis")
	require.Len(t, got, 1)
	assert.Equal(t, "Tennis Academy", got[0].Name)

	// Empty selector is the identity filter.
	assert.Len(t, s.FilterBySport(""), s.Len())
}

func TestFilterByPrice_InclusiveBounds(t *testing.T) {
	records := []model.VenueRecord{
		{ID: 1, Price: 500},
		{ID: 2, Price: 800},
	}
	max := 500
	got := FilterByPrice(records, 0, &max)
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID, "price 500 is inside the 0-500 bucket, 800 is not")
}

func TestFilterByPrice_OpenEndedBucket(t *testing.T) {
	s := seededStore(t)
	got := s.FilterByPrice(1000, nil)
	require.Len(t, got, 1)
	assert.Equal(t, "City Cricket Ground", got[0].Name)
}

func TestFilterByDistance_MumbaiRadius(t *testing.T) {
	s := seededStore(t)

	// From central Mumbai with a 50 km radius only the Mumbai venue remains;
	// Pune is the next closest at ~120 km.
	got := s.FilterByDistance(19.0760, 72.8777, 50)
	require.Len(t, got, 1)
	assert.Equal(t, "Green Valley Sports", got[0].Name)
}

func TestFiltersDoNotMutateStore(t *testing.T) {
	s := seededStore(t)
	_ = s.Search("cricket")
	_ = s.FilterBySport("tennis")
	_ = s.FilterByDistance(0, 0, 1)
	assert.Equal(t, len(seed.Venues()), s.Len())

	// Mutating a returned slice must not leak into the store.
	all := s.All()
	all[0].Name = "mutated"
	fresh, _ := s.Get(all[0].ID)
	assert.NotEqual(t, "mutated", fresh.Name)
}

func TestParsePriceBucket(t *testing.T) {
	min, max, ok, err := ParsePriceBucket("0-500")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 0, min)
	require.NotNil(t, max)
	assert.Equal(t, 500, *max)

	min, max, ok, err = ParsePriceBucket("1000+")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 1000, min)
	assert.Nil(t, max)

	_, _, ok, err = ParsePriceBucket("")
	require.NoError(t, err)
	assert.False(t, ok)

	for _, bad := range []string{"abc", "500-", "-100", "900-100", "x+"} {
		_, _, _, err := ParsePriceBucket(bad)
		assert.Error(t, err, "bucket %q", bad)
	}
}
