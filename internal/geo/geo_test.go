package geo

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_ZeroForIdenticalPoints(t *testing.T) {
	for i := 0; i < 50; i++ {
		lat, lon := gofakeit.Latitude(), gofakeit.Longitude()
		assert.Zero(t, DistanceKm(lat, lon, lat, lon))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	for i := 0; i < 50; i++ {
		lat1, lon1 := gofakeit.Latitude(), gofakeit.Longitude()
		lat2, lon2 := gofakeit.Latitude(), gofakeit.Longitude()
		assert.InDelta(t, DistanceKm(lat1, lon1, lat2, lon2), DistanceKm(lat2, lon2, lat1, lon1), 1e-9)
	}
}

func TestDistanceKm_KnownCityPairs(t *testing.T) {
	// Mumbai -> Pune is roughly 120 km, Mumbai -> Delhi roughly 1150 km.
	mumbaiPune := DistanceKm(19.0760, 72.8777, 18.5204, 73.8567)
	assert.InDelta(t, 120, mumbaiPune, 10)

	mumbaiDelhi := DistanceKm(19.0760, 72.8777, 28.7041, 77.1025)
	assert.InDelta(t, 1150, mumbaiDelhi, 30)
}

func TestDistanceKm_MonotonicWithAngularSeparation(t *testing.T) {
	// Walking east along the equator, distance from the origin grows.
	prev := 0.0
	for lon := 1.0; lon <= 179; lon++ {
		d := DistanceKm(0, 0, 0, lon)
		assert.Greater(t, d, prev, "distance should grow at lon=%v", lon)
		prev = d
	}
}

func TestDistanceKm_QuarterCircumference(t *testing.T) {
	// Equator to pole is a quarter of the great circle.
	d := DistanceKm(0, 0, 90, 0)
	assert.InDelta(t, EarthRadiusKm*3.14159265/2, d, 1)
}
