// Package catalog holds the in-memory turf catalog and its query
// operations. The catalog is replaced wholesale by Load and never mutated
// afterwards; every filter is a pure, order-preserving function over a
// snapshot, so callers compose them by re-applying filters to previous
// results.
package catalog

import (
	"fmt"
	"strings"

	"github.com/AyushTomarOG/besturf/internal/geo"
	"github.com/AyushTomarOG/besturf/internal/model"
)

// DuplicateIDError reports a catalog load whose input contained the same
// venue identifier twice. The store keeps its previous contents when load
// fails.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("catalog: duplicate venue id %d", e.ID)
}

// Store owns the venue records for the lifetime of the process.
type Store struct {
	records []model.VenueRecord
	byID    map[int]model.VenueRecord
}

// New returns an empty store.
func New() *Store {
	return &Store{byID: map[int]model.VenueRecord{}}
}

// Load replaces the entire catalog with the given records. It fails with
// *DuplicateIDError when two records share an identifier; on failure the
// store is left in its prior valid state.
func (s *Store) Load(records []model.VenueRecord) error {
	byID := make(map[int]model.VenueRecord, len(records))
	for _, r := range records {
		if _, ok := byID[r.ID]; ok {
			return &DuplicateIDError{ID: r.ID}
		}
		byID[r.ID] = r
	}
	s.records = append([]model.VenueRecord(nil), records...)
	s.byID = byID
	return nil
}

// All returns the full catalog in insertion order. The returned slice is a
// copy; callers may filter it freely.
func (s *Store) All() []model.VenueRecord {
	return append([]model.VenueRecord(nil), s.records...)
}

// Len reports the number of venues in the catalog.
func (s *Store) Len() int { return len(s.records) }

// Get looks up a venue by id.
func (s *Store) Get(id int) (model.VenueRecord, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// Search returns the venues whose name, location or sport contains text as a
// case-insensitive substring. An empty query returns the full catalog.
func (s *Store) Search(text string) []model.VenueRecord {
	return Search(s.records, text)
}

// FilterBySport returns the venues in the given sport category. An empty
// selector is the identity filter.
func (s *Store) FilterBySport(sport string) []model.VenueRecord {
	return FilterBySport(s.records, sport)
}

// FilterByPrice returns the venues with price >= min and, when max is
// non-nil, price <= *max.
func (s *Store) FilterByPrice(min int, max *int) []model.VenueRecord {
	return FilterByPrice(s.records, min, max)
}

// FilterByDistance returns the venues within radiusKm of the origin.
func (s *Store) FilterByDistance(lat, lon, radiusKm float64) []model.VenueRecord {
	return FilterByDistance(s.records, lat, lon, radiusKm)
}

// Search filters records by case-insensitive substring match over name,
// location and sport. Result order matches input order.
func Search(records []model.VenueRecord, text string) []model.VenueRecord {
	q := strings.ToLower(strings.TrimSpace(text))
	if q == "" {
		return append([]model.VenueRecord(nil), records...)
	}
	out := []model.VenueRecord{}
	for _, r := range records {
		if strings.Contains(strings.ToLower(r.Name), q) ||
			strings.Contains(strings.ToLower(r.Location), q) ||
			strings.Contains(strings.ToLower(r.Sport), q) {
			out = append(out, r)
		}
	}
	return out
}

// FilterBySport keeps records whose sport matches exactly, ignoring case.
// An empty sport keeps everything.
func FilterBySport(records []model.VenueRecord, sport string) []model.VenueRecord {
	if sport == "" {
		return append([]model.VenueRecord(nil), records...)
	}
	out := []model.VenueRecord{}
	for _, r := range records {
		if strings.EqualFold(r.Sport, sport) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByPrice keeps records with price >= min and, when max is non-nil,
// price <= *max. Both bounds are inclusive; a nil max represents the
// open-ended "1000+" bucket.
func FilterByPrice(records []model.VenueRecord, min int, max *int) []model.VenueRecord {
	out := []model.VenueRecord{}
	for _, r := range records {
		if r.Price < min {
			continue
		}
		if max != nil && r.Price > *max {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterByDistance keeps records whose great-circle distance from the origin
// is at most radiusKm.
func FilterByDistance(records []model.VenueRecord, lat, lon, radiusKm float64) []model.VenueRecord {
	out := []model.VenueRecord{}
	for _, r := range records {
		if geo.DistanceKm(lat, lon, r.Latitude, r.Longitude) <= radiusKm {
			out = append(out, r)
		}
	}
	return out
}
