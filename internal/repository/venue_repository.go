package repository

import (
	"context"
	"database/sql"

	"github.com/AyushTomarOG/besturf/internal/model"
)

// VenueRepo reads venue records out of MySQL. It is only used once per
// process, to populate the in-memory catalog; all queries afterwards run
// against the catalog store.
type VenueRepo struct{ DB *sql.DB }

// NewVenueRepo wraps a database handle.
func NewVenueRepo(db *sql.DB) *VenueRepo { return &VenueRepo{DB: db} }

// LoadAll returns every venue with its amenities and slot list, in id order.
// Child rows are fetched in two bulk queries and stitched in memory to avoid
// N+1 round trips on startup.
func (r *VenueRepo) LoadAll(ctx context.Context) ([]model.VenueRecord, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, name, location, sport, price_per_hour, rating, latitude, longitude
		 FROM turfs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := []model.VenueRecord{}
	index := map[int]int{} // venue id -> position in venues
	for rows.Next() {
		var v model.VenueRecord
		if err := rows.Scan(&v.ID, &v.Name, &v.Location, &v.Sport,
			&v.Price, &v.Rating, &v.Latitude, &v.Longitude); err != nil {
			return nil, err
		}
		index[v.ID] = len(venues)
		venues = append(venues, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadChild(ctx, venues, index,
		`SELECT turf_id, label FROM turf_amenities ORDER BY turf_id, position`,
		func(v *model.VenueRecord, s string) { v.Amenities = append(v.Amenities, s) }); err != nil {
		return nil, err
	}
	if err := r.loadChild(ctx, venues, index,
		`SELECT turf_id, slot FROM turf_slots ORDER BY turf_id, position`,
		func(v *model.VenueRecord, s string) { v.Slots = append(v.Slots, s) }); err != nil {
		return nil, err
	}
	return venues, nil
}

// loadChild runs a (turf_id, value) query and appends each value onto its
// parent venue via assign. Rows for unknown venues are skipped.
func (r *VenueRepo) loadChild(ctx context.Context, venues []model.VenueRecord, index map[int]int,
	query string, assign func(*model.VenueRecord, string)) error {
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		var turfID int
		var value string
		if err := rows.Scan(&turfID, &value); err != nil {
			return err
		}
		if i, ok := index[turfID]; ok {
			assign(&venues[i], value)
		}
	}
	return rows.Err()
}
