// Package seed embeds the demo turf catalog used when no database is
// configured. It is the canonical form of the sample data: every venue
// carries coordinates and its own slot list.
package seed

import "github.com/AyushTomarOG/besturf/internal/model"

// defaultSlots is the hour grid most venues offer: early mornings and
// evenings, when turfs actually get booked.
var defaultSlots = []string{
	"06:00-07:00",
	"07:00-08:00",
	"08:00-09:00",
	"17:00-18:00",
	"18:00-19:00",
	"19:00-20:00",
}

// Venues returns the six-city demo catalog. One venue per sport category,
// identifiers stable so bookings made against the seed stay meaningful
// across restarts.
func Venues() []model.VenueRecord {
	return []model.VenueRecord{
		{
			ID:        1,
			Name:      "Green Valley Sports",
			Location:  "Mumbai",
			Sport:     "Football",
			Price:     800,
			Rating:    4.5,
			Amenities: []string{"Parking", "Changing Rooms"},
			Latitude:  19.0760,
			Longitude: 72.8777,
			Slots:     slots(),
		},
		{
			ID:        2,
			Name:      "City Cricket Ground",
			Location:  "Delhi",
			Sport:     "Cricket",
			Price:     1200,
			Rating:    4.8,
			Amenities: []string{"Parking", "Cafeteria"},
			Latitude:  28.7041,
			Longitude: 77.1025,
			Slots:     slots(),
		},
		{
			ID:        3,
			Name:      "Tennis Academy",
			Location:  "Bangalore",
			Sport:     "Tennis",
			Price:     600,
			Rating:    4.3,
			Amenities: []string{"Parking", "Equipment"},
			Latitude:  12.9716,
			Longitude: 77.5946,
			Slots:     slots(),
		},
		{
			ID:        4,
			Name:      "Marina Smash Courts",
			Location:  "Chennai",
			Sport:     "Badminton",
			Price:     500,
			Rating:    4.2,
			Amenities: []string{"Parking", "AC Courts"},
			Latitude:  13.0827,
			Longitude: 80.2707,
			Slots:     slots(),
		},
		{
			ID:        5,
			Name:      "Deccan Hoops Arena",
			Location:  "Pune",
			Sport:     "Basketball",
			Price:     700,
			Rating:    4.4,
			Amenities: []string{"Parking", "Flood Lights"},
			Latitude:  18.5204,
			Longitude: 73.8567,
			Slots:     slots(),
		},
		{
			ID:        6,
			Name:      "Charminar Volley Park",
			Location:  "Hyderabad",
			Sport:     "Volleyball",
			Price:     450,
			Rating:    4.1,
			Amenities: []string{"Parking", "Drinking Water"},
			Latitude:  17.3850,
			Longitude: 78.4867,
			Slots:     slots(),
		},
	}
}

func slots() []string {
	return append([]string(nil), defaultSlots...)
}
