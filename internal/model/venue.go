package model

// VenueRecord describes a bookable turf as held by the catalog store. The
// catalog is immutable after load, so records are plain values: handlers and
// filters copy slices of them freely without synchronization.
//
// Fields:
//
//	ID        – unique positive identifier within the catalog.
//	Name      – display name, non-empty.
//	Location  – city/locality label.
//	Sport     – one of the categories in Sports (matched case-insensitively).
//	Price     – hourly price in whole rupees.
//	Rating    – average rating in [0,5].
//	Amenities – ordered amenity labels, may be empty.
//	Latitude  – in [-90,90].
//	Longitude – in [-180,180].
//	Slots     – ordered, distinct bookable intervals, e.g. "09:00-10:00".
type VenueRecord struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Location  string   `json:"location"`
	Sport     string   `json:"sport"`
	Price     int      `json:"price"`
	Rating    float64  `json:"rating"`
	Amenities []string `json:"amenities"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Slots     []string `json:"slots"`
}

// Sports is the fixed set of sport categories a venue may belong to.
var Sports = []string{
	"football",
	"cricket",
	"tennis",
	"badminton",
	"basketball",
	"volleyball",
}
