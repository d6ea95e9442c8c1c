// Package handler exposes the HTTP surface of the turf service. This file
// covers the public catalog routes: listing, search, nearby filtering and
// per-venue detail. Responses carry catalog records as-is; the catalog
// holds nothing sensitive.
package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/AyushTomarOG/besturf/internal/catalog"
	"github.com/AyushTomarOG/besturf/internal/model"
)

// TurfHandler serves catalog queries against the in-memory store.
type TurfHandler struct {
	Catalog         *catalog.Store
	DefaultRadiusKm float64 // radius for /nearby when the client omits one
}

// NewTurfHandler constructs a TurfHandler. The catalog must be non-nil.
func NewTurfHandler(cat *catalog.Store, defaultRadiusKm float64) *TurfHandler {
	if cat == nil {
		panic("nil catalog passed to NewTurfHandler")
	}
	return &TurfHandler{Catalog: cat, DefaultRadiusKm: defaultRadiusKm}
}

// ListTurfs handles GET /v1/turfs. Optional query parameters combine as an
// intersection of pure filters over the catalog snapshot:
//
//	q     – case-insensitive substring over name/location/sport
//	sport – exact sport category, case-insensitive
//	price – bucket selector: "0-500", "500-1000", "1000+"
func (h *TurfHandler) ListTurfs(c echo.Context) error {
	records := h.Catalog.Search(c.QueryParam("q"))
	records = catalog.FilterBySport(records, c.QueryParam("sport"))

	min, max, ok, err := catalog.ParsePriceBucket(c.QueryParam("price"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	if ok {
		records = catalog.FilterByPrice(records, min, max)
	}
	return c.JSON(http.StatusOK, turfList(records))
}

// SearchTurfs handles GET /v1/turfs/search?q=. An empty query returns the
// full catalog, matching the search-box behavior of the original UI.
func (h *TurfHandler) SearchTurfs(c echo.Context) error {
	return c.JSON(http.StatusOK, turfList(h.Catalog.Search(c.QueryParam("q"))))
}

// NearbyTurfs handles GET /v1/turfs/nearby?lat=&lon=&radius_km=. Geolocation
// is a degraded input, not a requirement: when lat/lon are absent (the user
// denied geolocation) the full catalog is returned unfiltered. Malformed
// numbers are a client error.
func (h *TurfHandler) NearbyTurfs(c echo.Context) error {
	latStr, lonStr := c.QueryParam("lat"), c.QueryParam("lon")
	if latStr == "" || lonStr == "" {
		return c.JSON(http.StatusOK, turfList(h.Catalog.All()))
	}
	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	if err1 != nil || err2 != nil || lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid coordinates"})
	}
	radius := h.DefaultRadiusKm
	if rs := c.QueryParam("radius_km"); rs != "" {
		r, err := strconv.ParseFloat(rs, 64)
		if err != nil || r <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid radius_km"})
		}
		radius = r
	}
	return c.JSON(http.StatusOK, turfList(h.Catalog.FilterByDistance(lat, lon, radius)))
}

// GetTurf handles GET /v1/turfs/:id.
func (h *TurfHandler) GetTurf(c echo.Context) error {
	v, err := h.lookup(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, v)
}

// GetTurfSlots handles GET /v1/turfs/:id/slots, returning the venue's
// bookable intervals.
func (h *TurfHandler) GetTurfSlots(c echo.Context) error {
	v, err := h.lookup(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, echo.Map{"turf_id": v.ID, "slots": v.Slots})
}

func (h *TurfHandler) lookup(c echo.Context) (model.VenueRecord, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return model.VenueRecord{}, echo.NewHTTPError(http.StatusBadRequest, "invalid turf id")
	}
	v, ok := h.Catalog.Get(id)
	if !ok {
		return model.VenueRecord{}, echo.NewHTTPError(http.StatusNotFound, "turf not found")
	}
	return v, nil
}

// turfList wraps results so clients get a stable envelope with a count, and
// an empty result serializes as [] rather than null.
func turfList(records []model.VenueRecord) echo.Map {
	if records == nil {
		records = []model.VenueRecord{}
	}
	return echo.Map{"count": len(records), "turfs": records}
}
