package middleware

// identity.go defines helpers shared across middleware and handlers for
// reading the request identity set by OptionalJWT.

import (
	"github.com/labstack/echo/v4"

	"github.com/AyushTomarOG/besturf/internal/model"
)

// CurrentOwner returns the identity attached to the request, or
// model.GuestOwner when the request is unauthenticated.
func CurrentOwner(c echo.Context) string {
	if v := c.Get("owner"); v != nil {
		if s, ok := v.(string); ok && s != "" {
			return s
		}
	}
	return model.GuestOwner
}
