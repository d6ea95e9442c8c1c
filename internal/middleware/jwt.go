package middleware // reusable HTTP middleware functions

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// OptionalJWT returns an Echo middleware that accepts externally issued
// HS256 Bearer tokens. Identity is optional everywhere in this service:
// requests without an Authorization header proceed as the guest identity,
// while requests that do present a token must present a valid one. On
// success the email claim (falling back to sub) is stored in the context
// under "owner" for handlers and the rate limiter.
//
// This service never issues tokens; an external identity provider does.
// When no secret is configured the middleware passes everything through
// and every caller is a guest.
func OptionalJWT(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			auth := c.Request().Header.Get("Authorization")
			if auth == "" || secret == "" {
				return next(c)
			}
			if !strings.HasPrefix(auth, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "malformed authorization header"})
			}
			raw := strings.TrimPrefix(auth, "Bearer ")

			tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, echo.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !tok.Valid {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
			}

			claims, ok := tok.Claims.(jwt.MapClaims)
			if !ok {
				return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid claims"})
			}
			if v, ok := claims["email"].(string); ok && v != "" {
				c.Set("owner", v)
			} else if v, ok := claims["sub"].(string); ok && v != "" {
				c.Set("owner", v)
			}
			return next(c)
		}
	}
}
