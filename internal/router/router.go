package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/AyushTomarOG/besturf/internal/config"
	"github.com/AyushTomarOG/besturf/internal/handler"
	"github.com/AyushTomarOG/besturf/internal/middleware"
)

// Register wires every route of the service onto the Echo instance.
//
// The catalog routes are public and sit behind the response cache; the
// booking routes skip the cache (they are either writes or per-user reads).
// All /v1 routes share the optional JWT identity and the rate limiter.
func Register(e *echo.Echo, cfg config.Config, th *handler.TurfHandler, bh *handler.BookingHandler, rdb *redis.Client) {
	e.Use(echomw.Recover())

	e.GET("/healthz", handler.Health)

	v1 := e.Group("/v1")
	v1.Use(middleware.OptionalJWT(cfg.JWTSecret))
	v1.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	turfs := v1.Group("/turfs")
	turfs.Use(middleware.NewResponseCache(config.LoadCacheConfig(), rdb))
	turfs.GET("", th.ListTurfs)
	turfs.GET("/search", th.SearchTurfs)
	turfs.GET("/nearby", th.NearbyTurfs)
	turfs.GET("/:id", th.GetTurf)
	turfs.GET("/:id/slots", th.GetTurfSlots)

	bookings := v1.Group("/bookings")
	bookings.POST("", bh.Create)
	bookings.POST("/quote", bh.Quote)
	bookings.GET("/user", bh.ListUserBookings)
}
