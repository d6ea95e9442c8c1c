package middleware

import (
	"bytes"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/AyushTomarOG/besturf/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cacheable response.
type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// captureWriter duplicates the response body into a buffer while forwarding
// it to the client, so successful responses can be stored after the handler
// returns.
type captureWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (w *captureWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// NewResponseCache caches successful responses for the configured methods in
// Redis, keyed by method, route and raw query. The turf catalog never
// changes after load, so cached listings cannot go stale within a process
// lifetime; the TTL bounds staleness across redeploys. Identity does not
// enter the key because no cached route varies by user. Disabled config or
// a nil client yields a pass-through middleware, and Redis errors fail open.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			if !cfg.Methods[req.Method] {
				return next(c)
			}
			key := cacheKey(cfg.Prefix, c)
			ctx := req.Context()

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var stored cachedResponse
				if json.Unmarshal(raw, &stored) == nil {
					c.Response().Header().Set("X-Cache", "HIT")
					return c.Blob(stored.Status, stored.ContentType, stored.Body)
				}
			} else if err != redis.Nil {
				logrus.WithError(err).Debug("cache: redis get failed")
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			if cw.status != http.StatusOK || cw.buf.Len() > cfg.MaxBodyBytes {
				return nil
			}
			stored := cachedResponse{
				Status:      cw.status,
				ContentType: c.Response().Header().Get(echo.HeaderContentType),
				Body:        cw.buf.Bytes(),
			}
			raw, err := json.Marshal(stored)
			if err != nil {
				return nil
			}
			if err := rdb.Set(ctx, key, raw, cfg.TTL).Err(); err != nil {
				logrus.WithError(err).Debug("cache: redis set failed")
			}
			return nil
		}
	}
}

// cacheKey hashes the request path and raw query so arbitrary client input
// cannot produce oversized or unsafe Redis keys.
func cacheKey(prefix string, c echo.Context) string {
	u := c.Request().URL
	sum := sha1.Sum([]byte(u.Path + "?" + u.RawQuery))
	return prefix + ":" + c.Request().Method + ":" + hex.EncodeToString(sum[:])
}
