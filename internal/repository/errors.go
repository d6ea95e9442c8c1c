// Package repository provides the two persistence adapters: the MySQL venue
// source the catalog is loaded from at startup, and the Redis append-only
// log confirmed bookings are written to. Sentinel errors let handlers map
// failures to distinct HTTP responses.
package repository

import "errors"

// ErrLogUnavailable is returned by the booking log when no Redis client is
// configured. Confirmation still succeeds; persistence is best-effort in
// the demo and the caller decides whether to surface the condition.
var ErrLogUnavailable = errors.New("booking log unavailable")
