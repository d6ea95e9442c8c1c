package handler

// This file covers the booking flow: amount quoting, draft confirmation
// through the payment provider, and listing a user's confirmed bookings.
// Each request drives a fresh booking session through the same transitions
// the UI performs; validation failures surface as 422 with a distinguishable
// message and never corrupt anything.

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/AyushTomarOG/besturf/internal/booking"
	"github.com/AyushTomarOG/besturf/internal/catalog"
	"github.com/AyushTomarOG/besturf/internal/middleware"
	"github.com/AyushTomarOG/besturf/internal/payment"
	"github.com/AyushTomarOG/besturf/internal/queue"
	"github.com/AyushTomarOG/besturf/internal/repository"
)

// BookingHandler wires the booking core to its collaborators: the catalog,
// the payment provider, the Redis booking log and the event publisher.
// PublishEvent may be nil (e.g. in tests); publishing is then skipped.
type BookingHandler struct {
	Catalog      *catalog.Store
	Provider     payment.Provider
	Bookings     *repository.BookingRepo
	PublishEvent func(context.Context, queue.BookingConfirmedEvent) error
}

// NewBookingHandler constructs a BookingHandler. Catalog and provider must
// be non-nil.
func NewBookingHandler(cat *catalog.Store, provider payment.Provider, bookings *repository.BookingRepo,
	publish func(context.Context, queue.BookingConfirmedEvent) error) *BookingHandler {
	if cat == nil || provider == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Catalog: cat, Provider: provider, Bookings: bookings, PublishEvent: publish}
}

// bookingRequest is the JSON body for quote and create.
type bookingRequest struct {
	TurfID int      `json:"turf_id"`
	Date   string   `json:"date"`
	Slots  []string `json:"slots"`
}

// Quote handles POST /v1/bookings/quote. It replays the slot selection on a
// session and returns the computed amount. Zero slots is a valid quote of
// zero, mirroring the amount shown before the user picks anything.
func (h *BookingHandler) Quote(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	s := booking.NewSession(h.Catalog, middleware.CurrentOwner(c))
	if err := s.SelectVenue(req.TurfID); err != nil {
		return bookingError(c, err)
	}
	amount := 0
	for _, slot := range req.Slots {
		var err error
		if amount, err = s.ToggleSlot(slot); err != nil {
			return bookingError(c, err)
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"turf_id": req.TurfID,
		"slots":   len(req.Slots),
		"amount":  amount,
	})
}

// Create handles POST /v1/bookings. It walks the full state machine:
// venue selection, slot toggles, date, validation, then the provider charge.
// On success the confirmed booking is appended to the log and an event is
// published; both are best-effort and never undo a confirmation.
func (h *BookingHandler) Create(c echo.Context) error {
	var req bookingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	ctx := c.Request().Context()

	s := booking.NewSession(h.Catalog, middleware.CurrentOwner(c))
	if err := s.SelectVenue(req.TurfID); err != nil {
		return bookingError(c, err)
	}
	for _, slot := range req.Slots {
		if _, err := s.ToggleSlot(slot); err != nil {
			return bookingError(c, err)
		}
	}
	if err := s.SetDate(req.Date); err != nil {
		return bookingError(c, err)
	}
	if err := s.ProceedToPayment(); err != nil {
		return bookingError(c, err)
	}
	b, err := s.Confirm(ctx, h.Provider)
	if err != nil {
		return bookingError(c, err)
	}

	if h.Bookings != nil {
		if err := h.Bookings.Append(ctx, b); err != nil {
			logrus.WithError(err).WithField("booking_id", b.ID).Warn("booking log append failed")
		}
	}
	if h.PublishEvent != nil {
		ev := queue.BookingConfirmedEvent{
			BookingID:   b.ID,
			TurfID:      b.TurfID,
			TurfName:    b.TurfName,
			Date:        b.Date,
			Slots:       b.Slots,
			AmountINR:   b.Amount,
			Owner:       b.Owner,
			ConfirmedAt: b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if v, ok := h.Catalog.Get(b.TurfID); ok {
			ev.Location = v.Location
		}
		if err := h.PublishEvent(ctx, ev); err != nil {
			logrus.WithError(err).WithField("booking_id", b.ID).Warn("booking event publish failed")
		}
	}
	return c.JSON(http.StatusCreated, b)
}

// ListUserBookings handles GET /v1/bookings/user, returning the caller's
// bookings in append order.
func (h *BookingHandler) ListUserBookings(c echo.Context) error {
	if h.Bookings == nil {
		return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking log unavailable"})
	}
	owner := middleware.CurrentOwner(c)
	list, err := h.Bookings.ListByOwner(c.Request().Context(), owner)
	if err != nil {
		if errors.Is(err, repository.ErrLogUnavailable) {
			return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": "booking log unavailable"})
		}
		logrus.WithError(err).Warn("booking log read failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to read bookings"})
	}
	return c.JSON(http.StatusOK, echo.Map{"user": owner, "count": len(list), "bookings": list})
}

// bookingError translates core errors into HTTP responses. Draft validation
// and slot errors are 422s the UI shows inline; an unknown venue is 404; a
// declined charge is 402.
func bookingError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, booking.ErrUnknownVenue):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
	case errors.Is(err, booking.ErrMissingDate),
		errors.Is(err, booking.ErrInvalidDate),
		errors.Is(err, booking.ErrNoSlotsSelected),
		errors.Is(err, booking.ErrSlotNotOffered):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	case errors.Is(err, payment.ErrDeclined):
		return c.JSON(http.StatusPaymentRequired, echo.Map{"error": err.Error()})
	default:
		logrus.WithError(err).Error("booking flow failed")
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "booking failed"})
	}
}
