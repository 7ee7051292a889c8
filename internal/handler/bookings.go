package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/auth"
	"github.com/iliyamo/room-booking/internal/client"
	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/pricing"
)

// BookingHandler serves the caller's bookings and creates new ones through
// the bookings backend.  Token absence is detected locally, before any
// network call, so an unauthenticated request never leaves the process.
type BookingHandler struct {
	Bookings  *client.Bookings
	Publisher EventPublisher
}

// CreateBookingInput is the view-layer create body.  Only the start is
// accepted; the end is derived here as start plus exactly one hour.  The
// client never offers or accepts a different duration.
type CreateBookingInput struct {
	RoomID    string    `json:"roomId" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
}

func tokenFor(c echo.Context) auth.TokenProvider {
	return auth.HeaderProvider{Authorization: c.Request().Header.Get("Authorization")}
}

// List handles GET /v1/bookings and returns every booking owned by the
// authenticated caller.
func (h *BookingHandler) List(c echo.Context) error {
	token, ok := tokenFor(c).Token()
	if !ok {
		return fail(c, client.ErrAuthRequired)
	}
	bookings, err := h.Bookings.List(c.Request().Context(), token)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /v1/bookings.  The start is aligned to the top of
// its hour and the end derived from it, then the reservation is submitted
// to the backend, which validates, persists and prices it authoritatively.
// A successful create answers 201 with the backend's booking and announces
// a booking-created event.
func (h *BookingHandler) Create(c echo.Context) error {
	token, ok := tokenFor(c).Token()
	if !ok {
		return fail(c, client.ErrAuthRequired)
	}
	var in CreateBookingInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	start := pricing.SlotStart(in.StartTime)
	end := pricing.SlotEnd(start)

	booking, err := h.Bookings.Create(c.Request().Context(), token, model.CreateBookingRequest{
		RoomID:    in.RoomID,
		StartTime: start.UTC().Format(time.RFC3339),
		EndTime:   end.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fail(c, err)
	}
	announceBookingModel(h.Publisher, booking)
	return c.JSON(http.StatusCreated, booking)
}
