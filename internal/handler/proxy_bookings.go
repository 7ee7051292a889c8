package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetBookings proxies GET /api/bookings to the bookings backend.  The
// caller's Authorization header travels through verbatim; the backend does
// the actual token validation and owner scoping.
func (p *Proxy) GetBookings(c echo.Context) error {
	return p.forward(c, http.MethodGet, p.APIBaseURL+"/bookings", nil, http.StatusOK, "Failed to fetch bookings", nil)
}

// CreateBooking proxies POST /api/bookings.  The raw request body is
// forwarded untouched and a successful create answers 201 with the booking
// exactly as the backend computed it.  After the upstream accepts, a
// booking-created event is announced to the broker.
func (p *Proxy) CreateBooking(c echo.Context) error {
	return p.forward(c, http.MethodPost, p.APIBaseURL+"/bookings", c.Request().Body, http.StatusCreated, "Failed to create booking",
		func(raw []byte) { announceBooking(p.Publisher, raw) })
}
