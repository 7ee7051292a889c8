package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/iliyamo/room-booking/internal/model"
)

// Bookings talks to the bookings backend.  Both operations require a
// bearer token; an empty token fails locally with ErrAuthRequired before
// any request is built, so "not signed in" is never reported as a backend
// rejection.
type Bookings struct {
	BaseURL string
	HTTP    *http.Client
}

// List returns every booking owned by the caller identified by token.
func (c *Bookings) List(ctx context.Context, token string) ([]model.Booking, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/bookings", nil)
	if err != nil {
		return nil, unreachable(err, "Failed to fetch bookings")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Cache-Control", "no-store")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, unreachable(err, "Failed to fetch bookings")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, reject(res, "Failed to fetch bookings")
	}
	var bookings []model.Booking
	if err := json.NewDecoder(res.Body).Decode(&bookings); err != nil {
		return nil, unreachable(err, "Failed to fetch bookings")
	}
	return bookings, nil
}

// Create submits a reservation and returns the booking as the backend
// stored it.  The backend is the price authority: the returned Price may
// differ from whatever preview the caller showed.  End-minus-start equals
// one hour by the time a request reaches this client; the invariant is
// enforced upstream in the view layer.
func (c *Bookings) Create(ctx context.Context, token string, in model.CreateBookingRequest) (*model.Booking, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}
	body, err := json.Marshal(in)
	if err != nil {
		return nil, unreachable(err, "Failed to create booking")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/bookings", bytes.NewReader(body))
	if err != nil {
		return nil, unreachable(err, "Failed to create booking")
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, unreachable(err, "Failed to create booking")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, reject(res, "Failed to create booking")
	}
	var booking model.Booking
	if err := json.NewDecoder(res.Body).Decode(&booking); err != nil {
		return nil, unreachable(err, "Failed to create booking")
	}
	return &booking, nil
}

func (c *Bookings) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
