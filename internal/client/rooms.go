package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/iliyamo/room-booking/internal/model"
)

// Rooms fetches the room catalog from the rooms backend.  Listing needs no
// authentication and always returns a fresh snapshot; there is no caching
// layer between this client and the backend.
type Rooms struct {
	BaseURL string       // rooms backend base URL, e.g. http://localhost:8080
	HTTP    *http.Client // defaults to http.DefaultClient when nil
}

// List returns the full catalog.  No filtering or pagination exists on the
// backend; every call retrieves all rooms.
func (c *Rooms) List(ctx context.Context) ([]model.Room, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/rooms", nil)
	if err != nil {
		return nil, unreachable(err, "Failed to fetch rooms")
	}
	req.Header.Set("Cache-Control", "no-store")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, unreachable(err, "Failed to fetch rooms")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, reject(res, "Failed to fetch rooms")
	}
	var rooms []model.Room
	if err := json.NewDecoder(res.Body).Decode(&rooms); err != nil {
		return nil, unreachable(err, "Failed to fetch rooms")
	}
	return rooms, nil
}

func (c *Rooms) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
