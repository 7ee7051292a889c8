package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/iliyamo/room-booking/internal/model"
)

// Forecast looks up a day's temperature for a location.  Results are
// ephemeral: the price preview fetches a fresh forecast per request and
// nothing is stored on this side.
type Forecast struct {
	URL  string // full forecast endpoint URL, e.g. http://localhost:8081/forecast
	HTTP *http.Client
}

// Lookup posts a (location, date) pair to the forecast backend.  Failure
// means "price preview unavailable", never a fatal condition for the
// booking flow; the returned error carries a single human-readable message.
func (c *Forecast) Lookup(ctx context.Context, location, date string) (*model.Forecast, error) {
	body, err := json.Marshal(model.ForecastRequest{Location: location, Date: date})
	if err != nil {
		return nil, unreachable(err, "Failed to fetch forecast")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return nil, unreachable(err, "Failed to fetch forecast")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	res, err := c.httpClient().Do(req)
	if err != nil {
		return nil, unreachable(err, "Failed to fetch forecast")
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, reject(res, "Failed to fetch forecast")
	}
	var fc model.Forecast
	if err := json.NewDecoder(res.Body).Decode(&fc); err != nil {
		return nil, unreachable(err, "Failed to fetch forecast")
	}
	return &fc, nil
}

func (c *Forecast) httpClient() *http.Client {
	if c.HTTP != nil {
		return c.HTTP
	}
	return http.DefaultClient
}
