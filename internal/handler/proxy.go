// Package handler exposes the gateway's HTTP handlers: the same-origin
// proxy surface that forwards to the external backends, and the view
// surface that composes rooms, forecasts and bookings for the UI.
//
// Every failure leaving this package has exactly one shape, a JSON object
// with a single "message" field, regardless of which backend failed or how.
package handler

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// Proxy forwards same-origin requests to the configured backends.  It adds
// no retries, no caching and no protocol logic beyond error normalization.
type Proxy struct {
	APIBaseURL  string         // rooms/bookings backend base URL
	ForecastURL string         // forecast endpoint URL
	HTTP        *http.Client   // defaults to http.DefaultClient when nil
	Publisher   EventPublisher // optional; announces successful booking creates
}

// forward performs the proxy protocol for one request: pass the
// Authorization header through verbatim (empty when absent), disable
// intermediate caching, re-emit a successful JSON body with okStatus, turn
// a backend rejection into {"message"} with the backend's status, and turn
// any transport failure into a 502 {"message"}.  onSuccess, when set, runs
// after the upstream accepted the request, with the raw response body.
func (p *Proxy) forward(c echo.Context, method, url string, body io.Reader, okStatus int, fallback string, onSuccess func([]byte)) error {
	req, err := http.NewRequestWithContext(c.Request().Context(), method, url, body)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"message": errMessage(err, fallback)})
	}
	req.Header.Set("Authorization", c.Request().Header.Get("Authorization"))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-store")

	res, err := p.httpClient().Do(req)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"message": errMessage(err, fallback)})
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"message": errMessage(err, fallback)})
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		msg := strings.TrimSpace(string(raw))
		if msg == "" {
			msg = fallback
		}
		return c.JSON(res.StatusCode, echo.Map{"message": msg})
	}

	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return c.JSON(http.StatusBadGateway, echo.Map{"message": errMessage(err, fallback)})
	}
	if onSuccess != nil {
		onSuccess(raw)
	}
	return c.JSON(okStatus, payload)
}

func (p *Proxy) httpClient() *http.Client {
	if p.HTTP != nil {
		return p.HTTP
	}
	return http.DefaultClient
}

func errMessage(err error, fallback string) string {
	if err != nil && err.Error() != "" {
		return err.Error()
	}
	return fallback
}
