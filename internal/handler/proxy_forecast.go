package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetForecast proxies POST /api/forecast to the forecast backend.  The
// request body is forwarded as received; the backend validates the
// (location, date) pair itself.
func (p *Proxy) GetForecast(c echo.Context) error {
	return p.forward(c, http.MethodPost, p.ForecastURL, c.Request().Body, http.StatusOK, "Failed to fetch forecast", nil)
}
