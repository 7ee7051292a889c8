package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// GetRooms proxies GET /api/rooms to the rooms backend.  The catalog is
// public; no Authorization handling beyond the verbatim pass-through.
func (p *Proxy) GetRooms(c echo.Context) error {
	return p.forward(c, http.MethodGet, p.APIBaseURL+"/rooms", nil, http.StatusOK, "Failed to fetch rooms", nil)
}
