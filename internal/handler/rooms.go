package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/client"
)

// RoomHandler serves the room catalog views.  The catalog is public and
// read-only; each request fetches a fresh snapshot from the backend.
type RoomHandler struct {
	Rooms *client.Rooms
}

// List returns the full catalog at GET /v1/rooms.
func (h *RoomHandler) List(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, rooms)
}

// Get returns a single room at GET /v1/rooms/:id.  The backend has no
// by-id endpoint, so the catalog is scanned here; an unknown identifier is
// a local not-found, not a backend error.
func (h *RoomHandler) Get(c echo.Context) error {
	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	id := c.Param("id")
	for _, r := range rooms {
		if r.ID == id {
			return c.JSON(http.StatusOK, r)
		}
	}
	return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
}
