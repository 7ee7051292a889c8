package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/client"
)

// fail maps a client-layer error onto the uniform {"message"} shape.  An
// UpstreamError keeps the status it carries (backend status or 502);
// ErrAuthRequired becomes a local 401 that never touched the network.
func fail(c echo.Context, err error) error {
	if errors.Is(err, client.ErrAuthRequired) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "Authentication required"})
	}
	var ue *client.UpstreamError
	if errors.As(err, &ue) {
		return c.JSON(ue.Status, echo.Map{"message": ue.Message})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
}
