package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/room-booking/internal/client"
	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/preview"
	"github.com/iliyamo/room-booking/internal/pricing"
)

// PreviewHandler computes the weather-adjusted price preview for a room
// and start time.  The preview is advisory: the bookings backend remains
// the price authority and may settle on a different amount.
type PreviewHandler struct {
	Rooms    *client.Rooms
	Forecast *client.Forecast
	Tracker  *preview.Tracker
}

// PreviewRequest selects the room and slot to price.  StartTime is an
// ISO-8601 instant; it is rounded down to the top of its hour before any
// lookup, mirroring what the booking form submits.
type PreviewRequest struct {
	RoomID    string    `json:"roomId" validate:"required"`
	StartTime time.Time `json:"startTime" validate:"required"`
}

// PreviewResponse is the computed preview.  Surcharge is the part of Price
// above BasePrice, never negative; a zero surcharge is not displayed.
type PreviewResponse struct {
	RoomID      string  `json:"roomId"`
	Location    string  `json:"location"`
	BasePrice   float64 `json:"basePrice"`
	Temperature float64 `json:"temperature"`
	Cached      bool    `json:"cached"`
	Price       float64 `json:"price"`
	Surcharge   float64 `json:"surcharge"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
}

// Preview handles POST /v1/preview.  A forecast failure means the preview
// is unavailable, nothing more; the booking flow itself stays open.  Each
// lookup is sequence-tagged so a slow response for an abandoned input can
// never overwrite a fresher preview.
func (h *PreviewHandler) Preview(c echo.Context) error {
	var in PreviewRequest
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid request body"})
	}
	if err := c.Validate(&in); err != nil {
		return err
	}

	rooms, err := h.Rooms.List(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	var room *model.Room
	for i := range rooms {
		if rooms[i].ID == in.RoomID {
			room = &rooms[i]
			break
		}
	}
	if room == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"message": "room not found"})
	}

	start := pricing.SlotStart(in.StartTime)
	end := pricing.SlotEnd(start)
	seq := h.Tracker.Next()

	fc, err := h.Forecast.Lookup(c.Request().Context(), room.Location, pricing.ForecastDate(start))
	if err != nil {
		return fail(c, err)
	}

	price := pricing.Price(room.BasePrice, fc.Temperature)
	surcharge := pricing.Surcharge(room.BasePrice, price)
	h.Tracker.Apply(seq, preview.Result{
		Temperature: fc.Temperature,
		Cached:      fc.Cached,
		Price:       price,
		Surcharge:   surcharge,
	})

	return c.JSON(http.StatusOK, PreviewResponse{
		RoomID:      in.RoomID,
		Location:    room.Location,
		BasePrice:   room.BasePrice,
		Temperature: fc.Temperature,
		Cached:      fc.Cached,
		Price:       price,
		Surcharge:   surcharge,
		StartTime:   start.UTC().Format(time.RFC3339),
		EndTime:     end.UTC().Format(time.RFC3339),
	})
}
