package router // package router defines how HTTP routes are registered for the gateway

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/room-booking/internal/handler"    // handlers for the proxy and view surfaces
	"github.com/iliyamo/room-booking/internal/middleware" // session gating middleware
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Proxy    *handler.Proxy
	Rooms    *handler.RoomHandler
	Preview  *handler.PreviewHandler
	Bookings *handler.BookingHandler
}

// RegisterRoutes wires the full surface.  Routes fall into two families:
// a public allow-list that anyone may call (health, room browsing, the
// rooms and forecast proxies, the price preview) and the booking routes,
// which sit behind the identity provider's session gate.  The allow-list
// mirrors what the previous frontend kept outside its auth middleware.
func RegisterRoutes(e *echo.Echo, h Handlers, jwtSecret string) {
	// Liveness probe for load balancers and monitoring.
	e.GET("/healthz", handler.Health)

	// Public proxy surface.  The rooms catalog and forecast lookups need
	// no session; bookings always do.
	e.GET("/api/rooms", h.Proxy.GetRooms)
	e.POST("/api/forecast", h.Proxy.GetForecast)

	// Public views: catalog browsing and the advisory price preview.  The
	// home page is the room listing.
	e.GET("/", h.Rooms.List)
	e.GET("/v1/rooms", h.Rooms.List)
	e.GET("/v1/rooms/:id", h.Rooms.Get)
	e.POST("/v1/preview", h.Preview.Preview)

	// Everything touching bookings requires a valid session.  The proxy
	// routes additionally forward the bearer token to the backend, which
	// performs its own validation and owner scoping.
	gated := e.Group("", middleware.SessionGate(jwtSecret))
	gated.GET("/api/bookings", h.Proxy.GetBookings)
	gated.POST("/api/bookings", h.Proxy.CreateBooking)
	gated.GET("/v1/bookings", h.Bookings.List)
	gated.POST("/v1/bookings", h.Bookings.Create)
}
