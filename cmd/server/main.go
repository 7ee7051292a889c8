package main // Entry point package

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/iliyamo/room-booking/internal/client"
	"github.com/iliyamo/room-booking/internal/config"
	"github.com/iliyamo/room-booking/internal/handler"
	"github.com/iliyamo/room-booking/internal/middleware"
	"github.com/iliyamo/room-booking/internal/preview"
	"github.com/iliyamo/room-booking/internal/router"
	"github.com/iliyamo/room-booking/internal/service"
)

func main() {
	_ = godotenv.Load() // .env is optional; real deployments set the environment directly

	cfg := config.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Str("env", cfg.Env).Logger()

	// Backend clients share the default transport: no retries, no local
	// timeouts, the network stack's own behavior applies.
	rooms := &client.Rooms{BaseURL: cfg.APIBaseURL}
	bookings := &client.Bookings{BaseURL: cfg.APIBaseURL}
	forecast := &client.Forecast{URL: cfg.ForecastURL}
	publisher := service.NewQueuePublisher()

	h := router.Handlers{
		Proxy: &handler.Proxy{
			APIBaseURL:  cfg.APIBaseURL,
			ForecastURL: cfg.ForecastURL,
			Publisher:   publisher,
		},
		Rooms:    &handler.RoomHandler{Rooms: rooms},
		Preview:  &handler.PreviewHandler{Rooms: rooms, Forecast: forecast, Tracker: &preview.Tracker{}},
		Bookings: &handler.BookingHandler{Bookings: bookings, Publisher: publisher},
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), config.NewRedisClient()))

	router.RegisterRoutes(e, h, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
