package handler

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iliyamo/room-booking/internal/model"
	"github.com/iliyamo/room-booking/internal/queue"
)

// EventPublisher emits domain events to the message broker.  Publishing is
// best-effort: a broker failure must never fail or delay the HTTP response
// that triggered the event.
type EventPublisher interface {
	PublishBookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
}

// announceBooking converts a raw backend booking payload into a
// BookingCreatedEvent and publishes it in the background.  Malformed
// payloads and publish failures are logged and dropped.
func announceBooking(pub EventPublisher, raw []byte) {
	if pub == nil {
		return
	}
	var b model.Booking
	if err := json.Unmarshal(raw, &b); err != nil {
		log.Warn().Err(err).Msg("booking event: unparseable booking payload")
		return
	}
	announceBookingModel(pub, &b)
}

// announceBookingModel publishes the event for an already-decoded booking.
func announceBookingModel(pub EventPublisher, b *model.Booking) {
	if pub == nil {
		return
	}
	ev := queue.BookingCreatedEvent{
		BookingID: b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Price:     b.Price,
		Location:  b.Location,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := pub.PublishBookingCreated(ctx, ev); err != nil {
			log.Warn().Err(err).Str("booking_id", ev.BookingID).Msg("booking event: publish failed")
		}
	}()
}
