// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published after the bookings backend accepts a
// reservation.  It carries enough for downstream consumers to notify or
// feed analytics without calling the backend again.
type BookingCreatedEvent struct {
	BookingID string  `json:"booking_id"`
	RoomID    string  `json:"room_id"`
	UserID    string  `json:"user_id"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	Price     float64 `json:"price"`
	Location  string  `json:"location"`
	CreatedAt string  `json:"created_at"`
}
