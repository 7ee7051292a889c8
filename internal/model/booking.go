package model

// Booking is a confirmed one-hour reservation as stored by the bookings
// backend.  The backend assigns the identifier, attributes the booking to
// the authenticated user and computes the final price; nothing in this
// application mutates or deletes a Booking after creation.
//
// Fields:
//  ID        – opaque unique identifier assigned by the backend.
//  RoomID    – the reserved room.
//  UserID    – owner of the booking, supplied by the identity provider.
//  StartTime – reservation start, aligned to the top of an hour (ISO-8601).
//  EndTime   – always exactly StartTime plus one hour (ISO-8601).
//  Price     – backend-authoritative price, may differ from the preview.
//  Location  – room location copied at booking time for display.
type Booking struct {
	ID        string  `json:"id"`
	RoomID    string  `json:"roomId"`
	UserID    string  `json:"userId"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Price     float64 `json:"price"`
	Location  string  `json:"location"`
}

// CreateBookingRequest is the body submitted to the bookings backend when
// reserving a room.  EndTime must equal StartTime plus one hour; the caller
// derives it before submission, the client does not re-check.
type CreateBookingRequest struct {
	RoomID    string `json:"roomId"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
