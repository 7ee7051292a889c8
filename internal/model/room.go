package model

// Room is a rentable room as served by the rooms backend.  The catalog is
// owned and mutated exclusively by the backend; this application treats
// every Room it receives as an immutable snapshot.
//
// Fields:
//  ID        – opaque unique identifier assigned by the backend.
//  Name      – display name shown in listings.
//  Location  – free-text place name, also used as the weather lookup key.
//  BasePrice – hourly base price before the weather adjustment, never negative.
//  Capacity  – maximum number of occupants, always positive.
type Room struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Location  string  `json:"location"`
	BasePrice float64 `json:"basePrice"`
	Capacity  int     `json:"capacity"`
}
