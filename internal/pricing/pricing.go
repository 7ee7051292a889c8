// Package pricing implements the weather-adjusted price rule and the
// time helpers for the fixed one-hour booking slot.
package pricing

import (
	"math"
	"time"
)

// ReferenceTemperature is the comfort point in degrees Celsius.  Any
// deviation from it, in either direction, is charged on top of the base
// price.  It is a fixed constant of the pricing rule, not configuration.
const ReferenceTemperature = 21.0

// SlotDuration is the only booking length the system offers.
const SlotDuration = time.Hour

// Price returns the total hourly price for a room given the forecast
// temperature: basePrice + |temperature - 21|.  Defined for every
// temperature; there is no error case.
func Price(basePrice, temperature float64) float64 {
	return basePrice + math.Abs(temperature-ReferenceTemperature)
}

// Surcharge returns the user-visible weather surcharge, i.e. the part of
// total above base, floored at zero.  With the Price rule this is always
// |temperature - 21|: the formula never discounts below base.
func Surcharge(basePrice, total float64) float64 {
	if d := total - basePrice; d > 0 {
		return d
	}
	return 0
}

// SlotStart aligns a picked time to the top of its hour.  Bookings always
// begin at an hour boundary.
func SlotStart(t time.Time) time.Time {
	return t.Truncate(time.Hour)
}

// SlotEnd returns the end of the slot beginning at start.  The offset is
// absolute wall-clock arithmetic: across a daylight-saving transition the
// end is still exactly one elapsed hour after the start.
func SlotEnd(start time.Time) time.Time {
	return start.Add(SlotDuration)
}

// ForecastDate truncates a booking start instant to the calendar day used
// for the weather lookup.  Truncation happens in UTC so the lookup date is
// a pure function of the instant, independent of server locale.
func ForecastDate(start time.Time) string {
	return start.UTC().Format("2006-01-02")
}
