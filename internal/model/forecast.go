package model

// ForecastRequest is the lookup body sent to the forecast backend.  Date is
// day-granular, formatted YYYY-MM-DD.
type ForecastRequest struct {
	Location string `json:"location"`
	Date     string `json:"date"`
}

// Forecast is the forecast backend's answer for a (location, date) pair.
// It is fetched fresh for every price preview and never persisted here.
//
// Fields:
//  Location    – echo of the requested location.
//  Date        – echo of the requested day (YYYY-MM-DD).
//  Temperature – forecast temperature in degrees Celsius.
//  Cached      – true when the backend served the value from its own cache.
type Forecast struct {
	Location    string  `json:"location"`
	Date        string  `json:"date"`
	Temperature float64 `json:"temperature"`
	Cached      bool    `json:"cached"`
}
