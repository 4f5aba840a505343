package models

// FlightDuration breaks down itinerary time in seconds.
type FlightDuration struct {
	Departure int `json:"departure"`
	Total     int `json:"total"`
}

// FlightResult is the normalized flight search result returned to clients.
// Departure and arrival are carried in both canonical forms: epoch seconds
// (UTC) and the provider's local ISO-8601 string.
type FlightResult struct {
	ID             string         `json:"id"`
	CityFrom       string         `json:"cityFrom"`
	FlyFrom        string         `json:"flyFrom"`
	CityTo         string         `json:"cityTo"`
	FlyTo          string         `json:"flyTo"`
	Price          float64        `json:"price"`
	Currency       string         `json:"currency"`
	DepartureTime  int64          `json:"dTime"`
	ArrivalTime    int64          `json:"aTime"`
	LocalDeparture string         `json:"local_departure"`
	LocalArrival   string         `json:"local_arrival"`
	Airlines       []string       `json:"airlines"`
	Stops          int            `json:"stops"`
	Duration       FlightDuration `json:"duration"`
	// DeepLink is the provider's authoritative purchase URL, passed through verbatim.
	DeepLink string `json:"deep_link"`
}

// FlightSearchRequest is the client-facing search input. Dates use dd/mm/yyyy.
type FlightSearchRequest struct {
	FlyFrom    string `json:"flyFrom" binding:"required"`
	FlyTo      string `json:"flyTo" binding:"required"`
	DateFrom   string `json:"dateFrom" binding:"required"`
	DateTo     string `json:"dateTo"`
	Adults     int    `json:"adults"`
	Children   int    `json:"children"`
	Infants    int    `json:"infants"`
	ReturnFrom string `json:"returnFrom"`
	ReturnTo   string `json:"returnTo"`
}

// FlightSearchResponse is the endpoint envelope for flight searches.
type FlightSearchResponse struct {
	Success  bool           `json:"success"`
	Flights  []FlightResult `json:"flights"`
	Currency string         `json:"currency"`
	SearchID string         `json:"searchId"`
}
