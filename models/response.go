package models

// Response envelopes. Every endpoint answers with an "ok" flag; failures carry
// an "error" string instead of data.

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type HealthResponse struct {
	OK          bool   `json:"ok"`
	Service     string `json:"service"`
	SwishNumber string `json:"swish_number"`
}

type AvailabilityResponse struct {
	OK     bool           `json:"ok"`
	Busy   []BusyInterval `json:"busy"`
	Blocks []BusyInterval `json:"blocks"`
}

type CreateBookingResponse struct {
	OK      bool                 `json:"ok"`
	Booking *BookingConfirmation `json:"booking"`
}

type ListBookingsResponse struct {
	OK       bool      `json:"ok"`
	Bookings []Booking `json:"bookings"`
}
