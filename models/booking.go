package models

import "time"

// Booking is the persisted row in the bookings table. Amounts are stored in
// öre; the wire contract talks whole SEK.
type Booking struct {
	ID            string    `json:"id" db:"id"`
	ResourceType  string    `json:"resource_type" db:"resource_type"`
	ResourceKind  string    `json:"resource_kind" db:"resource_kind"`
	StartTime     time.Time `json:"start_time" db:"start_time"`
	EndTime       time.Time `json:"end_time" db:"end_time"`
	Slots         int       `json:"slots" db:"slots"`
	CustomerName  string    `json:"customer_name" db:"customer_name"`
	CustomerPhone string    `json:"customer_phone" db:"customer_phone"`
	CustomerEmail *string   `json:"customer_email,omitempty" db:"customer_email"`
	AgeConfirmed  bool      `json:"age_confirmed" db:"age_confirmed"`
	AmountOre     int       `json:"amount_ore" db:"amount_ore"`
	Status        string    `json:"status" db:"status"`
	SwishRef      *string   `json:"swish_ref,omitempty" db:"swish_ref"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}

// CreateBookingRequest carries the client payload. Required-ness is checked by
// the booking service, not by binding tags, so a missing field gets the same
// explicit error the old API returned.
type CreateBookingRequest struct {
	ResourceType  string  `json:"resource_type"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	Slots         int     `json:"slots"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email,omitempty"`
	AgeConfirmed  bool    `json:"age_confirmed"`
}

// BusyInterval is one occupied [start, end) range on a resource's timeline.
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// BookingConfirmation is the booking object returned to the client after a
// successful creation. Field names are the wire contract.
type BookingConfirmation struct {
	ID             string      `json:"id"`
	SwishRef       *string     `json:"swish_ref"`
	AmountSEK      int         `json:"amount_sek"`
	RequirePayment bool        `json:"require_payment"`
	SwishNumber    string      `json:"swish_number"`
	Echo           BookingEcho `json:"echo"`
}

// BookingEcho repeats the request back to the client with the effective slot
// count after clamping.
type BookingEcho struct {
	ResourceType  string  `json:"resource_type"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	CustomerName  string  `json:"customer_name"`
	CustomerPhone string  `json:"customer_phone"`
	CustomerEmail *string `json:"customer_email"`
	AgeConfirmed  bool    `json:"age_confirmed"`
	Slots         int     `json:"slots"`
}
