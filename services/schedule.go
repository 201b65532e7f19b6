package services

import (
	"fmt"
	"strings"
	"time"
)

// ResourceKind tells the pricing and scheduling rules apart. Game resources
// (pool, dart) are billed per slot and paid via Swish; the dining table is a
// single flat reservation at no charge.
type ResourceKind string

const (
	GameSlot    ResourceKind = "game_slot"
	SeatedTable ResourceKind = "seated_table"
)

const (
	StatusPendingPayment = "pending_payment"
	StatusConfirmed      = "confirmed"
)

const (
	slotMinutes          = 45
	maxSlotsPerBooking   = 2
	tableServiceMinutes  = 60
	tableTurnoverMinutes = 10
	slotPriceSEK         = 50

	swishRefPrefix = "BOKNING "
)

// KindOf maps a client resource_type to its kind. Only the literal "table" is
// the seated table; every other string is billed as a game slot, typos
// included, which matches what clients have always relied on.
func KindOf(resourceType string) ResourceKind {
	if resourceType == "table" {
		return SeatedTable
	}
	return GameSlot
}

// TimeWindow is the concrete interval a booking occupies. Slots is the
// effective slot count after clamping and only meaningful for game resources.
type TimeWindow struct {
	Start time.Time
	End   time.Time
	Slots int
}

// ComputeWindow derives the booking interval from a date, a wall-clock start
// time and an optional slot count, all interpreted in the venue's reference
// location. It knows nothing about other bookings.
func ComputeWindow(kind ResourceKind, date, startTime string, requestedSlots int, loc *time.Location) (TimeWindow, error) {
	start, err := parseStart(date, startTime, loc)
	if err != nil {
		return TimeWindow{}, fmt.Errorf("%w: %q %q", ErrInvalidTimeSpec, date, startTime)
	}

	slots := 1
	var duration time.Duration
	if kind == SeatedTable {
		duration = (tableServiceMinutes + tableTurnoverMinutes) * time.Minute
	} else {
		slots = ClampSlots(requestedSlots)
		duration = time.Duration(slots) * slotMinutes * time.Minute
	}

	return TimeWindow{Start: start, End: start.Add(duration), Slots: slots}, nil
}

// ClampSlots bounds a requested slot count to [1, 2]; zero means the client
// left it out.
func ClampSlots(requested int) int {
	if requested < 1 {
		return 1
	}
	if requested > maxSlotsPerBooking {
		return maxSlotsPerBooking
	}
	return requested
}

// ComputePrice returns the price in whole SEK.
func ComputePrice(kind ResourceKind, effectiveSlots int) int {
	if kind == SeatedTable {
		return 0
	}
	return slotPriceSEK * effectiveSlots
}

// InitialStatus assigns the creation-time status: game bookings wait for a
// Swish payment, table reservations are confirmed immediately.
func InitialStatus(kind ResourceKind) string {
	if kind == SeatedTable {
		return StatusConfirmed
	}
	return StatusPendingPayment
}

// PaymentReference builds the human-readable Swish reference for a game
// booking, or nil for the free table reservation.
func PaymentReference(kind ResourceKind, gen ReferenceGenerator) *string {
	if kind == SeatedTable {
		return nil
	}
	ref := swishRefPrefix + strings.ToUpper(gen.NewToken()[:8])
	return &ref
}

func parseStart(date, startTime string, loc *time.Location) (time.Time, error) {
	start, err := time.ParseInLocation("2006-01-02 15:04", date+" "+startTime, loc)
	if err != nil {
		start, err = time.ParseInLocation("2006-01-02 15:04:05", date+" "+startTime, loc)
	}
	return start, err
}
