package services

import (
	"time"

	"github.com/Legacyofall/lyran-api/models"
)

// BookingStore is the persistence collaborator. The store is the single
// source of truth for bookings; it does not guard against overlapping
// intervals.
type BookingStore interface {
	// Insert persists a new booking and returns its identifier. ID and
	// CreatedAt on the passed booking are ignored; the store assigns them.
	Insert(b *models.Booking) (string, error)
	// BusyBetween returns the occupied intervals for a resource kind whose
	// start falls within [from, to], for bookings still holding their
	// timeline (pending_payment or confirmed), ordered by start ascending.
	BusyBetween(kind ResourceKind, from, to time.Time) ([]models.BusyInterval, error)
	// ListRecent returns the most recently created bookings, newest first.
	ListRecent(limit int) ([]models.Booking, error)
}

// NoStore is the store variant used when no Supabase backend is configured.
// Bookings are minted an id but never saved, and every timeline reads as
// free. Degraded mode, not an error.
type NoStore struct {
	refs ReferenceGenerator
}

func NewNoStore(refs ReferenceGenerator) *NoStore {
	return &NoStore{refs: refs}
}

func (s *NoStore) Insert(_ *models.Booking) (string, error) {
	return s.refs.NewToken(), nil
}

func (s *NoStore) BusyBetween(_ ResourceKind, _, _ time.Time) ([]models.BusyInterval, error) {
	return []models.BusyInterval{}, nil
}

func (s *NoStore) ListRecent(_ int) ([]models.Booking, error) {
	return []models.Booking{}, nil
}
