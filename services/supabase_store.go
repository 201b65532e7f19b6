package services

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/supabase-community/postgrest-go"
	supa "github.com/supabase-community/supabase-go"

	"github.com/Legacyofall/lyran-api/models"
)

// SupabaseStore persists bookings in the Supabase "bookings" table.
type SupabaseStore struct {
	client *supa.Client
}

func NewSupabaseStore(client *supa.Client) *SupabaseStore {
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) Insert(b *models.Booking) (string, error) {
	row := map[string]interface{}{
		"resource_type":  b.ResourceType,
		"resource_kind":  b.ResourceKind,
		"start_time":     b.StartTime.Format(time.RFC3339),
		"end_time":       b.EndTime.Format(time.RFC3339),
		"slots":          b.Slots,
		"customer_name":  b.CustomerName,
		"customer_phone": b.CustomerPhone,
		"customer_email": b.CustomerEmail,
		"age_confirmed":  b.AgeConfirmed,
		"amount_ore":     b.AmountOre,
		"status":         b.Status,
		"swish_ref":      b.SwishRef,
	}

	var created []models.Booking
	data, _, err := s.client.From("bookings").
		Insert(row, false, "", "", "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &created)
	}
	if err != nil {
		return "", err
	}
	if len(created) == 0 {
		return "", fmt.Errorf("no booking returned from insert")
	}
	return created[0].ID, nil
}

func (s *SupabaseStore) BusyBetween(kind ResourceKind, from, to time.Time) ([]models.BusyInterval, error) {
	var busy []models.BusyInterval
	data, _, err := s.client.From("bookings").
		Select("start:start_time,end:end_time", "", false).
		Eq("resource_kind", string(kind)).
		Gte("start_time", from.Format(time.RFC3339)).
		Lte("start_time", to.Format(time.RFC3339)).
		In("status", []string{StatusPendingPayment, StatusConfirmed}).
		Order("start_time", &postgrest.OrderOpts{Ascending: true}).
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &busy)
	}
	if err != nil {
		return nil, err
	}
	return busy, nil
}

func (s *SupabaseStore) ListRecent(limit int) ([]models.Booking, error) {
	var bookings []models.Booking
	data, _, err := s.client.From("bookings").
		Select("*", "", false).
		Order("created_at", &postgrest.OrderOpts{Ascending: false}).
		Limit(limit, "").
		Execute()
	if err == nil {
		err = json.Unmarshal(data, &bookings)
	}
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
