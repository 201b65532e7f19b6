package services

import (
	"fmt"
	"time"

	"github.com/Legacyofall/lyran-api/models"
)

// BookingService ties validation, the scheduling engine and the store
// together. It holds no mutable state; every request is handled on its own.
type BookingService struct {
	store       BookingStore
	refs        ReferenceGenerator
	loc         *time.Location
	swishNumber string
}

func NewBookingService(store BookingStore, refs ReferenceGenerator, loc *time.Location, swishNumber string) *BookingService {
	return &BookingService{
		store:       store,
		refs:        refs,
		loc:         loc,
		swishNumber: swishNumber,
	}
}

// CreateBooking validates the request, computes its window, price, status and
// Swish reference, persists it and returns the confirmation the client shows
// the customer. It never checks for overlapping bookings.
func (s *BookingService) CreateBooking(req *models.CreateBookingRequest) (*models.BookingConfirmation, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	kind := KindOf(req.ResourceType)
	window, err := ComputeWindow(kind, req.Date, req.StartTime, req.Slots, s.loc)
	if err != nil {
		return nil, err
	}

	price := ComputePrice(kind, window.Slots)
	swishRef := PaymentReference(kind, s.refs)

	booking := &models.Booking{
		ResourceType:  req.ResourceType,
		ResourceKind:  string(kind),
		StartTime:     window.Start,
		EndTime:       window.End,
		Slots:         window.Slots,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		CustomerEmail: req.CustomerEmail,
		AgeConfirmed:  req.AgeConfirmed,
		AmountOre:     price * 100,
		Status:        InitialStatus(kind),
		SwishRef:      swishRef,
	}

	id, err := s.store.Insert(booking)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	return &models.BookingConfirmation{
		ID:             id,
		SwishRef:       swishRef,
		AmountSEK:      price,
		RequirePayment: kind == GameSlot,
		SwishNumber:    s.swishNumber,
		Echo: models.BookingEcho{
			ResourceType:  req.ResourceType,
			Date:          req.Date,
			StartTime:     req.StartTime,
			CustomerName:  req.CustomerName,
			CustomerPhone: req.CustomerPhone,
			CustomerEmail: req.CustomerEmail,
			AgeConfirmed:  req.AgeConfirmed,
			Slots:         window.Slots,
		},
	}, nil
}

// Availability lists the occupied intervals for a resource kind on a calendar
// day, both day boundaries included. Purely informational: nothing stops a
// caller from booking over a busy interval.
func (s *BookingService) Availability(resourceType, date string) ([]models.BusyInterval, error) {
	day, err := time.ParseInLocation("2006-01-02", date, s.loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSpec, date)
	}

	busy, err := s.store.BusyBetween(KindOf(resourceType), day, day.Add(24*time.Hour))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if busy == nil {
		busy = []models.BusyInterval{}
	}
	return busy, nil
}

// RecentBookings is a read-through to the store for the admin listing.
func (s *BookingService) RecentBookings(limit int) ([]models.Booking, error) {
	if limit < 1 {
		limit = 50
	}
	bookings, err := s.store.ListRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func validateRequest(req *models.CreateBookingRequest) error {
	if req.ResourceType == "" || req.Date == "" || req.StartTime == "" ||
		req.CustomerName == "" || req.CustomerPhone == "" {
		return fmt.Errorf("%w (resource_type, date, start_time, customer_name, customer_phone)", ErrValidation)
	}
	return nil
}
