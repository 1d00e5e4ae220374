package ports

import (
	"context"
	"time"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
)

// CreateBookingInput carries a booking request after transport decoding.
type CreateBookingInput struct {
	StaffID   string
	Datetime  *time.Time
	Need      string
	Address   string
	UserEmail string
}

// CreateBookingResult reports the stored booking and whether the operator
// notification went out. Notified=false never implies the booking is missing.
type CreateBookingResult struct {
	Booking  *domain.Booking
	Notified bool
}

// BookingService defines use-case operations for bookings.
type BookingService interface {
	ListBookings(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	CreateBooking(ctx context.Context, input CreateBookingInput) (*CreateBookingResult, error)
}
