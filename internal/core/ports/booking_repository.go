package ports

import (
	"context"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
)

// BookingFilter narrows List. The zero value matches every booking.
type BookingFilter struct {
	StaffID string
}

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	// List returns bookings ordered by createdAt, newest first.
	List(ctx context.Context, filter BookingFilter) ([]*domain.Booking, error)
	FindByID(ctx context.Context, id string) (*domain.Booking, error)
}
