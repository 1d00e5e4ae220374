package ports

import (
	"context"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
)

// StaffRepository defines persistence operations for staff members.
type StaffRepository interface {
	// Create inserts s and assigns its generated ID.
	Create(ctx context.Context, s *domain.StaffMember) error
	FindAll(ctx context.Context) ([]*domain.StaffMember, error)
	// FindByID returns domain.ErrInvalidID for malformed ids and
	// domain.ErrStaffNotFound when no document matches.
	FindByID(ctx context.Context, id string) (*domain.StaffMember, error)
	// SaveRatings overwrites ratings, rating, ratingCount and updatedAt.
	SaveRatings(ctx context.Context, s *domain.StaffMember) error
}
