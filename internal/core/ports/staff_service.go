package ports

import (
	"context"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
)

// CreateStaffInput carries the fields accepted when creating a profile.
type CreateStaffInput struct {
	Name       string
	Role       string
	Experience int
}

// RatingResult is the aggregate after a rating has been recorded.
type RatingResult struct {
	Rating float64
	Count  int
}

// StaffService defines use-case operations for the staff directory.
type StaffService interface {
	ListStaff(ctx context.Context) ([]*domain.StaffMember, error)
	GetStaff(ctx context.Context, id string) (*domain.StaffMember, error)
	CreateStaff(ctx context.Context, input CreateStaffInput) (*domain.StaffMember, error)
	SubmitRating(ctx context.Context, id string, rating int) (*RatingResult, error)
}
