package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

type StaffService struct {
	repo   ports.StaffRepository
	logger zerolog.Logger
	now    func() time.Time
}

func NewStaffService(repo ports.StaffRepository, logger zerolog.Logger) *StaffService {
	return &StaffService{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

func (s *StaffService) ListStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	list, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, persistenceErr("list staff", err)
	}
	return list, nil
}

func (s *StaffService) GetStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistenceErr("get staff", err)
	}
	return member, nil
}

// CreateStaff validates the profile and stores it with no ratings.
// Nothing is written when validation fails.
func (s *StaffService) CreateStaff(ctx context.Context, input ports.CreateStaffInput) (*domain.StaffMember, error) {
	member, err := domain.NewStaffMember(input.Name, input.Role, input.Experience, s.now())
	if err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, member); err != nil {
		s.logger.Error().Err(err).Msg("failed to create staff member")
		return nil, persistenceErr("create staff", err)
	}

	s.logger.Info().Str("staff_id", member.ID).Str("role", member.Role).Msg("staff member created")
	return member, nil
}

// SubmitRating appends one rating and persists the recomputed aggregate.
// The read-modify-write is not guarded: concurrent submissions for the same
// member can overwrite each other.
func (s *StaffService) SubmitRating(ctx context.Context, id string, rating int) (*ports.RatingResult, error) {
	if err := domain.ValidateRating(rating); err != nil {
		return nil, err
	}

	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistenceErr("submit rating", err)
	}

	if err := member.AddRating(rating, s.now()); err != nil {
		return nil, err
	}

	if err := s.repo.SaveRatings(ctx, member); err != nil {
		s.logger.Error().Err(err).Str("staff_id", id).Msg("failed to save rating")
		return nil, persistenceErr("submit rating", err)
	}

	s.logger.Info().
		Str("staff_id", id).
		Int("rating", rating).
		Float64("mean", member.Rating).
		Int("count", member.RatingCount).
		Msg("rating recorded")

	return &ports.RatingResult{Rating: member.Rating, Count: member.RatingCount}, nil
}

// persistenceErr passes classified domain errors through and tags anything
// else from the store as domain.ErrPersistence.
func persistenceErr(op string, err error) error {
	if errors.Is(err, domain.ErrInvalidID) || errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrPersistence, err)
}
