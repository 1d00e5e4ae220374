package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

type BookingService struct {
	repo          ports.BookingRepository
	mailer        ports.Mailer
	notifications *Notifications
	logger        zerolog.Logger
	now           func() time.Time
}

func NewBookingService(repo ports.BookingRepository, mailer ports.Mailer, notifications *Notifications, logger zerolog.Logger) *BookingService {
	return &BookingService{
		repo:          repo,
		mailer:        mailer,
		notifications: notifications,
		logger:        logger,
		now:           func() time.Time { return time.Now().UTC() },
	}
}

func (s *BookingService) ListBookings(ctx context.Context, filter ports.BookingFilter) ([]*domain.Booking, error) {
	list, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, persistenceErr("list bookings", err)
	}
	return list, nil
}

func (s *BookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, persistenceErr("get booking", err)
	}
	return b, nil
}

// CreateBooking stores the booking, then tries to notify the operator.
// A failed notification is logged and reported via Notified; the stored
// booking is kept either way.
func (s *BookingService) CreateBooking(ctx context.Context, input ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
	booking := domain.NewBooking(input.StaffID, input.Datetime, input.Need, input.Address, input.UserEmail, s.now())

	if err := s.repo.Create(ctx, booking); err != nil {
		s.logger.Error().Err(err).Str("staff_id", booking.StaffID).Msg("failed to store booking")
		return nil, persistenceErr("create booking", err)
	}

	s.logger.Info().Str("booking_id", booking.ID).Str("staff_id", booking.StaffID).Msg("booking created")

	return &ports.CreateBookingResult{
		Booking:  booking,
		Notified: s.notify(ctx, booking),
	}, nil
}

func (s *BookingService) notify(ctx context.Context, b *domain.Booking) bool {
	msg, err := s.notifications.Booking(b)
	if err != nil {
		s.logger.Error().Err(err).Str("booking_id", b.ID).Msg("failed to render booking notification")
		return false
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("booking_id", b.ID).Msg("booking notification not sent")
		return false
	}
	return true
}
