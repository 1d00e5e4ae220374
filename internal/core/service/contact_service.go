package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

type ContactService struct {
	mailer        ports.Mailer
	notifications *Notifications
	logger        zerolog.Logger
}

func NewContactService(mailer ports.Mailer, notifications *Notifications, logger zerolog.Logger) *ContactService {
	return &ContactService{mailer: mailer, notifications: notifications, logger: logger}
}

// Submit mails the question to the operator. Unlike bookings, the outcome
// of the send is the outcome of the call.
func (s *ContactService) Submit(ctx context.Context, m domain.ContactMessage) error {
	if err := m.Validate(); err != nil {
		return err
	}

	msg, err := s.notifications.Contact(m)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrEmailDispatch, err)
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		s.logger.Error().Err(err).Str("from", m.Email).Msg("contact email not sent")
		return fmt.Errorf("%w: %v", domain.ErrEmailDispatch, err)
	}

	s.logger.Info().Str("from", m.Email).Msg("contact email sent")
	return nil
}
