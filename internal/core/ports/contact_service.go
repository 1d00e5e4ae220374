package ports

import (
	"context"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
)

// ContactService forwards contact-form questions to the operator.
type ContactService interface {
	Submit(ctx context.Context, msg domain.ContactMessage) error
}
