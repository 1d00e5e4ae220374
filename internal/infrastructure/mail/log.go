package mail

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

// LogMailer writes messages to the log instead of sending them. It is used
// when no SMTP host is configured.
type LogMailer struct {
	log zerolog.Logger
}

func NewLogMailer(log zerolog.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, msg ports.Message) error {
	m.log.Info().
		Str("to", msg.To).
		Str("reply_to", msg.ReplyTo).
		Str("subject", msg.Subject).
		Str("body", msg.Text).
		Msg("mail relay not configured, message logged")
	return nil
}
