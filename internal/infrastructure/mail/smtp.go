// Package mail delivers operator notifications over an authenticated SMTP
// relay, or logs them when no relay is configured.
package mail

import (
	"context"
	"fmt"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

const (
	defaultPort    = 587
	defaultTimeout = 15 * time.Second
	implicitTLS    = 465
)

// Config holds the relay account used for every outgoing message.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	// FromName is the display name on the From header; the address is Username.
	FromName string
	Timeout  time.Duration
}

// SMTPMailer sends each message in its own connection. There is no retry.
type SMTPMailer struct {
	client   *gomail.Client
	from     string
	fromName string
}

func NewSMTPMailer(cfg Config) (*SMTPMailer, error) {
	port := cfg.Port
	if port <= 0 {
		port = defaultPort
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(cfg.Username),
		gomail.WithPassword(cfg.Password),
		gomail.WithTimeout(timeout),
		gomail.WithTLSPolicy(gomail.TLSMandatory),
	}
	if port == implicitTLS {
		opts = append(opts, gomail.WithSSL())
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("smtp client: %w", err)
	}

	return &SMTPMailer{client: client, from: cfg.Username, fromName: cfg.FromName}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg ports.Message) error {
	out, err := m.build(msg)
	if err != nil {
		return err
	}
	if err := m.client.DialAndSendWithContext(ctx, out); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

func (m *SMTPMailer) build(msg ports.Message) (*gomail.Msg, error) {
	out := gomail.NewMsg()

	if m.fromName != "" {
		if err := out.FromFormat(m.fromName, m.from); err != nil {
			return nil, fmt.Errorf("from address: %w", err)
		}
	} else if err := out.From(m.from); err != nil {
		return nil, fmt.Errorf("from address: %w", err)
	}

	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("to address: %w", err)
	}
	if msg.ReplyTo != "" {
		if err := out.ReplyTo(msg.ReplyTo); err != nil {
			return nil, fmt.Errorf("reply-to address: %w", err)
		}
	}

	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextPlain, msg.Text)
	if msg.HTML != "" {
		out.AddAlternativeString(gomail.TypeTextHTML, msg.HTML)
	}
	return out, nil
}
