package ports

import "context"

// Message is a single outbound email. HTML is optional.
type Message struct {
	To      string
	ReplyTo string
	Subject string
	Text    string
	HTML    string
}

// Mailer delivers one message per call. Implementations do not retry or
// queue; a failed delivery is returned as an error.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}
