package service

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"
	"time"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

const displayLayout = "2006-01-02 15:04"

var bookingText = template.Must(template.New("booking.txt").Parse(`A new booking has been received:

Staff member: {{.StaffID}}
Need:         {{.Need}}
Date & time:  {{.When}}
Address:      {{.Address}}
Customer:     {{.UserEmail}}
`))

var bookingHTML = htmltemplate.Must(htmltemplate.New("booking.html").Parse(`<h2>New booking received</h2>
<ul>
  <li><strong>Staff member:</strong> {{.StaffID}}</li>
  <li><strong>Need:</strong> {{.Need}}</li>
  <li><strong>Date &amp; time:</strong> {{.When}}</li>
  <li><strong>Address:</strong> {{.Address}}</li>
  <li><strong>Customer:</strong> {{.UserEmail}}</li>
</ul>`))

var contactText = template.Must(template.New("contact.txt").Parse(`A new question has been received.

Name:   {{.Name}}
E-mail: {{.Email}}

Question:
{{.Question}}
`))

var contactHTML = htmltemplate.Must(htmltemplate.New("contact.html").Parse(`<h2>New question received</h2>
<ul>
  <li><strong>Name:</strong> {{.Name}}</li>
  <li><strong>E-mail:</strong> {{.Email}}</li>
</ul>
<p><strong>Question:</strong><br>{{.Question}}</p>`))

// Notifications renders operator emails for bookings and contact questions.
type Notifications struct {
	operator string
	loc      *time.Location
}

// NewNotifications returns a renderer addressing operator. Times are shown
// in loc (UTC when nil).
func NewNotifications(operator string, loc *time.Location) *Notifications {
	if loc == nil {
		loc = time.UTC
	}
	return &Notifications{operator: operator, loc: loc}
}

type bookingView struct {
	*domain.Booking
	When string
}

func (n *Notifications) Booking(b *domain.Booking) (ports.Message, error) {
	view := bookingView{Booking: b, When: n.formatTime(b.Datetime)}

	text, html, err := render(bookingText, bookingHTML, view)
	if err != nil {
		return ports.Message{}, fmt.Errorf("render booking notification: %w", err)
	}

	return ports.Message{
		To:      n.operator,
		Subject: fmt.Sprintf("New booking: %s – %s", b.StaffID, view.When),
		Text:    text,
		HTML:    html,
	}, nil
}

func (n *Notifications) Contact(m domain.ContactMessage) (ports.Message, error) {
	text, html, err := render(contactText, contactHTML, m)
	if err != nil {
		return ports.Message{}, fmt.Errorf("render contact notification: %w", err)
	}

	return ports.Message{
		To:      n.operator,
		ReplyTo: m.Email,
		Subject: "New question from " + m.Name,
		Text:    text,
		HTML:    html,
	}, nil
}

func (n *Notifications) formatTime(t *time.Time) string {
	if t == nil {
		return "not specified"
	}
	return t.In(n.loc).Format(displayLayout)
}

func render(text *template.Template, html *htmltemplate.Template, data any) (string, string, error) {
	var tb, hb bytes.Buffer
	if err := text.Execute(&tb, data); err != nil {
		return "", "", err
	}
	if err := html.Execute(&hb, data); err != nil {
		return "", "", err
	}
	return tb.String(), hb.String(), nil
}
