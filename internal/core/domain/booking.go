package domain

import (
	"strings"
	"time"
)

// localLayouts are the wall-clock formats the booking page submits
// (flatpickr "Y-m-d H:i" and the datetime-local input).
var localLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Booking is an immutable appointment request. StaffID is not checked
// against the staff collection and overlapping bookings are allowed.
type Booking struct {
	ID        string     `json:"id"`
	StaffID   string     `json:"staffId"`
	Datetime  *time.Time `json:"datetime"`
	Need      string     `json:"need"`
	Address   string     `json:"address"`
	UserEmail string     `json:"userEmail"`
	CreatedAt time.Time  `json:"createdAt"`
}

// NewBooking stamps CreatedAt. No other checks are applied.
func NewBooking(staffID string, datetime *time.Time, need, address, userEmail string, now time.Time) *Booking {
	return &Booking{
		StaffID:   strings.TrimSpace(staffID),
		Datetime:  datetime,
		Need:      need,
		Address:   address,
		UserEmail: strings.TrimSpace(userEmail),
		CreatedAt: now,
	}
}

// ParseDatetime accepts RFC 3339 or one of the local layouts, the latter
// interpreted in loc. An empty input yields nil.
func ParseDatetime(raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.UTC
	}

	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return &t, nil
		}
	}
	return nil, NewValidationError("datetime %q is not a recognised date and time", raw)
}
