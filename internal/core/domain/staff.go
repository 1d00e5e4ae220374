package domain

import (
	"math"
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

// StaffMember is a bookable care worker. Rating and RatingCount are derived
// from Ratings and are only changed through AddRating.
type StaffMember struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Role        string    `json:"role"`
	Experience  int       `json:"experience"`
	Rating      float64   `json:"rating"`
	RatingCount int       `json:"ratingCount"`
	Ratings     []int     `json:"ratings"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewStaffMember validates the profile fields and returns an unrated member.
func NewStaffMember(name, role string, experience int, now time.Time) (*StaffMember, error) {
	name = strings.TrimSpace(name)
	role = strings.TrimSpace(role)

	switch {
	case name == "" && role == "":
		return nil, NewValidationError("name and role are required")
	case name == "":
		return nil, NewValidationError("name is required")
	case role == "":
		return nil, NewValidationError("role is required")
	case experience < 0:
		return nil, NewValidationError("experience must be 0 or greater")
	}

	return &StaffMember{
		Name:       name,
		Role:       role,
		Experience: experience,
		Ratings:    []int{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// ValidateRating reports whether r is an accepted star rating.
func ValidateRating(r int) error {
	if r < MinRating || r > MaxRating {
		return NewValidationError("rating must be an integer between %d and %d", MinRating, MaxRating)
	}
	return nil
}

// RatingFromJSON accepts a decoded JSON value and returns it as a star
// rating. Only whole numbers in range pass; strings, null and fractions fail
// with the same message as an out-of-range value.
func RatingFromJSON(v any) (int, error) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < MinRating || f > MaxRating {
		return 0, ValidateRating(0)
	}
	return int(f), nil
}

// ExperienceFromJSON accepts a decoded JSON value as years of experience.
// A missing value is 0; otherwise only whole numbers from 0 up pass, so 3.0
// is accepted and "3" or 2.5 are not.
func ExperienceFromJSON(v any) (int, error) {
	if v == nil {
		return 0, nil
	}
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < 0 || f > math.MaxInt32 {
		return 0, NewValidationError("experience must be a whole number, 0 or greater")
	}
	return int(f), nil
}

// AddRating appends r and recomputes the mean and count over every rating
// ever submitted. The member is left untouched when r is rejected.
func (s *StaffMember) AddRating(r int, now time.Time) error {
	if err := ValidateRating(r); err != nil {
		return err
	}
	s.Ratings = append(s.Ratings, r)
	s.recompute()
	s.UpdatedAt = now
	return nil
}

func (s *StaffMember) recompute() {
	s.RatingCount = len(s.Ratings)
	if s.RatingCount == 0 {
		s.Rating = 0
		return
	}
	total := 0
	for _, r := range s.Ratings {
		total += r
	}
	s.Rating = float64(total) / float64(s.RatingCount)
}
