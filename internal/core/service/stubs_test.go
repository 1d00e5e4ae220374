package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

var nopLogger = zerolog.Nop()

var errStoreDown = errors.New("connection refused")

// isHexID mirrors the ObjectID shape check the Mongo repositories apply.
func isHexID(id string) bool {
	if len(id) != 24 {
		return false
	}
	for _, r := range id {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}
	return true
}

type stubStaffRepo struct {
	byID      map[string]*domain.StaffMember
	seq       int
	createErr error
	findErr   error
	saveErr   error
	creates   int
	saves     int
}

func newStubStaffRepo() *stubStaffRepo {
	return &stubStaffRepo{byID: make(map[string]*domain.StaffMember)}
}

func (r *stubStaffRepo) Create(_ context.Context, s *domain.StaffMember) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	r.creates++
	s.ID = fmt.Sprintf("%024x", r.seq)
	clone := *s
	clone.Ratings = append([]int{}, s.Ratings...)
	r.byID[s.ID] = &clone
	return nil
}

func (r *stubStaffRepo) FindAll(_ context.Context) ([]*domain.StaffMember, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	ids := make([]string, 0, len(r.byID))
	for id := range r.byID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]*domain.StaffMember, 0, len(ids))
	for _, id := range ids {
		clone := *r.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubStaffRepo) FindByID(_ context.Context, id string) (*domain.StaffMember, error) {
	if !isHexID(id) {
		return nil, domain.ErrInvalidID
	}
	if r.findErr != nil {
		return nil, r.findErr
	}
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrStaffNotFound
	}
	clone := *s
	clone.Ratings = append([]int{}, s.Ratings...)
	return &clone, nil
}

func (r *stubStaffRepo) SaveRatings(_ context.Context, s *domain.StaffMember) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	stored, ok := r.byID[s.ID]
	if !ok {
		return domain.ErrStaffNotFound
	}
	r.saves++
	stored.Ratings = append([]int{}, s.Ratings...)
	stored.Rating = s.Rating
	stored.RatingCount = s.RatingCount
	stored.UpdatedAt = s.UpdatedAt
	return nil
}

type stubBookingRepo struct {
	items     []*domain.Booking
	seq       int
	createErr error
	lastList  ports.BookingFilter
}

func (r *stubBookingRepo) Create(_ context.Context, b *domain.Booking) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.seq++
	b.ID = fmt.Sprintf("%024x", r.seq)
	clone := *b
	r.items = append(r.items, &clone)
	return nil
}

func (r *stubBookingRepo) List(_ context.Context, f ports.BookingFilter) ([]*domain.Booking, error) {
	r.lastList = f
	var out []*domain.Booking
	for i := len(r.items) - 1; i >= 0; i-- {
		if f.StaffID != "" && r.items[i].StaffID != f.StaffID {
			continue
		}
		clone := *r.items[i]
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubBookingRepo) FindByID(_ context.Context, id string) (*domain.Booking, error) {
	if !isHexID(id) {
		return nil, domain.ErrInvalidID
	}
	for _, b := range r.items {
		if b.ID == id {
			clone := *b
			return &clone, nil
		}
	}
	return nil, domain.ErrBookingNotFound
}

// ---------------------------------------------------------------------------
// Stub mailer
// ---------------------------------------------------------------------------

type stubMailer struct {
	err  error
	sent []ports.Message
}

func (m *stubMailer) Send(_ context.Context, msg ports.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}
