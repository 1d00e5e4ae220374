package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

// ---- staff ----

type stubStaffService struct {
	listFn   func(ctx context.Context) ([]*domain.StaffMember, error)
	getFn    func(ctx context.Context, id string) (*domain.StaffMember, error)
	createFn func(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffMember, error)
	rateFn   func(ctx context.Context, id string, rating int) (*ports.RatingResult, error)
}

func (s *stubStaffService) ListStaff(ctx context.Context) ([]*domain.StaffMember, error) {
	return s.listFn(ctx)
}

func (s *stubStaffService) GetStaff(ctx context.Context, id string) (*domain.StaffMember, error) {
	return s.getFn(ctx, id)
}

func (s *stubStaffService) CreateStaff(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffMember, error) {
	return s.createFn(ctx, in)
}

func (s *stubStaffService) SubmitRating(ctx context.Context, id string, rating int) (*ports.RatingResult, error) {
	return s.rateFn(ctx, id, rating)
}

// ---- bookings ----

type stubBookingService struct {
	listFn   func(ctx context.Context, f ports.BookingFilter) ([]*domain.Booking, error)
	getFn    func(ctx context.Context, id string) (*domain.Booking, error)
	createFn func(ctx context.Context, in ports.CreateBookingInput) (*ports.CreateBookingResult, error)
}

func (s *stubBookingService) ListBookings(ctx context.Context, f ports.BookingFilter) ([]*domain.Booking, error) {
	return s.listFn(ctx, f)
}

func (s *stubBookingService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.getFn(ctx, id)
}

func (s *stubBookingService) CreateBooking(ctx context.Context, in ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
	return s.createFn(ctx, in)
}

// ---- contact ----

type stubContactService struct {
	submitFn func(ctx context.Context, m domain.ContactMessage) error
}

func (s *stubContactService) Submit(ctx context.Context, m domain.ContactMessage) error {
	return s.submitFn(ctx, m)
}

// ---- helpers ----

// newRequest builds an echo context with the validator installed. A non-empty
// body is sent as JSON.
func newRequest(t *testing.T, method, target, body string) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e, e.NewContext(req, rec), rec
}

// run calls h and renders a returned error through Echo's error handler, as
// the router would.
func run(e *echo.Echo, c echo.Context, h echo.HandlerFunc) {
	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
}
