package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

func stockholm(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Stockholm")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestBookingHandler_List_PassesStaffFilter(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{
		listFn: func(ctx context.Context, f ports.BookingFilter) ([]*domain.Booking, error) {
			if f.StaffID != annaID {
				t.Fatalf("unexpected filter: %+v", f)
			}
			return []*domain.Booking{{ID: "b1", StaffID: annaID}}, nil
		},
	}, nil)
	e, c, rec := newRequest(t, http.MethodGet, "/api/bookings?staffId="+annaID, "")

	run(e, c, h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp) != 1 || resp[0]["staffId"] != annaID {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestBookingHandler_Get(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"found", nil, http.StatusOK},
		{"malformed id", domain.ErrInvalidID, http.StatusBadRequest},
		{"absent", domain.ErrBookingNotFound, http.StatusNotFound},
		{"store down", fmt.Errorf("get booking: %w: timeout", domain.ErrPersistence), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewBookingHandler(&stubBookingService{
				getFn: func(ctx context.Context, id string) (*domain.Booking, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					return &domain.Booking{ID: id}, nil
				},
			}, nil)
			e, c, rec := newRequest(t, http.MethodGet, "/", "")
			c.SetParamNames("id")
			c.SetParamValues("665f1c2b9d3e4a00aaaaaaaa")

			run(e, c, h.Get)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestBookingHandler_Create_ParsesLocalDatetime(t *testing.T) {
	loc := stockholm(t)
	h := NewBookingHandler(&stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
			want := time.Date(2025, 5, 20, 14, 30, 0, 0, loc)
			if in.Datetime == nil || !in.Datetime.Equal(want) {
				t.Fatalf("unexpected datetime: %v", in.Datetime)
			}
			if in.StaffID != "nonexistent-staff" || in.UserEmail != "kund@example.com" {
				t.Fatalf("unexpected input: %+v", in)
			}
			b := &domain.Booking{ID: "b1", StaffID: in.StaffID, Datetime: in.Datetime, UserEmail: in.UserEmail}
			return &ports.CreateBookingResult{Booking: b, Notified: false}, nil
		},
	}, loc)
	body := `{"staffId":"nonexistent-staff","datetime":"2025-05-20 14:30","need":"Hjälp med inköp","address":"Storgatan 1","userEmail":"kund@example.com"}`
	e, c, rec := newRequest(t, http.MethodPost, "/api/bookings", body)

	run(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["notified"] != false {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
	booking, ok := resp["booking"].(map[string]any)
	if !ok || booking["id"] != "b1" {
		t.Fatalf("expected booking in response: %+v", resp)
	}
}

func TestBookingHandler_Create_BadDatetime(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	}, nil)
	e, c, rec := newRequest(t, http.MethodPost, "/api/bookings", `{"staffId":"x","datetime":"next tuesday"}`)

	run(e, c, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	var resp failureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}

func TestBookingHandler_Create_EmptyDatetimeIsAbsent(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
			if in.Datetime != nil {
				t.Fatalf("expected nil datetime, got %v", in.Datetime)
			}
			return &ports.CreateBookingResult{Booking: &domain.Booking{ID: "b2"}, Notified: true}, nil
		},
	}, nil)
	e, c, rec := newRequest(t, http.MethodPost, "/api/bookings", `{"staffId":"x"}`)

	run(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestBookingHandler_Create_StoreDown(t *testing.T) {
	h := NewBookingHandler(&stubBookingService{
		createFn: func(ctx context.Context, in ports.CreateBookingInput) (*ports.CreateBookingResult, error) {
			return nil, fmt.Errorf("create booking: %w: timeout", domain.ErrPersistence)
		},
	}, nil)
	e, c, rec := newRequest(t, http.MethodPost, "/api/bookings", `{"staffId":"x"}`)

	run(e, c, h.Create)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	var resp failureResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Success || resp.Error == "" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}
}
