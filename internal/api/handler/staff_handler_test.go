package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"

	"github.com/omsorgsplus/booking-api/internal/api/metrics"
	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

const annaID = "665f1c2b9d3e4a0012345678"

func TestStaffHandler_List_EmptyIsArray(t *testing.T) {
	h := NewStaffHandler(&stubStaffService{
		listFn: func(ctx context.Context) ([]*domain.StaffMember, error) { return nil, nil },
	})
	e, c, rec := newRequest(t, http.MethodGet, "/api/staff", "")

	run(e, c, h.List)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected empty JSON array, got %q", got)
	}
}

func TestStaffHandler_List_StoreDown(t *testing.T) {
	h := NewStaffHandler(&stubStaffService{
		listFn: func(ctx context.Context) ([]*domain.StaffMember, error) {
			return nil, fmt.Errorf("list staff: %w: boom", domain.ErrPersistence)
		},
	})
	e, c, rec := newRequest(t, http.MethodGet, "/api/staff", "")

	run(e, c, h.List)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestStaffHandler_Get(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"found", nil, http.StatusOK},
		{"malformed id", domain.ErrInvalidID, http.StatusBadRequest},
		{"absent", domain.ErrStaffNotFound, http.StatusNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewStaffHandler(&stubStaffService{
				getFn: func(ctx context.Context, id string) (*domain.StaffMember, error) {
					if tc.err != nil {
						return nil, tc.err
					}
					return &domain.StaffMember{ID: id, Name: "Anna", Role: "Undersköterska"}, nil
				},
			})
			e, c, rec := newRequest(t, http.MethodGet, "/", "")
			c.SetPath("/api/staff/:id")
			c.SetParamNames("id")
			c.SetParamValues(annaID)

			run(e, c, h.Get)

			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, rec.Code)
			}
		})
	}
}

func TestStaffHandler_Create_Success(t *testing.T) {
	h := NewStaffHandler(&stubStaffService{
		createFn: func(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffMember, error) {
			if in.Name != "Anna" || in.Role != "Undersköterska" || in.Experience != 5 {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.StaffMember{ID: annaID, Name: in.Name, Role: in.Role, Experience: in.Experience, Ratings: []int{}}, nil
		},
	})
	e, c, rec := newRequest(t, http.MethodPost, "/api/staff", `{"name":"Anna","role":"Undersköterska","experience":5}`)
	before := counterValue(t, metrics.StaffCreatedTotal)

	run(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if got := counterValue(t, metrics.StaffCreatedTotal); got != before+1 {
		t.Fatalf("expected staff_created_total to grow by 1, got %v -> %v", before, got)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != annaID || resp["rating"] != 0.0 || resp["ratingCount"] != 0.0 {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestStaffHandler_Create_ValidationError(t *testing.T) {
	h := NewStaffHandler(&stubStaffService{
		createFn: func(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffMember, error) {
			return nil, domain.NewValidationError("name and role are required")
		},
	})
	e, c, rec := newRequest(t, http.MethodPost, "/api/staff", `{}`)

	run(e, c, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStaffHandler_Create_InvalidPayload(t *testing.T) {
	h := NewStaffHandler(&stubStaffService{
		createFn: func(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffMember, error) {
			t.Fatalf("service must not be called")
			return nil, nil
		},
	})
	e, c, rec := newRequest(t, http.MethodPost, "/api/staff", `{"name":`)

	run(e, c, h.Create)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStaffHandler_Create_WholeNumberExperience(t *testing.T) {
	var got int
	h := NewStaffHandler(&stubStaffService{
		createFn: func(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffMember, error) {
			got = in.Experience
			return &domain.StaffMember{ID: annaID, Name: in.Name, Role: in.Role, Experience: in.Experience, Ratings: []int{}}, nil
		},
	})
	e, c, rec := newRequest(t, http.MethodPost, "/api/staff", `{"name":"Anna","role":"Undersköterska","experience":3.0}`)

	run(e, c, h.Create)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	if got != 3 {
		t.Fatalf("expected experience 3, got %d", got)
	}
}

func TestStaffHandler_Create_RejectsBadExperience(t *testing.T) {
	for _, exp := range []string{`"3"`, `2.5`, `-1`, `true`} {
		t.Run(exp, func(t *testing.T) {
			h := NewStaffHandler(&stubStaffService{
				createFn: func(ctx context.Context, in ports.CreateStaffInput) (*domain.StaffMember, error) {
					t.Fatalf("service must not be called")
					return nil, nil
				},
			})
			e, c, rec := newRequest(t, http.MethodPost, "/api/staff", `{"name":"Anna","role":"Undersköterska","experience":`+exp+`}`)

			run(e, c, h.Create)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if !strings.Contains(rec.Body.String(), "experience must be a whole number") {
				t.Fatalf("expected experience rule in body, got %s", rec.Body.String())
			}
		})
	}
}

func TestStaffHandler_Rate_Success(t *testing.T) {
	h := NewStaffHandler(&stubStaffService{
		rateFn: func(ctx context.Context, id string, rating int) (*ports.RatingResult, error) {
			if id != annaID || rating != 4 {
				t.Fatalf("unexpected args: %s %d", id, rating)
			}
			return &ports.RatingResult{Rating: 4, Count: 3}, nil
		},
	})
	e, c, rec := newRequest(t, http.MethodPut, "/", `{"rating":4}`)
	c.SetParamNames("id")
	c.SetParamValues(annaID)

	run(e, c, h.Rate)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp ratingResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Rating != 4 || resp.Count != 3 || resp.Message == "" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestStaffHandler_Rate_RejectsBadValuesBeforeService(t *testing.T) {
	bodies := []string{
		`{"rating":4.5}`,
		`{"rating":0}`,
		`{"rating":6}`,
		`{"rating":"5"}`,
		`{"rating":null}`,
		`{}`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			h := NewStaffHandler(&stubStaffService{
				rateFn: func(ctx context.Context, id string, rating int) (*ports.RatingResult, error) {
					t.Fatalf("service must not be called")
					return nil, nil
				},
			})
			e, c, rec := newRequest(t, http.MethodPut, "/", body)
			c.SetParamNames("id")
			c.SetParamValues(annaID)

			run(e, c, h.Rate)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestStaffHandler_Rate_NotFound(t *testing.T) {
	h := NewStaffHandler(&stubStaffService{
		rateFn: func(ctx context.Context, id string, rating int) (*ports.RatingResult, error) {
			return nil, domain.ErrStaffNotFound
		},
	})
	e, c, rec := newRequest(t, http.MethodPut, "/", `{"rating":5}`)
	c.SetParamNames("id")
	c.SetParamValues(annaID)

	run(e, c, h.Rate)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestMapError(t *testing.T) {
	unknown := errors.New("boom")
	if got := mapError(unknown); got != unknown {
		t.Fatalf("unknown errors must pass through, got %v", got)
	}

	code, msg := statusOf(domain.NewValidationError("rating must be an integer between 1 and 5"))
	if code != http.StatusBadRequest || msg != "rating must be an integer between 1 and 5" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}

	code, msg = statusOf(fmt.Errorf("create staff: %w", domain.NewValidationError("name is required")))
	if code != http.StatusBadRequest || msg != "name is required" {
		t.Fatalf("wrapped validation error: %d %q", code, msg)
	}

	code, _ = statusOf(fmt.Errorf("get booking: %w", domain.ErrBookingNotFound))
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestValidator_MaxLengthMessage(t *testing.T) {
	err := NewValidator().Validate(&createStaffRequest{Name: strings.Repeat("a", 201), Role: "Undersköterska"})

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %v", err)
	}
	if ve.Reason != "name must be at most 200 characters" {
		t.Fatalf("unexpected reason %q", ve.Reason)
	}
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("read counter: %v", err)
	}
	return m.GetCounter().GetValue()
}
