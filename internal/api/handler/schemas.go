package handler

import "github.com/omsorgsplus/booking-api/internal/core/domain"

// --- Requests ---

// Required-field rules live in the domain constructors so the messages match
// across the API and the seed command; tags here only bound sizes.

// Experience is untyped for the same reason as rateStaffRequest.Rating.
type createStaffRequest struct {
	Name       string `json:"name" validate:"max=200"`
	Role       string `json:"role" validate:"max=200"`
	Experience any    `json:"experience" swaggertype:"integer"`
}

// rateStaffRequest keeps rating untyped so strings, null and fractions can
// be told apart from a missing field and rejected with the rating message.
type rateStaffRequest struct {
	Rating any `json:"rating" swaggertype:"integer"`
}

type createBookingRequest struct {
	StaffID   string `json:"staffId" validate:"max=64"`
	Datetime  string `json:"datetime" example:"2025-05-20 14:30"`
	Need      string `json:"need" validate:"max=4000"`
	Address   string `json:"address" validate:"max=500"`
	UserEmail string `json:"userEmail" validate:"max=320"`
}

type contactRequest struct {
	Name     string `json:"name" validate:"max=200"`
	Email    string `json:"email" validate:"max=320"`
	Question string `json:"question" validate:"max=4000"`
}

// --- Responses ---

type errorResponse struct {
	Error string `json:"error"`
}

type failureResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

type ratingResponse struct {
	Message string  `json:"message"`
	Rating  float64 `json:"rating"`
	Count   int     `json:"count"`
}

type bookingCreatedResponse struct {
	Success  bool            `json:"success"`
	Booking  *domain.Booking `json:"booking"`
	Notified bool            `json:"notified"`
}

type contactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type healthResponse struct {
	OK bool `json:"ok"`
}

type livenessResponse struct {
	Status string `json:"status"`
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}
