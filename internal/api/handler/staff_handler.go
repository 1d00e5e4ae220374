package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/omsorgsplus/booking-api/internal/api/metrics"
	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

// StaffHandler handles HTTP requests for the staff directory.
type StaffHandler struct {
	service ports.StaffService
}

func NewStaffHandler(service ports.StaffService) *StaffHandler {
	return &StaffHandler{service: service}
}

// List handles GET /api/staff.
//
// @Summary      List staff members
// @Tags         staff
// @Produce      json
// @Success      200  {array}   domain.StaffMember
// @Failure      500  {object}  errorResponse
// @Router       /api/staff [get]
func (h *StaffHandler) List(c echo.Context) error {
	list, err := h.service.ListStaff(c.Request().Context())
	if err != nil {
		return mapError(err)
	}
	if list == nil {
		list = []*domain.StaffMember{}
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /api/staff/:id.
//
// @Summary      Get a staff member
// @Tags         staff
// @Produce      json
// @Param        id   path      string  true  "Staff id (24 hex characters)"
// @Success      200  {object}  domain.StaffMember
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/staff/{id} [get]
func (h *StaffHandler) Get(c echo.Context) error {
	member, err := h.service.GetStaff(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Create handles POST /api/staff.
//
// @Summary      Create a staff member
// @Tags         staff
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStaffRequest  true  "Profile"
// @Success      201   {object}  domain.StaffMember
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/staff [post]
func (h *StaffHandler) Create(c echo.Context) error {
	var req createStaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	experience, err := domain.ExperienceFromJSON(req.Experience)
	if err != nil {
		return mapError(err)
	}

	member, err := h.service.CreateStaff(c.Request().Context(), ports.CreateStaffInput{
		Name:       req.Name,
		Role:       req.Role,
		Experience: experience,
	})
	if err != nil {
		return mapError(err)
	}

	metrics.StaffCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, member)
}

// Rate handles PUT /api/staff/:id/rating.
//
// @Summary      Rate a staff member
// @Description  Appends a whole-number rating from 1 to 5 and returns the new mean and count.
// @Tags         staff
// @Accept       json
// @Produce      json
// @Param        id    path      string            true  "Staff id"
// @Param        body  body      rateStaffRequest  true  "Rating"
// @Success      200   {object}  ratingResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/staff/{id}/rating [put]
func (h *StaffHandler) Rate(c echo.Context) error {
	var req rateStaffRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	rating, err := domain.RatingFromJSON(req.Rating)
	if err != nil {
		return mapError(err)
	}

	result, err := h.service.SubmitRating(c.Request().Context(), c.Param("id"), rating)
	if err != nil {
		return mapError(err)
	}

	metrics.RatingsSubmittedTotal.WithLabelValues(strconv.Itoa(rating)).Inc()
	return c.JSON(http.StatusOK, ratingResponse{
		Message: "rating saved",
		Rating:  result.Rating,
		Count:   result.Count,
	})
}
