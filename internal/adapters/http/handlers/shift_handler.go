package handlers

import (
	"errors"

	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ShiftHandler handles cash-register shift endpoints
type ShiftHandler struct {
	storeService *services.StoreService
}

// NewShiftHandler creates a new shift handler
func NewShiftHandler(storeService *services.StoreService) *ShiftHandler {
	return &ShiftHandler{storeService: storeService}
}

// Open starts a shift with an opening cash float
// @Summary Open shift
// @Tags Shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.OpenShiftInput true "Opening float"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /shifts/open [post]
func (h *ShiftHandler) Open(c *fiber.Ctx) error {
	var input services.OpenShiftInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.OpeningFloat < 0 {
		return response.BadRequest(c, "Opening float cannot be negative")
	}

	shift, err := h.storeService.OpenShift(middleware.TenantID(c), middleware.UserID(c), &input)
	if err != nil {
		if errors.Is(err, domain.ErrShiftAlreadyOpen) {
			return response.Conflict(c, "A shift is already open for this user")
		}
		return response.InternalServerError(c, "Failed to open shift")
	}
	return response.Created(c, "Shift opened", shift)
}

// Current returns the caller's open shift
// @Summary Current shift
// @Tags Shifts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /shifts/current [get]
func (h *ShiftHandler) Current(c *fiber.Ctx) error {
	shift, err := h.storeService.CurrentShift(middleware.TenantID(c), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, domain.ErrShiftNotFound) {
			return response.NotFound(c, "No open shift")
		}
		return response.InternalServerError(c, "Failed to load shift")
	}
	return response.Success(c, "Shift retrieved", shift)
}

// Close counts down a shift and reports the cash difference
// @Summary Close shift
// @Tags Shifts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Shift ID"
// @Param body body services.CloseShiftInput true "Counted cash"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /shifts/{id}/close [post]
func (h *ShiftHandler) Close(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid shift ID")
	}

	var input services.CloseShiftInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	shift, err := h.storeService.CloseShift(middleware.TenantID(c), uint(id), &input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrShiftNotFound):
			return response.NotFound(c, "Shift not found")
		case errors.Is(err, domain.ErrShiftClosed):
			return response.Conflict(c, "Shift is already closed")
		default:
			return response.InternalServerError(c, "Failed to close shift")
		}
	}
	return response.Success(c, "Shift closed", shift)
}
