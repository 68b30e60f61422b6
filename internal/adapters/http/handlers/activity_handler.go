package handlers

import (
	"errors"
	"time"

	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ActivityHandler handles attendance and workout log endpoints
type ActivityHandler struct {
	activityService *services.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// CheckInRequest represents a card scan at the front desk
type CheckInRequest struct {
	CardCode string `json:"card_code" validate:"required"`
}

// CheckIn records attendance for a scanned member card
// @Summary Front-desk check-in
// @Tags Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CheckInRequest true "Card code"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /attendance/check-in [post]
func (h *ActivityHandler) CheckIn(c *fiber.Ctx) error {
	var req CheckInRequest
	if err := c.BodyParser(&req); err != nil || req.CardCode == "" {
		return response.BadRequest(c, "Card code required")
	}

	result, err := h.activityService.CheckInByCard(c.Context(), middleware.TenantID(c), req.CardCode, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrMemberExpired):
			return response.Forbidden(c, "Membership expired")
		default:
			return response.InternalServerError(c, "Check-in failed")
		}
	}

	if result.AlreadyToday {
		return response.Success(c, "Already checked in today", result)
	}
	return response.Success(c, "Checked in", result)
}

// Attendance returns a member's attendance for a month
// @Summary Monthly attendance
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param year query int false "Year (defaults to current)"
// @Param month query int false "Month 1-12 (defaults to current)"
// @Success 200 {object} response.Response
// @Router /members/{id}/attendance [get]
func (h *ActivityHandler) Attendance(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid member ID")
	}

	now := time.Now()
	year := c.QueryInt("year", now.Year())
	month := c.QueryInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		return response.BadRequest(c, "Month must be between 1 and 12")
	}

	entries, err := h.activityService.AttendanceMonth(c.Context(), middleware.TenantID(c), uint(id), year, time.Month(month))
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to load attendance")
	}
	return response.Success(c, "Attendance retrieved", entries)
}

// LogWorkout records a workout entry for a member
// @Summary Log workout
// @Tags Activity
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body services.WorkoutInput true "Workout entry"
// @Success 201 {object} response.Response
// @Router /members/{id}/workouts [post]
func (h *ActivityHandler) LogWorkout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid member ID")
	}

	var input services.WorkoutInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Exercise == "" {
		return response.BadRequest(c, "Exercise name required")
	}

	entry, err := h.activityService.LogWorkout(c.Context(), middleware.TenantID(c), uint(id), &input, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to log workout")
	}
	return response.Created(c, "Workout logged", entry)
}

// ListWorkouts returns a member's recent workout entries
// @Summary List workouts
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param limit query int false "Max entries (default 50)"
// @Success 200 {object} response.Response
// @Router /members/{id}/workouts [get]
func (h *ActivityHandler) ListWorkouts(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid member ID")
	}

	limit := c.QueryInt("limit", 50)
	entries, err := h.activityService.ListWorkouts(c.Context(), middleware.TenantID(c), uint(id), limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list workouts")
	}
	return response.Success(c, "Workouts retrieved", entries)
}

// DeleteWorkout removes a workout entry
// @Summary Delete workout
// @Tags Activity
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param workoutId path int true "Workout entry ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/workouts/{workoutId} [delete]
func (h *ActivityHandler) DeleteWorkout(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid member ID")
	}
	workoutID, err := c.ParamsInt("workoutId")
	if err != nil || workoutID <= 0 {
		return response.BadRequest(c, "Invalid workout ID")
	}

	if err := h.activityService.DeleteWorkout(c.Context(), middleware.TenantID(c), uint(id), uint(workoutID)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Workout entry not found")
		}
		return response.InternalServerError(c, "Failed to delete workout")
	}
	return response.Success(c, "Workout deleted", nil)
}
