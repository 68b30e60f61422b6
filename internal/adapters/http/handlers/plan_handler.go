package handlers

import (
	"errors"

	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PlanHandler handles membership plan management endpoints
type PlanHandler struct {
	planRepo repositories.PlanRepository
}

// NewPlanHandler creates a new plan handler
func NewPlanHandler(planRepo repositories.PlanRepository) *PlanHandler {
	return &PlanHandler{planRepo: planRepo}
}

// PlanInput represents create/update plan input
type PlanInput struct {
	Name         string  `json:"name" validate:"required"`
	Price        float64 `json:"price" validate:"required"`
	DurationDays int     `json:"duration_days" validate:"required,min=1"`
	IsActive     *bool   `json:"is_active"`
}

// Create adds a new plan
// @Summary Create plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PlanInput true "Plan"
// @Success 201 {object} response.Response
// @Router /plans [post]
func (h *PlanHandler) Create(c *fiber.Ctx) error {
	var input PlanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name == "" || input.Price <= 0 || input.DurationDays <= 0 {
		return response.BadRequest(c, "Name, price and duration_days are required")
	}

	plan := &models.Plan{
		TenantID:     middleware.TenantID(c),
		Name:         input.Name,
		Price:        input.Price,
		DurationDays: input.DurationDays,
		IsActive:     true,
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := h.planRepo.Create(c.Context(), plan); err != nil {
		return response.InternalServerError(c, "Failed to create plan")
	}
	return response.Created(c, "Plan created", plan)
}

// List returns the tenant's plans
// @Summary List plans
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /plans [get]
func (h *PlanHandler) List(c *fiber.Ctx) error {
	plans, err := h.planRepo.List(c.Context(), middleware.TenantID(c))
	if err != nil {
		return response.InternalServerError(c, "Failed to list plans")
	}
	return response.Success(c, "Plans retrieved", plans)
}

// Update modifies a plan
// @Summary Update plan
// @Tags Plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Param body body PlanInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /plans/{id} [put]
func (h *PlanHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid plan ID")
	}

	plan, err := h.planRepo.GetByID(c.Context(), middleware.TenantID(c), uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Plan not found")
		}
		return response.InternalServerError(c, "Failed to load plan")
	}

	var input PlanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.Name != "" {
		plan.Name = input.Name
	}
	if input.Price > 0 {
		plan.Price = input.Price
	}
	if input.DurationDays > 0 {
		plan.DurationDays = input.DurationDays
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := h.planRepo.Update(c.Context(), plan); err != nil {
		return response.InternalServerError(c, "Failed to update plan")
	}
	return response.Success(c, "Plan updated", plan)
}

// Delete retires a plan
// @Summary Delete plan
// @Tags Plans
// @Produce json
// @Security BearerAuth
// @Param id path int true "Plan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /plans/{id} [delete]
func (h *PlanHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid plan ID")
	}

	if err := h.planRepo.Delete(c.Context(), middleware.TenantID(c), uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NotFound(c, "Plan not found")
		}
		return response.InternalServerError(c, "Failed to delete plan")
	}
	return response.Success(c, "Plan deleted", nil)
}
