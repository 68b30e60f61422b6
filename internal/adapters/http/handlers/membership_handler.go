package handlers

import (
	"errors"
	"time"

	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"
	"gymdesk/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// MembershipHandler handles membership signup, renewal and history
type MembershipHandler struct {
	membershipService *services.MembershipService
}

// NewMembershipHandler creates a new membership handler
func NewMembershipHandler(membershipService *services.MembershipService) *MembershipHandler {
	return &MembershipHandler{membershipService: membershipService}
}

// Signup starts a membership for an existing member on a plan
// @Summary Sign up membership
// @Tags Memberships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SignupInput true "Member and plan"
// @Success 201 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /memberships [post]
func (h *MembershipHandler) Signup(c *fiber.Ctx) error {
	var input services.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if input.MemberID == 0 || input.PlanID == 0 {
		return response.BadRequest(c, "member_id and plan_id are required")
	}

	membership, err := h.membershipService.Signup(c.Context(), middleware.TenantID(c), &input, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrPlanNotFound):
			return response.NotFound(c, "Plan not found")
		default:
			return response.InternalServerError(c, "Failed to create membership")
		}
	}
	return response.Created(c, "Membership created", membership.ToResponse())
}

// Renew extends an existing membership by its plan duration
// @Summary Renew membership
// @Tags Memberships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Membership ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /memberships/{id}/renew [post]
func (h *MembershipHandler) Renew(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid membership ID")
	}

	membership, err := h.membershipService.Renew(c.Context(), middleware.TenantID(c), uint(id), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrMembershipNotFound):
			return response.NotFound(c, "Membership not found")
		case errors.Is(err, domain.ErrPlanNotFound):
			return response.NotFound(c, "Plan not found")
		default:
			return response.InternalServerError(c, "Failed to renew membership")
		}
	}
	return response.Success(c, "Membership renewed", membership.ToResponse())
}

// ListByMember returns a member's membership history
// @Summary Membership history
// @Tags Memberships
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Router /members/{id}/memberships [get]
func (h *MembershipHandler) ListByMember(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid member ID")
	}

	memberships, err := h.membershipService.ListByMember(c.Context(), middleware.TenantID(c), uint(id))
	if err != nil {
		return response.InternalServerError(c, "Failed to list memberships")
	}
	return response.Success(c, "Memberships retrieved", memberships)
}
