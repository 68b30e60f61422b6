package services

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/lifecycle"

	"gorm.io/gorm"
)

// MembershipService handles membership signup and renewal business logic
type MembershipService struct {
	membershipRepo repositories.MembershipRepository
	memberRepo     repositories.MemberRepository
	planRepo       repositories.PlanRepository
}

// NewMembershipService creates a new membership service
func NewMembershipService(
	membershipRepo repositories.MembershipRepository,
	memberRepo repositories.MemberRepository,
	planRepo repositories.PlanRepository,
) *MembershipService {
	return &MembershipService{
		membershipRepo: membershipRepo,
		memberRepo:     memberRepo,
		planRepo:       planRepo,
	}
}

// SignupInput represents new membership input
type SignupInput struct {
	MemberID uint `json:"member_id" validate:"required"`
	PlanID   uint `json:"plan_id" validate:"required"`
}

// Signup creates a membership for a member on a plan. The due date is the
// plan duration out from today and the status starts ACTIVE.
func (s *MembershipService) Signup(ctx context.Context, tenantID uint, input *SignupInput, now time.Time) (*models.Membership, error) {
	member, err := s.memberRepo.GetByID(ctx, tenantID, input.MemberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	plan, err := s.planRepo.GetByID(ctx, tenantID, input.PlanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPlanNotFound
		}
		return nil, err
	}

	today := lifecycle.Midnight(now)
	dueDate := today.AddDate(0, 0, plan.DurationDays)

	membership := &models.Membership{
		TenantID:    tenantID,
		MemberID:    member.ID,
		PlanID:      &plan.ID,
		PlanName:    plan.Name,
		Amount:      plan.Price,
		NextDueDate: dueDate,
		Status:      string(lifecycle.Classify(dueDate, today)),
	}
	if err := s.membershipRepo.Create(ctx, membership); err != nil {
		return nil, err
	}

	// Mirror onto the member row immediately rather than waiting for the
	// nightly job
	member.Status = membership.Status
	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}

	return membership, nil
}

// Renew pushes a membership's due date forward by its plan duration and
// recomputes status. An expired membership restarts from today; an active
// one extends from its current due date.
func (s *MembershipService) Renew(ctx context.Context, tenantID, membershipID uint, now time.Time) (*models.Membership, error) {
	membership, err := s.membershipRepo.GetByID(ctx, tenantID, membershipID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMembershipNotFound
		}
		return nil, err
	}

	durationDays := 30
	if membership.Plan != nil {
		durationDays = membership.Plan.DurationDays
	}

	today := lifecycle.Midnight(now)
	base := lifecycle.Midnight(membership.NextDueDate)
	if base.Before(today) {
		base = today
	}

	membership.NextDueDate = base.AddDate(0, 0, durationDays)
	membership.Status = string(lifecycle.Classify(membership.NextDueDate, today))
	if err := s.membershipRepo.Update(ctx, membership); err != nil {
		return nil, err
	}

	if err := s.membershipRepo.UpdateStatus(ctx, membership.ID, membership.MemberID, membership.Status); err != nil {
		return nil, err
	}

	return membership, nil
}

// ListByMember lists a member's memberships, newest first
func (s *MembershipService) ListByMember(ctx context.Context, tenantID, memberID uint) ([]*models.MembershipResponse, error) {
	memberships, err := s.membershipRepo.ListByMemberID(ctx, tenantID, memberID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.MembershipResponse, len(memberships))
	for i, m := range memberships {
		responses[i] = m.ToResponse()
	}
	return responses, nil
}
