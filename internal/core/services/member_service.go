package services

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/lifecycle"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MemberService handles member management business logic
type MemberService struct {
	memberRepo     repositories.MemberRepository
	membershipRepo repositories.MembershipRepository
}

// NewMemberService creates a new member service
func NewMemberService(
	memberRepo repositories.MemberRepository,
	membershipRepo repositories.MembershipRepository,
) *MemberService {
	return &MemberService{
		memberRepo:     memberRepo,
		membershipRepo: membershipRepo,
	}
}

// CreateMemberInput represents create member input
type CreateMemberInput struct {
	Name  string `json:"name" validate:"required"`
	Phone string `json:"phone"`
}

// UpdateMemberInput represents update member input
type UpdateMemberInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
}

// ListMembersInput represents list members input
type ListMembersInput struct {
	Search string
	Page   int
	Limit  int
}

// ListMembersOutput represents list members output
type ListMembersOutput struct {
	Members []*models.Member `json:"members"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
}

// Create creates a member with a fresh digital card code
func (s *MemberService) Create(ctx context.Context, tenantID uint, input *CreateMemberInput) (*models.Member, error) {
	member := &models.Member{
		TenantID: tenantID,
		Name:     input.Name,
		Phone:    input.Phone,
		CardCode: uuid.New().String(),
		Status:   string(lifecycle.StatusActive),
		JoinedAt: time.Now(),
	}

	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Get gets a member by ID
func (s *MemberService) Get(ctx context.Context, tenantID, id uint) (*models.Member, error) {
	member, err := s.memberRepo.GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	return member, nil
}

// Update updates a member's editable fields
func (s *MemberService) Update(ctx context.Context, tenantID, id uint, input *UpdateMemberInput) (*models.Member, error) {
	member, err := s.Get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		member.Name = *input.Name
	}
	if input.Phone != nil {
		member.Phone = *input.Phone
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, err
	}
	return member, nil
}

// Delete soft deletes a member (memberships cascade via soft delete scoping)
func (s *MemberService) Delete(ctx context.Context, tenantID, id uint) error {
	if _, err := s.Get(ctx, tenantID, id); err != nil {
		return err
	}
	return s.memberRepo.Delete(ctx, tenantID, id)
}

// List lists a tenant's members
func (s *MemberService) List(ctx context.Context, tenantID uint, input *ListMembersInput) (*ListMembersOutput, error) {
	if input.Page < 1 {
		input.Page = 1
	}
	if input.Limit < 1 {
		input.Limit = 20
	}
	if input.Limit > 100 {
		input.Limit = 100
	}

	offset := (input.Page - 1) * input.Limit
	members, total, err := s.memberRepo.List(ctx, tenantID, input.Search, offset, input.Limit)
	if err != nil {
		return nil, err
	}

	return &ListMembersOutput{
		Members: members,
		Total:   total,
		Page:    input.Page,
		Limit:   input.Limit,
	}, nil
}

// GetCard builds the digital membership card payload for the member PWA
func (s *MemberService) GetCard(ctx context.Context, tenantID, memberID uint) (*models.MemberCardResponse, error) {
	member, err := s.Get(ctx, tenantID, memberID)
	if err != nil {
		return nil, err
	}

	card := &models.MemberCardResponse{
		CardCode:   member.CardCode,
		MemberName: member.Name,
		Status:     member.Status,
	}
	if member.Tenant != nil {
		card.TenantName = member.Tenant.Name
	}

	membership, err := s.membershipRepo.GetCurrentByMemberID(ctx, tenantID, memberID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if membership != nil {
		card.Membership = membership.ToResponse()
	}

	return card, nil
}
