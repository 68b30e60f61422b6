package repositories

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// membershipRepository implements MembershipRepository interface
type membershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

// Create creates a new membership
func (r *membershipRepository) Create(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Create(membership).Error
}

// GetByID gets a membership by ID within a tenant
func (r *membershipRepository) GetByID(ctx context.Context, tenantID, id uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Plan").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetCurrentByMemberID gets the member's most recent membership
func (r *membershipRepository) GetCurrentByMemberID(ctx context.Context, tenantID, memberID uint) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.WithContext(ctx).
		Preload("Plan").
		Where("tenant_id = ? AND member_id = ?", tenantID, memberID).
		Order("next_due_date DESC").
		First(&membership).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// ListByMemberID lists all memberships of a member, newest first
func (r *membershipRepository) ListByMemberID(ctx context.Context, tenantID, memberID uint) ([]*models.Membership, error) {
	var memberships []*models.Membership
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND member_id = ?", tenantID, memberID).
		Order("next_due_date DESC").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// Update updates a membership
func (r *membershipRepository) Update(ctx context.Context, membership *models.Membership) error {
	return r.db.WithContext(ctx).Save(membership).Error
}

// FetchAllForLifecycle is the bulk read for the daily lifecycle job: all
// memberships across tenants with member, tenant and plan joined. Single
// shot, no pagination - acceptable at current scale.
func (r *membershipRepository) FetchAllForLifecycle(ctx context.Context) ([]models.Membership, error) {
	var memberships []models.Membership
	err := r.db.WithContext(ctx).
		Preload("Member").
		Preload("Tenant").
		Preload("Plan").
		Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	return memberships, nil
}

// UpdateStatus writes the recomputed lifecycle status to the membership and
// mirrors it onto the member row for display
func (r *membershipRepository) UpdateStatus(ctx context.Context, membershipID, memberID uint, status string) error {
	err := r.db.WithContext(ctx).
		Model(&models.Membership{}).
		Where("id = ?", membershipID).
		Update("status", status).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&models.Member{}).
		Where("id = ?", memberID).
		Update("status", status).Error
}
