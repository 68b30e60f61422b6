package repositories

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID within a tenant
func (r *memberRepository) GetByID(ctx context.Context, tenantID, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Preload("Tenant").
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByCardCode gets a member by digital card code (PWA check-in path)
func (r *memberRepository) GetByCardCode(ctx context.Context, cardCode string) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).
		Preload("Tenant").
		Where("card_code = ?", cardCode).
		First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Update updates a member
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// Delete soft deletes a member
func (r *memberRepository) Delete(ctx context.Context, tenantID, id uint) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&models.Member{}, id).Error
}

// List lists a tenant's members with pagination and optional name/phone search
func (r *memberRepository) List(ctx context.Context, tenantID uint, search string, offset, limit int) ([]*models.Member, int64, error) {
	var members []*models.Member
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Member{}).Where("tenant_id = ?", tenantID)
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("name ASC").Offset(offset).Limit(limit).Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}
