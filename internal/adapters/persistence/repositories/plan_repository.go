package repositories

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// planRepository implements PlanRepository interface
type planRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

// Create creates a new plan
func (r *planRepository) Create(ctx context.Context, plan *models.Plan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

// GetByID gets a plan by ID within a tenant
func (r *planRepository) GetByID(ctx context.Context, tenantID, id uint) (*models.Plan, error) {
	var plan models.Plan
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&plan).Error
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

// List lists a tenant's active plans
func (r *planRepository) List(ctx context.Context, tenantID uint) ([]*models.Plan, error) {
	var plans []*models.Plan
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("price ASC").
		Find(&plans).Error
	return plans, err
}

// Update updates a plan
func (r *planRepository) Update(ctx context.Context, plan *models.Plan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

// Delete soft deletes a plan
func (r *planRepository) Delete(ctx context.Context, tenantID, id uint) error {
	return r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Delete(&models.Plan{}, id).Error
}
