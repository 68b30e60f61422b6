package repositories

import (
	"time"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// StoreRepository handles point-of-sale database operations
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates a new store repository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// ============================================================
// Product Queries
// ============================================================

// GetActiveProducts returns all active products for a tenant
func (r *StoreRepository) GetActiveProducts(tenantID uint) ([]models.Product, error) {
	var products []models.Product
	err := r.db.
		Where("tenant_id = ? AND is_active = ?", tenantID, true).
		Order("name ASC").
		Find(&products).Error
	return products, err
}

// GetProductByID returns a product by ID within a tenant
func (r *StoreRepository) GetProductByID(tenantID, id uint) (*models.Product, error) {
	var product models.Product
	err := r.db.Where("tenant_id = ?", tenantID).First(&product, id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct creates a product
func (r *StoreRepository) CreateProduct(product *models.Product) error {
	return r.db.Create(product).Error
}

// UpdateProduct updates a product
func (r *StoreRepository) UpdateProduct(product *models.Product) error {
	return r.db.Save(product).Error
}

// DeleteProduct soft deletes a product
func (r *StoreRepository) DeleteProduct(tenantID, id uint) error {
	return r.db.Where("tenant_id = ?", tenantID).Delete(&models.Product{}, id).Error
}

// ============================================================
// Sale Queries
// ============================================================

// CreateSale persists a sale with its items and decrements product stock,
// all inside one transaction
func (r *StoreRepository) CreateSale(sale *models.Sale) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(sale).Error; err != nil {
			return err
		}

		for _, item := range sale.Items {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND stock >= ?", item.ProductID, item.Quantity).
				Update("stock", gorm.Expr("stock - ?", item.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return gorm.ErrRecordNotFound
			}
		}

		return nil
	})
}

// ListSales lists a tenant's sales, newest first
func (r *StoreRepository) ListSales(tenantID uint, offset, limit int) ([]models.Sale, int64, error) {
	var sales []models.Sale
	var total int64

	query := r.db.Model(&models.Sale{}).Where("tenant_id = ?", tenantID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Items").
		Preload("Member").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&sales).Error
	return sales, total, err
}

// SumCashSales returns the total of cash sales for a tenant between two times
func (r *StoreRepository) SumCashSales(tenantID uint, from, to time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Sale{}).
		Where("tenant_id = ? AND payment_method = ? AND created_at >= ? AND created_at < ?",
			tenantID, models.PaymentCash, from, to).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

// SumSalesSince returns total revenue for a tenant since the given time
func (r *StoreRepository) SumSalesSince(tenantID uint, since time.Time) (float64, error) {
	var total float64
	err := r.db.Model(&models.Sale{}).
		Where("tenant_id = ? AND created_at >= ?", tenantID, since).
		Select("COALESCE(SUM(total), 0)").
		Scan(&total).Error
	return total, err
}

// ============================================================
// Shift Queries
// ============================================================

// CreateShift opens a new shift
func (r *StoreRepository) CreateShift(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetOpenShiftByUser returns the user's currently open shift, if any
func (r *StoreRepository) GetOpenShiftByUser(tenantID, userID uint) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.
		Where("tenant_id = ? AND user_id = ? AND status = ?", tenantID, userID, models.ShiftStatusOpen).
		Order("opened_at DESC").
		First(&shift).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetShiftByID returns a shift by ID within a tenant
func (r *StoreRepository) GetShiftByID(tenantID, id uint) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.Where("tenant_id = ?", tenantID).First(&shift, id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// UpdateShift updates a shift
func (r *StoreRepository) UpdateShift(shift *models.Shift) error {
	return r.db.Save(shift).Error
}
