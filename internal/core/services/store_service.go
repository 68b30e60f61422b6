package services

import (
	"errors"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StoreService handles point-of-sale business logic: products, checkout and
// cash-register shifts
type StoreService struct {
	storeRepo *repositories.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo *repositories.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// ============================================================
// Products
// ============================================================

// ProductInput represents create/update product input
type ProductInput struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required"`
	Stock int     `json:"stock"`
}

// ListProducts lists a tenant's active products
func (s *StoreService) ListProducts(tenantID uint) ([]models.Product, error) {
	return s.storeRepo.GetActiveProducts(tenantID)
}

// CreateProduct creates a product
func (s *StoreService) CreateProduct(tenantID uint, input *ProductInput) (*models.Product, error) {
	product := &models.Product{
		TenantID: tenantID,
		Name:     input.Name,
		Price:    input.Price,
		Stock:    input.Stock,
		IsActive: true,
	}
	if err := s.storeRepo.CreateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// UpdateProduct updates a product
func (s *StoreService) UpdateProduct(tenantID, id uint, input *ProductInput) (*models.Product, error) {
	product, err := s.storeRepo.GetProductByID(tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}

	product.Name = input.Name
	product.Price = input.Price
	product.Stock = input.Stock
	if err := s.storeRepo.UpdateProduct(product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct soft deletes a product
func (s *StoreService) DeleteProduct(tenantID, id uint) error {
	return s.storeRepo.DeleteProduct(tenantID, id)
}

// ============================================================
// Checkout
// ============================================================

// CheckoutItemInput is one line of a checkout request
type CheckoutItemInput struct {
	ProductID uint `json:"product_id" validate:"required"`
	Quantity  int  `json:"quantity" validate:"required,min=1"`
}

// CheckoutInput represents a point-of-sale checkout
type CheckoutInput struct {
	MemberID      *uint               `json:"member_id"`
	Items         []CheckoutItemInput `json:"items" validate:"required,min=1"`
	PaymentMethod string              `json:"payment_method" validate:"required"`
}

// Checkout validates stock, prices the cart server-side, records the sale
// under the user's open shift (if any) and decrements stock atomically
func (s *StoreService) Checkout(tenantID, userID uint, input *CheckoutInput) (*models.Sale, error) {
	if len(input.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var items []models.SaleItem
	var total float64

	for _, line := range input.Items {
		if line.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}

		product, err := s.storeRepo.GetProductByID(tenantID, line.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrProductNotFound
			}
			return nil, err
		}
		if product.Stock < line.Quantity {
			return nil, domain.ErrInsufficientStock
		}

		subtotal := product.Price * float64(line.Quantity)
		items = append(items, models.SaleItem{
			ProductID: product.ID,
			Name:      product.Name,
			UnitPrice: product.Price,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		})
		total += subtotal
	}

	sale := &models.Sale{
		TenantID:      tenantID,
		MemberID:      input.MemberID,
		ReceiptNo:     "RCP-" + uuid.New().String(),
		Total:         total,
		PaymentMethod: input.PaymentMethod,
		Items:         items,
	}

	// Attach the cashier's open shift so the sale lands in that shift's
	// reconciliation window
	if shift, err := s.storeRepo.GetOpenShiftByUser(tenantID, userID); err == nil {
		sale.ShiftID = &shift.ID
	}

	if err := s.storeRepo.CreateSale(sale); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInsufficientStock
		}
		return nil, err
	}

	return sale, nil
}

// ListSales lists a tenant's sales
func (s *StoreService) ListSales(tenantID uint, offset, limit int) ([]models.Sale, int64, error) {
	return s.storeRepo.ListSales(tenantID, offset, limit)
}

// ============================================================
// Shifts
// ============================================================

// OpenShiftInput represents shift open input
type OpenShiftInput struct {
	OpeningFloat float64 `json:"opening_float"`
}

// CloseShiftInput represents shift close input
type CloseShiftInput struct {
	CashCounted float64 `json:"cash_counted"`
}

// OpenShift opens a cash-register shift for a user
func (s *StoreService) OpenShift(tenantID, userID uint, input *OpenShiftInput) (*models.Shift, error) {
	if _, err := s.storeRepo.GetOpenShiftByUser(tenantID, userID); err == nil {
		return nil, domain.ErrShiftAlreadyOpen
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	shift := &models.Shift{
		TenantID:     tenantID,
		UserID:       userID,
		Status:       models.ShiftStatusOpen,
		OpenedAt:     time.Now(),
		OpeningFloat: input.OpeningFloat,
	}
	if err := s.storeRepo.CreateShift(shift); err != nil {
		return nil, err
	}
	return shift, nil
}

// CurrentShift returns the user's open shift
func (s *StoreService) CurrentShift(tenantID, userID uint) (*models.Shift, error) {
	shift, err := s.storeRepo.GetOpenShiftByUser(tenantID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, err
	}
	return shift, nil
}

// CloseShift closes a shift and reconciles the register: expected cash is
// the opening float plus cash sales in the shift window, difference is what
// was counted minus what was expected
func (s *StoreService) CloseShift(tenantID, shiftID uint, input *CloseShiftInput) (*models.Shift, error) {
	shift, err := s.storeRepo.GetShiftByID(tenantID, shiftID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrShiftNotFound
		}
		return nil, err
	}
	if shift.Status == models.ShiftStatusClosed {
		return nil, domain.ErrShiftClosed
	}

	now := time.Now()
	cashSales, err := s.storeRepo.SumCashSales(tenantID, shift.OpenedAt, now)
	if err != nil {
		return nil, err
	}

	counted := input.CashCounted
	shift.Status = models.ShiftStatusClosed
	shift.ClosedAt = &now
	shift.CashCounted = &counted
	shift.ExpectedCash = shift.OpeningFloat + cashSales
	shift.Difference = counted - shift.ExpectedCash

	if err := s.storeRepo.UpdateShift(shift); err != nil {
		return nil, err
	}
	return shift, nil
}
