package services_test

import (
	"testing"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newStoreService(db *gorm.DB) *services.StoreService {
	return services.NewStoreService(repositories.NewStoreRepository(db))
}

func seedProduct(t *testing.T, db *gorm.DB, tenantID uint, name string, price float64, stock int) *models.Product {
	t.Helper()
	product := &models.Product{TenantID: tenantID, Name: name, Price: price, Stock: stock, IsActive: true}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestCheckout_PricesCartAndDecrementsStock(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	shake := seedProduct(t, db, tenant.ID, "Protein Shake", 180, 10)
	towel := seedProduct(t, db, tenant.ID, "Towel", 250, 5)

	svc := newStoreService(db)
	sale, err := svc.Checkout(tenant.ID, 1, &services.CheckoutInput{
		Items: []services.CheckoutItemInput{
			{ProductID: shake.ID, Quantity: 2},
			{ProductID: towel.ID, Quantity: 1},
		},
		PaymentMethod: models.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, 610.0, sale.Total)
	assert.Len(t, sale.Items, 2)
	assert.NotEmpty(t, sale.ReceiptNo)
	assert.Nil(t, sale.ShiftID)

	var got models.Product
	require.NoError(t, db.First(&got, shake.ID).Error)
	assert.Equal(t, 8, got.Stock)
	got = models.Product{}
	require.NoError(t, db.First(&got, towel.ID).Error)
	assert.Equal(t, 4, got.Stock)
}

func TestCheckout_RejectsInsufficientStock(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	shake := seedProduct(t, db, tenant.ID, "Protein Shake", 180, 1)

	svc := newStoreService(db)
	_, err := svc.Checkout(tenant.ID, 1, &services.CheckoutInput{
		Items:         []services.CheckoutItemInput{{ProductID: shake.ID, Quantity: 3}},
		PaymentMethod: models.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	// Stock untouched and no sale recorded
	var got models.Product
	require.NoError(t, db.First(&got, shake.ID).Error)
	assert.Equal(t, 1, got.Stock)

	var count int64
	db.Model(&models.Sale{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCheckout_EmptyCartRejected(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")

	svc := newStoreService(db)
	_, err := svc.Checkout(tenant.ID, 1, &services.CheckoutInput{PaymentMethod: models.PaymentCash})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCheckout_AttachesOpenShift(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	shake := seedProduct(t, db, tenant.ID, "Protein Shake", 180, 10)

	svc := newStoreService(db)
	shift, err := svc.OpenShift(tenant.ID, 7, &services.OpenShiftInput{OpeningFloat: 500})
	require.NoError(t, err)

	sale, err := svc.Checkout(tenant.ID, 7, &services.CheckoutInput{
		Items:         []services.CheckoutItemInput{{ProductID: shake.ID, Quantity: 1}},
		PaymentMethod: models.PaymentCash,
	})
	require.NoError(t, err)
	require.NotNil(t, sale.ShiftID)
	assert.Equal(t, shift.ID, *sale.ShiftID)
}

func TestOpenShift_OnlyOneOpenPerUser(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")

	svc := newStoreService(db)
	_, err := svc.OpenShift(tenant.ID, 7, &services.OpenShiftInput{OpeningFloat: 500})
	require.NoError(t, err)

	_, err = svc.OpenShift(tenant.ID, 7, &services.OpenShiftInput{OpeningFloat: 100})
	assert.ErrorIs(t, err, domain.ErrShiftAlreadyOpen)

	// A different user can still open one
	_, err = svc.OpenShift(tenant.ID, 8, &services.OpenShiftInput{OpeningFloat: 200})
	assert.NoError(t, err)
}

func TestCloseShift_ReconcilesCash(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	shake := seedProduct(t, db, tenant.ID, "Protein Shake", 180, 10)

	svc := newStoreService(db)
	shift, err := svc.OpenShift(tenant.ID, 7, &services.OpenShiftInput{OpeningFloat: 500})
	require.NoError(t, err)

	// Two cash sales and one card sale inside the shift window; card
	// sales must not count toward expected cash
	for i := 0; i < 2; i++ {
		_, err = svc.Checkout(tenant.ID, 7, &services.CheckoutInput{
			Items:         []services.CheckoutItemInput{{ProductID: shake.ID, Quantity: 1}},
			PaymentMethod: models.PaymentCash,
		})
		require.NoError(t, err)
	}
	_, err = svc.Checkout(tenant.ID, 7, &services.CheckoutInput{
		Items:         []services.CheckoutItemInput{{ProductID: shake.ID, Quantity: 1}},
		PaymentMethod: models.PaymentCard,
	})
	require.NoError(t, err)

	closed, err := svc.CloseShift(tenant.ID, shift.ID, &services.CloseShiftInput{CashCounted: 850})
	require.NoError(t, err)

	assert.Equal(t, models.ShiftStatusClosed, closed.Status)
	assert.Equal(t, 860.0, closed.ExpectedCash) // 500 float + 2 x 180 cash
	require.NotNil(t, closed.CashCounted)
	assert.Equal(t, 850.0, *closed.CashCounted)
	assert.Equal(t, -10.0, closed.Difference) // short by 10

	// Closing twice is rejected
	_, err = svc.CloseShift(tenant.ID, shift.ID, &services.CloseShiftInput{CashCounted: 850})
	assert.ErrorIs(t, err, domain.ErrShiftClosed)
}
