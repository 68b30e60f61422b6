package services_test

import (
	"testing"
	"time"

	"gymdesk/internal/adapters/persistence/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens an in-memory sqlite database configured like production
// (TranslateError on) with all tables migrated
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A second pooled connection would see an empty database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, models.AutoMigrate(db))
	return db
}

func seedTenant(t *testing.T, db *gorm.DB, name string) *models.Tenant {
	t.Helper()
	tenant := &models.Tenant{Name: name, CurrencySymbol: "₹", IsActive: true}
	require.NoError(t, db.Create(tenant).Error)
	return tenant
}

func seedMember(t *testing.T, db *gorm.DB, tenantID uint, name, phone string) *models.Member {
	t.Helper()
	member := &models.Member{
		TenantID: tenantID,
		Name:     name,
		Phone:    phone,
		CardCode: name + "-card",
		Status:   "ACTIVE",
		JoinedAt: time.Now(),
	}
	require.NoError(t, db.Create(member).Error)
	return member
}

func seedMembership(t *testing.T, db *gorm.DB, tenantID, memberID uint, due time.Time, amount float64) *models.Membership {
	t.Helper()
	membership := &models.Membership{
		TenantID:    tenantID,
		MemberID:    memberID,
		PlanName:    "Monthly",
		Amount:      amount,
		NextDueDate: due,
		Status:      "ACTIVE",
	}
	require.NoError(t, db.Create(membership).Error)
	return membership
}

func seedPlan(t *testing.T, db *gorm.DB, tenantID uint, name string, price float64, days int) *models.Plan {
	t.Helper()
	plan := &models.Plan{
		TenantID:     tenantID,
		Name:         name,
		Price:        price,
		DurationDays: days,
		IsActive:     true,
	}
	require.NoError(t, db.Create(plan).Error)
	return plan
}
