package config

import (
	"log"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/pkg/password"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Development only - tenants are provisioned
// through a separate flow in production.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedDemoTenant(); err != nil {
		log.Printf("⚠️ Demo tenant seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedDemoTenant seeds a demo gym with an owner account, plans and a member
func (s *Seeder) seedDemoTenant() error {
	var count int64
	s.db.Model(&models.Tenant{}).Count(&count)
	if count > 0 {
		return nil // already seeded
	}

	tenant := &models.Tenant{
		Name:           "Iron Temple Gym",
		CurrencySymbol: "$",
		IsActive:       true,
	}
	if err := s.db.Create(tenant).Error; err != nil {
		return err
	}

	hashedPassword, err := password.Hash("owner123456")
	if err != nil {
		return err
	}

	owner := &models.User{
		TenantID: tenant.ID,
		Name:     "Demo Owner",
		Email:    "owner@irontemple.test",
		Password: hashedPassword,
		Role:     models.RoleOwner,
		IsActive: true,
	}
	if err := s.db.Create(owner).Error; err != nil {
		return err
	}

	plans := []models.Plan{
		{TenantID: tenant.ID, Name: "Monthly", Price: 49.00, DurationDays: 30, IsActive: true},
		{TenantID: tenant.ID, Name: "Quarterly", Price: 129.00, DurationDays: 90, IsActive: true},
		{TenantID: tenant.ID, Name: "Annual", Price: 449.00, DurationDays: 365, IsActive: true},
	}
	if err := s.db.Create(&plans).Error; err != nil {
		return err
	}

	member := &models.Member{
		TenantID: tenant.ID,
		Name:     "Demo Member",
		Phone:    "+15550100100",
		CardCode: uuid.New().String(),
		Status:   "ACTIVE",
		JoinedAt: time.Now(),
	}
	if err := s.db.Create(member).Error; err != nil {
		return err
	}

	membership := &models.Membership{
		TenantID:    tenant.ID,
		MemberID:    member.ID,
		PlanID:      &plans[0].ID,
		PlanName:    plans[0].Name,
		Amount:      plans[0].Price,
		NextDueDate: time.Now().AddDate(0, 0, plans[0].DurationDays),
		Status:      "ACTIVE",
	}
	if err := s.db.Create(membership).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded demo tenant '%s' (owner: %s / owner123456)", tenant.Name, owner.Email)
	return nil
}
