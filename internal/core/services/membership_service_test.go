package services_test

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newMembershipService(db *gorm.DB) *services.MembershipService {
	return services.NewMembershipService(
		repositories.NewMembershipRepository(db),
		repositories.NewMemberRepository(db),
		repositories.NewPlanRepository(db),
	)
}

func TestSignup_SetsDueDateFromPlanDuration(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	member := seedMember(t, db, tenant.ID, "Ravi", "+919900011111")
	plan := seedPlan(t, db, tenant.ID, "Monthly", 1500, 30)

	svc := newMembershipService(db)
	now := time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC)

	membership, err := svc.Signup(context.Background(), tenant.ID, &services.SignupInput{
		MemberID: member.ID,
		PlanID:   plan.ID,
	}, now)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC), membership.NextDueDate)
	assert.Equal(t, "ACTIVE", membership.Status)
	assert.Equal(t, "Monthly", membership.PlanName)
	assert.Equal(t, 1500.0, membership.Amount)

	// Member row mirrors the new status
	var got models.Member
	require.NoError(t, db.First(&got, member.ID).Error)
	assert.Equal(t, "ACTIVE", got.Status)
}

func TestSignup_UnknownMemberOrPlan(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	member := seedMember(t, db, tenant.ID, "Ravi", "")
	plan := seedPlan(t, db, tenant.ID, "Monthly", 1500, 30)

	svc := newMembershipService(db)
	now := time.Now()

	_, err := svc.Signup(context.Background(), tenant.ID, &services.SignupInput{MemberID: 999, PlanID: plan.ID}, now)
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)

	_, err = svc.Signup(context.Background(), tenant.ID, &services.SignupInput{MemberID: member.ID, PlanID: 999}, now)
	assert.ErrorIs(t, err, domain.ErrPlanNotFound)
}

func TestRenew_ActiveMembershipExtendsFromDueDate(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	member := seedMember(t, db, tenant.ID, "Ravi", "")
	plan := seedPlan(t, db, tenant.ID, "Monthly", 1500, 30)

	membership := seedMembership(t, db, tenant.ID, member.ID, time.Date(2025, 6, 20, 0, 0, 0, 0, time.UTC), 1500)
	require.NoError(t, db.Model(membership).Update("plan_id", plan.ID).Error)

	svc := newMembershipService(db)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	renewed, err := svc.Renew(context.Background(), tenant.ID, membership.ID, now)
	require.NoError(t, err)

	// Renewing early extends from the existing due date, not from today
	assert.Equal(t, time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC).Format("2006-01-02"), renewed.NextDueDate.Format("2006-01-02"))
	assert.Equal(t, "ACTIVE", renewed.Status)
}

func TestRenew_ExpiredMembershipRestartsFromToday(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	member := seedMember(t, db, tenant.ID, "Ravi", "")
	plan := seedPlan(t, db, tenant.ID, "Monthly", 1500, 30)

	// Lapsed three weeks ago
	membership := seedMembership(t, db, tenant.ID, member.ID, time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), 1500)
	require.NoError(t, db.Model(membership).Updates(map[string]interface{}{"plan_id": plan.ID, "status": "EXPIRED"}).Error)

	svc := newMembershipService(db)
	now := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)

	renewed, err := svc.Renew(context.Background(), tenant.ID, membership.ID, now)
	require.NoError(t, err)

	// The lapsed period is not billed: the new term starts today
	assert.Equal(t, "2025-07-10", renewed.NextDueDate.Format("2006-01-02"))
	assert.Equal(t, "ACTIVE", renewed.Status)

	// Member status mirror recovers as well
	var got models.Member
	require.NoError(t, db.First(&got, member.ID).Error)
	assert.Equal(t, "ACTIVE", got.Status)
}

func TestRenew_UnknownMembership(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")

	svc := newMembershipService(db)
	_, err := svc.Renew(context.Background(), tenant.ID, 12345, time.Now())
	assert.ErrorIs(t, err, domain.ErrMembershipNotFound)
}
