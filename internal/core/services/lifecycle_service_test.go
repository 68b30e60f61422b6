package services_test

import (
	"context"
	"testing"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newLifecycleService(db *gorm.DB) *services.LifecycleService {
	return services.NewLifecycleService(
		repositories.NewMembershipRepository(db),
		repositories.NewReminderLogRepository(db),
		repositories.NewOutboxRepository(db),
		"membership_reminder_v1",
	)
}

func TestRunDailyJob_StatusesAndReminders(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	now := time.Date(2025, 6, 10, 2, 30, 0, 0, time.UTC)

	// Due today: status flips to EXPIRING and DUE_TODAY fires
	dueToday := seedMember(t, db, tenant.ID, "Ravi", "+919900011111")
	seedMembership(t, db, tenant.ID, dueToday.ID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 1500)

	// 7 days overdue: status EXPIRED and RECOVERY_7D fires
	overdue := seedMember(t, db, tenant.ID, "Priya", "+919900022222")
	seedMembership(t, db, tenant.ID, overdue.ID, time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC), 1500)

	// Far-future due date: stays ACTIVE, no reminder
	fresh := seedMember(t, db, tenant.ID, "Arjun", "+919900033333")
	seedMembership(t, db, tenant.ID, fresh.ID, time.Date(2025, 7, 20, 0, 0, 0, 0, time.UTC), 1500)

	// 4 days overdue: EXPIRED but between recovery offsets, no reminder
	between := seedMember(t, db, tenant.ID, "Meera", "+919900044444")
	seedMembership(t, db, tenant.ID, between.ID, time.Date(2025, 6, 6, 0, 0, 0, 0, time.UTC), 1500)

	svc := newLifecycleService(db)
	result, err := svc.RunDailyJob(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Processed)
	assert.Equal(t, 2, result.NotificationsQueued)

	statusOf := func(memberID uint) string {
		var m models.Membership
		require.NoError(t, db.Where("member_id = ?", memberID).First(&m).Error)
		return m.Status
	}
	assert.Equal(t, "EXPIRING", statusOf(dueToday.ID))
	assert.Equal(t, "EXPIRED", statusOf(overdue.ID))
	assert.Equal(t, "ACTIVE", statusOf(fresh.ID))
	assert.Equal(t, "EXPIRED", statusOf(between.ID))

	// Member rows mirror the membership status
	var member models.Member
	require.NoError(t, db.First(&member, overdue.ID).Error)
	assert.Equal(t, "EXPIRED", member.Status)

	// One reminder log per fired kind
	var logs []models.ReminderLog
	require.NoError(t, db.Order("member_id").Find(&logs).Error)
	require.Len(t, logs, 2)
	assert.Equal(t, "DUE_TODAY", logs[0].Type)
	assert.Equal(t, "2025-06-10", logs[0].TriggeredOn)
	assert.Equal(t, "RECOVERY_7D", logs[1].Type)
}

func TestRunDailyJob_SecondRunSameDayQueuesNothing(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")
	member := seedMember(t, db, tenant.ID, "Ravi", "+919900011111")
	seedMembership(t, db, tenant.ID, member.ID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 1500)

	svc := newLifecycleService(db)
	now := time.Date(2025, 6, 10, 2, 30, 0, 0, time.UTC)

	first, err := svc.RunDailyJob(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, first.NotificationsQueued)

	// Re-run an hour later, still the same calendar day
	second, err := svc.RunDailyJob(context.Background(), now.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, second.Processed)
	assert.Equal(t, 0, second.NotificationsQueued)

	var pushCount, waCount int64
	db.Model(&models.PushOutbox{}).Count(&pushCount)
	db.Model(&models.WhatsAppOutbox{}).Count(&waCount)
	assert.Equal(t, int64(1), pushCount)
	assert.Equal(t, int64(1), waCount)
}

func TestRunDailyJob_PhoneGatesWhatsAppFanout(t *testing.T) {
	db := setupTestDB(t)
	tenant := seedTenant(t, db, "Iron Temple Gym")

	withPhone := seedMember(t, db, tenant.ID, "Ravi", "+919900011111")
	seedMembership(t, db, tenant.ID, withPhone.ID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 1500)

	noPhone := seedMember(t, db, tenant.ID, "Priya", "")
	seedMembership(t, db, tenant.ID, noPhone.ID, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), 1200)

	svc := newLifecycleService(db)
	result, err := svc.RunDailyJob(context.Background(), time.Date(2025, 6, 10, 2, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, 2, result.NotificationsQueued)

	// Both members get a push, only the one with a phone gets WhatsApp
	var pushCount int64
	db.Model(&models.PushOutbox{}).Count(&pushCount)
	assert.Equal(t, int64(2), pushCount)

	var wa []models.WhatsAppOutbox
	require.NoError(t, db.Find(&wa).Error)
	require.Len(t, wa, 1)
	assert.Equal(t, withPhone.ID, wa[0].MemberID)
	assert.Equal(t, "+919900011111", wa[0].Phone)
	assert.Equal(t, "membership_reminder_v1", wa[0].ContentTemplateID)
	assert.Contains(t, wa[0].ContentVariables, "Ravi")
	assert.Equal(t, models.OutboxStatusPending, wa[0].Status)
}

func TestRunDailyJob_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)
	svc := newLifecycleService(db)

	result, err := svc.RunDailyJob(context.Background(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Processed)
	assert.Equal(t, 0, result.NotificationsQueued)
}
