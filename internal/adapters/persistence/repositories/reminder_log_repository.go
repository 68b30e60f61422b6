package repositories

import (
	"context"
	"errors"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// reminderLogRepository implements ReminderLogRepository interface
type reminderLogRepository struct {
	db *gorm.DB
}

// NewReminderLogRepository creates a new reminder log repository
func NewReminderLogRepository(db *gorm.DB) ReminderLogRepository {
	return &reminderLogRepository{db: db}
}

// TryMarkSent attempts to record that this member received this reminder kind
// today. The (member_id, type, triggered_on) unique index makes the insert
// succeed at most once per day - concurrent job invocations race on the
// constraint, never on an application lock. Requires TranslateError on the
// gorm config so conflicts surface as gorm.ErrDuplicatedKey.
func (r *reminderLogRepository) TryMarkSent(ctx context.Context, tenantID, memberID uint, kind, day string) (bool, error) {
	entry := &models.ReminderLog{
		TenantID:    tenantID,
		MemberID:    memberID,
		Type:        kind,
		TriggeredOn: day,
	}

	err := r.db.WithContext(ctx).Create(entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil // already sent today
		}
		return false, err
	}

	return true, nil
}
