package repositories

import (
	"time"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// ActivityRepository handles attendance and workout-log database operations
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// ============================================================
// Attendance
// ============================================================

// CreateAttendance records a check-in
func (r *ActivityRepository) CreateAttendance(att *models.Attendance) error {
	return r.db.Create(att).Error
}

// ListAttendance returns a member's check-ins between two times (attendance
// calendar month view)
func (r *ActivityRepository) ListAttendance(tenantID, memberID uint, from, to time.Time) ([]models.Attendance, error) {
	var entries []models.Attendance
	err := r.db.
		Where("tenant_id = ? AND member_id = ? AND checked_in_at >= ? AND checked_in_at < ?",
			tenantID, memberID, from, to).
		Order("checked_in_at ASC").
		Find(&entries).Error
	return entries, err
}

// HasCheckedInToday reports whether the member already checked in today
func (r *ActivityRepository) HasCheckedInToday(tenantID, memberID uint, today time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("tenant_id = ? AND member_id = ? AND checked_in_at >= ? AND checked_in_at < ?",
			tenantID, memberID, today, today.AddDate(0, 0, 1)).
		Count(&count).Error
	return count > 0, err
}

// CountCheckinsSince counts a tenant's check-ins since the given time
func (r *ActivityRepository) CountCheckinsSince(tenantID uint, since time.Time) (int64, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("tenant_id = ? AND checked_in_at >= ?", tenantID, since).
		Count(&count).Error
	return count, err
}

// ============================================================
// Workout Log
// ============================================================

// CreateWorkoutLog records a workout entry
func (r *ActivityRepository) CreateWorkoutLog(entry *models.WorkoutLog) error {
	return r.db.Create(entry).Error
}

// ListWorkoutLogs returns a member's workout entries, newest day first
func (r *ActivityRepository) ListWorkoutLogs(tenantID, memberID uint, limit int) ([]models.WorkoutLog, error) {
	var entries []models.WorkoutLog
	err := r.db.
		Where("tenant_id = ? AND member_id = ?", tenantID, memberID).
		Order("logged_on DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// DeleteWorkoutLog soft deletes a workout entry
func (r *ActivityRepository) DeleteWorkoutLog(tenantID, memberID, id uint) error {
	result := r.db.
		Where("tenant_id = ? AND member_id = ?", tenantID, memberID).
		Delete(&models.WorkoutLog{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
