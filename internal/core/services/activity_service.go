package services

import (
	"context"
	"errors"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/domain"
	"gymdesk/internal/core/lifecycle"

	"gorm.io/gorm"
)

// ActivityService handles attendance check-ins and the member workout log
type ActivityService struct {
	activityRepo *repositories.ActivityRepository
	memberRepo   repositories.MemberRepository
}

// NewActivityService creates a new activity service
func NewActivityService(
	activityRepo *repositories.ActivityRepository,
	memberRepo repositories.MemberRepository,
) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		memberRepo:   memberRepo,
	}
}

// CheckInResult is the front-desk check-in outcome
type CheckInResult struct {
	Member       *models.Member `json:"member"`
	AlreadyToday bool           `json:"already_today"`
}

// CheckInByCard records an attendance entry for the member holding the given
// card code. An expired member is rejected; a second scan on the same day is
// reported but not double-recorded.
func (s *ActivityService) CheckInByCard(ctx context.Context, tenantID uint, cardCode string, now time.Time) (*CheckInResult, error) {
	member, err := s.memberRepo.GetByCardCode(ctx, cardCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}
	if member.TenantID != tenantID {
		return nil, domain.ErrMemberNotFound
	}

	if member.Status == string(lifecycle.StatusExpired) {
		return nil, domain.ErrMemberExpired
	}

	today := lifecycle.Midnight(now)
	already, err := s.activityRepo.HasCheckedInToday(tenantID, member.ID, today)
	if err != nil {
		return nil, err
	}
	if already {
		return &CheckInResult{Member: member, AlreadyToday: true}, nil
	}

	att := &models.Attendance{
		TenantID:    tenantID,
		MemberID:    member.ID,
		CheckedInAt: now,
	}
	if err := s.activityRepo.CreateAttendance(att); err != nil {
		return nil, err
	}

	return &CheckInResult{Member: member}, nil
}

// AttendanceMonth returns a member's check-ins for one calendar month
// (attendance calendar view)
func (s *ActivityService) AttendanceMonth(ctx context.Context, tenantID, memberID uint, year int, month time.Month) ([]models.Attendance, error) {
	if _, err := s.memberRepo.GetByID(ctx, tenantID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	to := from.AddDate(0, 1, 0)
	return s.activityRepo.ListAttendance(tenantID, memberID, from, to)
}

// WorkoutInput represents one workout log entry
type WorkoutInput struct {
	Exercise string  `json:"exercise" validate:"required"`
	Sets     int     `json:"sets"`
	Reps     int     `json:"reps"`
	Weight   float64 `json:"weight"`
	Notes    string  `json:"notes"`
}

// LogWorkout records a workout entry for today
func (s *ActivityService) LogWorkout(ctx context.Context, tenantID, memberID uint, input *WorkoutInput, now time.Time) (*models.WorkoutLog, error) {
	if _, err := s.memberRepo.GetByID(ctx, tenantID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMemberNotFound
		}
		return nil, err
	}

	entry := &models.WorkoutLog{
		TenantID: tenantID,
		MemberID: memberID,
		Exercise: input.Exercise,
		Sets:     input.Sets,
		Reps:     input.Reps,
		Weight:   input.Weight,
		Notes:    input.Notes,
		LoggedOn: lifecycle.Midnight(now),
	}
	if err := s.activityRepo.CreateWorkoutLog(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// ListWorkouts returns a member's recent workout entries
func (s *ActivityService) ListWorkouts(ctx context.Context, tenantID, memberID uint, limit int) ([]models.WorkoutLog, error) {
	if limit < 1 || limit > 200 {
		limit = 50
	}
	return s.activityRepo.ListWorkoutLogs(tenantID, memberID, limit)
}

// DeleteWorkout removes a workout entry
func (s *ActivityService) DeleteWorkout(ctx context.Context, tenantID, memberID, id uint) error {
	return s.activityRepo.DeleteWorkoutLog(tenantID, memberID, id)
}
