package services

import (
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/core/lifecycle"

	"gorm.io/gorm"
)

// DashboardService aggregates owner dashboard stats. Queries the database
// directly - these are read-only rollups, not domain writes.
type DashboardService struct {
	db *gorm.DB
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// DashboardStats is the owner dashboard payload
type DashboardStats struct {
	TotalMembers    int64                        `json:"total_members"`
	ActiveMembers   int64                        `json:"active_members"`
	ExpiringMembers int64                        `json:"expiring_members"`
	ExpiredMembers  int64                        `json:"expired_members"`
	RevenueToday    float64                      `json:"revenue_today"`
	CheckinsToday   int64                        `json:"checkins_today"`
	ExpiringSoon    []*models.MembershipResponse `json:"expiring_soon"`
}

// GetStats builds the dashboard for one tenant
func (s *DashboardService) GetStats(tenantID uint, now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}
	today := lifecycle.Midnight(now)

	memberCounts := s.db.Model(&models.Member{}).Where("tenant_id = ?", tenantID)
	if err := memberCounts.Count(&stats.TotalMembers).Error; err != nil {
		return nil, err
	}

	statusCount := func(status lifecycle.Status, out *int64) error {
		return s.db.Model(&models.Member{}).
			Where("tenant_id = ? AND status = ?", tenantID, string(status)).
			Count(out).Error
	}
	if err := statusCount(lifecycle.StatusActive, &stats.ActiveMembers); err != nil {
		return nil, err
	}
	if err := statusCount(lifecycle.StatusExpiring, &stats.ExpiringMembers); err != nil {
		return nil, err
	}
	if err := statusCount(lifecycle.StatusExpired, &stats.ExpiredMembers); err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Sale{}).
		Where("tenant_id = ? AND created_at >= ?", tenantID, today).
		Select("COALESCE(SUM(total), 0)").
		Scan(&stats.RevenueToday).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Attendance{}).
		Where("tenant_id = ? AND checked_in_at >= ?", tenantID, today).
		Count(&stats.CheckinsToday).Error; err != nil {
		return nil, err
	}

	var expiring []models.Membership
	if err := s.db.
		Preload("Member").
		Where("tenant_id = ? AND status = ?", tenantID, string(lifecycle.StatusExpiring)).
		Order("next_due_date ASC").
		Limit(10).
		Find(&expiring).Error; err != nil {
		return nil, err
	}
	for i := range expiring {
		stats.ExpiringSoon = append(stats.ExpiringSoon, expiring[i].ToResponse())
	}

	return stats, nil
}
