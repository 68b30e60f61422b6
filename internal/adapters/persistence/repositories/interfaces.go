package repositories

import (
	"context"

	"gymdesk/internal/adapters/persistence/models"
)

// UserRepository defines staff account repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// RefreshTokenRepository defines refresh token repository interface
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *models.RefreshToken) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*models.RefreshToken, error)
	RevokeByTokenHash(ctx context.Context, tokenHash string) error
	RevokeAllByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}

// MemberRepository defines member repository interface. All reads and writes
// are tenant-scoped.
type MemberRepository interface {
	Create(ctx context.Context, member *models.Member) error
	GetByID(ctx context.Context, tenantID, id uint) (*models.Member, error)
	GetByCardCode(ctx context.Context, cardCode string) (*models.Member, error)
	Update(ctx context.Context, member *models.Member) error
	Delete(ctx context.Context, tenantID, id uint) error
	List(ctx context.Context, tenantID uint, search string, offset, limit int) ([]*models.Member, int64, error)
}

// MembershipRepository defines membership repository interface.
// FetchAllForLifecycle is the bulk read consumed by the daily job.
type MembershipRepository interface {
	Create(ctx context.Context, membership *models.Membership) error
	GetByID(ctx context.Context, tenantID, id uint) (*models.Membership, error)
	GetCurrentByMemberID(ctx context.Context, tenantID, memberID uint) (*models.Membership, error)
	ListByMemberID(ctx context.Context, tenantID, memberID uint) ([]*models.Membership, error)
	Update(ctx context.Context, membership *models.Membership) error
	FetchAllForLifecycle(ctx context.Context) ([]models.Membership, error)
	UpdateStatus(ctx context.Context, membershipID, memberID uint, status string) error
}

// ReminderLogRepository is the dedup gate for lifecycle reminders.
// TryMarkSent returns (true, nil) when the insert succeeded, (false, nil) on
// a uniqueness conflict (already sent today), and (false, err) on any other
// store failure.
type ReminderLogRepository interface {
	TryMarkSent(ctx context.Context, tenantID, memberID uint, kind, day string) (bool, error)
}

// OutboxRepository defines the two outbound message queues (push + WhatsApp)
type OutboxRepository interface {
	EnqueuePush(ctx context.Context, msg *models.PushOutbox) error
	EnqueueWhatsApp(ctx context.Context, msg *models.WhatsAppOutbox) error
	PendingPush(ctx context.Context, limit int) ([]models.PushOutbox, error)
	PendingWhatsApp(ctx context.Context, limit int) ([]models.WhatsAppOutbox, error)
	MarkPushStatus(ctx context.Context, id uint, status string) error
	MarkWhatsAppStatus(ctx context.Context, id uint, status string) error
}

// PlanRepository defines membership plan repository interface
type PlanRepository interface {
	Create(ctx context.Context, plan *models.Plan) error
	GetByID(ctx context.Context, tenantID, id uint) (*models.Plan, error)
	List(ctx context.Context, tenantID uint) ([]*models.Plan, error)
	Update(ctx context.Context, plan *models.Plan) error
	Delete(ctx context.Context, tenantID, id uint) error
}
