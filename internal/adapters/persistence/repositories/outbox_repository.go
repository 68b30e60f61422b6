package repositories

import (
	"context"
	"time"

	"gymdesk/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// outboxRepository implements OutboxRepository interface
type outboxRepository struct {
	db *gorm.DB
}

// NewOutboxRepository creates a new outbox repository
func NewOutboxRepository(db *gorm.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

// EnqueuePush appends a message to the push-notification outbox
func (r *outboxRepository) EnqueuePush(ctx context.Context, msg *models.PushOutbox) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// EnqueueWhatsApp appends a message to the WhatsApp outbox
func (r *outboxRepository) EnqueueWhatsApp(ctx context.Context, msg *models.WhatsAppOutbox) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

// PendingPush returns the oldest pending push messages
func (r *outboxRepository) PendingPush(ctx context.Context, limit int) ([]models.PushOutbox, error) {
	var msgs []models.PushOutbox
	err := r.db.WithContext(ctx).
		Where("status = ?", models.OutboxStatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// PendingWhatsApp returns the oldest pending WhatsApp messages
func (r *outboxRepository) PendingWhatsApp(ctx context.Context, limit int) ([]models.WhatsAppOutbox, error) {
	var msgs []models.WhatsAppOutbox
	err := r.db.WithContext(ctx).
		Where("status = ?", models.OutboxStatusPending).
		Order("id ASC").
		Limit(limit).
		Find(&msgs).Error
	return msgs, err
}

// MarkPushStatus transitions a push message to SENT or FAILED
func (r *outboxRepository) MarkPushStatus(ctx context.Context, id uint, status string) error {
	updates := map[string]interface{}{"status": status}
	if status == models.OutboxStatusSent {
		now := time.Now()
		updates["sent_at"] = &now
	}
	return r.db.WithContext(ctx).
		Model(&models.PushOutbox{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// MarkWhatsAppStatus transitions a WhatsApp message to SENT or FAILED
func (r *outboxRepository) MarkWhatsAppStatus(ctx context.Context, id uint, status string) error {
	updates := map[string]interface{}{"status": status}
	if status == models.OutboxStatusSent {
		now := time.Now()
		updates["sent_at"] = &now
	}
	return r.db.WithContext(ctx).
		Model(&models.WhatsAppOutbox{}).
		Where("id = ?", id).
		Updates(updates).Error
}
