package models

import "time"

// ============================================================
// Lifecycle Job Tables: reminder log + outbound message queues
// ============================================================

// ReminderLog is the idempotency record for the daily lifecycle job.
// The (member_id, type, triggered_on) unique index is the sole mechanism
// preventing duplicate sends on job retry or re-invocation within a day.
type ReminderLog struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	TenantID    uint      `gorm:"index;not null" json:"tenant_id"`
	MemberID    uint      `gorm:"not null;uniqueIndex:idx_reminder_dedup" json:"member_id"`
	Type        string    `gorm:"size:20;not null;uniqueIndex:idx_reminder_dedup" json:"type"`
	TriggeredOn string    `gorm:"size:10;not null;uniqueIndex:idx_reminder_dedup" json:"triggered_on"` // YYYY-MM-DD
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (ReminderLog) TableName() string {
	return "reminder_logs"
}

// Outbox message statuses
const (
	OutboxStatusPending = "PENDING"
	OutboxStatusSent    = "SENT"
	OutboxStatusFailed  = "FAILED"
)

// PushOutbox is the push-notification outbound queue, drained by the
// delivery worker
type PushOutbox struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	TenantID  uint       `gorm:"index;not null" json:"tenant_id"`
	MemberID  uint       `gorm:"index;not null" json:"member_id"`
	Title     string     `gorm:"size:200;not null" json:"title"`
	Body      string     `gorm:"type:text;not null" json:"body"`
	Status    string     `gorm:"size:20;default:'PENDING';index" json:"status"`
	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PushOutbox) TableName() string {
	return "push_outbox"
}

// WhatsAppOutbox is the WhatsApp outbound queue, drained by the delivery
// worker. ContentVariables is the provider template payload as JSON
// ({"1": memberName, "2": tenantName, "3": body}).
type WhatsAppOutbox struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	TenantID          uint       `gorm:"index;not null" json:"tenant_id"`
	MemberID          uint       `gorm:"index;not null" json:"member_id"`
	Phone             string     `gorm:"size:20;not null" json:"phone"`
	Body              string     `gorm:"type:text;not null" json:"body"`
	ContentTemplateID string     `gorm:"size:64" json:"content_template_id"`
	ContentVariables  string     `gorm:"type:text" json:"content_variables"`
	Status            string     `gorm:"size:20;default:'PENDING';index" json:"status"`
	SentAt            *time.Time `json:"sent_at"`
	CreatedAt         time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (WhatsAppOutbox) TableName() string {
	return "whatsapp_outbox"
}
