package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/core/lifecycle"
)

// statusUpdateWorkers bounds the concurrent status-update batch
const statusUpdateWorkers = 8

// dueDateFormat is the display format used in reminder bodies
const dueDateFormat = "02 Jan 2006"

// LifecycleService runs the daily membership-lifecycle job: recomputes every
// membership's status from its due date and enqueues at most one reminder per
// (member, kind, day) into the push and WhatsApp outboxes.
type LifecycleService struct {
	membershipRepo     repositories.MembershipRepository
	reminderRepo       repositories.ReminderLogRepository
	outboxRepo         repositories.OutboxRepository
	whatsAppTemplateID string
}

// NewLifecycleService creates a new lifecycle service
func NewLifecycleService(
	membershipRepo repositories.MembershipRepository,
	reminderRepo repositories.ReminderLogRepository,
	outboxRepo repositories.OutboxRepository,
	whatsAppTemplateID string,
) *LifecycleService {
	return &LifecycleService{
		membershipRepo:     membershipRepo,
		reminderRepo:       reminderRepo,
		outboxRepo:         outboxRepo,
		whatsAppTemplateID: whatsAppTemplateID,
	}
}

// DailyJobResult aggregates what one invocation did
type DailyJobResult struct {
	Processed           int `json:"processed"`
	NotificationsQueued int `json:"notifications_queued"`
}

// statusUpdate is one staged membership status write
type statusUpdate struct {
	membershipID uint
	memberID     uint
	status       lifecycle.Status
}

// reminderCandidate is one fired reminder awaiting the dedup gate
type reminderCandidate struct {
	tenantID uint
	memberID uint
	phone    string
	name     string
	tenant   string
	kind     lifecycle.ReminderKind
	msg      lifecycle.Message
}

// RunDailyJob executes one lifecycle pass. "now" is injected by the caller
// (HTTP trigger or cron) so the same normalized "today" drives classification
// and reminder scheduling. Safe to re-run within the same calendar day: the
// reminder log's unique index makes repeat sends no-ops.
func (s *LifecycleService) RunDailyJob(ctx context.Context, now time.Time) (*DailyJobResult, error) {
	today := lifecycle.Midnight(now)

	memberships, err := s.membershipRepo.FetchAllForLifecycle(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch memberships: %w", err)
	}

	result := &DailyJobResult{}
	var updates []statusUpdate
	var candidates []reminderCandidate

	for _, m := range memberships {
		// Orphaned join (member or tenant missing) - skip, not counted
		if m.Member == nil || m.Tenant == nil {
			continue
		}

		newStatus := lifecycle.Classify(m.NextDueDate, today)
		updates = append(updates, statusUpdate{
			membershipID: m.ID,
			memberID:     m.MemberID,
			status:       newStatus,
		})

		for _, kind := range lifecycle.ScheduleReminders(m.NextDueDate, today) {
			msg := lifecycle.BuildMessage(kind, lifecycle.MessageContext{
				MemberName: m.Member.Name,
				TenantName: m.Tenant.Name,
				Currency:   m.Tenant.CurrencySymbol,
				Amount:     m.Amount,
				DueDate:    m.NextDueDate.Format(dueDateFormat),
			})
			candidates = append(candidates, reminderCandidate{
				tenantID: m.TenantID,
				memberID: m.MemberID,
				phone:    m.Member.Phone,
				name:     m.Member.Name,
				tenant:   m.Tenant.Name,
				kind:     kind,
				msg:      msg,
			})
		}

		result.Processed++
	}

	s.flushStatusUpdates(ctx, updates)

	day := today.Format("2006-01-02")
	for _, c := range candidates {
		if s.processReminder(ctx, c, day) {
			result.NotificationsQueued++
		}
	}

	log.Printf("✅ Daily lifecycle job finished: processed=%d queued=%d",
		result.Processed, result.NotificationsQueued)
	return result, nil
}

// flushStatusUpdates dispatches the staged status writes as a bounded
// concurrent batch. No ordering across members is required; individual
// failures are logged and do not abort the batch.
func (s *LifecycleService) flushStatusUpdates(ctx context.Context, updates []statusUpdate) {
	sem := make(chan struct{}, statusUpdateWorkers)
	var wg sync.WaitGroup

	for _, u := range updates {
		wg.Add(1)
		sem <- struct{}{}
		go func(u statusUpdate) {
			defer wg.Done()
			defer func() { <-sem }()

			if err := s.membershipRepo.UpdateStatus(ctx, u.membershipID, u.memberID, string(u.status)); err != nil {
				log.Printf("❌ Status update failed for membership %d: %v", u.membershipID, err)
			}
		}(u)
	}

	wg.Wait()
}

// processReminder runs one (member, kind) unit through the dedup gate and,
// on success, fans out to the push outbox and (if a phone is on file) the
// WhatsApp outbox. Returns true when messages were queued.
func (s *LifecycleService) processReminder(ctx context.Context, c reminderCandidate, day string) bool {
	ok, err := s.reminderRepo.TryMarkSent(ctx, c.tenantID, c.memberID, string(c.kind), day)
	if err != nil {
		// Infrastructure failure on a single unit: skip it, keep the batch going
		log.Printf("⚠️ Reminder log insert failed (member=%d kind=%s): %v", c.memberID, c.kind, err)
		return false
	}
	if !ok {
		// Already sent today - expected on re-runs
		return false
	}

	push := &models.PushOutbox{
		TenantID: c.tenantID,
		MemberID: c.memberID,
		Title:    c.msg.Title,
		Body:     c.msg.Body,
		Status:   models.OutboxStatusPending,
	}
	if err := s.outboxRepo.EnqueuePush(ctx, push); err != nil {
		log.Printf("❌ Push enqueue failed (member=%d kind=%s): %v", c.memberID, c.kind, err)
		return false
	}

	if phone := strings.TrimSpace(c.phone); phone != "" {
		vars, _ := json.Marshal(map[string]string{
			"1": c.name,
			"2": c.tenant,
			"3": c.msg.Body,
		})
		wa := &models.WhatsAppOutbox{
			TenantID:          c.tenantID,
			MemberID:          c.memberID,
			Phone:             phone,
			Body:              c.msg.Body,
			ContentTemplateID: s.whatsAppTemplateID,
			ContentVariables:  string(vars),
			Status:            models.OutboxStatusPending,
		}
		if err := s.outboxRepo.EnqueueWhatsApp(ctx, wa); err != nil {
			log.Printf("❌ WhatsApp enqueue failed (member=%d kind=%s): %v", c.memberID, c.kind, err)
		}
	}

	return true
}
