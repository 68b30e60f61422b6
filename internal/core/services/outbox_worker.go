package services

import (
	"context"
	"log"
	"time"

	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
)

// MessageSender is the delivery contract for the outbound queues. Provider
// integrations (FCM, Twilio, ...) implement it; the worker stays agnostic.
type MessageSender interface {
	SendPush(ctx context.Context, msg *models.PushOutbox) error
	SendWhatsApp(ctx context.Context, msg *models.WhatsAppOutbox) error
}

// LogSender is the default stand-in sender: it logs instead of delivering.
// Wire a real provider via the MessageSender interface.
type LogSender struct{}

// SendPush logs the push message
func (LogSender) SendPush(_ context.Context, msg *models.PushOutbox) error {
	log.Printf("📨 [push] member=%d title=%q", msg.MemberID, msg.Title)
	return nil
}

// SendWhatsApp logs the WhatsApp message
func (LogSender) SendWhatsApp(_ context.Context, msg *models.WhatsAppOutbox) error {
	log.Printf("📨 [whatsapp] member=%d phone=%s template=%s", msg.MemberID, msg.Phone, msg.ContentTemplateID)
	return nil
}

// OutboxWorker drains the push and WhatsApp outboxes in the background and
// transitions each message to SENT or FAILED
type OutboxWorker struct {
	outboxRepo repositories.OutboxRepository
	sender     MessageSender
	interval   time.Duration
	batchSize  int
	stopChan   chan struct{}
}

// NewOutboxWorker creates a new outbox worker
func NewOutboxWorker(outboxRepo repositories.OutboxRepository, sender MessageSender, interval time.Duration, batchSize int) *OutboxWorker {
	return &OutboxWorker{
		outboxRepo: outboxRepo,
		sender:     sender,
		interval:   interval,
		batchSize:  batchSize,
		stopChan:   make(chan struct{}),
	}
}

// Start launches the drain loops
func (w *OutboxWorker) Start() {
	log.Printf("🚀 OutboxWorker started (interval=%s batch=%d)", w.interval, w.batchSize)
	go w.runLoop()
}

// Stop gracefully stops the worker
func (w *OutboxWorker) Stop() {
	close(w.stopChan)
	log.Println("🛑 OutboxWorker stopped")
}

func (w *OutboxWorker) runLoop() {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.drainPush()
			w.drainWhatsApp()
		case <-w.stopChan:
			return
		}
	}
}

func (w *OutboxWorker) drainPush() {
	ctx := context.Background()

	msgs, err := w.outboxRepo.PendingPush(ctx, w.batchSize)
	if err != nil {
		log.Printf("❌ Push outbox query error: %v", err)
		return
	}

	for i := range msgs {
		msg := &msgs[i]
		status := models.OutboxStatusSent
		if err := w.sender.SendPush(ctx, msg); err != nil {
			log.Printf("❌ Push send failed (id=%d): %v", msg.ID, err)
			status = models.OutboxStatusFailed
		}
		if err := w.outboxRepo.MarkPushStatus(ctx, msg.ID, status); err != nil {
			log.Printf("❌ Push status update failed (id=%d): %v", msg.ID, err)
		}
	}

	if len(msgs) > 0 {
		log.Printf("📨 Drained %d push messages", len(msgs))
	}
}

func (w *OutboxWorker) drainWhatsApp() {
	ctx := context.Background()

	msgs, err := w.outboxRepo.PendingWhatsApp(ctx, w.batchSize)
	if err != nil {
		log.Printf("❌ WhatsApp outbox query error: %v", err)
		return
	}

	for i := range msgs {
		msg := &msgs[i]
		status := models.OutboxStatusSent
		if err := w.sender.SendWhatsApp(ctx, msg); err != nil {
			log.Printf("❌ WhatsApp send failed (id=%d): %v", msg.ID, err)
			status = models.OutboxStatusFailed
		}
		if err := w.outboxRepo.MarkWhatsAppStatus(ctx, msg.ID, status); err != nil {
			log.Printf("❌ WhatsApp status update failed (id=%d): %v", msg.ID, err)
		}
	}

	if len(msgs) > 0 {
		log.Printf("📨 Drained %d WhatsApp messages", len(msgs))
	}
}
