package services

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CronService runs the daily lifecycle job on an in-process schedule, in
// addition to the HTTP trigger endpoint. Overlap between the two (or between
// replicas) is safe: the reminder log's unique index dedups sends.
type CronService struct {
	cron             *cron.Cron
	lifecycleService *LifecycleService
	schedule         string
}

// NewCronService creates a new cron service
func NewCronService(lifecycleService *LifecycleService, schedule string) *CronService {
	return &CronService{
		cron:             cron.New(),
		lifecycleService: lifecycleService,
		schedule:         schedule,
	}
}

// Start registers the daily job and starts the scheduler
func (s *CronService) Start() {
	_, err := s.cron.AddFunc(s.schedule, func() {
		log.Println("⏰ Scheduled lifecycle job starting")
		result, err := s.lifecycleService.RunDailyJob(context.Background(), time.Now())
		if err != nil {
			log.Printf("❌ Scheduled lifecycle job failed: %v", err)
			return
		}
		log.Printf("⏰ Scheduled lifecycle job done: processed=%d queued=%d",
			result.Processed, result.NotificationsQueued)
	})
	if err != nil {
		log.Printf("❌ Failed to register lifecycle schedule %q: %v", s.schedule, err)
		return
	}

	s.cron.Start()
	log.Printf("🚀 CronService started (lifecycle job: %q)", s.schedule)
}

// Stop stops the scheduler, waiting for a running job to finish
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("🛑 CronService stopped")
}
