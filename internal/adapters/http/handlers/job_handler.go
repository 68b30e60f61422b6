package handlers

import (
	"time"

	"gymdesk/internal/config"
	"gymdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// JobHandler exposes the daily lifecycle job trigger endpoint
type JobHandler struct {
	lifecycleService *services.LifecycleService
	cfg              *config.Config
}

// NewJobHandler creates a new job handler
func NewJobHandler(lifecycleService *services.LifecycleService, cfg *config.Config) *JobHandler {
	return &JobHandler{
		lifecycleService: lifecycleService,
		cfg:              cfg,
	}
}

// RunDaily triggers the daily membership-lifecycle job. Gated by a bearer
// shared secret (CRON_SECRET) rather than a staff session so external
// schedulers can call it. Registered for both POST and GET - some schedulers
// only issue GET.
// @Summary Run daily lifecycle job
// @Description Recompute membership statuses and enqueue lifecycle reminders
// @Tags Jobs
// @Produce json
// @Param Authorization header string true "Bearer CRON_SECRET"
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /jobs/daily [post]
func (h *JobHandler) RunDaily(c *fiber.Ctx) error {
	secret := h.cfg.Jobs.CronSecret
	if secret == "" || c.Get("Authorization") != "Bearer "+secret {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	result, err := h.lifecycleService.RunDailyJob(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":              true,
		"processed":            result.Processed,
		"notifications_queued": result.NotificationsQueued,
		"timestamp":            time.Now().UTC().Format(time.RFC3339),
	})
}
