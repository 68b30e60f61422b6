package handlers_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"gymdesk/internal/adapters/http/handlers"
	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/config"
	"gymdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupJobApp(t *testing.T, secret string) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.AutoMigrate(db))

	cfg := &config.Config{Jobs: config.JobsConfig{
		CronSecret:         secret,
		WhatsAppTemplateID: "membership_reminder_v1",
	}}

	lifecycleService := services.NewLifecycleService(
		repositories.NewMembershipRepository(db),
		repositories.NewReminderLogRepository(db),
		repositories.NewOutboxRepository(db),
		cfg.Jobs.WhatsAppTemplateID,
	)
	jobHandler := handlers.NewJobHandler(lifecycleService, cfg)

	app := fiber.New()
	app.Post("/api/v1/jobs/daily", jobHandler.RunDaily)
	app.Get("/api/v1/jobs/daily", jobHandler.RunDaily)
	return app, db
}

func TestRunDaily_RejectsWithoutSecret(t *testing.T) {
	app, db := setupJobApp(t, "topsecret")

	tenant := &models.Tenant{Name: "Iron Temple Gym", CurrencySymbol: "₹"}
	require.NoError(t, db.Create(tenant).Error)
	member := &models.Member{TenantID: tenant.ID, Name: "Ravi", CardCode: "c1", Status: "ACTIVE"}
	require.NoError(t, db.Create(member).Error)
	require.NoError(t, db.Create(&models.Membership{
		TenantID:    tenant.ID,
		MemberID:    member.ID,
		Amount:      1500,
		NextDueDate: time.Now(),
		Status:      "ACTIVE",
	}).Error)

	for _, header := range []string{"", "Bearer wrong", "topsecret"} {
		req := httptest.NewRequest("POST", "/api/v1/jobs/daily", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

		body, _ := io.ReadAll(resp.Body)
		assert.JSONEq(t, `{"error":"Unauthorized"}`, string(body))
	}

	// Rejected requests must not touch the database
	var count int64
	db.Model(&models.ReminderLog{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestRunDaily_RejectsWhenSecretUnconfigured(t *testing.T) {
	app, _ := setupJobApp(t, "")

	req := httptest.NewRequest("POST", "/api/v1/jobs/daily", nil)
	req.Header.Set("Authorization", "Bearer ")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRunDaily_RunsJobAndReportsCounts(t *testing.T) {
	app, db := setupJobApp(t, "topsecret")

	tenant := &models.Tenant{Name: "Iron Temple Gym", CurrencySymbol: "₹"}
	require.NoError(t, db.Create(tenant).Error)
	member := &models.Member{TenantID: tenant.ID, Name: "Ravi", Phone: "+919900011111", CardCode: "c1", Status: "ACTIVE"}
	require.NoError(t, db.Create(member).Error)

	// Due today relative to the handler's wall clock
	today := time.Date(time.Now().Year(), time.Now().Month(), time.Now().Day(), 0, 0, 0, 0, time.Local)
	require.NoError(t, db.Create(&models.Membership{
		TenantID:    tenant.ID,
		MemberID:    member.ID,
		Amount:      1500,
		NextDueDate: today,
		Status:      "ACTIVE",
	}).Error)

	req := httptest.NewRequest("POST", "/api/v1/jobs/daily", nil)
	req.Header.Set("Authorization", "Bearer topsecret")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success             bool   `json:"success"`
		Processed           int    `json:"processed"`
		NotificationsQueued int    `json:"notifications_queued"`
		Timestamp           string `json:"timestamp"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.True(t, body.Success)
	assert.Equal(t, 1, body.Processed)
	assert.Equal(t, 1, body.NotificationsQueued)
	_, err = time.Parse(time.RFC3339, body.Timestamp)
	assert.NoError(t, err)

	// GET works too (some schedulers only issue GET), and the dedup gate
	// makes the repeat run queue nothing
	req = httptest.NewRequest("GET", "/api/v1/jobs/daily", nil)
	req.Header.Set("Authorization", "Bearer topsecret")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 0, body.NotificationsQueued)
}
