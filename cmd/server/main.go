package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/adapters/http/routes"
	"gymdesk/internal/adapters/persistence/models"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/config"
	"gymdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "gymdesk/docs" // Swagger docs
)

// @title GymDesk API
// @version 1.0
// @description Multi-tenant gym management backend with membership lifecycle automation

// @contact.name API Support
// @contact.email support@gymdesk.app

// @host localhost:8080
// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed demo data in dev mode
	if cfg.IsDev() {
		if err := config.NewSeeder(db).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed demo data: %v", err)
		}
	}

	// Lifecycle dependencies shared by the cron schedule and the outbox drain
	membershipRepo := repositories.NewMembershipRepository(db)
	reminderRepo := repositories.NewReminderLogRepository(db)
	outboxRepo := repositories.NewOutboxRepository(db)
	lifecycleService := services.NewLifecycleService(membershipRepo, reminderRepo, outboxRepo, cfg.Jobs.WhatsAppTemplateID)

	// Start Cron Service for the daily membership job
	cronService := services.NewCronService(lifecycleService, cfg.Jobs.DailySchedule)
	cronService.Start()
	defer cronService.Stop()

	// Start outbox worker to drain queued push/WhatsApp messages
	outboxWorker := services.NewOutboxWorker(
		outboxRepo,
		&services.LogSender{},
		time.Duration(cfg.Jobs.OutboxIntervalSecs)*time.Second,
		cfg.Jobs.OutboxBatchSize,
	)
	outboxWorker.Start()
	defer outboxWorker.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "GymDesk API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
