package routes

import (
	"gymdesk/internal/adapters/http/handlers"
	"gymdesk/internal/adapters/http/middleware"
	"gymdesk/internal/adapters/persistence/repositories"
	"gymdesk/internal/config"
	"gymdesk/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	membershipRepo := repositories.NewMembershipRepository(db)
	planRepo := repositories.NewPlanRepository(db)
	reminderRepo := repositories.NewReminderLogRepository(db)
	outboxRepo := repositories.NewOutboxRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	activityRepo := repositories.NewActivityRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	memberService := services.NewMemberService(memberRepo, membershipRepo)
	membershipService := services.NewMembershipService(membershipRepo, memberRepo, planRepo)
	storeService := services.NewStoreService(storeRepo)
	activityService := services.NewActivityService(activityRepo, memberRepo)
	dashboardService := services.NewDashboardService(db)
	lifecycleService := services.NewLifecycleService(membershipRepo, reminderRepo, outboxRepo, cfg.Jobs.WhatsAppTemplateID)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	memberHandler := handlers.NewMemberHandler(memberService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	planHandler := handlers.NewPlanHandler(planRepo)
	storeHandler := handlers.NewStoreHandler(storeService)
	shiftHandler := handlers.NewShiftHandler(storeService)
	activityHandler := handlers.NewActivityHandler(activityService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	jobHandler := handlers.NewJobHandler(lifecycleService, cfg)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")

	// Daily lifecycle job (secret-gated, not JWT)
	apiV1.Post("/jobs/daily", jobHandler.RunDaily)
	apiV1.Get("/jobs/daily", jobHandler.RunDaily)

	// Auth routes (public, stricter rate limit)
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	authRoutes.Post("/refresh", middleware.AuthRateLimiter(), authHandler.RefreshToken)
	authRoutes.Post("/logout", authHandler.Logout)
	authRoutes.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)
	authRoutes.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Member routes
	memberRoutes := apiV1.Group("/members")
	memberRoutes.Use(middleware.AuthMiddleware(cfg))
	memberRoutes.Post("/", memberHandler.Create)
	memberRoutes.Get("/", memberHandler.List)
	memberRoutes.Get("/:id", memberHandler.Get)
	memberRoutes.Put("/:id", memberHandler.Update)
	memberRoutes.Delete("/:id", middleware.OwnerOnly(), memberHandler.Delete)
	memberRoutes.Get("/:id/card", memberHandler.GetCard)
	memberRoutes.Get("/:id/memberships", membershipHandler.ListByMember)
	memberRoutes.Get("/:id/attendance", activityHandler.Attendance)
	memberRoutes.Post("/:id/workouts", activityHandler.LogWorkout)
	memberRoutes.Get("/:id/workouts", activityHandler.ListWorkouts)
	memberRoutes.Delete("/:id/workouts/:workoutId", activityHandler.DeleteWorkout)

	// Membership routes
	membershipRoutes := apiV1.Group("/memberships")
	membershipRoutes.Use(middleware.AuthMiddleware(cfg))
	membershipRoutes.Post("/", membershipHandler.Signup)
	membershipRoutes.Post("/:id/renew", membershipHandler.Renew)

	// Plan routes (owner manages, staff reads)
	planRoutes := apiV1.Group("/plans")
	planRoutes.Use(middleware.AuthMiddleware(cfg))
	planRoutes.Get("/", planHandler.List)
	planRoutes.Post("/", middleware.OwnerOnly(), planHandler.Create)
	planRoutes.Put("/:id", middleware.OwnerOnly(), planHandler.Update)
	planRoutes.Delete("/:id", middleware.OwnerOnly(), planHandler.Delete)

	// Store routes
	productRoutes := apiV1.Group("/products")
	productRoutes.Use(middleware.AuthMiddleware(cfg))
	productRoutes.Get("/", storeHandler.ListProducts)
	productRoutes.Post("/", middleware.OwnerOnly(), storeHandler.CreateProduct)
	productRoutes.Put("/:id", middleware.OwnerOnly(), storeHandler.UpdateProduct)
	productRoutes.Delete("/:id", middleware.OwnerOnly(), storeHandler.DeleteProduct)

	saleRoutes := apiV1.Group("/sales")
	saleRoutes.Use(middleware.AuthMiddleware(cfg))
	saleRoutes.Post("/checkout", storeHandler.Checkout)
	saleRoutes.Get("/", storeHandler.ListSales)

	// Shift routes
	shiftRoutes := apiV1.Group("/shifts")
	shiftRoutes.Use(middleware.AuthMiddleware(cfg))
	shiftRoutes.Post("/open", shiftHandler.Open)
	shiftRoutes.Get("/current", shiftHandler.Current)
	shiftRoutes.Post("/:id/close", shiftHandler.Close)

	// Attendance routes
	attendanceRoutes := apiV1.Group("/attendance")
	attendanceRoutes.Use(middleware.AuthMiddleware(cfg))
	attendanceRoutes.Post("/check-in", activityHandler.CheckIn)

	// Dashboard routes
	dashboardRoutes := apiV1.Group("/dashboard")
	dashboardRoutes.Use(middleware.AuthMiddleware(cfg))
	dashboardRoutes.Get("/", dashboardHandler.Stats)
}
