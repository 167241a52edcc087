package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/vaibhav/lifehub-api/docs" // Swagger docs
	"github.com/vaibhav/lifehub-api/internal/config"
	"github.com/vaibhav/lifehub-api/internal/database"
	"github.com/vaibhav/lifehub-api/internal/handlers"
	"github.com/vaibhav/lifehub-api/internal/jobs"
	"github.com/vaibhav/lifehub-api/internal/middleware"
	"github.com/vaibhav/lifehub-api/internal/repository"
	"github.com/vaibhav/lifehub-api/internal/services"
	"github.com/vaibhav/lifehub-api/internal/storage"
	"github.com/vaibhav/lifehub-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title LifeHub API
// @version 1.0
// @description Personal productivity dashboard API: loan payoff, time tracking, clients, journal, notes and todos behind a PIN gate.

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if !cfg.PINConfigured() {
		logger.Warn("No PIN configured: set APP_PIN_HASH (preferred) or APP_PIN, all protected routes will reject until then")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	// Bring the schema up to date
	if err := database.Migrate(db); err != nil {
		logger.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize storage
	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	logger.Info("Initialized local storage")

	// Initialize repositories
	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs := services.NewServices(repos, cfg, store)

	// Schedule recurring jobs
	scheduleJobs(worker, svcs)

	// Initialize handlers
	h := handlers.NewHandlers(svcs, worker)

	// Setup router
	router := setupRouter(h, svcs, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

// scheduleJobs registers the recurring background work
func scheduleJobs(worker *jobs.Worker, svcs *services.Services) {
	// Expired session cleanup, hourly
	worker.ScheduleEvery(time.Hour, func(ctx context.Context) error {
		removed, err := svcs.Auth.CleanupExpiredSessions(ctx)
		if err != nil {
			return err
		}
		if removed > 0 {
			logger.Info("Cleaned up expired sessions", "count", removed)
		}
		return nil
	})

	// Daily digest: log yesterday's activity once a day
	worker.ScheduleEvery(24*time.Hour, func(ctx context.Context) error {
		yesterday := time.Now().AddDate(0, 0, -1)
		summary, err := svcs.Time.TodaySummary(ctx, yesterday)
		if err != nil {
			return err
		}
		streak, err := svcs.Journal.Streak(ctx, time.Now())
		if err != nil {
			return err
		}
		logger.Info("Daily digest",
			"date", yesterday.Format("2006-01-02"),
			"hours", summary.TotalHours,
			"effort_points", summary.EffortPoints,
			"journal_streak", streak.Current,
		)
		return nil
	})
}

func setupRouter(h *handlers.Handlers, svcs *services.Services, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Redirect root to swagger
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
		})

		// Swagger documentation
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

		// Health check (public)
		v1.GET("/health", h.Health.Check)

		// PIN gate (public)
		v1.POST("/auth/verify", h.Auth.Verify)

		// Protected routes (requires a live session)
		protected := v1.Group("")
		protected.Use(middleware.Auth(cfg.JWTSecret, svcs.Auth))
		{
			protected.POST("/auth/logout", h.Auth.Logout)

			// Loans and the payment ledger
			loans := protected.Group("/loans")
			{
				loans.GET("", h.Loan.Index)
				loans.POST("", h.Loan.Create)
				loans.GET("/active", h.Loan.Active)
				loans.GET("/:id", h.Loan.Show)
				loans.PUT("/:id", h.Loan.Update)
				loans.DELETE("/:id", h.Loan.Destroy)
				loans.GET("/:id/payments", h.Loan.Payments)
				loans.POST("/:id/payments", h.Loan.PostPayment)
				loans.POST("/:id/projection", h.Loan.Projection)
				loans.GET("/:id/emi", h.Loan.EMI)
				loans.GET("/:id/statement", h.Loan.Statement)
			}

			// Time tracking
			timeEntries := protected.Group("/time_entries")
			{
				timeEntries.GET("", h.Time.Index)
				timeEntries.POST("", h.Time.Create)
				timeEntries.GET("/today", h.Time.Today)
				timeEntries.GET("/week", h.Time.Week)
				timeEntries.GET("/categories", h.Time.Categories)
				timeEntries.DELETE("/:id", h.Time.Destroy)
			}

			// Clients and revenue
			clients := protected.Group("/clients")
			{
				clients.GET("", h.Client.Index)
				clients.POST("", h.Client.Create)
				clients.GET("/metrics", h.Client.Metrics)
				clients.GET("/upcoming_payments", h.Client.UpcomingPayments)
				clients.GET("/:id", h.Client.Show)
				clients.PUT("/:id", h.Client.Update)
				clients.DELETE("/:id", h.Client.Destroy)
			}

			// Daily journal
			journal := protected.Group("/journal")
			{
				journal.GET("", h.Journal.Index)
				journal.GET("/streak", h.Journal.Streak)
				journal.GET("/:date", h.Journal.Show)
				journal.PUT("/:date", h.Journal.Save)
				journal.DELETE("/:date", h.Journal.Destroy)
			}

			// Todos
			todos := protected.Group("/todos")
			{
				todos.GET("", h.Todo.Index)
				todos.POST("", h.Todo.Create)
				todos.GET("/summary", h.Todo.Summary)
				todos.GET("/:id", h.Todo.Show)
				todos.PUT("/:id", h.Todo.Update)
				todos.DELETE("/:id", h.Todo.Destroy)
				todos.POST("/:id/start", h.Todo.Start)
				todos.POST("/:id/complete", h.Todo.Complete)
				todos.POST("/:id/reopen", h.Todo.Reopen)
			}

			// Notepad
			notes := protected.Group("/notes")
			{
				notes.GET("", h.Note.Index)
				notes.POST("", h.Note.Create)
				notes.GET("/:id", h.Note.Show)
				notes.PUT("/:id", h.Note.Update)
				notes.DELETE("/:id", h.Note.Destroy)
				notes.POST("/:id/pin", h.Note.Pin)
			}
			categories := protected.Group("/note_categories")
			{
				categories.GET("", h.Note.Categories)
				categories.POST("", h.Note.CreateCategory)
				categories.PUT("/:id", h.Note.UpdateCategory)
				categories.DELETE("/:id", h.Note.DestroyCategory)
			}

			// Dashboard
			protected.GET("/dashboard", h.Dashboard.Show)
			protected.GET("/dashboard/calendar", h.Dashboard.Calendar)

			// Reports
			protected.GET("/reports/time_entries", h.Report.TimeEntries)
			protected.GET("/reports/clients", h.Report.Clients)

			// Background jobs
			protected.GET("/jobs/status", h.Job.Status)
		}
	}

	return router
}
