package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pms-backend/config"
	deliveryHttp "pms-backend/internal/delivery/http"
	"pms-backend/internal/delivery/http/handler"
	"pms-backend/internal/delivery/http/middleware"
	"pms-backend/internal/infrastructure/cache"
	"pms-backend/internal/infrastructure/database"
	"pms-backend/internal/repository"
	"pms-backend/internal/service"
	"pms-backend/internal/usecase"
	"pms-backend/pkg/jwt"
	"pms-backend/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Retention   *service.RetentionService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Apply schema migrations before opening the pool
	if err := database.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server, app.Retention = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.RetentionService) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	doctorProfileRepo := repository.NewDoctorProfileRepository()
	patientProfileRepo := repository.NewPatientProfileRepository()
	scheduleRepo := repository.NewDoctorScheduleRepository()
	absenceRepo := repository.NewDoctorAbsenceRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	medicalRecordRepo := repository.NewMedicalRecordRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)
	retentionService := service.NewRetentionService(db, log, auditLogRepo, cfg.Audit.RetentionDays)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, doctorProfileRepo, patientProfileRepo, auditService, jwtService, redisClient)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, userRepo, doctorProfileRepo, auditService)
	scheduleUsecase := usecase.NewScheduleUsecase(db, log, scheduleRepo, auditService)
	absenceUsecase := usecase.NewAbsenceUsecase(db, log, absenceRepo, auditService)
	availabilityUsecase := usecase.NewAvailabilityUsecase(db, log, cfg.Booking, doctorProfileRepo, scheduleRepo, absenceRepo, appointmentRepo)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, cfg.Booking, appointmentRepo, doctorProfileRepo, scheduleRepo, absenceRepo, auditService)
	medicalRecordUsecase := usecase.NewMedicalRecordUsecase(db, log, medicalRecordRepo, patientProfileRepo, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator, jwtService)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	scheduleHandler := handler.NewScheduleHandler(scheduleUsecase, customValidator)
	absenceHandler := handler.NewAbsenceHandler(absenceUsecase, customValidator)
	availabilityHandler := handler.NewAvailabilityHandler(availabilityUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	medicalRecordHandler := handler.NewMedicalRecordHandler(medicalRecordUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigins)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		scheduleHandler,
		absenceHandler,
		availabilityHandler,
		appointmentHandler,
		medicalRecordHandler,
		auditLogHandler,
		authMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}

	return server, retentionService
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start the audit retention scheduler
	if err := app.Retention.Start(); err != nil {
		logrus.Fatalf("Failed to start retention scheduler: %v", err)
	}

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Stop the retention scheduler
	if app.Retention != nil {
		app.Retention.Stop()
	}

	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
