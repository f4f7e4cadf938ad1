package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dental-care-server/config"
	deliveryHttp "dental-care-server/internal/delivery/http"
	"dental-care-server/internal/delivery/http/handler"
	"dental-care-server/internal/delivery/http/middleware"
	"dental-care-server/internal/infrastructure/cache"
	"dental-care-server/internal/infrastructure/database"
	"dental-care-server/internal/infrastructure/payment"
	"dental-care-server/internal/repository"
	"dental-care-server/internal/service"
	"dental-care-server/internal/usecase"
	"dental-care-server/pkg/jwt"
	"dental-care-server/pkg/validator"

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

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
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
	server := initializeServer(cfg, db, redisClient)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	optionRepo := repository.NewAppointmentOptionRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	userRepo := repository.NewUserRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	availabilityCache := service.NewAvailabilityCache(redisClient, log, cfg.Cache.AvailabilityTTL)
	auditService := service.NewAuditService(log, auditRepo)
	stripeClient := payment.NewStripeClient(cfg.Stripe)

	// Initialize usecases
	appointmentUsecase := usecase.NewAppointmentUsecase(log, optionRepo, bookingRepo, availabilityCache)
	bookingUsecase := usecase.NewBookingUsecase(log, bookingRepo, availabilityCache)
	userUsecase := usecase.NewUserUsecase(log, userRepo, jwtService, auditService)
	doctorUsecase := usecase.NewDoctorUsecase(log, doctorRepo, auditService)
	paymentUsecase := usecase.NewPaymentUsecase(log, paymentRepo, bookingRepo, stripeClient, availabilityCache)

	// Initialize handlers
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase, customValidator)
	userHandler := handler.NewUserHandler(userUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase, customValidator)
	paymentHandler := handler.NewPaymentHandler(paymentUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	roleMiddleware := middleware.NewRoleMiddleware(userRepo, log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(
		appointmentHandler,
		bookingHandler,
		userHandler,
		doctorHandler,
		paymentHandler,
		authMiddleware,
		roleMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
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
