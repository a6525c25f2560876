package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"seatflow/app/echo-server/router"
	"seatflow/business/allocator"
	"seatflow/business/analytics"
	"seatflow/business/booking"
	"seatflow/business/recommender"
	"seatflow/business/seat"
	userService "seatflow/business/user"
	"seatflow/internal/middleware"
	"seatflow/internal/queue"
	"seatflow/internal/repository/notification"
	psqlRepo "seatflow/internal/repository/postgres"
	redisRepo "seatflow/internal/repository/redis"
	"seatflow/internal/rest"
	"seatflow/pkg/config"
	"seatflow/pkg/database"
	redisdb "seatflow/pkg/database/redis"
	"seatflow/pkg/logger"
	"seatflow/pkg/metrics"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting Seatflow", "version", cfg.App.Version)

	metrics.Init()

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := database.SeedSeats(db); err != nil {
		logger.Fatal("Failed to seed seat layout", "error", err)
	}

	logger.Info("Database connected successfully")

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", "error", err)
	}
	defer func() { _ = redisdb.CloseRedisClient(redisClient) }()

	// Init notification from mailjet
	mailjetEmail := notification.NewMailjetRepository(cfg.Mailer)

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	seatRepo := psqlRepo.NewSeatRepository(db)
	bookingRepo := psqlRepo.NewBookingRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	// Init queue publisher
	var publisher booking.EventPublisher
	var queuePublisher *queue.Publisher
	if cfg.Queue.Enabled {
		queuePublisher, err = queue.NewPublisher(cfg.Queue.URL)
		if err != nil {
			logger.Warn("Broker unavailable, booking events disabled", err)
		} else {
			publisher = queuePublisher
			defer queuePublisher.Close()
		}
	}

	// Init service
	tokenTTL := time.Duration(cfg.JWT.TTLHours) * time.Hour
	userSvc := userService.NewUserService(userRepo, validate, mailjetEmail, tokenRepo,
		cfg.App.AppEmailVerificationKey, cfg.App.AppDeploymentUrl, tokenTTL)
	seatSvc := seat.NewSeatService(seatRepo, bookingRepo)
	allocatorSvc := allocator.NewService(seatRepo, allocator.DefaultConfig().Merge(allocator.Config{
		PopulationSize: cfg.Allocator.PopulationSize,
		Generations:    cfg.Allocator.Generations,
	}))
	recommenderSvc := recommender.NewService(userRepo, seatRepo, bookingRepo)
	bookingSvc := booking.NewBookingService(bookingRepo, seatRepo, recommenderSvc, publisher)
	analyticsSvc := analytics.NewAnalyticsService(bookingRepo, seatRepo)

	// Init handler
	userHandler := rest.NewUserHandler(userSvc)
	seatHandler := rest.NewSeatHandler(seatSvc)
	bookingHandler := rest.NewBookingHandler(bookingSvc)
	allocationHandler := rest.NewAllocationHandler(allocatorSvc)
	recommendHandler := rest.NewRecommendHandler(recommenderSvc)
	analyticsHandler := rest.NewAnalyticsHandler(analyticsSvc)

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(userSvc)
	adminOnly := middleware.AdminOnly()
	selfOrAdmin := middleware.SelfOrAdmin()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupUserRoutes(api, userHandler, authRequired, adminOnly, selfOrAdmin)
	router.SetupSeatRoutes(api, seatHandler, authRequired, adminOnly)
	router.SetupBookingRoutes(api, bookingHandler, authRequired)
	router.SetupAllocationRoutes(api, allocationHandler, authRequired, adminOnly)
	router.SetupRecommendationRoutes(api, recommendHandler, authRequired)
	router.SetupAnalyticsRoutes(api, analyticsHandler, authRequired, adminOnly)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Background consumer keeps the recommender fresh when another
	// instance writes a rating.
	consumerCtx, stopConsumer := context.WithCancel(context.Background())
	defer stopConsumer()
	if cfg.Queue.Enabled {
		go queue.StartBookingRatedConsumer(consumerCtx, cfg.Queue.URL,
			queue.RatingHandlerFunc(func(queue.BookingRatedEvent) {
				recommenderSvc.Invalidate()
			}))
	}

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	stopConsumer()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
