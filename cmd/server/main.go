package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/furnimart/furnimart-backend/config"
	"github.com/furnimart/furnimart-backend/internal/app/controller"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	"github.com/furnimart/furnimart-backend/internal/db"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/furnimart/furnimart-backend/internal/router"
	"github.com/furnimart/furnimart-backend/internal/scheduler"
	"github.com/furnimart/furnimart-backend/internal/storage"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting FURNIMART Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	apperrors.SetDevelopmentMode(cfg.Server.Environment == "development")

	// Initialize database
	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	// Run migrations
	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Object storage for media uploads
	var objectStore storage.ObjectStorage
	if cfg.S3.Bucket != "" {
		objectStore = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
	} else {
		logger.Warn("Object storage not configured, image uploads disabled", nil)
	}

	// Redis-backed rate limiter. The limiter is advisory and fails open, a
	// missing Redis only disables it.
	redisClient := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Initialize repositories
	adminRepo := repository.NewAdminRepository(db.GetDB())
	categoryRepo := repository.NewCategoryRepository(db.GetDB())
	productRepo := repository.NewProductRepository(db.GetDB())
	comboRepo := repository.NewComboRepository(db.GetDB())
	orderRepo := repository.NewOrderRepository(db.GetDB())
	contactRepo := repository.NewContactRepository(db.GetDB())
	bannerRepo := repository.NewBannerRepository(db.GetDB())
	settingsRepo := repository.NewSettingsRepository(db.GetDB())

	// Initialize services
	authService := service.NewAuthService(adminRepo, cfg.JWT.Secret, cfg.JWT.TokenExpiry)
	categoryService := service.NewCategoryService(categoryRepo, objectStore)
	productService := service.NewProductService(productRepo, categoryRepo, objectStore)
	comboService := service.NewComboService(comboRepo, productRepo, objectStore)
	orderService := service.NewOrderService(orderRepo, productRepo)
	contactService := service.NewContactService(contactRepo)
	bannerService := service.NewBannerService(bannerRepo, objectStore)
	settingsService := service.NewSettingsService(settingsRepo)

	// Ensure the bootstrap admin account exists
	if err := authService.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		logger.Fatal("Failed to ensure bootstrap admin", err)
	}

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	categoryController := controller.NewCategoryController(categoryService, objectStore)
	productController := controller.NewProductController(productService, objectStore)
	comboController := controller.NewComboController(comboService, objectStore)
	orderController := controller.NewOrderController(orderService)
	contactController := controller.NewContactController(contactService)
	bannerController := controller.NewBannerController(bannerService, objectStore)
	settingsController := controller.NewSettingsController(settingsService)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, adminRepo)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(
		redisClient,
		cfg.RateLimit.Window,
		cfg.RateLimit.MaxRequests,
	)

	// Setup router
	r := router.NewRouter(
		authController,
		categoryController,
		productController,
		comboController,
		orderController,
		contactController,
		bannerController,
		settingsController,
		authMiddleware,
		rateLimitMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start the expired-combo sweep
	comboScheduler := scheduler.NewComboScheduler(comboService)
	if err := comboScheduler.Start(); err != nil {
		logger.Error("Failed to start combo scheduler", err)
	}
	defer comboScheduler.Stop()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
