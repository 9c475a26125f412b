package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/padeltour/academia-api/internal/config"
	"github.com/padeltour/academia-api/internal/connect"
	"github.com/padeltour/academia-api/internal/container"
	"github.com/padeltour/academia-api/internal/helpers"
	"github.com/padeltour/academia-api/internal/routes"
	"github.com/padeltour/academia-api/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local", ".env")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := setupLogger(cfg)
	defer func() { _ = logger.Sync() }()
	logger.Info("Starting Padel Tour Academia API",
		zap.String("environment", cfg.Environment),
		zap.String("db_driver", cfg.DBDriver),
	)

	var media services.MediaStore
	if cfg.CloudinaryEnabled() {
		cld, err := connect.CloudinaryCredentials(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, logger)
		if err != nil {
			logger.Fatal("Failed to connect to Cloudinary", zap.Error(err))
		}
		media = helpers.NewCloudinaryMedia(cld)
	} else {
		logger.Info("Cloudinary not configured, images are stored as submitted")
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	var (
		mongoClient *mongo.Client
		stores      container.Stores
	)
	switch cfg.DBDriver {
	case config.DriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		stores = container.MemoryStores()
	default:
		mongoClient, err = connect.MongoDBConnect(cfg.MongoURL, logger)
		if err != nil {
			logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
		}
		stores, err = container.MongoStores(startupCtx, mongoClient, cfg.DBName)
		if err != nil {
			logger.Fatal("Failed to prepare collections", zap.Error(err))
		}
	}

	appContainer := container.NewContainer(logger, stores, media, mongoClient, cfg.RateLimitPerMin)

	if cfg.SeedOnStart {
		if _, err := appContainer.Seeder.Seed(startupCtx); err != nil {
			logger.Error("Database seeding failed", zap.Error(err))
		}
	}

	stopSweeper := make(chan struct{})
	go appContainer.RateLimiter.Run(stopSweeper, time.Minute)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRoutes(appContainer, cfg.Origins())

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")
	close(stopSweeper)

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := connect.MongoDBDisconnect(mongoClient); err != nil {
		logger.Error("Error disconnecting from MongoDB", zap.Error(err))
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *zap.Logger {
	var zcfg zap.Config

	if cfg.IsProduction() {
		// JSON logging for production; LOG_LEVEL can raise or lower the floor
		zcfg = zap.NewProductionConfig()
		level, err := zapcore.ParseLevel(cfg.LogLevel)
		if err != nil {
			level = zapcore.InfoLevel
		}
		zcfg.Level = zap.NewAtomicLevelAt(level)
	} else {
		zcfg = zap.NewDevelopmentConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		zcfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	logger, err := zcfg.Build()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	return logger
}
