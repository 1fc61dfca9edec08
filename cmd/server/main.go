package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-meet/roomadmin/internal/config"
	"github.com/go-meet/roomadmin/internal/gateway"
	"github.com/go-meet/roomadmin/internal/handler"
	"github.com/go-meet/roomadmin/internal/middleware"
	"github.com/go-meet/roomadmin/internal/pkg/cache"
	"github.com/go-meet/roomadmin/internal/pkg/database"
	"github.com/go-meet/roomadmin/internal/pkg/utils"
	"github.com/go-meet/roomadmin/internal/repository"
	"github.com/go-meet/roomadmin/internal/service"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// @title           Room Admin API
// @version         1.0
// @description     Room registry and remote recording gateway for the meeting server

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := initLogger(cfg.Log.Level)
	defer logger.Sync()

	logger.Info("Starting room admin server",
		zap.String("mode", cfg.Server.Mode),
		zap.Int("port", cfg.Server.Port),
		zap.String("meeting_server", cfg.Meeting.ServerURL),
	)

	// Set Gin mode
	gin.SetMode(cfg.Server.Mode)

	// Initialize database
	db, err := database.NewPostgres(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.Close(db, logger)

	// Apply pending migrations
	if err := database.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, logger)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer cache.Close(redisClient, logger)

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenTTL,
		cfg.JWT.RefreshTokenTTL,
		cfg.JWT.Issuer,
	)

	// Initialize meeting server client
	meetingClient := gateway.NewClient(&cfg.Meeting, logger)

	// Initialize repositories
	roomRepo := repository.NewRoomRepository(db)

	// Initialize services
	authService := service.NewAuthService(&cfg.Admin, jwtManager, logger)
	roomService := service.NewRoomService(roomRepo, meetingClient, logger)
	recordingService := service.NewRecordingService(meetingClient, logger)
	clientUpdater := service.NewClientUpdater(cfg.Meeting.ClientDownloadURL, cfg.Meeting.ClientDir, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	roomHandler := handler.NewRoomHandler(roomService)
	recordingHandler := handler.NewRecordingHandler(recordingService)
	clientHandler := handler.NewClientHandler(clientUpdater)

	// Setup router
	router := setupRouter(
		logger,
		jwtManager,
		redisClient,
		authHandler,
		roomHandler,
		recordingHandler,
		clientHandler,
	)

	// Create server
	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("Server is running",
			zap.String("addr", srv.Addr),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}

func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "json",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(err)
	}

	return logger
}

func setupRouter(
	logger *zap.Logger,
	jwtManager *utils.JWTManager,
	redisClient *redis.Client,
	authHandler *handler.AuthHandler,
	roomHandler *handler.RoomHandler,
	recordingHandler *handler.RecordingHandler,
	clientHandler *handler.ClientHandler,
) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.APIRateLimit(redisClient))
	{
		// Auth routes (public, tighter limit)
		auth := v1.Group("/auth")
		auth.Use(middleware.LoginRateLimit(redisClient))
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}

		// Room routes
		rooms := v1.Group("/rooms")
		rooms.Use(middleware.Auth(jwtManager))
		{
			rooms.GET("", roomHandler.List)
			rooms.POST("", roomHandler.Create)
			rooms.GET("/:id", roomHandler.GetByID)
			rooms.PUT("/:id", roomHandler.Update)
			rooms.DELETE("/:id", roomHandler.Delete)
		}

		// Recording routes
		recordings := v1.Group("/recordings")
		recordings.Use(middleware.Auth(jwtManager))
		{
			recordings.GET("", recordingHandler.List)
			recordings.POST("/:id/download-link", recordingHandler.GetDownloadLink)
			recordings.DELETE("/:id", recordingHandler.Delete)
		}

		// Client bundle management
		client := v1.Group("/client")
		client.Use(middleware.Auth(jwtManager))
		{
			client.POST("/update", clientHandler.Update)
		}
	}

	return router
}
