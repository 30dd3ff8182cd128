package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"vidhub/database"
	"vidhub/internal/cache"
	"vidhub/internal/config"
	"vidhub/internal/httpapi/handler"
	"vidhub/internal/httpapi/middleware"
	"vidhub/internal/httpapi/repository"
	"vidhub/internal/httpapi/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	if err := database.Seed(db, logger); err != nil {
		logger.Error("catalog seeding failed", "error", err)
		os.Exit(1)
	}

	if err := os.MkdirAll(cfg.AvatarDataPath, 0o755); err != nil {
		logger.Error("avatar directory unavailable", "path", cfg.AvatarDataPath, "error", err)
		os.Exit(1)
	}

	// the catalog cache is optional: without redis every read hits Postgres
	var videoCache service.VideoCache
	if cfg.RedisURL != "" {
		vc, err := cache.NewVideoCache(cfg.RedisURL, cfg.RedisPassword, cfg.CacheTTL)
		if err != nil {
			logger.Warn("redis unavailable, catalog caching disabled", "error", err)
		} else {
			videoCache = vc
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	blockRepo := repository.NewBlockRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	videoService := service.NewVideoService(videoRepo, videoCache)
	commentService := service.NewCommentService(commentRepo, videoRepo)
	blockService := service.NewBlockService(blockRepo, userRepo)
	userService := service.NewUserService(userRepo, commentService)

	// Middleware
	requireAuth := middleware.RequireAuth(authService)
	optionalAuth := middleware.OptionalAuth(authService)
	authLimiter := middleware.NewRateLimiter(rate.Every(time.Minute/time.Duration(cfg.AuthRatePerMinute)), cfg.AuthRatePerMinute)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())

	api := r.Group("/api")
	handler.NewAuthHandler(authService).RegisterRoutes(api, authLimiter.Middleware())
	handler.NewVideoHandler(videoService, commentService).RegisterRoutes(api, optionalAuth)
	handler.NewCommentHandler(commentService).RegisterRoutes(api, requireAuth, optionalAuth)
	handler.NewBlockHandler(blockService).RegisterRoutes(api, requireAuth)
	handler.NewUserHandler(userService, cfg.AvatarDataPath).RegisterRoutes(api, requireAuth)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting api server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.New(h)
}
