package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"viewtube/internal/core/services"
	httphandlers "viewtube/internal/handlers/http"
	"viewtube/internal/infrastructure/middleware"
	"viewtube/internal/infrastructure/monitoring"
	"viewtube/internal/infrastructure/repositories/mongodb"
	"viewtube/internal/infrastructure/storage"
	"viewtube/pkg/config"
	"viewtube/pkg/logger"
	"viewtube/pkg/tracing"
)

func main() {
	// Try multiple config paths
	configPaths := []string{
		"configs/config.yaml",
		"./configs/config.yaml",
		"/etc/viewtube/config.yaml",
		"config.yaml",
	}

	var cfg *config.Config
	var err error

	for _, path := range configPaths {
		cfg, err = config.Load(path)
		if err == nil {
			break
		}
	}

	if err != nil {
		// No config file found anywhere: defaults plus env overrides
		cfg = config.FromEnv()
	}

	zapLogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLogger.Sync()

	log := zapLogger.Sugar()

	if err := cfg.Validate(); err != nil {
		log.Fatalw("invalid configuration", "error", err)
	}

	// Tracing
	tracerProvider, err := tracing.Init(tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: "viewtube",
		JaegerURL:   cfg.Tracing.JaegerURL,
		Environment: cfg.Mode,
		SampleRate:  cfg.Tracing.SampleRate,
	})
	if err != nil {
		log.Fatalw("failed to initialize tracing", "error", err)
	}

	// Document store
	connectCtx, cancelConnect := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	client, err := mongodb.Connect(connectCtx, cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	cancelConnect()
	if err != nil {
		log.Fatalw("failed to connect to mongodb", "error", err)
	}
	db := client.Database()

	// Media store
	mediaStore, err := storage.NewS3MediaStore(context.Background(), *cfg)
	if err != nil {
		log.Fatalw("failed to initialize media store", "error", err)
	}

	// Repositories
	userRepo := mongodb.NewUserRepository(db)
	videoRepo := mongodb.NewVideoRepository(db)
	commentRepo := mongodb.NewCommentRepository(db)
	likeRepo := mongodb.NewLikeRepository(db)
	tweetRepo := mongodb.NewTweetRepository(db)
	playlistRepo := mongodb.NewPlaylistRepository(db)

	// Services
	authService := services.NewAuthService(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTL, userRepo)
	videoService := services.NewVideoService(videoRepo, mediaStore, log)
	commentService := services.NewCommentService(commentRepo)
	likeService := services.NewLikeService(likeRepo, videoRepo)
	tweetService := services.NewTweetService(tweetRepo)
	playlistService := services.NewPlaylistService(playlistRepo, videoRepo)
	subscriptionService := services.NewSubscriptionService(userRepo)
	dashboardService := services.NewDashboardService(userRepo, videoRepo, likeRepo)

	// Handlers
	paging := httphandlers.PageDefaults{
		DefaultLimit: cfg.Pagination.DefaultLimit,
		MaxLimit:     cfg.Pagination.MaxLimit,
	}
	videoHandler := httphandlers.NewVideoHandler(videoService, paging)
	commentHandler := httphandlers.NewCommentHandler(commentService, paging)
	likeHandler := httphandlers.NewLikeHandler(likeService)
	tweetHandler := httphandlers.NewTweetHandler(tweetService, paging)
	playlistHandler := httphandlers.NewPlaylistHandler(playlistService)
	subscriptionHandler := httphandlers.NewSubscriptionHandler(subscriptionService)
	dashboardHandler := httphandlers.NewDashboardHandler(dashboardService)
	healthHandler := httphandlers.NewHealthHandler()

	// Configure Gin
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.RequestLoggerMiddleware(zapLogger))
	router.Use(middleware.NewHTTPRateLimitMiddleware(cfg))
	if cfg.Tracing.Enabled {
		router.Use(middleware.TracingMiddleware())
	}

	httpMetrics := monitoring.NewHTTPMetrics()
	if cfg.Monitoring.PrometheusEnabled {
		router.Use(httpMetrics.Middleware())
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	router.Use(middleware.ErrorHandlerMiddleware(log, cfg.IsDevelopment()))

	auth := middleware.AuthMiddleware(authService, cfg.Auth.CookieName)

	healthHandler.SetupRoutes(router)
	videoHandler.SetupRoutes(router, auth)
	commentHandler.SetupRoutes(router, auth)
	likeHandler.SetupRoutes(router, auth)
	tweetHandler.SetupRoutes(router, auth)
	playlistHandler.SetupRoutes(router, auth)
	subscriptionHandler.SetupRoutes(router, auth)
	dashboardHandler.SetupRoutes(router, auth)

	srv := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Infof("Starting ViewTube API server on %s", cfg.Server.Address)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.Fatalw("Server failed", "error", err)
	case sig := <-sigChan:
		log.Infow("Received shutdown signal", "signal", sig)
	}

	log.Info("Shutting down ViewTube API server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Error during server shutdown", "error", err)
		if closeErr := srv.Close(); closeErr != nil {
			log.Errorw("Error force closing server", "error", closeErr)
		}
	}

	if err := client.Close(shutdownCtx); err != nil {
		log.Errorw("Error closing mongodb client", "error", err)
	}

	if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Error shutting down tracer provider", "error", err)
	}

	log.Info("ViewTube API server stopped")
}
