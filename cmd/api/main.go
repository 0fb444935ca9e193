package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"pharmhub/internal/auth"
	"pharmhub/internal/config"
	apphttp "pharmhub/internal/http"
	"pharmhub/internal/httpx"
	"pharmhub/internal/platform/airtable"
	"pharmhub/internal/store"
	"pharmhub/internal/usecase"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger, err := newLogger()
	if err != nil {
		os.Exit(1)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	localState, closeState := newLocalState(cfg, logger)
	defer closeState()

	content, directory := newDataSource(cfg, logger)
	logger.Info("data source selected", zap.String("mode", content.Mode()))

	authService := auth.NewService(directory, localState, cfg.JWTSecret, logger)

	contentHandler := apphttp.NewContentHandler(content)
	resourceHandler := apphttp.NewResourceHandler(content, localState, logger)
	authHandler := apphttp.NewAuthHandler(authService)

	optionalAuth := apphttp.OptionalAuth(cfg.JWTSecret)
	requireAuth := apphttp.RequireAuth(cfg.JWTSecret)

	router := http.NewServeMux()
	router.HandleFunc("GET /api/health", contentHandler.Health)
	router.HandleFunc("GET /api/programs", contentHandler.Programs)
	router.HandleFunc("GET /api/announcements", contentHandler.Announcements)
	router.HandleFunc("GET /api/quick-access", contentHandler.QuickAccess)
	router.HandleFunc("GET /api/dashboard", contentHandler.Dashboard)

	router.Handle("GET /api/resources", optionalAuth(http.HandlerFunc(resourceHandler.List)))
	router.Handle("GET /api/resources/{id}", optionalAuth(http.HandlerFunc(resourceHandler.GetByID)))
	router.Handle("POST /api/resources/{id}/bookmark", requireAuth(http.HandlerFunc(resourceHandler.ToggleBookmark)))
	router.Handle("GET /api/bookmarks", requireAuth(http.HandlerFunc(resourceHandler.Bookmarks)))

	router.HandleFunc("POST /api/auth/login", authHandler.Login)
	router.Handle("POST /api/auth/logout", requireAuth(http.HandlerFunc(authHandler.Logout)))

	rateLimit := httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)

	var handler http.Handler = router
	handler = rateLimit.Middleware(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(cfg.CORSAllowedOrigins)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("starting server", zap.String("addr", cfg.Addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

func newLogger() (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	if os.Getenv("LOG_LEVEL") == "debug" {
		zapConfig.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zapConfig.Build()
}

// newDataSource picks the content strategy once from configuration; no
// per-call fallback checks anywhere else.
func newDataSource(cfg *config.Config, logger *zap.Logger) (usecase.ContentSource, usecase.MemberDirectory) {
	switch cfg.Source() {
	case config.SourceAirtable:
		var opts []airtable.Option
		if cfg.AirtableBaseURL != "" {
			opts = append(opts, airtable.WithBaseURL(cfg.AirtableBaseURL))
		}
		client := airtable.NewClient(cfg.AirtableAPIKey, cfg.AirtableBaseID, logger, opts...)
		return store.NewAirtableContent(client, logger), store.NewAirtableMembers(client)
	case config.SourceStatic:
		logger.Warn("no provider credentials, serving static demo dataset")
		return store.NewStaticContent(), store.NewStaticMembers()
	default:
		logger.Warn("no provider credentials and demo mode off, content routes will return CONFIG_ERROR")
		return store.NewUnconfiguredContent(), store.NewUnconfiguredMembers()
	}
}

func newLocalState(cfg *config.Config, logger *zap.Logger) (usecase.LocalStore, func()) {
	if cfg.RedisURL == "" {
		return store.NewMemoryLocalStore(), func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	redisStore, err := store.NewRedisLocalStore(ctx, cfg.RedisURL)
	if err != nil {
		logger.Fatal("cannot connect to redis", zap.Error(err))
	}
	logger.Info("redis connection OK")
	return redisStore, func() { _ = redisStore.Close() }
}
