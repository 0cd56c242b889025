// AngelaMos | 2026
// main.go

package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-redis/redis_rate/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/carterperez-dev/om-backend/internal/admin"
	"github.com/carterperez-dev/om-backend/internal/analytics"
	"github.com/carterperez-dev/om-backend/internal/auth"
	"github.com/carterperez-dev/om-backend/internal/billing"
	"github.com/carterperez-dev/om-backend/internal/chant"
	"github.com/carterperez-dev/om-backend/internal/config"
	"github.com/carterperez-dev/om-backend/internal/core"
	"github.com/carterperez-dev/om-backend/internal/health"
	"github.com/carterperez-dev/om-backend/internal/metrics"
	"github.com/carterperez-dev/om-backend/internal/middleware"
	"github.com/carterperez-dev/om-backend/internal/mood"
	"github.com/carterperez-dev/om-backend/internal/recommendation"
	"github.com/carterperez-dev/om-backend/internal/server"
	"github.com/carterperez-dev/om-backend/internal/user"
	"github.com/carterperez-dev/om-backend/internal/web"
)

const (
	drainDelay   = 5 * time.Second
	webhookPath  = "/api/payments/webhook"
	metricsPath  = "/metrics"
	apiPrefix    = "/api"
	metricPrefix = "om"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

//nolint:funlen // bootstrap code is inherently verbose
func run(configPath string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer stop()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to read .env file", "error", err)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger := setupLogger(cfg.Log)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"environment", cfg.App.Environment,
	)

	var telemetry *core.Telemetry
	if cfg.Otel.Enabled {
		tel, telErr := core.NewTelemetry(ctx, cfg.Otel, cfg.App)
		if telErr != nil {
			logger.Warn("failed to initialize telemetry", "error", telErr)
		} else {
			telemetry = tel
			logger.Info("OpenTelemetry tracer initialized",
				"endpoint", cfg.Otel.Endpoint,
			)
		}
	}

	db, err := core.NewDatabase(ctx, cfg.Database)
	if err != nil {
		return err
	}
	logger.Info("database connected",
		"max_open_conns", cfg.Database.MaxOpenConns,
		"max_idle_conns", cfg.Database.MaxIdleConns,
	)

	if cfg.Database.AutoMigrate {
		if err := core.RunMigrations(cfg.Database.URL); err != nil {
			return err
		}
		logger.Info("database migrations applied")
	}

	seeded, err := chant.Seed(ctx, db.DB)
	if err != nil {
		return err
	}
	if seeded > 0 {
		logger.Info("chant catalog seeded", "count", seeded)
	}

	redis, err := core.NewRedis(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	logger.Info("redis connected",
		"pool_size", cfg.Redis.PoolSize,
	)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB.DB, metricPrefix),
	)
	collector := metrics.NewCollector(registry)

	tokens, err := auth.NewTokenManager(cfg.JWT)
	if err != nil {
		return err
	}
	logger.Info("token manager initialized",
		"algorithm", "HS256",
		"expire", cfg.JWT.Expire,
	)

	events := analytics.NewRecorder(
		analytics.NewRepository(db.DB),
		collector,
		logger,
	)

	userSvc := user.NewService(user.NewRepository(db.DB))
	userHandler := user.NewHandler(userSvc)

	authSvc := auth.NewService(tokens, userSvc, events)
	authHandler := auth.NewHandler(authSvc)

	chantHandler := chant.NewHandler(chant.NewService(chant.NewRepository(db.DB)))

	moodSvc := mood.NewService(mood.NewRepository(db.DB), events)
	moodHandler := mood.NewHandler(moodSvc)

	var generator recommendation.Generator
	if cfg.Gemini.APIKey != "" {
		gemini, genErr := recommendation.NewGeminiGenerator(ctx, cfg.Gemini)
		if genErr != nil {
			logger.Warn("gemini unavailable, recommendations use fallback", "error", genErr)
		} else {
			generator = gemini
			logger.Info("gemini generator initialized", "model", cfg.Gemini.Model)
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, recommendations use fallback")
	}
	recommendationHandler := recommendation.NewHandler(recommendation.NewService(
		moodSvc,
		generator,
		cfg.Gemini.Timeout,
		collector,
		logger,
	))

	var processor billing.Processor = billing.NewStubProcessor()
	if cfg.Razorpay.Live {
		processor = billing.NewRazorpayClient(cfg.Razorpay)
		logger.Info("razorpay processor enabled", "base_url", cfg.Razorpay.BaseURL)
	}
	if cfg.Razorpay.WebhookSecret == "" {
		logger.Warn("RAZORPAY_WEBHOOK_SECRET not set, payment webhooks will be rejected")
	}
	billingHandler := billing.NewHandler(processor, billing.NewWebhookService(billing.WebhookDeps{
		Secret:      cfg.Razorpay.WebhookSecret,
		Subscribers: userSvc,
		Deduper:     redis,
		Events:      events,
		Outcomes:    collector,
		Logger:      logger,
	}))

	adminHandler := admin.NewHandler(admin.HandlerConfig{
		Users:      userSvc,
		Moods:      moodSvc,
		DBStats:    db.Stats,
		RedisStats: redis.PoolStats,
		DBPing:     db.Ping,
		RedisPing:  redis.Ping,
	})

	healthHandler := health.NewHandler(
		cfg.App.Version,
		health.Dependency{Name: "database", Checker: db},
		health.Dependency{Name: "redis", Checker: redis},
	)

	srv := server.New(server.Config{
		ServerConfig:  cfg.Server,
		HealthHandler: healthHandler,
		Logger:        logger,
	})

	router := srv.Router()

	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Metrics(collector))
	router.Use(
		middleware.NewRateLimiter(redis.Client, middleware.RateLimitConfig{
			Limit: redis_rate.Limit{
				Rate:   cfg.RateLimit.Requests,
				Burst:  cfg.RateLimit.Burst,
				Period: cfg.RateLimit.Window,
			},
			FailOpen: true,
			BypassFunc: middleware.BypassPaths(
				"/healthz", "/livez", "/readyz", metricsPath, webhookPath,
			),
		}).Handler,
	)
	router.Use(middleware.SecurityHeaders(cfg.IsProduction()))
	router.Use(middleware.CORS(cfg.CORS))

	healthHandler.RegisterRoutes(router)
	router.Handle(metricsPath, metrics.Handler(registry))

	authenticator := middleware.Authenticator(tokens)

	router.Route(apiPrefix, func(r chi.Router) {
		middleware.Mount(r, authenticator, authHandler.Routes()...)
		middleware.Mount(r, authenticator, chantHandler.Routes()...)
		middleware.Mount(r, authenticator, moodHandler.Routes()...)
		middleware.Mount(r, authenticator, recommendationHandler.Routes()...)
		middleware.Mount(r, authenticator, billingHandler.Routes()...)
		middleware.Mount(r, authenticator, userHandler.Routes()...)
		middleware.Mount(r, authenticator, adminHandler.Routes()...)
	})

	if spa := web.NewSPA(cfg.Web.Dir, apiPrefix, metricsPath); spa != nil {
		router.NotFound(spa.ServeHTTP)
		logger.Info("serving web app", "dir", cfg.Web.Dir)
	}

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		cfg.Server.ShutdownTimeout+drainDelay+5*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx, drainDelay); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if telemetry != nil {
		if err := telemetry.Shutdown(shutdownCtx); err != nil {
			logger.Error("telemetry shutdown error", "error", err)
		}
	}

	if err := redis.Close(); err != nil {
		logger.Error("redis close error", "error", err)
	}

	if err := db.Close(); err != nil {
		logger.Error("database close error", "error", err)
	}

	logger.Info("application stopped")
	return nil
}

func setupLogger(cfg config.LogConfig) *slog.Logger {
	var handler slog.Handler

	level := slog.LevelInfo
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}

	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
