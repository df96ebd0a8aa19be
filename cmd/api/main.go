package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/minimalism94/notification-svc/internal/cache"
	"github.com/minimalism94/notification-svc/internal/config"
	"github.com/minimalism94/notification-svc/internal/handler"
	"github.com/minimalism94/notification-svc/internal/infra/postgresql"
	"github.com/minimalism94/notification-svc/internal/infra/postgresql/migrations"
	infraredis "github.com/minimalism94/notification-svc/internal/infra/redis"
	"github.com/minimalism94/notification-svc/internal/observability"
	"github.com/minimalism94/notification-svc/internal/provider"
	"github.com/minimalism94/notification-svc/internal/repository"
	"github.com/minimalism94/notification-svc/internal/service"
	"github.com/minimalism94/notification-svc/internal/transport"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger, err := observability.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("failed to initialize logger: ", err)
	}
	defer logger.Sync() //nolint:errcheck

	db, err := postgresql.NewPostgres(cfg.DatabaseDSN)
	if err != nil {
		logger.Fatal("postgres initialization failed", zap.Error(err))
	}

	if err := migrations.Migrate(db); err != nil {
		logger.Fatal("database migrations failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("postgres underlying db init failed", zap.Error(err))
	}
	defer sqlDB.Close()

	rdb, err := infraredis.NewRedis(cfg.RedisURL)
	if err != nil {
		logger.Fatal("redis initialization failed", zap.Error(err))
	}
	defer rdb.Close()

	metrics := observability.NewMetrics()

	prefCache := cache.NewPreferenceCache(rdb, time.Duration(cfg.PreferenceCacheTTLSeconds)*time.Second)

	mailer := provider.NewSMTPMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom)
	smsProvider, err := provider.NewSmsProvider(cfg, logger)
	if err != nil {
		logger.Fatal("sms provider initialization failed", zap.Error(err))
	}

	preferenceService, err := service.NewPreferenceService(
		repository.NewGormPreferenceRepo(db),
		prefCache,
		metrics,
		logger,
	)
	if err != nil {
		logger.Fatal("preference service initialization failed", zap.Error(err))
	}

	notificationService, err := service.NewNotificationService(
		preferenceService,
		repository.NewGormNotificationRepo(db),
		mailer,
		smsProvider,
		metrics,
		logger,
	)
	if err != nil {
		logger.Fatal("notification service initialization failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      "notification-svc",
		ErrorHandler: transport.ErrorHandler(logger),
	})

	app.Use(recover.New())
	app.Use(metrics.HTTPMiddleware())

	handler.RegisterHealthRoutes(app, sqlDB, rdb)
	app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	if err := handler.RegisterPreferenceRoutes(app, preferenceService); err != nil {
		logger.Fatal("failed to register preference routes", zap.Error(err))
	}
	if err := handler.RegisterNotificationRoutes(app, notificationService); err != nil {
		logger.Fatal("failed to register notification routes", zap.Error(err))
	}

	go func() {
		logger.Info("notification-svc api started", zap.Int("port", cfg.APIPort))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.APIPort)); err != nil {
			logger.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
