package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/terraincognita07/pmsify/internal/api"
	"github.com/terraincognita07/pmsify/internal/cli"
	"github.com/terraincognita07/pmsify/internal/db"
	"github.com/terraincognita07/pmsify/internal/i18n"
	"github.com/terraincognita07/pmsify/internal/services"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	dbPath           string
	bindAddr         string
	port             string
	defaultLanguage  string
	location         *time.Location
	reminderInterval time.Duration
}

func main() {
	level, err := resolveLogLevel()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	appLogger, err := newLogger(level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger init failed: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = appLogger.Sync()
	}()

	if err := run(os.Args[1:], appLogger); err != nil {
		appLogger.Error("pmsify failed", zap.Error(err))
		_ = appLogger.Sync()
		os.Exit(1)
	}
}

func run(args []string, appLogger *zap.Logger) error {
	cfg, err := loadConfig(appLogger)
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(cfg.dbPath, appLogger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}
	manager, err := i18n.NewEmbeddedManager(cfg.defaultLanguage)
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}
	tracker := services.NewTracker(db.NewRepositories(database).TrackerRepositories(), services.NewSystemClock(cfg.location), manager)

	if len(args) > 0 && args[0] != "serve" {
		if !cli.IsCommand(args[0]) {
			return fmt.Errorf("%w: %s (commands: serve, %v)", cli.ErrUnknownCommand, args[0], cli.Commands)
		}
		return cli.Run(tracker, args, os.Stdin, os.Stdout)
	}
	return serve(cfg, tracker, appLogger)
}

func serve(cfg config, tracker *services.Tracker, appLogger *zap.Logger) error {
	app := newApp(api.NewHandlerWithTracker(tracker, appLogger), appLogger)

	reminders := services.NewReminderService(
		tracker.Cycles,
		tracker.Clock,
		services.LogNotifier{Logger: appLogger.Named("reminders")},
		tracker.Localizer,
		appLogger,
		cfg.reminderInterval,
	)
	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	reminders.Start(lifecycleCtx)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Warn("server shutdown failed", zap.Error(err))
		}
	}()

	address := cfg.bindAddr + ":" + cfg.port
	appLogger.Info("pmsify listening",
		zap.String("address", address),
		zap.String("db", cfg.dbPath),
		zap.String("tz", cfg.location.String()),
	)
	if err := app.Listen(address); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func newApp(handler *api.Handler, appLogger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "pmsify",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: zap.NewStdLog(appLogger.Named("http")).Writer(),
		Format: "${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)
	return app
}

func loadConfig(appLogger *zap.Logger) (config, error) {
	port, err := resolvePort()
	if err != nil {
		return config{}, err
	}
	interval, err := resolveReminderInterval()
	if err != nil {
		return config{}, err
	}
	return config{
		dbPath:           getEnv("DB_PATH", filepath.Join("data", "pmsify.db")),
		bindAddr:         getEnv("BIND_ADDR", "127.0.0.1"),
		port:             port,
		defaultLanguage:  getEnv("DEFAULT_LANGUAGE", i18n.LangEN),
		location:         loadLocation(getEnv("TZ", "UTC"), appLogger),
		reminderInterval: interval,
	}, nil
}

func newLogger(level zapcore.Level) (*zap.Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(level)
	zapConfig.EncoderConfig.TimeKey = "time"
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return zapConfig.Build()
}

func resolveLogLevel() (zapcore.Level, error) {
	raw := getEnv("LOG_LEVEL", "info")
	level, err := zapcore.ParseLevel(raw)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("invalid LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}

func resolvePort() (string, error) {
	raw := getEnv("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("invalid PORT %q: must be between 1 and 65535", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveReminderInterval() (time.Duration, error) {
	raw := getEnv("REMINDER_INTERVAL", services.DefaultReminderInterval.String())
	interval, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid REMINDER_INTERVAL %q: %w", raw, err)
	}
	if interval <= 0 {
		return 0, errors.New("REMINDER_INTERVAL must be positive")
	}
	return interval, nil
}

func loadLocation(name string, appLogger *zap.Logger) *time.Location {
	location, err := time.LoadLocation(name)
	if err != nil {
		appLogger.Warn("invalid TZ, falling back to UTC", zap.String("tz", name))
		return time.UTC
	}
	return location
}

func getEnv(key string, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}
