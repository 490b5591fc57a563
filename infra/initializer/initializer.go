package initializer

import (
	"fmt"
	"log/slog"

	"github.com/agrosphere/backend/infra"
	infra_eventbus "github.com/agrosphere/backend/infra/eventbus"
	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/domain/notification"
	"github.com/agrosphere/backend/pkg/eventbus"
)

// InitializeDependencies initializes all the application dependencies
func InitializeDependencies(cfg *config.App) (
	deps *config.Deps,
	err error,
) {
	deps = &config.Deps{Config: cfg}
	logger := setupLogger(cfg.Log)
	deps.Logger = logger

	// Initialize database
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, err
	}
	deps.DB = db

	if cfg.DB.Migrate {
		if err = infra.RunMigrations(db, cfg.DB.MigrationsPath); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database migrations applied", "source", cfg.DB.MigrationsPath)
	}

	// Initialize unit of work
	deps.Uow = infra.NewUoW(db)

	// Initialize event bus
	deps.EventBus, err = initEventBus(cfg, logger)
	if err != nil {
		return nil, err
	}

	return
}

// eventTypes maps the wire type names to decoders, so the Redis consumer can
// rebuild typed events from stream payloads.
func eventTypes() map[string]func() eventbus.Event {
	return map[string]func() eventbus.Event{
		"NotificationRequested": func() eventbus.Event { return &notification.Requested{} },
	}
}

// initEventBus picks the transport: Redis Streams when a URL is configured
// and reachable, the in-memory bus otherwise. An unreachable Redis degrades
// to memory instead of failing startup.
func initEventBus(cfg *config.App, logger *slog.Logger) (eventbus.Bus, error) {
	if cfg.Redis == nil || cfg.Redis.URL == "" {
		return infra_eventbus.NewWithMemory(logger), nil
	}
	bus, err := infra_eventbus.NewWithRedis(
		cfg.Redis.URL, cfg.Redis.Stream, cfg.Redis.Group, eventTypes(), logger)
	if err != nil {
		logger.Warn("Redis event bus unavailable, falling back to in-memory",
			"error", err)
		return infra_eventbus.NewWithMemory(logger), nil
	}
	return bus, nil
}
