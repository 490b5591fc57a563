package config

import (
	"log/slog"

	"github.com/agrosphere/backend/pkg/eventbus"
	"github.com/agrosphere/backend/pkg/repository"
	"gorm.io/gorm"
)

// Deps holds all infrastructure dependencies for building the app and services.
type Deps struct {
	Uow      repository.UnitOfWork
	EventBus eventbus.Bus
	DB       *gorm.DB
	Logger   *slog.Logger
	Config   *App
}
