// Package app wires the services onto their shared dependencies.
package app

import (
	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/service/auth"
	"github.com/agrosphere/backend/pkg/service/chat"
	"github.com/agrosphere/backend/pkg/service/connection"
	"github.com/agrosphere/backend/pkg/service/discovery"
	"github.com/agrosphere/backend/pkg/service/ledger"
	"github.com/agrosphere/backend/pkg/service/notification"
	"github.com/agrosphere/backend/pkg/service/user"
)

// App holds the constructed services. The web layer and the CLI both hang
// off this; neither builds a service on its own.
type App struct {
	Deps   *config.Deps
	Config *config.App

	AuthService         *auth.Service
	UserService         *user.Service
	ConnectionService   *connection.Service
	ChatService         *chat.Service
	DiscoveryService    *discovery.Service
	LedgerService       *ledger.Service
	NotificationService *notification.Service
}

// New builds every service on the shared dependencies. The notification
// service registers its event handler here, so anything emitted through the
// bus lands in the store no matter which service emitted it.
func New(deps *config.Deps, cfg *config.App) *App {
	a := &App{
		Deps:   deps,
		Config: cfg,
	}
	a.AuthService = auth.NewWithJWT(deps.Uow, cfg.Auth.Jwt, deps.Logger)
	a.UserService = user.New(deps.Uow, deps.Logger)
	a.NotificationService = notification.New(deps.Uow, deps.EventBus, deps.Logger)
	a.NotificationService.Register()
	a.ConnectionService = connection.New(deps.Uow, a.NotificationService, deps.Logger)
	a.ChatService = chat.New(deps.Uow, cfg.Chat, deps.Logger)
	a.DiscoveryService = discovery.New(deps.Uow, deps.Logger)
	a.LedgerService = ledger.New(deps.Uow, cfg.Dashboard, deps.Logger)
	return a
}
