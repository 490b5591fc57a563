package main

import (
	"fmt"
	"log/slog"

	"github.com/agrosphere/backend/infra/initializer"
	"github.com/agrosphere/backend/pkg/app"
	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/webapi"
	log "github.com/charmbracelet/log"

	_ "github.com/agrosphere/backend/cmd/server/swagger"
)

// @title Agrosphere API
// @version 1.0.0
// @description Backend for the Agrosphere farming network: ledger, dashboard, discovery, connections, messaging and notifications.
// @contact.name API Support
// @contact.email support@agrosphere.dev
// @license.name MIT
// @host localhost:3000
// @BasePath /
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description "Enter your Bearer token in the format: `Bearer {token}`"
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Build services and register event handlers
	a := app.New(deps, cfg)

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	return fiberApp.Listen(addr)
}
