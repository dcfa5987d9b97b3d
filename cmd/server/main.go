// Package main implements the entry point for the comprehension level
// engine server, which tracks what a learner knows, assesses their CEFR
// level, and adapts texts for comprehensible input.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/guvenchemy/MerkutY-BTK/internal/config"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/logger"
	"github.com/guvenchemy/MerkutY-BTK/internal/platform/postgres"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run wires configuration, logging, database, and application dependencies,
// then serves HTTP until shutdown.
func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return err
	}

	if err := postgres.RunMigrations(db, appLogger); err != nil {
		return err
	}

	ctx := context.Background()
	app, err := newApplication(ctx, cfg, appLogger, db)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}
