// Command server runs the task-management backend: a REST and a GraphQL
// surface over the task lifecycle service, backed by MongoDB and a
// RabbitMQ event channel.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/cmtrswtng/taskflow/internal/config"
	"github.com/cmtrswtng/taskflow/internal/platform/logger"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log := logger.Setup(cfg.Server)
	log.Info("configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"api_prefix", cfg.API.Prefix,
		"graphql_path", cfg.GraphQL.Path)

	app, err := newApplication(context.Background(), cfg, log)
	if err != nil {
		return err
	}
	defer app.cleanup()

	return app.serve(app.setupRouter())
}
