// Command scout-mcp serves the strength, matching and comparison tools over
// MCP stdio. Logs go to stderr; stdout carries the protocol.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/mcptools"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers/registry"
	"github.com/preston-bernstein/youth-soccer-scout/internal/schema"
	"github.com/preston-bernstein/youth-soccer-scout/internal/store"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "youth-soccer-scout-mcp",
		Version: appVersion,
		Output:  os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	server, err := newServer(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "mcp setup failed", err)
		os.Exit(1)
	}
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil && ctx.Err() == nil {
		logging.Error(logger, "mcp server stopped", err)
		os.Exit(1)
	}
}

// newServer loads the configured sources once and registers the tools. A
// failed load is logged and leaves only the stateless tool paths usable.
func newServer(ctx context.Context, cfg config.Config, logger *slog.Logger) (*mcp.Server, error) {
	svc, err := loadService(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "youth-soccer-scout",
		Version: appVersion,
	}, nil)
	mcptools.New(svc, cfg.Scouting.FocusTeam, logger).Register(server)
	return server, nil
}

func loadService(ctx context.Context, cfg config.Config, logger *slog.Logger) (*rankings.Service, error) {
	recorder := metrics.NewRecorder()
	provs, err := registry.Build(cfg.Sources, schema.DefaultAliases(), logger, recorder)
	if err != nil {
		return nil, err
	}
	svc := rankings.NewService(store.NewMemoryStore(), provs, rankings.OptionsFromConfig(cfg, logger, recorder))
	if _, err := svc.Refresh(logging.WithLogger(ctx, logger)); err != nil {
		logging.Warn(logger, "initial rankings load failed", slog.Any("err", err))
	}
	return svc, nil
}
