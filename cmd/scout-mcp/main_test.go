package main

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/testutil"
)

func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestLoadServiceWithFixture(t *testing.T) {
	cfg := config.Config{Sources: config.ParseSources([]string{"fixture"}, teams.GoalUnitAuto)}
	logger, _ := testutil.NewBufferLogger()

	svc, err := loadService(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !svc.Ready() {
		t.Fatalf("expected fixture board loaded")
	}
	if got := len(svc.Board().Rankings); got != 6 {
		t.Fatalf("expected 6 ranked teams, got %d", got)
	}
}

func TestLoadServiceKeepsRunningWhenSourceMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")
	cfg := config.Config{Sources: config.ParseSources([]string{missing}, teams.GoalUnitAuto)}
	logger, buf := testutil.NewBufferLogger()

	svc, err := loadService(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if svc.Ready() {
		t.Fatalf("expected no board after failed load")
	}
	if !strings.Contains(buf.String(), "initial rankings load failed") {
		t.Fatalf("expected load failure logged, got %q", buf.String())
	}
}

func TestNewServerRejectsUnsupportedSource(t *testing.T) {
	cfg := config.Config{Sources: config.ParseSources([]string{"standings.xlsx"}, teams.GoalUnitAuto)}
	logger, _ := testutil.NewBufferLogger()

	_, err := newServer(context.Background(), cfg, logger)
	if err == nil {
		t.Fatalf("expected error for unsupported source")
	}
	var srcErr *providers.SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %v", err)
	}
}

func TestNewServerRegistersTools(t *testing.T) {
	cfg := config.Config{Sources: config.ParseSources([]string{"fixture"}, teams.GoalUnitAuto)}
	logger, _ := testutil.NewBufferLogger()

	server, err := newServer(context.Background(), cfg, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if server == nil {
		t.Fatalf("expected server")
	}
}
