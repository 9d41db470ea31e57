package server

import (
	"testing"

	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
)

func TestBuildSnapshotsRespectsConfig(t *testing.T) {
	enabled := buildSnapshots(config.Config{
		Snapshots: config.SnapshotConfig{Enabled: true, Folder: t.TempDir(), RetentionDays: 1},
	})
	if enabled.store == nil || enabled.writer == nil {
		t.Fatalf("expected snapshot components to be initialized")
	}

	disabled := buildSnapshots(config.Config{
		Snapshots: config.SnapshotConfig{Enabled: false, Folder: t.TempDir()},
	})
	if disabled.store != nil || disabled.writer != nil {
		t.Fatalf("expected no snapshot components when disabled")
	}
}
