package snapshots

import (
	"os"
	"testing"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

func simpleSnapshot(date string) teams.RankingsResponse {
	return teams.RankingsResponse{
		Date: date,
		Rankings: []teams.Ranking{
			{Record: teams.Record{Name: "Team " + date}, Rank: 1, StrengthIndex: 50},
		},
	}
}

func writeSnapshot(t *testing.T, w *Writer, date string, snap teams.RankingsResponse) {
	t.Helper()
	if w == nil {
		t.Fatalf("writer is nil for date %s", date)
	}
	if err := w.WriteRankingsSnapshot(date, snap); err != nil {
		t.Fatalf("failed to write snapshot %s: %v", date, err)
	}
}

func requireSnapshotExists(t *testing.T, w *Writer, date string) {
	t.Helper()
	if _, err := os.Stat(RankingsSnapshotPath(w.BasePath(), date)); err != nil {
		t.Fatalf("expected snapshot for %s to be written: %v", date, err)
	}
}

func assertDatesEqual(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("dates length mismatch: got %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("dates mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}
