package snapshots

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/timeutil"
)

type snapshotKind string

const kindRankings snapshotKind = "rankings"

const defaultRetentionDays = 30

var (
	errNoWriter = errors.New("snapshot writer not configured")
	errNoDate   = errors.New("snapshot date required")
)

// Writer persists dated rankings snapshots and the manifest, pruning
// snapshots older than the retention window.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = defaultRetentionDays
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteRankingsSnapshot writes the snapshot for date (YYYY-MM-DD). Rankings
// are ordered by rank then name so identical boards produce identical files.
func (w *Writer) WriteRankingsSnapshot(date string, snapshot teams.RankingsResponse) error {
	if w == nil {
		return errNoWriter
	}
	if date == "" {
		return errNoDate
	}
	if snapshot.Date == "" {
		snapshot.Date = date
	}
	ordered := append([]teams.Ranking(nil), snapshot.Rankings...)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Rank != ordered[j].Rank {
			return ordered[i].Rank < ordered[j].Rank
		}
		return ordered[i].Name < ordered[j].Name
	})
	if ordered == nil {
		ordered = []teams.Ranking{}
	}
	snapshot.Rankings = ordered
	return w.writeSnapshot(kindRankings, date, snapshot)
}

func (w *Writer) writeSnapshot(kind snapshotKind, date string, payload any) error {
	target := RankingsSnapshotPath(w.basePath, date)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(kind, date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(kind, date)
}

func (w *Writer) updateManifest(kind snapshotKind, date string) error {
	m, _ := readManifest(filepath.Join(w.basePath, manifestFile), w.retentionDays)

	dates, err := w.listDates(kind)
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}

	m.Rankings.Dates = w.pruneOldSnapshots(dates)
	m.Rankings.LastRefreshed = w.now().UTC()
	m.Retention.RankingsDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates(kind snapshotKind) ([]string, error) {
	entries, err := os.ReadDir(filepath.Join(w.basePath, string(kind)))
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		dates = append(dates, name[:len(name)-len(".json")])
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldSnapshots(dates []string) []string {
	cutoff := timeutil.RetentionCutoff(w.now(), w.retentionDays)
	keep := make([]string, 0, len(dates))
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			_ = os.Remove(RankingsSnapshotPath(w.basePath, d))
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep
}
