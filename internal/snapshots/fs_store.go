package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// ErrNoSnapshots is returned by LoadLatest when the manifest lists no dates.
var ErrNoSnapshots = errors.New("no rankings snapshots")

// Store defines how snapshots are loaded.
type Store interface {
	LoadRankings(date string) (teams.RankingsResponse, error)
	LoadLatest() (teams.RankingsResponse, error)
}

// FSStore loads snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadRankings reads the snapshot for date (YYYY-MM-DD) from
// {basePath}/rankings/{date}.json.
func (s *FSStore) LoadRankings(date string) (teams.RankingsResponse, error) {
	if s == nil {
		return teams.RankingsResponse{}, errors.New("snapshot store not configured")
	}
	if date == "" {
		return teams.RankingsResponse{}, errNoDate
	}
	var payload teams.RankingsResponse
	if err := decodeFile(RankingsSnapshotPath(s.basePath, date), &payload); err != nil {
		return teams.RankingsResponse{}, err
	}
	if payload.Date == "" {
		payload.Date = date
	}
	return payload, nil
}

// LoadLatest reads the newest snapshot listed in the manifest.
func (s *FSStore) LoadLatest() (teams.RankingsResponse, error) {
	if s == nil {
		return teams.RankingsResponse{}, errors.New("snapshot store not configured")
	}
	var m Manifest
	if err := decodeFile(filepath.Join(s.basePath, manifestFile), &m); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return teams.RankingsResponse{}, ErrNoSnapshots
		}
		return teams.RankingsResponse{}, err
	}
	date, ok := m.Latest()
	if !ok {
		return teams.RankingsResponse{}, ErrNoSnapshots
	}
	return s.LoadRankings(date)
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
