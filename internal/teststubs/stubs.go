// Package teststubs holds hand-written doubles for the poller and the
// snapshot store.
package teststubs

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// ErrSnapshotNotFound is returned by StubSnapshotStore for unknown dates.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// StubRefresher is a test double for poller.Refresher.
type StubRefresher struct {
	mu     sync.Mutex
	Board  teams.Board
	Err    error
	Calls  atomic.Int32
	Notify chan struct{}
}

// Refresh returns the configured board and error while tracking calls. The
// first call closes Notify.
func (s *StubRefresher) Refresh(ctx context.Context) (teams.Board, error) {
	_ = ctx
	if s.Notify != nil {
		select {
		case <-s.Notify:
		default:
			close(s.Notify)
		}
	}
	s.Calls.Add(1)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Board, s.Err
}

// SetResult swaps the board and error returned by later calls.
func (s *StubRefresher) SetResult(board teams.Board, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Board, s.Err = board, err
}

// StubSnapshotStore is a test double for snapshots.Store.
type StubSnapshotStore struct {
	Rankings    map[string]teams.RankingsResponse // keyed by date
	LoadErr     error
	LatestCalls atomic.Int32
}

// LoadRankings returns the snapshot stored under date.
func (s *StubSnapshotStore) LoadRankings(date string) (teams.RankingsResponse, error) {
	if s.LoadErr != nil {
		return teams.RankingsResponse{}, s.LoadErr
	}
	resp, ok := s.Rankings[date]
	if !ok {
		return teams.RankingsResponse{}, ErrSnapshotNotFound
	}
	return resp, nil
}

// LoadLatest returns the snapshot with the greatest date key.
func (s *StubSnapshotStore) LoadLatest() (teams.RankingsResponse, error) {
	s.LatestCalls.Add(1)
	if s.LoadErr != nil {
		return teams.RankingsResponse{}, s.LoadErr
	}
	if len(s.Rankings) == 0 {
		return teams.RankingsResponse{}, ErrSnapshotNotFound
	}
	dates := make([]string, 0, len(s.Rankings))
	for d := range s.Rankings {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return s.Rankings[dates[len(dates)-1]], nil
}

// StubSnapshotWriter is a test double for poller.SnapshotWriter.
type StubSnapshotWriter struct {
	mu      sync.Mutex
	written map[string]teams.RankingsResponse
	Err     error
}

// WriteRankingsSnapshot records the snapshot for verification in tests.
func (w *StubSnapshotWriter) WriteRankingsSnapshot(date string, snapshot teams.RankingsResponse) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.Err != nil {
		return w.Err
	}
	if w.written == nil {
		w.written = make(map[string]teams.RankingsResponse)
	}
	w.written[date] = snapshot
	return nil
}

// Written returns the snapshot recorded for date.
func (w *StubSnapshotWriter) Written(date string) (teams.RankingsResponse, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	snap, ok := w.written[date]
	return snap, ok
}

// Count returns how many dates have a snapshot.
func (w *StubSnapshotWriter) Count() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.written)
}
