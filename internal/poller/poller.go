// Package poller re-reads the standings sources on a timer so a long-running
// server picks up re-exported files without an admin refresh.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/timeutil"
)

const defaultInterval = 15 * time.Minute

// failureThreshold is how many consecutive failed reloads flip IsReady.
const failureThreshold = 3

// Refresher rebuilds the board from every source.
type Refresher interface {
	Refresh(ctx context.Context) (teams.Board, error)
}

// SnapshotWriter persists dated rankings snapshots.
type SnapshotWriter interface {
	WriteRankingsSnapshot(date string, snapshot teams.RankingsResponse) error
}

// Poller refreshes the board on an interval and writes the day's snapshot.
type Poller struct {
	refresher Refresher
	writer    SnapshotWriter
	logger    *slog.Logger
	interval  time.Duration

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the reload loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a reload has succeeded and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < failureThreshold
}

// New constructs a Poller. A nil writer skips snapshots.
func New(refresher Refresher, writer SnapshotWriter, logger *slog.Logger, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		refresher: refresher,
		writer:    writer,
		logger:    logger,
		interval:  interval,
		done:      make(chan struct{}),
	}
}

// Start reloads immediately, then on every tick until the context is
// cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop. It is safe to call more than once.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	board, err := p.refresher.Refresh(logging.WithLogger(ctx, p.logger))
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}

	if p.writer != nil && len(board.Rankings) > 0 {
		date := timeutil.FormatDate(board.UpdatedAt)
		snap := teams.RankingsResponse{Date: date, Rankings: board.Rankings}
		if writeErr := p.writer.WriteRankingsSnapshot(date, snap); writeErr != nil {
			logging.Error(p.logger, "poller snapshot write failed", writeErr, slog.String(logging.FieldDate, date))
		}
	}
	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed rankings",
		slog.Int(logging.FieldCount, len(board.Rankings)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a copy of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
