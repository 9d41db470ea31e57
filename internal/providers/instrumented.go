package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
)

// instrumentedProvider wraps a RecordProvider with load logging and metrics.
type instrumentedProvider struct {
	inner    RecordProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
}

// NewInstrumentedProvider wraps the given provider. A nil logger or recorder disables that concern.
func NewInstrumentedProvider(inner RecordProvider, logger *slog.Logger, recorder *metrics.Recorder) RecordProvider {
	return &instrumentedProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

func (p *instrumentedProvider) Name() string {
	return p.inner.Name()
}

func (p *instrumentedProvider) FetchRecords(ctx context.Context) ([]teams.Record, error) {
	start := p.now()
	records, err := p.inner.FetchRecords(ctx)
	elapsed := p.now().Sub(start)

	if p.recorder != nil {
		p.recorder.RecordSourceLoad(p.Name(), elapsed, len(records), err)
	}

	if err != nil {
		logWithSource(ctx, p.logger, slog.LevelWarn, p.Name(), "source load failed",
			slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
			slog.Any("err", err),
		)
		return nil, err
	}

	logWithSource(ctx, p.logger, slog.LevelInfo, p.Name(), "source loaded",
		slog.Int(logging.FieldCount, len(records)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return records, nil
}
