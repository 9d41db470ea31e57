package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
)

type stubProvider struct {
	name    string
	records []teams.Record
	err     error
	calls   int
}

func (s *stubProvider) Name() string { return s.name }

func (s *stubProvider) FetchRecords(ctx context.Context) ([]teams.Record, error) {
	s.calls++
	return s.records, s.err
}

func TestRecordProviderInterfaceImplemented(t *testing.T) {
	var _ RecordProvider = (*stubProvider)(nil)
	var _ RecordProvider = (*instrumentedProvider)(nil)
}

func TestInstrumentedProviderRecordsSuccess(t *testing.T) {
	inner := &stubProvider{name: "gotsport", records: []teams.Record{{Name: "A"}, {Name: "B"}}}
	rec := metrics.NewRecorder()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := NewInstrumentedProvider(inner, logger, rec).(*instrumentedProvider)
	tick := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	p.now = func() time.Time {
		tick = tick.Add(5 * time.Millisecond)
		return tick
	}

	records, err := p.FetchRecords(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 || inner.calls != 1 {
		t.Fatalf("expected single pass-through call, got %d records %d calls", len(records), inner.calls)
	}
	if p.Name() != "gotsport" {
		t.Fatalf("expected wrapped name, got %s", p.Name())
	}

	snap := rec.Snapshot("gotsport")
	if snap.Loads != 1 || snap.Errors != 0 || snap.Rows != 2 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap.LastLoadLatency != 5*time.Millisecond {
		t.Fatalf("expected 5ms latency, got %s", snap.LastLoadLatency)
	}
	out := buf.String()
	if !strings.Contains(out, "source loaded") || !strings.Contains(out, "source=gotsport") {
		t.Fatalf("expected load log with source, got %q", out)
	}
}

func TestInstrumentedProviderRecordsFailure(t *testing.T) {
	boom := errors.New("boom")
	inner := &stubProvider{name: "club", err: boom}
	rec := metrics.NewRecorder()
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	p := NewInstrumentedProvider(inner, logger, rec)
	if _, err := p.FetchRecords(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected inner error, got %v", err)
	}
	if rec.SourceErrors("club") != 1 {
		t.Fatalf("expected error counted")
	}
	if !strings.Contains(buf.String(), "level=WARN") {
		t.Fatalf("expected warn log, got %q", buf.String())
	}
}

func TestInstrumentedProviderToleratesNilDeps(t *testing.T) {
	inner := &stubProvider{name: "fixture", records: []teams.Record{{Name: "A"}}}
	p := NewInstrumentedProvider(inner, nil, nil)

	if _, err := p.FetchRecords(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogWithSourceSkipsNilLogger(t *testing.T) {
	logWithSource(context.Background(), nil, slog.LevelInfo, "s", "msg")
}

func TestLogSkippedRowPrefersContextLogger(t *testing.T) {
	var fallback, scoped bytes.Buffer
	ctx := logging.WithLogger(context.Background(), slog.New(slog.NewTextHandler(&scoped, nil)))

	LogSkippedRow(ctx, slog.New(slog.NewTextHandler(&fallback, nil)), "bracket", errors.New("bad cell"), slog.Int("row", 4))

	if fallback.Len() != 0 {
		t.Fatalf("expected fallback logger unused, got %q", fallback.String())
	}
	out := scoped.String()
	for _, want := range []string{"level=WARN", "skipping standings row", "source=bracket", "row=4", `err="bad cell"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}
