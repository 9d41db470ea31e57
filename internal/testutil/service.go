package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/store"
)

// NewRankingsService builds a rankings service over a single static source.
// With records, the board is loaded before returning.
func NewRankingsService(t *testing.T, records []teams.Record) *rankings.Service {
	t.Helper()
	svc := rankings.NewService(store.NewMemoryStore(),
		[]providers.RecordProvider{StaticProvider{Source: "test", Records: records}},
		rankings.Options{ReferenceStrength: 50, EvenMargin: 5},
	)
	if len(records) > 0 {
		if _, err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("failed to load rankings: %v", err)
		}
	}
	return svc
}
