package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/snapshots"
	"github.com/preston-bernstein/youth-soccer-scout/internal/store"
	"github.com/preston-bernstein/youth-soccer-scout/internal/testutil"
)

func benchHandler(b *testing.B) *Handler {
	b.Helper()
	ms := store.NewMemoryStore()
	ms.SetBoard(teams.Board{Rankings: rankings.Build(testutil.SampleRecords(), "")})
	svc := rankings.NewService(ms, nil, rankings.Options{ReferenceStrength: 50, EvenMargin: 5})
	return NewHandler(svc, snapshots.NewFSStore(b.TempDir()), "Club Ohio West", nil)
}

func BenchmarkRankings(b *testing.B) {
	h := benchHandler(b)
	req := httptest.NewRequest(http.MethodGet, "/rankings?division=U8%20Boys", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.Rankings(rr, req)
	}
}

func BenchmarkCompare(b *testing.B) {
	h := benchHandler(b)
	req := httptest.NewRequest(http.MethodGet, "/compare?opponent=Sporting%20Columbus", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rr := httptest.NewRecorder()
		h.Compare(rr, req)
	}
}
