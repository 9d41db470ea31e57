package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/http/requestutil"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/snapshots"
	"github.com/preston-bernstein/youth-soccer-scout/internal/timeutil"
)

// AdminHandler exposes admin-only endpoints (e.g., rankings refresh).
type AdminHandler struct {
	svc    *rankings.Service
	writer *snapshots.Writer
	token  string
	logger *slog.Logger
	now    nowFunc
}

// NewAdminHandler constructs an AdminHandler. writer may be nil when
// snapshots are disabled.
func NewAdminHandler(svc *rankings.Service, writer *snapshots.Writer, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		writer: writer,
		token:  token,
		logger: logger,
		now:    time.Now,
	}
}

// RefreshRankings reloads every source and, when a writer is configured,
// stores the new board as the snapshot for ?date= (defaults to today).
// Guarded by ADMIN_TOKEN; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshRankings(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String(logging.FieldPath, r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.svc == nil {
		writeError(w, r, http.StatusServiceUnavailable, "rankings service not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(h.now())
	}
	if !timeutil.ValidDate(date) {
		logging.Warn(logger, "admin refresh invalid date", slog.String(logging.FieldDate, date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	board, err := h.svc.Refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin refresh failed", slog.Any("err", err))
		writeError(w, r, http.StatusBadGateway, "failed to refresh rankings", logger)
		return
	}

	snapshotWritten := false
	if h.writer != nil && len(board.Rankings) > 0 {
		snap := teams.RankingsResponse{Date: date, Rankings: board.Rankings}
		if err := h.writer.WriteRankingsSnapshot(date, snap); err != nil {
			logging.Warn(logger, "admin snapshot write failed",
				slog.String(logging.FieldDate, date),
				slog.Int(logging.FieldCount, len(board.Rankings)),
				slog.Any("err", err),
			)
			writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
			return
		}
		snapshotWritten = true
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":      date,
		"count":     len(board.Rankings),
		"review":    len(board.Review),
		"untracked": len(board.Untracked),
		"snapshot":  snapshotWritten,
		"status":    "ok",
	}, logger)
	logging.Info(logger, "admin refresh complete",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(board.Rankings)),
		slog.Bool("snapshot", snapshotWritten),
	)
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := []byte(r.Header.Get("Authorization"))
	want := []byte("Bearer " + h.token)
	return subtle.ConstantTimeCompare(got, want) == 1
}
