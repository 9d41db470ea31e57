package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
	"github.com/preston-bernstein/youth-soccer-scout/internal/snapshots"
	"github.com/preston-bernstein/youth-soccer-scout/internal/timeutil"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the rankings service.
type Handler struct {
	svc       *rankings.Service
	snaps     snapshots.Store
	focusTeam string
	logger    *slog.Logger
	now       nowFunc
}

// TeamResponse is a single ranked team plus how its name was resolved.
type TeamResponse struct {
	Team  teams.Ranking    `json:"team"`
	Match namematch.Result `json:"match"`
}

// OpponentsResponse lists a focus team's division with margins against it.
type OpponentsResponse struct {
	Focus     teams.Ranking      `json:"focus"`
	Opponents []rankings.Matchup `json:"opponents"`
}

// ReviewResponse exposes the join outcomes of the last refresh.
type ReviewResponse struct {
	UpdatedAt time.Time      `json:"updatedAt"`
	Applied   []teams.Link   `json:"applied"`
	Review    []teams.Link   `json:"review"`
	Untracked []teams.Record `json:"untracked"`
}

// NewHandler constructs a Handler. focusTeam is used by /compare and
// /opponents when the request does not name one.
func NewHandler(svc *rankings.Service, snaps snapshots.Store, focusTeam string, logger *slog.Logger) *Handler {
	return &Handler{
		svc:       svc,
		snaps:     snaps,
		focusTeam: strings.TrimSpace(focusTeam),
		logger:    logger,
		now:       time.Now,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/rankings":
		h.Rankings(w, r)
	case strings.HasPrefix(r.URL.Path, "/rankings/"):
		h.TeamByName(w, r)
	case r.URL.Path == "/match":
		h.Match(w, r)
	case r.URL.Path == "/compare":
		h.Compare(w, r)
	case r.URL.Path == "/opponents":
		h.Opponents(w, r)
	case r.URL.Path == "/review":
		h.Review(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports 200 once a board has been loaded.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.svc == nil || !h.svc.Ready() {
		writeError(w, r, nethttp.StatusServiceUnavailable, "rankings not loaded", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
}

// Rankings returns the current board, optionally narrowed to a division.
// With ?date= it serves the stored snapshot for that day instead.
func (h *Handler) Rankings(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)
	division := strings.TrimSpace(r.URL.Query().Get("division"))
	dateParam := strings.TrimSpace(r.URL.Query().Get("date"))

	if dateParam != "" {
		if !timeutil.ValidDate(dateParam) {
			writeError(w, r, nethttp.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", logger)
			return
		}
		snap, err := h.loadSnapshot(dateParam)
		if err != nil {
			logging.Warn(logger, "snapshot unavailable",
				slog.String(logging.FieldDate, dateParam),
				slog.Any("err", err),
			)
			writeError(w, r, nethttp.StatusNotFound, "snapshot unavailable", logger)
			return
		}
		writeJSON(w, nethttp.StatusOK, filterSnapshot(snap, division), logger)
		logging.Info(logger, "served snapshot rankings",
			slog.String(logging.FieldDate, snap.Date),
			slog.Int(logging.FieldCount, len(snap.Rankings)),
		)
		return
	}

	board := h.board()
	resp := teams.RankingsResponse{
		Date:     timeutil.FormatDate(h.now()),
		Division: division,
		Rankings: h.svc.Rankings(division),
	}
	if !board.UpdatedAt.IsZero() {
		resp.Date = timeutil.FormatDate(board.UpdatedAt)
	}

	if len(board.Rankings) == 0 && h.snaps != nil {
		if snap, err := h.snaps.LoadLatest(); err == nil {
			resp = filterSnapshot(snap, division)
			logging.Info(logger, "served latest snapshot rankings",
				slog.String(logging.FieldDate, snap.Date),
				slog.Int(logging.FieldCount, len(resp.Rankings)),
			)
		}
	}

	writeJSON(w, nethttp.StatusOK, resp, logger)
}

// TeamByName resolves /rankings/{name} with the name matcher.
func (h *Handler) TeamByName(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	raw := strings.TrimPrefix(r.URL.Path, "/rankings/")
	name, err := url.PathUnescape(raw)
	if err != nil || strings.TrimSpace(name) == "" || strings.Contains(name, "/") {
		writeError(w, r, nethttp.StatusBadRequest, "invalid team name", h.logger)
		return
	}

	team, match, ok := h.svc.Team(name)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "team not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, TeamResponse{Team: team, Match: match}, h.logger)
}

// Match runs ?q= through the name matcher against the board.
func (h *Handler) Match(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing query parameter q", h.logger)
		return
	}
	res := h.svc.Match(q)
	logging.Info(loggerFromContext(r, h.logger), "team matched",
		slog.String(logging.FieldTeam, q),
		slog.String(logging.FieldCandidate, res.Candidate),
		slog.String(logging.FieldTier, string(res.Tier)),
	)
	writeJSON(w, nethttp.StatusOK, res, h.logger)
}

// Compare scores ?opponent= against ?focus= (default: the configured focus team).
func (h *Handler) Compare(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	focus, ok := h.focusParam(w, r)
	if !ok {
		return
	}
	opponent := strings.TrimSpace(r.URL.Query().Get("opponent"))
	if opponent == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing query parameter opponent", h.logger)
		return
	}

	cmp, err := h.svc.Compare(focus, opponent)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, cmp, h.logger)
}

// Opponents lists the focus team's division with a margin for each team.
func (h *Handler) Opponents(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	focus, ok := h.focusParam(w, r)
	if !ok {
		return
	}
	self, matchups, err := h.svc.Opponents(focus)
	if err != nil {
		h.writeLookupError(w, r, err)
		return
	}
	if matchups == nil {
		matchups = []rankings.Matchup{}
	}
	writeJSON(w, nethttp.StatusOK, OpponentsResponse{Focus: self, Opponents: matchups}, h.logger)
}

// Review returns the secondary-source records that were joined, held back or left unmatched.
func (h *Handler) Review(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	board := h.board()
	resp := ReviewResponse{
		UpdatedAt: board.UpdatedAt,
		Applied:   nonNilLinks(board.Applied),
		Review:    nonNilLinks(board.Review),
		Untracked: board.Untracked,
	}
	if resp.Untracked == nil {
		resp.Untracked = []teams.Record{}
	}
	writeJSON(w, nethttp.StatusOK, resp, h.logger)
}

func (h *Handler) focusParam(w nethttp.ResponseWriter, r *nethttp.Request) (string, bool) {
	focus := strings.TrimSpace(r.URL.Query().Get("focus"))
	if focus == "" {
		focus = h.focusTeam
	}
	if focus == "" {
		writeError(w, r, nethttp.StatusBadRequest, "missing query parameter focus", h.logger)
		return "", false
	}
	return focus, true
}

func (h *Handler) writeLookupError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	if errors.Is(err, rankings.ErrUnknownTeam) {
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
		return
	}
	logging.Error(loggerFromContext(r, h.logger), "lookup failed", err)
	writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
}

func (h *Handler) board() teams.Board {
	if h.svc == nil {
		return teams.Board{}
	}
	return h.svc.Board()
}

func (h *Handler) loadSnapshot(date string) (teams.RankingsResponse, error) {
	if h.snaps == nil {
		return teams.RankingsResponse{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadRankings(date)
}

// filterSnapshot narrows a stored board to a division, keeping stored ranks.
func filterSnapshot(snap teams.RankingsResponse, division string) teams.RankingsResponse {
	if division == "" {
		return snap
	}
	out := teams.RankingsResponse{Date: snap.Date, Division: division, Rankings: []teams.Ranking{}}
	for _, r := range snap.Rankings {
		if rankings.SameDivision(division, r.Division) {
			out.Rankings = append(out.Rankings, r)
		}
	}
	return out
}

func nonNilLinks(links []teams.Link) []teams.Link {
	if links == nil {
		return []teams.Link{}
	}
	return links
}
