package rankings

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
)

// Store defines the contract for holding the current board.
type Store interface {
	Board() teams.Board
	SetBoard(teams.Board)
	Ready() bool
}

// Options configures a Service. Zero values fall back to defaults.
type Options struct {
	Matcher           *namematch.Matcher
	Division          string
	ReferenceStrength float64
	EvenMargin        float64
	Logger            *slog.Logger
	Metrics           *metrics.Recorder
}

// Service loads sources into a Store and answers queries against it.
type Service struct {
	store     Store
	providers []providers.RecordProvider
	matcher   *namematch.Matcher
	joiner    *Joiner
	scout     *Scout
	division  string
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

func NewService(store Store, provs []providers.RecordProvider, opts Options) *Service {
	matcher := opts.Matcher
	if matcher == nil {
		matcher = namematch.NewMatcher(namematch.DefaultConfig())
	}
	return &Service{
		store:     store,
		providers: provs,
		matcher:   matcher,
		joiner:    NewJoiner(matcher, opts.Logger, opts.Metrics),
		scout:     NewScout(matcher, opts.ReferenceStrength, opts.EvenMargin),
		division:  opts.Division,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		now:       time.Now,
	}
}

// Load reads every source in order and joins them. The first provider is primary.
func (s *Service) Load(ctx context.Context) (JoinResult, error) {
	sets := make([]SourceRecords, 0, len(s.providers))
	for _, p := range s.providers {
		records, err := p.FetchRecords(ctx)
		if err != nil {
			return JoinResult{}, fmt.Errorf("load %s: %w", p.Name(), err)
		}
		sets = append(sets, SourceRecords{Source: p.Name(), Records: records})
	}
	return s.joiner.Join(ctx, sets), nil
}

// Refresh reloads every source and replaces the stored board.
func (s *Service) Refresh(ctx context.Context) (teams.Board, error) {
	joined, err := s.Load(ctx)
	if err != nil {
		return teams.Board{}, err
	}

	board := teams.Board{
		UpdatedAt: s.now().UTC(),
		Rankings:  Build(joined.Records, s.division),
		Applied:   joined.Applied,
		Review:    joined.Review,
		Untracked: joined.Untracked,
	}
	s.metrics.RecordScored(len(board.Rankings))
	s.store.SetBoard(board)

	logging.Info(logging.FromContext(ctx, s.logger), "rankings refreshed",
		slog.Int(logging.FieldCount, len(board.Rankings)),
		slog.Int("review", len(board.Review)),
		slog.Int("untracked", len(board.Untracked)),
	)
	return board, nil
}

// Ready reports whether a board has been loaded.
func (s *Service) Ready() bool {
	return s.store.Ready()
}

func (s *Service) Board() teams.Board {
	return s.store.Board()
}

// Rankings returns the stored board re-ranked within division.
func (s *Service) Rankings(division string) []teams.Ranking {
	current := s.store.Board().Rankings
	if division == "" {
		return current
	}
	records := make([]teams.Record, len(current))
	for i, r := range current {
		records[i] = r.Record
	}
	return Build(records, division)
}

// Team resolves a free-text name against the board.
func (s *Service) Team(name string) (teams.Ranking, namematch.Result, bool) {
	return s.scout.Find(s.store.Board().Rankings, name)
}

// Matcher returns the configured name matcher.
func (s *Service) Matcher() *namematch.Matcher {
	return s.matcher
}

// Match runs the matcher against the board's team names.
func (s *Service) Match(query string) namematch.Result {
	current := s.store.Board().Rankings
	names := make([]string, len(current))
	for i, r := range current {
		names[i] = r.Name
	}
	res := s.matcher.Match(query, names)
	s.metrics.RecordMatch(string(res.Tier), res.Ambiguous)
	return res
}

func (s *Service) Compare(focus, opponent string) (Comparison, error) {
	return s.scout.Compare(s.store.Board().Rankings, focus, opponent)
}

func (s *Service) Opponents(focus string) (teams.Ranking, []Matchup, error) {
	return s.scout.Opponents(s.store.Board().Rankings, focus)
}
