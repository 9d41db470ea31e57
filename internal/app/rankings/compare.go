package rankings

import (
	"errors"
	"math"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
)

// ErrUnknownTeam is returned when the focus team has no match on the board.
var ErrUnknownTeam = errors.New("team not found in rankings")

// Verdict summarizes a strength margin from the focus team's point of view.
type Verdict string

const (
	VerdictFavored  Verdict = "favored"
	VerdictEven     Verdict = "even"
	VerdictUnderdog Verdict = "underdog"
)

// Side is one half of a comparison. Team is nil when the query matched
// nothing and Strength fell back to the reference value.
type Side struct {
	Query     string           `json:"query"`
	Team      *teams.Ranking   `json:"team,omitempty"`
	Match     namematch.Result `json:"match"`
	Strength  float64          `json:"strength"`
	Reference bool             `json:"reference"`
}

type Comparison struct {
	Focus    Side    `json:"focus"`
	Opponent Side    `json:"opponent"`
	Margin   float64 `json:"margin"`
	Verdict  Verdict `json:"verdict"`
}

// Matchup is one opponent on the focus team's board.
type Matchup struct {
	Opponent teams.Ranking `json:"opponent"`
	Margin   float64       `json:"margin"`
	Verdict  Verdict       `json:"verdict"`
}

// Scout answers focus-team questions against a ranked board.
type Scout struct {
	matcher    *namematch.Matcher
	reference  float64
	evenMargin float64
}

// NewScout uses reference as the strength of opponents missing from the
// board. Margins smaller than evenMargin in magnitude read as even.
func NewScout(matcher *namematch.Matcher, reference, evenMargin float64) *Scout {
	if matcher == nil {
		matcher = namematch.NewMatcher(namematch.DefaultConfig())
	}
	if evenMargin < 0 {
		evenMargin = 0
	}
	return &Scout{matcher: matcher, reference: reference, evenMargin: evenMargin}
}

// Find resolves a free-text name to a ranking. Any matched tier counts; the
// result tells the caller how confident the lookup was.
func (s *Scout) Find(board []teams.Ranking, name string) (teams.Ranking, namematch.Result, bool) {
	names := make([]string, len(board))
	for i, r := range board {
		names[i] = r.Name
	}
	m := s.matcher.Match(name, names)
	if !m.Tier.Matched() {
		return teams.Ranking{}, m, false
	}
	return board[m.Index], m, true
}

func (s *Scout) Compare(board []teams.Ranking, focus, opponent string) (Comparison, error) {
	f := s.side(board, focus)
	if f.Reference {
		return Comparison{Focus: f}, ErrUnknownTeam
	}
	o := s.side(board, opponent)
	margin := roundMargin(f.Strength - o.Strength)
	return Comparison{
		Focus:    f,
		Opponent: o,
		Margin:   margin,
		Verdict:  s.verdict(margin),
	}, nil
}

// Opponents lists every other team in the focus team's division, strongest first.
func (s *Scout) Opponents(board []teams.Ranking, focus string) (teams.Ranking, []Matchup, error) {
	self, _, ok := s.Find(board, focus)
	if !ok {
		return teams.Ranking{}, nil, ErrUnknownTeam
	}
	var out []Matchup
	for _, r := range board {
		if r.Name == self.Name && r.Source == self.Source {
			continue
		}
		if !SameDivision(self.Division, r.Division) {
			continue
		}
		margin := roundMargin(self.StrengthIndex - r.StrengthIndex)
		out = append(out, Matchup{Opponent: r, Margin: margin, Verdict: s.verdict(margin)})
	}
	return self, out, nil
}

func (s *Scout) side(board []teams.Ranking, query string) Side {
	side := Side{Query: query}
	r, m, ok := s.Find(board, query)
	side.Match = m
	if !ok {
		side.Strength = s.reference
		side.Reference = true
		return side
	}
	side.Team = &r
	side.Strength = r.StrengthIndex
	return side
}

func (s *Scout) verdict(margin float64) Verdict {
	switch {
	case margin >= s.evenMargin && margin > 0:
		return VerdictFavored
	case margin <= -s.evenMargin && margin < 0:
		return VerdictUnderdog
	default:
		return VerdictEven
	}
}

func roundMargin(v float64) float64 {
	return math.Round(v*10) / 10
}
