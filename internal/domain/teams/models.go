package teams

import "math"

// GoalUnit describes how a source reports goals for/against.
type GoalUnit string

const (
	// GoalUnitAuto applies the magnitude heuristic to decide per record.
	GoalUnitAuto    GoalUnit = "auto"
	GoalUnitTotal   GoalUnit = "total"
	GoalUnitPerGame GoalUnit = "per_game"
)

// goalTotalCeiling is the largest differential still read as per-game in auto mode.
const goalTotalCeiling = 10.0

// ParseGoalUnit maps a config string to a GoalUnit, defaulting to auto.
func ParseGoalUnit(raw string) GoalUnit {
	switch GoalUnit(raw) {
	case GoalUnitTotal, GoalUnitPerGame:
		return GoalUnit(raw)
	default:
		return GoalUnitAuto
	}
}

// Record is one team's aggregate performance as read from a single source.
// Names are free text and not canonical across sources.
type Record struct {
	Name           string   `json:"name"`
	Division       string   `json:"division,omitempty"`
	Source         string   `json:"source,omitempty"`
	GamesPlayed    int      `json:"gamesPlayed"`
	Wins           int      `json:"wins"`
	Draws          int      `json:"draws"`
	Losses         int      `json:"losses"`
	GoalsFor       float64  `json:"goalsFor"`
	GoalsAgainst   float64  `json:"goalsAgainst"`
	HasGoals       bool     `json:"hasGoals"`
	GoalUnit       GoalUnit `json:"goalUnit,omitempty"`
	ReportedPoints *float64 `json:"reportedPoints,omitempty"`
	ReportedPPG    *float64 `json:"reportedPpg,omitempty"`
}

// Consistent reports whether wins+draws+losses equals games played.
func (r Record) Consistent() bool {
	return r.Wins+r.Draws+r.Losses == r.GamesPlayed
}

// Points returns reported points when the source carried them, else 3W+D.
func (r Record) Points() float64 {
	if r.ReportedPoints != nil {
		return *r.ReportedPoints
	}
	return float64(3*r.Wins + r.Draws)
}

// PointsPerGame is 0 when no games were played.
func (r Record) PointsPerGame() float64 {
	if r.ReportedPPG != nil {
		return *r.ReportedPPG
	}
	if r.GamesPlayed <= 0 {
		return 0
	}
	return r.Points() / float64(r.GamesPlayed)
}

// GoalDifferential is goals for minus goals against, in the source's units.
func (r Record) GoalDifferential() float64 {
	return r.GoalsFor - r.GoalsAgainst
}

// GoalDiffPerGame converts the differential to a per-game value.
// The second return is true when the auto heuristic decided the units:
// a differential larger than 10 in magnitude is assumed to be a season total.
func (r Record) GoalDiffPerGame() (float64, bool) {
	if !r.HasGoals || r.GamesPlayed <= 0 {
		return 0, false
	}
	gd := r.GoalDifferential()
	switch r.GoalUnit {
	case GoalUnitTotal:
		return gd / float64(r.GamesPlayed), false
	case GoalUnitPerGame:
		return gd, false
	default:
		if math.Abs(gd) > goalTotalCeiling {
			return gd / float64(r.GamesPlayed), true
		}
		return gd, true
	}
}

// Flag marks a data-quality caveat attached to a ranking.
type Flag string

const (
	FlagNoGames            Flag = "no_games"
	FlagNoGoalData         Flag = "no_goal_data"
	FlagHeuristicGoalUnits Flag = "heuristic_goal_units"
	FlagInconsistentCounts Flag = "inconsistent_counts"
)

// Ranking is a derived view of a Record with its strength index.
type Ranking struct {
	Record
	Rank          int     `json:"rank"`
	StrengthIndex float64 `json:"strengthIndex"`
	Flags         []Flag  `json:"flags,omitempty"`
}

// HasFlag reports whether the ranking carries the given flag.
func (r Ranking) HasFlag(f Flag) bool {
	for _, existing := range r.Flags {
		if existing == f {
			return true
		}
	}
	return false
}

// RankingsResponse is the payload for a rankings snapshot.
type RankingsResponse struct {
	Date     string    `json:"date"`
	Division string    `json:"division,omitempty"`
	Rankings []Ranking `json:"rankings"`
}
