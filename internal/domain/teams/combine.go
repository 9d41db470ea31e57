package teams

import (
	"math"
	"strings"
)

// Combine merges records describing the same team into one record expressed
// in season totals. Goal data survives only when every input carries it.
func Combine(name string, recs ...Record) Record {
	out := Record{Name: name, GoalUnit: GoalUnitTotal, HasGoals: len(recs) > 0}

	var (
		sources  []string
		points   float64
		reported bool
	)
	for _, r := range recs {
		if out.Division == "" {
			out.Division = r.Division
		}
		if r.Source != "" && !containsString(sources, r.Source) {
			sources = append(sources, r.Source)
		}
		out.GamesPlayed += r.GamesPlayed
		out.Wins += r.Wins
		out.Draws += r.Draws
		out.Losses += r.Losses

		points += r.seasonPoints()
		if r.ReportedPoints != nil || r.ReportedPPG != nil {
			reported = true
		}

		if !r.HasGoals {
			out.HasGoals = false
			continue
		}
		gf, ga := r.goalTotals()
		out.GoalsFor += gf
		out.GoalsAgainst += ga
	}

	if !out.HasGoals {
		out.GoalsFor, out.GoalsAgainst = 0, 0
	}
	if reported {
		out.ReportedPoints = &points
	}
	out.Source = strings.Join(sources, "+")
	return out
}

func (r Record) seasonPoints() float64 {
	switch {
	case r.ReportedPoints != nil:
		return *r.ReportedPoints
	case r.ReportedPPG != nil:
		return *r.ReportedPPG * float64(r.GamesPlayed)
	default:
		return float64(3*r.Wins + r.Draws)
	}
}

// goalTotals applies the same unit rules as GoalDiffPerGame.
func (r Record) goalTotals() (float64, float64) {
	gp := float64(r.GamesPlayed)
	switch r.GoalUnit {
	case GoalUnitTotal:
		return r.GoalsFor, r.GoalsAgainst
	case GoalUnitPerGame:
		return r.GoalsFor * gp, r.GoalsAgainst * gp
	default:
		if math.Abs(r.GoalDifferential()) > goalTotalCeiling {
			return r.GoalsFor, r.GoalsAgainst
		}
		return r.GoalsFor * gp, r.GoalsAgainst * gp
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
