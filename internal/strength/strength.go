// Package strength turns per-team aggregate stats into a bounded 0-100
// Strength Index comparable across teams with very different sample sizes.
package strength

import (
	"math"
	"strconv"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

const (
	maxPPG     = 3.0
	maxGoalDPG = 5.0

	ppgWeight = 0.7
	gdWeight  = 0.3
)

// Compute maps points-per-game and per-game goal differential onto [0,100].
// Inputs are clamped, never rejected: ppg to [0,3], gdpg to [-5,5]. NaN reads
// as 0 for both, which is the floor for ppg and the midpoint for gdpg.
func Compute(pointsPerGame, goalDiffPerGame float64) float64 {
	return roundTenth(weighted(pointsPerGame, goalDiffPerGame))
}

func weighted(pointsPerGame, goalDiffPerGame float64) float64 {
	ppgNorm := clamp(pointsPerGame, 0, maxPPG) / maxPPG * 100
	gdNorm := (clamp(goalDiffPerGame, -maxGoalDPG, maxGoalDPG) + maxGoalDPG) / (2 * maxGoalDPG) * 100
	return ppgWeight*ppgNorm + gdWeight*gdNorm
}

// Result carries a score together with the data-quality flags raised while
// deriving its inputs.
type Result struct {
	PointsPerGame   float64
	GoalDiffPerGame float64
	Index           float64
	Flags           []teams.Flag
}

// ScoreRecord derives Compute's inputs from a record. Zero games yields the
// defined 15.0 floor (ppg 0, neutral goals); callers needing "no data"
// semantics should check the no_games flag, not the score.
func ScoreRecord(rec teams.Record) Result {
	var flags []teams.Flag
	if !rec.Consistent() {
		flags = append(flags, teams.FlagInconsistentCounts)
	}

	if rec.GamesPlayed <= 0 && rec.ReportedPPG == nil {
		flags = append(flags, teams.FlagNoGames)
		return Result{Index: Compute(0, 0), Flags: flags}
	}

	ppg := rec.PointsPerGame()
	gdpg, heuristic := rec.GoalDiffPerGame()
	if !rec.HasGoals {
		flags = append(flags, teams.FlagNoGoalData)
	}
	if heuristic {
		flags = append(flags, teams.FlagHeuristicGoalUnits)
	}

	return Result{
		PointsPerGame:   ppg,
		GoalDiffPerGame: gdpg,
		Index:           Compute(ppg, gdpg),
		Flags:           flags,
	}
}

func clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(lo, math.Min(hi, v))
}

// roundTenth rounds the exact binary value of v to one decimal, ties to
// even. Scaling by 10 first would round twice: 6.4500000000000002 must give
// 6.5 and 14.549999999999999 must give 14.5.
func roundTenth(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 1, 64), 64)
	return r
}
