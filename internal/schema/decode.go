package schema

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

var (
	// ErrBlankName is returned for rows without a team name.
	ErrBlankName = errors.New("blank team name")
	// ErrInvalidNumber is returned when a numeric cell cannot be parsed.
	ErrInvalidNumber = errors.New("invalid number")
)

// DecodeRow builds a record from one row of cells. Missing games played is
// derived from W+D+L; goals are only marked present when both sides (or a
// differential column) carry values.
func DecodeRow(cols Columns, cells []string, unit teams.GoalUnit) (teams.Record, error) {
	rec := teams.Record{GoalUnit: unit}

	rec.Name = strings.Join(strings.Fields(cell(cols, cells, FieldName)), " ")
	if rec.Name == "" {
		return teams.Record{}, ErrBlankName
	}
	rec.Division = strings.TrimSpace(cell(cols, cells, FieldDivision))

	var err error
	ints := []struct {
		field Field
		dest  *int
	}{
		{FieldWins, &rec.Wins},
		{FieldDraws, &rec.Draws},
		{FieldLosses, &rec.Losses},
		{FieldGamesPlayed, &rec.GamesPlayed},
	}
	for _, it := range ints {
		if *it.dest, _, err = intCell(cols, cells, it.field, rec.Name); err != nil {
			return teams.Record{}, err
		}
	}
	if !hasValue(cols, cells, FieldGamesPlayed) {
		rec.GamesPlayed = rec.Wins + rec.Draws + rec.Losses
	}

	gf, hasGF, err := floatCell(cols, cells, FieldGoalsFor, rec.Name)
	if err != nil {
		return teams.Record{}, err
	}
	ga, hasGA, err := floatCell(cols, cells, FieldGoalsAgainst, rec.Name)
	if err != nil {
		return teams.Record{}, err
	}
	gd, hasGD, err := floatCell(cols, cells, FieldGoalDiff, rec.Name)
	if err != nil {
		return teams.Record{}, err
	}
	switch {
	case hasGF && hasGA:
		rec.GoalsFor, rec.GoalsAgainst, rec.HasGoals = gf, ga, true
	case hasGD:
		rec.GoalsFor, rec.GoalsAgainst, rec.HasGoals = gd, 0, true
	}

	if pts, ok, err := floatCell(cols, cells, FieldPoints, rec.Name); err != nil {
		return teams.Record{}, err
	} else if ok {
		rec.ReportedPoints = &pts
	}
	if ppg, ok, err := floatCell(cols, cells, FieldPPG, rec.Name); err != nil {
		return teams.Record{}, err
	} else if ok {
		rec.ReportedPPG = &ppg
	}

	return rec, nil
}

func cell(cols Columns, cells []string, f Field) string {
	idx, ok := cols[f]
	if !ok || idx >= len(cells) {
		return ""
	}
	return cells[idx]
}

func hasValue(cols Columns, cells []string, f Field) bool {
	raw := cleanNumber(cell(cols, cells, f))
	return raw != "" && raw != "-"
}

func floatCell(cols Columns, cells []string, f Field, team string) (float64, bool, error) {
	raw := cleanNumber(cell(cols, cells, f))
	if raw == "" || raw == "-" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false, fmt.Errorf("%s %s %q: %w", team, f, raw, ErrInvalidNumber)
	}
	return v, true, nil
}

func intCell(cols Columns, cells []string, f Field, team string) (int, bool, error) {
	v, ok, err := floatCell(cols, cells, f, team)
	if err != nil || !ok {
		return 0, ok, err
	}
	if v < 0 {
		v = 0
	}
	return int(v), true, nil
}

// cleanNumber strips spacing, a leading plus sign and thousands separators.
func cleanNumber(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.ReplaceAll(raw, ",", "")
	return strings.TrimPrefix(raw, "+")
}
