// Package report renders rankings for people: augmented CSV files and
// console tables.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

var csvHeader = []string{
	"rank", "team", "division", "source",
	"gp", "w", "d", "l", "gf", "ga",
	"points", "ppg", "gd_per_game", "strength_index", "flags",
}

// WriteCSV writes one row per ranking, in order.
func WriteCSV(w io.Writer, rankings []teams.Ranking) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, r := range rankings {
		if err := cw.Write(csvRow(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes rankings to path, creating parent directories.
func WriteCSVFile(path string, rankings []teams.Ranking) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	if err := WriteCSV(f, rankings); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func csvRow(r teams.Ranking) []string {
	gdpg, _ := r.GoalDiffPerGame()
	gf, ga := "", ""
	if r.HasGoals {
		gf, ga = formatFloat(r.GoalsFor), formatFloat(r.GoalsAgainst)
	}
	return []string{
		strconv.Itoa(r.Rank),
		r.Name,
		r.Division,
		r.Source,
		strconv.Itoa(r.GamesPlayed),
		strconv.Itoa(r.Wins),
		strconv.Itoa(r.Draws),
		strconv.Itoa(r.Losses),
		gf,
		ga,
		formatFloat(r.Points()),
		strconv.FormatFloat(r.PointsPerGame(), 'f', 2, 64),
		strconv.FormatFloat(gdpg, 'f', 2, 64),
		strconv.FormatFloat(r.StrengthIndex, 'f', 1, 64),
		joinFlags(r.Flags),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func joinFlags(flags []teams.Flag) string {
	parts := make([]string, len(flags))
	for i, f := range flags {
		parts[i] = string(f)
	}
	return strings.Join(parts, ";")
}
