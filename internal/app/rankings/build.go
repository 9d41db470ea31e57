// Package rankings turns source records into scored, ranked boards and
// answers scouting questions against them.
package rankings

import (
	"sort"
	"strings"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/strength"
)

// Build scores every record and orders them by strength index, highest
// first. Ties share a rank and are ordered by name. An empty division keeps
// every record.
func Build(records []teams.Record, division string) []teams.Ranking {
	out := make([]teams.Ranking, 0, len(records))
	for _, rec := range records {
		if !SameDivision(division, rec.Division) {
			continue
		}
		res := strength.ScoreRecord(rec)
		out = append(out, teams.Ranking{
			Record:        rec,
			StrengthIndex: res.Index,
			Flags:         res.Flags,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].StrengthIndex != out[j].StrengthIndex {
			return out[i].StrengthIndex > out[j].StrengthIndex
		}
		return out[i].Name < out[j].Name
	})
	for i := range out {
		if i > 0 && out[i].StrengthIndex == out[i-1].StrengthIndex {
			out[i].Rank = out[i-1].Rank
			continue
		}
		out[i].Rank = i + 1
	}
	return out
}

// SameDivision compares division labels case- and spacing-insensitively.
// An empty filter matches everything.
func SameDivision(filter, division string) bool {
	if strings.TrimSpace(filter) == "" {
		return true
	}
	return foldSpace(filter) == foldSpace(division)
}

func foldSpace(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
