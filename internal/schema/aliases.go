// Package schema maps the many header spellings used by standings exports
// onto canonical record fields.
package schema

import (
	"errors"
	"fmt"
	"strings"
)

// Field is a canonical standings column.
type Field string

const (
	FieldName         Field = "name"
	FieldDivision     Field = "division"
	FieldGamesPlayed  Field = "games_played"
	FieldWins         Field = "wins"
	FieldDraws        Field = "draws"
	FieldLosses       Field = "losses"
	FieldGoalsFor     Field = "goals_for"
	FieldGoalsAgainst Field = "goals_against"
	FieldGoalDiff     Field = "goal_diff"
	FieldPoints       Field = "points"
	FieldPPG          Field = "ppg"
)

// ErrMissingName is returned when no header maps to the team name.
var ErrMissingName = errors.New("no team name column")

// AliasTable maps a normalized header to its canonical field.
type AliasTable map[string]Field

var defaultAliases = map[Field][]string{
	FieldName:         {"team", "team name", "name", "club", "teams"},
	FieldDivision:     {"division", "bracket", "group", "flight", "age group"},
	FieldGamesPlayed:  {"gp", "mp", "games", "played", "games played", "p", "g"},
	FieldWins:         {"w", "wins", "won"},
	FieldDraws:        {"d", "t", "draws", "ties", "tied", "drawn"},
	FieldLosses:       {"l", "losses", "lost"},
	FieldGoalsFor:     {"gf", "goals for", "f", "for", "goals scored"},
	FieldGoalsAgainst: {"ga", "goals against", "a", "against", "goals allowed"},
	FieldGoalDiff:     {"gd", "goal diff", "goal difference", "goal differential", "+/-", "diff"},
	FieldPoints:       {"pts", "points", "pt"},
	FieldPPG:          {"ppg", "points per game", "pts/gp", "avg pts"},
}

// DefaultAliases returns a fresh copy of the built-in table.
func DefaultAliases() AliasTable {
	table := make(AliasTable)
	for field, aliases := range defaultAliases {
		for _, a := range aliases {
			table[normalizeHeader(a)] = field
		}
	}
	return table
}

// With returns a copy of the table with extra aliases added. Extra entries
// win over built-in ones.
func (t AliasTable) With(extra map[string]Field) AliasTable {
	out := make(AliasTable, len(t)+len(extra))
	for k, v := range t {
		out[k] = v
	}
	for k, v := range extra {
		out[normalizeHeader(k)] = v
	}
	return out
}

// Lookup resolves a raw header.
func (t AliasTable) Lookup(header string) (Field, bool) {
	f, ok := t[normalizeHeader(header)]
	return f, ok
}

// Columns records the cell index of each resolved field.
type Columns map[Field]int

// Has reports whether the field was present in the header.
func (c Columns) Has(f Field) bool {
	_, ok := c[f]
	return ok
}

// ResolveHeader maps header cells to fields. The first header for a field
// wins; unknown headers are ignored.
func (t AliasTable) ResolveHeader(headers []string) (Columns, error) {
	cols := make(Columns)
	for i, h := range headers {
		f, ok := t.Lookup(h)
		if !ok {
			continue
		}
		if _, seen := cols[f]; seen {
			continue
		}
		cols[f] = i
	}
	if !cols.Has(FieldName) {
		return nil, fmt.Errorf("resolve header %q: %w", headers, ErrMissingName)
	}
	return cols, nil
}

func normalizeHeader(h string) string {
	h = strings.TrimPrefix(h, "\ufeff")
	return strings.Join(strings.Fields(strings.ToLower(h)), " ")
}
