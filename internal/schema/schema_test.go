package schema

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

func TestLookupSynonyms(t *testing.T) {
	table := DefaultAliases()
	tests := map[string]Field{
		"GP":            FieldGamesPlayed,
		"MP":            FieldGamesPlayed,
		" Games ":       FieldGamesPlayed,
		"Played":        FieldGamesPlayed,
		"Pts":           FieldPoints,
		"Points":        FieldPoints,
		"Team  Name":    FieldName,
		"\ufeffTeam":    FieldName,
		"Goals For":     FieldGoalsFor,
		"Goals Against": FieldGoalsAgainst,
		"+/-":           FieldGoalDiff,
		"PPG":           FieldPPG,
		"T":             FieldDraws,
	}
	for header, want := range tests {
		got, ok := table.Lookup(header)
		if !ok {
			t.Fatalf("expected %q to resolve", header)
		}
		if got != want {
			t.Fatalf("header %q: expected %s, got %s", header, want, got)
		}
	}
	if _, ok := table.Lookup("Coach"); ok {
		t.Fatalf("expected unknown header to be unresolved")
	}
}

func TestWithAddsAliasesWithoutMutating(t *testing.T) {
	base := DefaultAliases()
	extended := base.With(map[string]Field{"Club Name": FieldName, "gp": FieldWins})

	if f, ok := extended.Lookup("club name"); !ok || f != FieldName {
		t.Fatalf("expected extra alias to resolve")
	}
	if f, _ := extended.Lookup("GP"); f != FieldWins {
		t.Fatalf("expected extra alias to override built-in")
	}
	if f, _ := base.Lookup("GP"); f != FieldGamesPlayed {
		t.Fatalf("expected base table untouched")
	}
}

func TestResolveHeader(t *testing.T) {
	cols, err := DefaultAliases().ResolveHeader([]string{"#", "Team", "GP", "W", "D", "L", "GF", "GA", "Pts", "Team"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cols[FieldName] != 1 {
		t.Fatalf("expected first team column to win, got %d", cols[FieldName])
	}
	if !cols.Has(FieldPoints) || cols.Has(FieldPPG) {
		t.Fatalf("unexpected columns %+v", cols)
	}
}

func TestResolveHeaderMissingName(t *testing.T) {
	_, err := DefaultAliases().ResolveHeader([]string{"GP", "W"})
	if !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestDecodeRowFullRecord(t *testing.T) {
	cols, _ := DefaultAliases().ResolveHeader([]string{"Team", "Division", "GP", "W", "D", "L", "GF", "GA", "Pts"})

	rec, err := DecodeRow(cols, []string{" Club  Ohio West 18B ", "U8 Boys", "6", "6", "0", "0", "52", "5", "18"}, teams.GoalUnitAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Name != "Club Ohio West 18B" || rec.Division != "U8 Boys" {
		t.Fatalf("unexpected identity %+v", rec)
	}
	if rec.GamesPlayed != 6 || rec.Wins != 6 || !rec.HasGoals || rec.GoalsFor != 52 {
		t.Fatalf("unexpected counters %+v", rec)
	}
	if rec.ReportedPoints == nil || *rec.ReportedPoints != 18 {
		t.Fatalf("expected reported points")
	}
}

func TestDecodeRowDerivesGamesPlayed(t *testing.T) {
	cols, _ := DefaultAliases().ResolveHeader([]string{"Team", "W", "T", "L"})

	rec, err := DecodeRow(cols, []string{"DSX Orange", "2", "1", "1"}, teams.GoalUnitAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.GamesPlayed != 4 {
		t.Fatalf("expected derived games played 4, got %d", rec.GamesPlayed)
	}
	if rec.HasGoals {
		t.Fatalf("expected no goal data")
	}
}

func TestDecodeRowGoalDiffOnly(t *testing.T) {
	cols, _ := DefaultAliases().ResolveHeader([]string{"Team", "GP", "W", "D", "L", "GD"})

	rec, err := DecodeRow(cols, []string{"Elite FC Arsenal", "3", "1", "1", "1", "+4"}, teams.GoalUnitTotal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !rec.HasGoals || rec.GoalDifferential() != 4 {
		t.Fatalf("expected differential 4, got %+v", rec)
	}
	if rec.GoalUnit != teams.GoalUnitTotal {
		t.Fatalf("expected unit carried through")
	}
}

func TestDecodeRowPointsOnlySource(t *testing.T) {
	cols, _ := DefaultAliases().ResolveHeader([]string{"Team", "MP", "Pts", "GF", "GA"})

	rec, err := DecodeRow(cols, []string{"Mason FC", "5", "10", "-", ""}, teams.GoalUnitAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.HasGoals {
		t.Fatalf("expected dash and blank goals to read as missing")
	}
	if rec.PointsPerGame() != 2 {
		t.Fatalf("expected ppg 2, got %v", rec.PointsPerGame())
	}
}

func TestDecodeRowErrors(t *testing.T) {
	cols, _ := DefaultAliases().ResolveHeader([]string{"Team", "GP"})

	if _, err := DecodeRow(cols, []string{"  ", "3"}, teams.GoalUnitAuto); !errors.Is(err, ErrBlankName) {
		t.Fatalf("expected ErrBlankName, got %v", err)
	}
	if _, err := DecodeRow(cols, []string{"Team A", "three"}, teams.GoalUnitAuto); !errors.Is(err, ErrInvalidNumber) {
		t.Fatalf("expected ErrInvalidNumber, got %v", err)
	}
}

func TestDecodeRowRejectsNonFiniteNumbers(t *testing.T) {
	cols, _ := DefaultAliases().ResolveHeader([]string{"Team", "GP", "W", "GF", "GA"})

	tests := map[string][]string{
		"nan games":     {"Team A", "NaN", "1", "2", "1"},
		"inf wins":      {"Team A", "3", "+Inf", "2", "1"},
		"negative inf":  {"Team A", "3", "-inf", "2", "1"},
		"infinity goal": {"Team A", "3", "1", "Infinity", "1"},
	}
	for name, row := range tests {
		t.Run(name, func(t *testing.T) {
			if _, err := DecodeRow(cols, row, teams.GoalUnitAuto); !errors.Is(err, ErrInvalidNumber) {
				t.Fatalf("expected ErrInvalidNumber, got %v", err)
			}
		})
	}
}

func TestDecodeRowShortRow(t *testing.T) {
	cols, _ := DefaultAliases().ResolveHeader([]string{"Team", "GP", "W"})

	rec, err := DecodeRow(cols, []string{"Team A"}, teams.GoalUnitAuto)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.GamesPlayed != 0 {
		t.Fatalf("expected zero games for short row, got %d", rec.GamesPlayed)
	}
}
