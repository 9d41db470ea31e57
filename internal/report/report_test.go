package report

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
)

func sampleBoard() []teams.Ranking {
	return rankings.Build([]teams.Record{
		{Name: "Club Ohio West 18B Academy", Division: "U8", Source: "league", GamesPlayed: 6, Wins: 6,
			GoalsFor: 52, GoalsAgainst: 5, HasGoals: true, GoalUnit: teams.GoalUnitAuto},
		{Name: "Worthington United", Division: "U8", Source: "league"},
	}, "")
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleBoard()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("decode csv: %v", err)
	}
	if len(rows) != 3 || rows[0][0] != "rank" {
		t.Fatalf("unexpected rows %v", rows)
	}
	top := rows[1]
	if top[1] != "Club Ohio West 18B Academy" || top[13] != "100.0" || top[12] != "7.83" {
		t.Fatalf("unexpected top row %v", top)
	}
	if top[14] != "heuristic_goal_units" {
		t.Fatalf("expected heuristic flag, got %q", top[14])
	}
	fresh := rows[2]
	if fresh[8] != "" || fresh[13] != "15.0" || !strings.Contains(fresh[14], "no_games") {
		t.Fatalf("unexpected no-games row %v", fresh)
	}
}

func TestWriteCSVFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "rankings.csv")
	if err := WriteCSVFile(path, sampleBoard()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil || !strings.HasPrefix(string(data), "rank,team,") {
		t.Fatalf("expected csv file, got %q err=%v", data, err)
	}
}

func TestWriteTable(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteTable(&buf, sampleBoard()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "RANK") || !strings.Contains(out, "6-0-0") || !strings.Contains(out, "100.0") {
		t.Fatalf("unexpected table %q", out)
	}
}

func TestWriteMatch(t *testing.T) {
	var buf bytes.Buffer
	res := namematch.Match("Columbus Crew Blue", []string{"Crew Red", "Crew Green"})
	if err := WriteMatch(&buf, res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Crew Red (#0)") || !strings.Contains(out, "medium") || !strings.Contains(out, "review") {
		t.Fatalf("unexpected match output %q", out)
	}

	buf.Reset()
	_ = WriteMatch(&buf, namematch.Match("Nobody", nil))
	if !strings.Contains(buf.String(), "none") {
		t.Fatalf("expected none tier, got %q", buf.String())
	}
}

func TestWriteComparisonAndMatchups(t *testing.T) {
	board := sampleBoard()
	scout := rankings.NewScout(nil, 50, 5)

	cmp, err := scout.Compare(board, "Club Ohio West", "Dublin Blaze")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var buf bytes.Buffer
	if err := WriteComparison(&buf, cmp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "(reference)") || !strings.Contains(buf.String(), "favored") {
		t.Fatalf("unexpected comparison output %q", buf.String())
	}

	self, matchups, err := scout.Opponents(board, "Club Ohio West")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	buf.Reset()
	if err := WriteMatchups(&buf, self, matchups); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Worthington United") || !strings.Contains(buf.String(), "+85.0") {
		t.Fatalf("unexpected matchups output %q", buf.String())
	}
}
