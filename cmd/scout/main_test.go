package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runScout(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("SOURCES", "")
	t.Setenv("GOAL_UNITS", "")
	t.Setenv("FOCUS_TEAM", "")
	t.Setenv("DIVISION", "")
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRankFixtureWritesCSVAndTable(t *testing.T) {
	out := t.TempDir()

	code, stdout, stderr := runScout(t, "rank", "-sources", "fixture", "-out", out)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "RANK") || !strings.Contains(stdout, "Club Ohio West 18B Academy") {
		t.Fatalf("expected ranking table, got %q", stdout)
	}

	raw, err := os.ReadFile(filepath.Join(out, "rankings.csv"))
	if err != nil {
		t.Fatalf("expected csv written: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(raw)), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[1], "1,Club Ohio West 18B Academy") {
		t.Fatalf("expected strongest team first, got %q", lines[1])
	}
}

func TestRankCSVSourceOrdersByStrength(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "league.csv")
	body := "Team,Division,GP,W,D,L,GF,GA\n" +
		"Beta SC,U8 Boys,3,0,0,3,1,9\n" +
		"Alpha FC,U8 Boys,3,3,0,0,9,1\n"
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	code, stdout, stderr := runScout(t, "rank", "-sources", "league="+src, "-out", dir)
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	alpha, beta := strings.Index(stdout, "Alpha FC"), strings.Index(stdout, "Beta SC")
	if alpha < 0 || beta < 0 || alpha > beta {
		t.Fatalf("expected Alpha FC ranked above Beta SC, got %q", stdout)
	}
}

func TestGoalUnitsFlagAppliesToEnvSources(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "league.csv")
	body := "Team,Division,GP,W,D,L,GF,GA\n" +
		"Alpha FC,U8 Boys,2,2,0,0,8,0\n"
	if err := os.WriteFile(src, []byte(body), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	tests := []struct {
		name    string
		sources string
		args    []string
		want    string
	}{
		// auto reads a goal difference of 8 as per game and clamps to 100.
		{"auto", "league=" + src, nil, "100.0"},
		{"flag total", "league=" + src, []string{"-goal-units", "total"}, "97.0"},
		{"suffix wins", "league=" + src + "#per_game", []string{"-goal-units", "total"}, "100.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SOURCES", tt.sources)
			t.Setenv("GOAL_UNITS", "")
			var stdout, stderr bytes.Buffer
			args := append([]string{"rank", "-out", dir}, tt.args...)
			if code := run(context.Background(), args, &stdout, &stderr); code != exitOK {
				t.Fatalf("expected exit 0, got %d: %s", code, stderr.String())
			}
			if !strings.Contains(stdout.String(), tt.want) {
				t.Fatalf("expected index %s, got %q", tt.want, stdout.String())
			}
		})
	}
}

func TestMatchPrintsTier(t *testing.T) {
	code, stdout, stderr := runScout(t, "match", "-sources", "fixture", "Sporting", "Columbus")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "Sporting Columbus Boys 2018 I") || !strings.Contains(stdout, "exact") {
		t.Fatalf("expected exact match output, got %q", stdout)
	}
}

func TestCompareFocusAgainstOpponent(t *testing.T) {
	code, stdout, stderr := runScout(t, "compare", "-sources", "fixture", "-focus", "Club Ohio West", "DSX Orange")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "verdict") || !strings.Contains(stdout, "favored") {
		t.Fatalf("expected favored verdict, got %q", stdout)
	}
}

func TestOpponentsListsDivision(t *testing.T) {
	code, stdout, stderr := runScout(t, "opponents", "-sources", "fixture", "-focus", "DSX Orange")
	if code != exitOK {
		t.Fatalf("expected exit 0, got %d: %s", code, stderr)
	}
	if !strings.Contains(stdout, "OPPONENT") || !strings.Contains(stdout, "underdog") {
		t.Fatalf("expected matchup table, got %q", stdout)
	}
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"publish"}},
		{"bad flag", []string{"rank", "-nope"}},
		{"match without name", []string{"match", "-sources", "fixture"}},
		{"compare without focus", []string{"compare", "-sources", "fixture", "DSX Orange"}},
		{"opponents without focus", []string{"opponents", "-sources", "fixture"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runScout(t, tt.args...)
			if code != exitUsage {
				t.Fatalf("expected exit %d, got %d", exitUsage, code)
			}
		})
	}
}

func TestRuntimeErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.csv")
	tests := []struct {
		name string
		args []string
	}{
		{"unsupported format", []string{"rank", "-sources", "standings.xlsx"}},
		{"missing file", []string{"rank", "-sources", missing, "-out", t.TempDir()}},
		{"unknown focus", []string{"compare", "-sources", "fixture", "-focus", "Unknown Rovers", "DSX Orange"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runScout(t, tt.args...)
			if code != exitError {
				t.Fatalf("expected exit %d, got %d", exitError, code)
			}
			if !strings.Contains(stderr, "failed") {
				t.Fatalf("expected failure logged to stderr, got %q", stderr)
			}
		})
	}
}
