package mcptools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
	"github.com/preston-bernstein/youth-soccer-scout/internal/testutil"
)

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if res == nil || len(res.Content) != 1 {
		t.Fatalf("expected one content item, got %+v", res)
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}

func decodeResult(t *testing.T, res *mcp.CallToolResult, dest any) {
	t.Helper()
	if res.IsError {
		t.Fatalf("unexpected tool error: %s", resultText(t, res))
	}
	if err := json.Unmarshal([]byte(resultText(t, res)), dest); err != nil {
		t.Fatalf("decode tool output: %v", err)
	}
}

func assertToolError(t *testing.T, res *mcp.CallToolResult, want string) {
	t.Helper()
	if !res.IsError {
		t.Fatalf("expected tool error, got %s", resultText(t, res))
	}
	if got := resultText(t, res); !strings.Contains(got, want) {
		t.Fatalf("expected error containing %q, got %q", want, got)
	}
}

func ptr[T any](v T) *T { return &v }

func loadedTools(t *testing.T, focus string) *Tools {
	t.Helper()
	return New(testutil.NewRankingsService(t, testutil.SampleRecords()), focus, nil)
}

func TestStrengthIndexFromRates(t *testing.T) {
	tools := New(nil, "", nil)

	tests := []struct {
		name string
		args StrengthArgs
		want float64
	}{
		{"ceiling", StrengthArgs{PointsPerGame: ptr(3.0), GoalDiffPerGame: ptr(5.0)}, 100},
		{"floor", StrengthArgs{PointsPerGame: ptr(0.0), GoalDiffPerGame: ptr(-5.0)}, 0},
		{"midpoint", StrengthArgs{PointsPerGame: ptr(1.5), GoalDiffPerGame: ptr(0.0)}, 50},
		{"missing goal rate is neutral", StrengthArgs{PointsPerGame: ptr(3.0)}, 85},
		{"clamped", StrengthArgs{PointsPerGame: ptr(9.0), GoalDiffPerGame: ptr(40.0)}, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, _, err := tools.StrengthIndex(context.Background(), nil, tt.args)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			var out StrengthOutput
			decodeResult(t, res, &out)
			if out.StrengthIndex != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, out.StrengthIndex)
			}
		})
	}
}

func TestStrengthIndexFromRecord(t *testing.T) {
	tools := New(nil, "", nil)

	res, _, _ := tools.StrengthIndex(context.Background(), nil, StrengthArgs{
		GamesPlayed: ptr(6), Wins: 6, GoalsFor: ptr(52.0), GoalsAgainst: ptr(5.0),
	})
	var out StrengthOutput
	decodeResult(t, res, &out)
	if out.StrengthIndex != 100 {
		t.Fatalf("expected unbeaten blowout to score 100, got %v", out.StrengthIndex)
	}
	if len(out.Flags) != 1 || out.Flags[0] != teams.FlagHeuristicGoalUnits {
		t.Fatalf("expected heuristic goal units flag, got %v", out.Flags)
	}

	res, _, _ = tools.StrengthIndex(context.Background(), nil, StrengthArgs{GamesPlayed: ptr(0)})
	decodeResult(t, res, &out)
	if out.StrengthIndex != 15 {
		t.Fatalf("expected no-games score 15, got %v", out.StrengthIndex)
	}
}

func TestStrengthIndexForBoardTeam(t *testing.T) {
	tools := loadedTools(t, "")

	res, _, _ := tools.StrengthIndex(context.Background(), nil, StrengthArgs{Team: "Sporting Columbus"})
	var out StrengthOutput
	decodeResult(t, res, &out)
	if out.Team != "Sporting Columbus Boys 2018 I" || out.StrengthIndex != 71.1 {
		t.Fatalf("unexpected output %+v", out)
	}
	if out.Match == nil || out.Match.Tier != namematch.TierExact {
		t.Fatalf("expected exact match info, got %+v", out.Match)
	}

	res, _, _ = tools.StrengthIndex(context.Background(), nil, StrengthArgs{Team: "Elite Arsenal"})
	assertToolError(t, res, "not found")
}

func TestStrengthIndexRequiresInput(t *testing.T) {
	res, _, _ := New(nil, "", nil).StrengthIndex(context.Background(), nil, StrengthArgs{})
	assertToolError(t, res, "required")
}

func TestMatchTeamAgainstCandidates(t *testing.T) {
	tools := New(nil, "", nil)

	res, _, _ := tools.MatchTeam(context.Background(), nil, MatchArgs{
		Query:      "Club Ohio West 18B Academy",
		Candidates: []string{"Club Ohio Club Ohio West 18B Academy II", "Elite FC Arsenal"},
	})
	var out namematch.Result
	decodeResult(t, res, &out)
	if out.Tier != namematch.TierHigh || out.Index != 0 {
		t.Fatalf("expected high match on first candidate, got %+v", out)
	}
}

func TestMatchTeamAgainstBoard(t *testing.T) {
	tools := loadedTools(t, "")

	res, _, _ := tools.MatchTeam(context.Background(), nil, MatchArgs{Query: "DSX Orange"})
	var out namematch.Result
	decodeResult(t, res, &out)
	if out.Candidate != "DSX Orange 2018B" {
		t.Fatalf("unexpected match %+v", out)
	}
}

func TestMatchTeamErrors(t *testing.T) {
	tools := New(nil, "", nil)

	res, _, _ := tools.MatchTeam(context.Background(), nil, MatchArgs{Query: " "})
	assertToolError(t, res, "query is required")

	res, _, _ = tools.MatchTeam(context.Background(), nil, MatchArgs{Query: "DSX"})
	assertToolError(t, res, "no rankings loaded")
}

func TestCompareTeams(t *testing.T) {
	tools := loadedTools(t, "Club Ohio West")

	res, _, _ := tools.CompareTeams(context.Background(), nil, CompareArgs{Opponent: "DSX Orange"})
	var out rankings.Comparison
	decodeResult(t, res, &out)
	if out.Margin != 50 || out.Verdict != rankings.VerdictFavored {
		t.Fatalf("unexpected comparison %+v", out)
	}

	res, _, _ = tools.CompareTeams(context.Background(), nil, CompareArgs{Focus: "DSX Orange", Opponent: "Unknown Rovers"})
	decodeResult(t, res, &out)
	if !out.Opponent.Reference || out.Verdict != rankings.VerdictEven {
		t.Fatalf("expected reference opponent and even verdict, got %+v", out)
	}
}

func TestCompareTeamsErrors(t *testing.T) {
	loaded := loadedTools(t, "")

	res, _, _ := loaded.CompareTeams(context.Background(), nil, CompareArgs{Opponent: "DSX"})
	assertToolError(t, res, "focus is required")

	res, _, _ = loaded.CompareTeams(context.Background(), nil, CompareArgs{Focus: "DSX Orange"})
	assertToolError(t, res, "opponent is required")

	res, _, _ = loaded.CompareTeams(context.Background(), nil, CompareArgs{Focus: "Elite Arsenal", Opponent: "DSX Orange"})
	assertToolError(t, res, rankings.ErrUnknownTeam.Error())

	res, _, _ = New(nil, "DSX", nil).CompareTeams(context.Background(), nil, CompareArgs{Opponent: "Club Ohio"})
	assertToolError(t, res, "no rankings loaded")
}

func TestRegisterAddsTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0.0.1"}, nil)
	New(nil, "", nil).Register(server)
}
