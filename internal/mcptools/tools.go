// Package mcptools exposes the strength scorer, the name matcher and the
// focus-team comparison as MCP tools.
package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
	"github.com/preston-bernstein/youth-soccer-scout/internal/strength"
)

type StrengthArgs struct {
	Team            string   `json:"team,omitempty" jsonschema:"Team name to look up on the loaded board"`
	PointsPerGame   *float64 `json:"points_per_game,omitempty" jsonschema:"Points per game (0-3, clamped)"`
	GoalDiffPerGame *float64 `json:"goal_diff_per_game,omitempty" jsonschema:"Goal differential per game (-5 to 5, clamped)"`
	GamesPlayed     *int     `json:"games_played,omitempty" jsonschema:"Games played; with wins/draws/losses scores a raw record"`
	Wins            int      `json:"wins,omitempty" jsonschema:"Wins"`
	Draws           int      `json:"draws,omitempty" jsonschema:"Draws"`
	Losses          int      `json:"losses,omitempty" jsonschema:"Losses"`
	GoalsFor        *float64 `json:"goals_for,omitempty" jsonschema:"Goals for (season total or per game)"`
	GoalsAgainst    *float64 `json:"goals_against,omitempty" jsonschema:"Goals against (season total or per game)"`
	GoalUnit        string   `json:"goal_unit,omitempty" jsonschema:"Goal units: auto|total|per_game (default auto)"`
}

type StrengthOutput struct {
	Team            string            `json:"team,omitempty"`
	Match           *namematch.Result `json:"match,omitempty"`
	PointsPerGame   float64           `json:"points_per_game"`
	GoalDiffPerGame float64           `json:"goal_diff_per_game"`
	StrengthIndex   float64           `json:"strength_index"`
	Flags           []teams.Flag      `json:"flags,omitempty"`
}

type MatchArgs struct {
	Query      string   `json:"query" jsonschema:"Team name as written in the other source (required)"`
	Candidates []string `json:"candidates,omitempty" jsonschema:"Names to match against (default: teams on the loaded board)"`
}

type CompareArgs struct {
	Focus    string `json:"focus,omitempty" jsonschema:"Focus team (default: the configured focus team)"`
	Opponent string `json:"opponent" jsonschema:"Opponent team (required)"`
}

// Tools answers tool calls against a rankings service. The service may be
// nil, in which case only the stateless paths work.
type Tools struct {
	svc       *rankings.Service
	focusTeam string
	logger    *slog.Logger
}

func New(svc *rankings.Service, focusTeam string, logger *slog.Logger) *Tools {
	return &Tools{svc: svc, focusTeam: strings.TrimSpace(focusTeam), logger: logger}
}

// Register adds every tool to server.
func (t *Tools) Register(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "strength_index",
		Description: "0-100 Strength Index from points/goal rates, a raw W-D-L record, or a team on the board",
	}, t.StrengthIndex)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "match_team",
		Description: "Reconcile a team name against the board (or given candidates) with a confidence tier",
	}, t.MatchTeam)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "compare_teams",
		Description: "Strength margin and verdict for the focus team against an opponent",
	}, t.CompareTeams)
}

func (t *Tools) StrengthIndex(ctx context.Context, req *mcp.CallToolRequest, args StrengthArgs) (*mcp.CallToolResult, any, error) {
	switch {
	case strings.TrimSpace(args.Team) != "":
		if t.svc == nil || !t.svc.Ready() {
			return toolError(errors.New("no rankings loaded")), nil, nil
		}
		team, match, ok := t.svc.Team(args.Team)
		if !ok {
			return toolError(fmt.Errorf("team %q not found", args.Team)), nil, nil
		}
		return toolJSON(StrengthOutput{
			Team:            team.Name,
			Match:           &match,
			PointsPerGame:   team.PointsPerGame(),
			GoalDiffPerGame: strength.ScoreRecord(team.Record).GoalDiffPerGame,
			StrengthIndex:   team.StrengthIndex,
			Flags:           team.Flags,
		})

	case args.GamesPlayed != nil:
		rec := teams.Record{
			GamesPlayed: *args.GamesPlayed,
			Wins:        args.Wins,
			Draws:       args.Draws,
			Losses:      args.Losses,
			GoalUnit:    teams.ParseGoalUnit(args.GoalUnit),
		}
		if args.GoalsFor != nil && args.GoalsAgainst != nil {
			rec.GoalsFor, rec.GoalsAgainst, rec.HasGoals = *args.GoalsFor, *args.GoalsAgainst, true
		}
		res := strength.ScoreRecord(rec)
		return toolJSON(StrengthOutput{
			PointsPerGame:   res.PointsPerGame,
			GoalDiffPerGame: res.GoalDiffPerGame,
			StrengthIndex:   res.Index,
			Flags:           res.Flags,
		})

	case args.PointsPerGame != nil:
		gdpg := 0.0
		if args.GoalDiffPerGame != nil {
			gdpg = *args.GoalDiffPerGame
		}
		return toolJSON(StrengthOutput{
			PointsPerGame:   *args.PointsPerGame,
			GoalDiffPerGame: gdpg,
			StrengthIndex:   strength.Compute(*args.PointsPerGame, gdpg),
		})

	default:
		return toolError(errors.New("one of team, games_played or points_per_game is required")), nil, nil
	}
}

func (t *Tools) MatchTeam(ctx context.Context, req *mcp.CallToolRequest, args MatchArgs) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Query) == "" {
		return toolError(errors.New("query is required")), nil, nil
	}
	var res namematch.Result
	switch {
	case len(args.Candidates) > 0:
		res = t.matcher().Match(args.Query, args.Candidates)
	case t.svc != nil && t.svc.Ready():
		res = t.svc.Match(args.Query)
	default:
		return toolError(errors.New("no rankings loaded and no candidates given")), nil, nil
	}
	logging.Info(t.logger, "tool match",
		slog.String(logging.FieldTeam, args.Query),
		slog.String(logging.FieldTier, string(res.Tier)),
	)
	return toolJSON(res)
}

func (t *Tools) CompareTeams(ctx context.Context, req *mcp.CallToolRequest, args CompareArgs) (*mcp.CallToolResult, any, error) {
	focus := strings.TrimSpace(args.Focus)
	if focus == "" {
		focus = t.focusTeam
	}
	if focus == "" {
		return toolError(errors.New("focus is required (no focus team configured)")), nil, nil
	}
	if strings.TrimSpace(args.Opponent) == "" {
		return toolError(errors.New("opponent is required")), nil, nil
	}
	if t.svc == nil || !t.svc.Ready() {
		return toolError(errors.New("no rankings loaded")), nil, nil
	}
	cmp, err := t.svc.Compare(focus, args.Opponent)
	if err != nil {
		return toolError(fmt.Errorf("%s: %w", focus, err)), nil, nil
	}
	return toolJSON(cmp)
}

func (t *Tools) matcher() *namematch.Matcher {
	if t.svc != nil {
		return t.svc.Matcher()
	}
	return namematch.NewMatcher(namematch.DefaultConfig())
}

func toolJSON(payload any) (*mcp.CallToolResult, any, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(raw)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}
