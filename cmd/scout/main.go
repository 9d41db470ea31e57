// Command scout ranks standings exports and scouts opponents from the
// command line.
//
//	scout rank     [flags]           rank every team, write a CSV and print a table
//	scout match    [flags] <name>    resolve a team name against the board
//	scout compare  [flags] <team>    compare the focus team against an opponent
//	scout opponents [flags]          list the focus team's division with margins
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers/registry"
	"github.com/preston-bernstein/youth-soccer-scout/internal/report"
	"github.com/preston-bernstein/youth-soccer-scout/internal/schema"
	"github.com/preston-bernstein/youth-soccer-scout/internal/store"
)

const appVersion = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// options are the flags shared by every subcommand. Unset flags keep the
// values loaded from the environment.
type options struct {
	sources   string
	goalUnits string
	division  string
	focus     string
	outDir    string
	reference float64
	margin    float64
	logLevel  string
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return exitUsage
	}
	cmd, rest := args[0], args[1:]

	cfg := config.Load()
	opts := options{
		division:  cfg.Scouting.Division,
		focus:     cfg.Scouting.FocusTeam,
		outDir:    cfg.OutputDir,
		reference: cfg.Scouting.ReferenceStrength,
		margin:    cfg.Scouting.EvenMargin,
		goalUnits: string(config.DefaultGoalUnit()),
		logLevel:  os.Getenv("LOG_LEVEL"),
	}

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.sources, "sources", "", "comma-separated sources (name=path[#unit]); first is primary")
	fs.StringVar(&opts.goalUnits, "goal-units", opts.goalUnits, "goal units for sources without a #unit suffix: auto|total|per_game")
	fs.StringVar(&opts.division, "division", opts.division, "restrict rankings to one division")
	fs.StringVar(&opts.focus, "focus", opts.focus, "focus team for compare and opponents")
	fs.StringVar(&opts.outDir, "out", opts.outDir, "directory for rank CSV output")
	fs.Float64Var(&opts.reference, "reference", opts.reference, "strength assumed for an opponent with no data")
	fs.Float64Var(&opts.margin, "margin", opts.margin, "index gap treated as an even matchup")
	fs.StringVar(&opts.logLevel, "log-level", opts.logLevel, "debug|info|warn|error")
	if err := fs.Parse(rest); err != nil {
		return exitUsage
	}

	// -goal-units applies to sources from -sources or SOURCES alike; a #unit
	// suffix on an entry still wins.
	unit := teams.ParseGoalUnit(opts.goalUnits)
	if opts.sources != "" {
		cfg.Sources = config.ParseSources(strings.Split(opts.sources, ","), unit)
	} else {
		cfg.Sources = config.LoadSources(unit)
	}
	cfg.Scouting.Division = opts.division
	cfg.Scouting.FocusTeam = strings.TrimSpace(opts.focus)
	cfg.Scouting.ReferenceStrength = opts.reference
	cfg.Scouting.EvenMargin = opts.margin
	cfg.OutputDir = opts.outDir

	logger := logging.NewLogger(logging.Config{
		Level:   opts.logLevel,
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "youth-soccer-scout",
		Version: appVersion,
		Output:  stderr,
	})

	var err error
	switch cmd {
	case "rank":
		err = runRank(ctx, cfg, logger, stdout)
	case "match":
		err = runMatch(ctx, cfg, logger, fs.Args(), stdout)
	case "compare":
		err = runCompare(ctx, cfg, logger, fs.Args(), stdout)
	case "opponents":
		err = runOpponents(ctx, cfg, logger, stdout)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		usage(stderr)
		return exitUsage
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errUsage):
		fmt.Fprintln(stderr, err)
		return exitUsage
	default:
		logging.Error(logger, cmd+" failed", err)
		return exitError
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "usage: scout <rank|match|compare|opponents> [flags] [args]")
}

// loadService reads every configured source once and returns a loaded service.
func loadService(ctx context.Context, cfg config.Config, logger *slog.Logger) (*rankings.Service, teams.Board, error) {
	recorder := metrics.NewRecorder()
	provs, err := registry.Build(cfg.Sources, schema.DefaultAliases(), logger, recorder)
	if err != nil {
		return nil, teams.Board{}, err
	}
	svc := rankings.NewService(store.NewMemoryStore(), provs, rankings.OptionsFromConfig(cfg, logger, recorder))
	board, err := svc.Refresh(logging.WithLogger(ctx, logger))
	if err != nil {
		return nil, teams.Board{}, err
	}
	return svc, board, nil
}

func runRank(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	_, board, err := loadService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	ranked := board.Rankings

	path := filepath.Join(cfg.OutputDir, "rankings.csv")
	if err := report.WriteCSVFile(path, ranked); err != nil {
		return err
	}
	logging.Info(logger, "rankings written",
		slog.String("path", path),
		slog.Int(logging.FieldCount, len(ranked)),
		slog.Int("review", len(board.Review)),
		slog.Int("untracked", len(board.Untracked)),
	)
	return report.WriteTable(stdout, ranked)
}

func runMatch(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string, stdout io.Writer) error {
	query := strings.TrimSpace(strings.Join(args, " "))
	if query == "" {
		return fmt.Errorf("%w: scout match <name>", errUsage)
	}
	svc, _, err := loadService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	return report.WriteMatch(stdout, svc.Match(query))
}

func runCompare(ctx context.Context, cfg config.Config, logger *slog.Logger, args []string, stdout io.Writer) error {
	opponent := strings.TrimSpace(strings.Join(args, " "))
	if opponent == "" {
		return fmt.Errorf("%w: scout compare -focus <team> <opponent>", errUsage)
	}
	if cfg.Scouting.FocusTeam == "" {
		return fmt.Errorf("%w: -focus or FOCUS_TEAM is required", errUsage)
	}
	svc, _, err := loadService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	cmp, err := svc.Compare(cfg.Scouting.FocusTeam, opponent)
	if err != nil {
		return err
	}
	return report.WriteComparison(stdout, cmp)
}

func runOpponents(ctx context.Context, cfg config.Config, logger *slog.Logger, stdout io.Writer) error {
	if cfg.Scouting.FocusTeam == "" {
		return fmt.Errorf("%w: -focus or FOCUS_TEAM is required", errUsage)
	}
	svc, _, err := loadService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	focus, matchups, err := svc.Opponents(cfg.Scouting.FocusTeam)
	if err != nil {
		return err
	}
	return report.WriteMatchups(stdout, focus, matchups)
}
