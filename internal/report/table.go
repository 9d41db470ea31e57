package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

// WriteTable prints rankings as an aligned console table.
func WriteTable(w io.Writer, board []teams.Ranking) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "RANK\tTEAM\tDIVISION\tGP\tW-D-L\tPPG\tSI\tFLAGS")
	for _, r := range board {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%d-%d-%d\t%.2f\t%.1f\t%s\n",
			r.Rank, r.Name, r.Division, r.GamesPlayed,
			r.Wins, r.Draws, r.Losses,
			r.PointsPerGame(), r.StrengthIndex, joinFlags(r.Flags))
	}
	return tw.Flush()
}

// WriteMatch prints one match result.
func WriteMatch(w io.Writer, res namematch.Result) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "query\t%s\n", res.Query)
	if res.Tier.Matched() {
		fmt.Fprintf(tw, "match\t%s (#%d)\n", res.Candidate, res.Index)
	} else {
		fmt.Fprintln(tw, "match\t-")
	}
	fmt.Fprintf(tw, "tier\t%s\n", res.Tier)
	fmt.Fprintf(tw, "score\t%d\n", res.Score)
	fmt.Fprintf(tw, "auto apply\t%t\n", res.AutoApply())
	if res.Ambiguous {
		fmt.Fprintln(tw, "note\ttied with another candidate; review before applying")
	}
	return tw.Flush()
}

// WriteComparison prints a focus-versus-opponent summary.
func WriteComparison(w io.Writer, cmp rankings.Comparison) error {
	tw := newTable(w)
	writeSide(tw, "focus", cmp.Focus)
	writeSide(tw, "opponent", cmp.Opponent)
	fmt.Fprintf(tw, "margin\t%+.1f\n", cmp.Margin)
	fmt.Fprintf(tw, "verdict\t%s\n", cmp.Verdict)
	return tw.Flush()
}

func writeSide(tw *tabwriter.Writer, label string, s rankings.Side) {
	if s.Team == nil {
		fmt.Fprintf(tw, "%s\t%s\t%.1f (reference)\n", label, s.Query, s.Strength)
		return
	}
	fmt.Fprintf(tw, "%s\t%s\t%.1f (%s match)\n", label, s.Team.Name, s.Strength, s.Match.Tier)
}

// WriteMatchups prints the focus team's division board from its point of view.
func WriteMatchups(w io.Writer, focus teams.Ranking, matchups []rankings.Matchup) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "FOCUS\t%s\t%.1f\t\n", focus.Name, focus.StrengthIndex)
	fmt.Fprintln(tw, "OPPONENT\tSI\tMARGIN\tVERDICT")
	for _, m := range matchups {
		fmt.Fprintf(tw, "%s\t%.1f\t%+.1f\t%s\n", m.Opponent.Name, m.Opponent.StrengthIndex, m.Margin, m.Verdict)
	}
	return tw.Flush()
}
