package rankings

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
)

// SourceRecords is everything one source produced in a load.
type SourceRecords struct {
	Source  string
	Records []teams.Record
}

// JoinResult is the merged view of several sources. Records holds one entry
// per primary team, combined with every auto-applied link.
type JoinResult struct {
	Records   []teams.Record
	Applied   []teams.Link
	Review    []teams.Link
	Untracked []teams.Record
}

// Joiner reconciles secondary sources against the primary source's names.
type Joiner struct {
	matcher *namematch.Matcher
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func NewJoiner(matcher *namematch.Matcher, logger *slog.Logger, recorder *metrics.Recorder) *Joiner {
	if matcher == nil {
		matcher = namematch.NewMatcher(namematch.DefaultConfig())
	}
	return &Joiner{matcher: matcher, logger: logger, metrics: recorder}
}

// Join treats sets[0] as primary. A secondary record is merged into a primary
// team when its match auto-applies and no other record from the same source
// has claimed that team; other matches go to review, misses are untracked.
func (j *Joiner) Join(ctx context.Context, sets []SourceRecords) JoinResult {
	var res JoinResult
	if len(sets) == 0 {
		return res
	}
	primary := sets[0].Records
	groups := make([][]teams.Record, len(primary))
	claimed := make([]map[string]bool, len(primary))
	for i, rec := range primary {
		groups[i] = []teams.Record{rec}
		claimed[i] = map[string]bool{}
	}

	logger := logging.FromContext(ctx, j.logger)
	for _, set := range sets[1:] {
		for _, rec := range set.Records {
			names, index := candidates(primary, rec.Division)
			m := j.matcher.Match(rec.Name, names)
			j.metrics.RecordMatch(string(m.Tier), m.Ambiguous)

			if !m.Tier.Matched() {
				logging.Debug(logger, "team untracked",
					slog.String(logging.FieldSource, set.Source),
					slog.String(logging.FieldTeam, rec.Name),
				)
				res.Untracked = append(res.Untracked, rec)
				continue
			}
			target := index[m.Index]
			link := teams.Link{Source: set.Source, Record: rec, Canonical: primary[target].Name, Match: m}
			if m.Ambiguous {
				logging.Warn(logger, "ambiguous team match",
					slog.String(logging.FieldSource, set.Source),
					slog.String(logging.FieldTeam, rec.Name),
					slog.String(logging.FieldCandidate, m.Candidate),
					slog.Int("score", m.Score),
				)
			}

			if m.AutoApply() && !claimed[target][set.Source] {
				claimed[target][set.Source] = true
				groups[target] = append(groups[target], rec)
				res.Applied = append(res.Applied, link)
				continue
			}
			logging.Debug(logger, "team held for review",
				slog.String(logging.FieldSource, set.Source),
				slog.String(logging.FieldTeam, rec.Name),
				slog.String(logging.FieldCandidate, m.Candidate),
				slog.String(logging.FieldTier, string(m.Tier)),
			)
			res.Review = append(res.Review, link)
		}
	}

	res.Records = make([]teams.Record, len(primary))
	for i, group := range groups {
		if len(group) == 1 {
			res.Records[i] = group[0]
			continue
		}
		res.Records[i] = teams.Combine(primary[i].Name, group...)
	}
	return res
}

// candidates returns primary names in the record's division, or every name
// when the division is blank or unknown to the primary source. index maps
// candidate positions back to primary positions.
func candidates(primary []teams.Record, division string) ([]string, []int) {
	names := make([]string, 0, len(primary))
	index := make([]int, 0, len(primary))
	for i, p := range primary {
		if SameDivision(division, p.Division) {
			names = append(names, p.Name)
			index = append(index, i)
		}
	}
	if len(names) > 0 {
		return names, index
	}
	names, index = names[:0], index[:0]
	for i, p := range primary {
		names = append(names, p.Name)
		index = append(index, i)
	}
	return names, index
}
