package fixture

import (
	"context"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// Name is the source name stamped on fixture records.
const Name = "fixture"

// Provider returns a static set of standings useful for local testing and bootstrapping.
type Provider struct {
	division string
}

// New creates a fixture provider. All records share one division.
func New() *Provider {
	return &Provider{division: "U8 Boys"}
}

func (p *Provider) Name() string {
	return Name
}

// FetchRecords returns a deterministic set of example records. The first
// three score 100, 71.1 and 15.
func (p *Provider) FetchRecords(ctx context.Context) ([]teams.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []teams.Record{
		p.record("Club Ohio West 18B Academy", 6, 6, 0, 0, 52, 5),
		p.record("Sporting Columbus Boys 2018 I", 6, 4, 1, 1, 20, 9),
		p.record("Worthington United 2018B", 0, 0, 0, 0, 0, 0),
		p.record("DSX Orange 2018B", 6, 2, 1, 3, 9, 12),
		p.record("Elite FC Arsenal 2018", 6, 1, 2, 3, 6, 14),
		p.record("Cincinnati United Premier Blue", 6, 3, 2, 1, 14, 8),
	}, nil
}

func (p *Provider) record(name string, gp, w, d, l int, gf, ga float64) teams.Record {
	return teams.Record{
		Name:         name,
		Division:     p.division,
		Source:       Name,
		GamesPlayed:  gp,
		Wins:         w,
		Draws:        d,
		Losses:       l,
		GoalsFor:     gf,
		GoalsAgainst: ga,
		HasGoals:     gp > 0,
		GoalUnit:     teams.GoalUnitAuto,
	}
}
