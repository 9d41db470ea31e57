package testutil

import (
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// SampleRecord returns a season-total record with goal data.
func SampleRecord(name, division string, w, d, l int, gf, ga float64) teams.Record {
	return teams.Record{
		Name:         name,
		Division:     division,
		Source:       "test",
		GamesPlayed:  w + d + l,
		Wins:         w,
		Draws:        d,
		Losses:       l,
		GoalsFor:     gf,
		GoalsAgainst: ga,
		HasGoals:     true,
		GoalUnit:     teams.GoalUnitTotal,
	}
}

// SampleRecords returns a small U8 division: Club Ohio scores 100, Sporting
// Columbus 71.1, DSX Orange 50 and Worthington United (no games) 15.
func SampleRecords() []teams.Record {
	return []teams.Record{
		SampleRecord("Club Ohio West 18B Academy", "U8 Boys", 6, 0, 0, 52, 5),
		SampleRecord("Sporting Columbus Boys 2018 I", "U8 Boys", 4, 1, 1, 20, 9),
		SampleRecord("DSX Orange 2018B", "U8 Boys", 3, 0, 3, 10, 10),
		{Name: "Worthington United 2018B", Division: "U8 Boys", Source: "test", GoalUnit: teams.GoalUnitAuto},
	}
}
