package config

// ScoutingConfig describes whose opponents are being scouted.
type ScoutingConfig struct {
	FocusTeam string
	Division  string
	// ReferenceStrength stands in for an opponent with no data.
	ReferenceStrength float64
	// EvenMargin is the index gap treated as an even matchup.
	EvenMargin float64
}

func loadScouting() ScoutingConfig {
	return ScoutingConfig{
		FocusTeam:         envOrDefault(envFocusTeam, ""),
		Division:          envOrDefault(envDivision, ""),
		ReferenceStrength: floatEnvOrDefault(envReferenceStrength, defaultReferenceStrength),
		EvenMargin:        floatEnvOrDefault(envEvenMargin, defaultEvenMargin),
	}
}
