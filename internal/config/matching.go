package config

import "github.com/preston-bernstein/youth-soccer-scout/internal/namematch"

// MatchingConfig exposes the name matcher's tunable thresholds.
type MatchingConfig struct {
	ExtraStopWords        []string
	MinSubstringLen       int
	MinTokenMatches       int
	HighConfidenceMatches int
	MinTokenLen           int
}

func loadMatching() MatchingConfig {
	def := namematch.DefaultConfig()
	return MatchingConfig{
		ExtraStopWords:        listEnvOrDefault(envStopWords, nil),
		MinSubstringLen:       intEnvOrDefault(envMinSubstring, def.MinSubstringLen),
		MinTokenMatches:       intEnvOrDefault(envMinTokenMatches, def.MinTokenMatches),
		HighConfidenceMatches: intEnvOrDefault(envHighConfidence, def.HighConfidenceMatches),
		MinTokenLen:           intEnvOrDefault(envMinTokenLen, def.MinTokenLen),
	}
}

// MatcherConfig converts to the matcher's own config type.
func (m MatchingConfig) MatcherConfig() namematch.Config {
	return namematch.Config{
		ExtraStopWords:        m.ExtraStopWords,
		MinSubstringLen:       m.MinSubstringLen,
		MinTokenMatches:       m.MinTokenMatches,
		HighConfidenceMatches: m.HighConfidenceMatches,
		MinTokenLen:           m.MinTokenLen,
	}
}
