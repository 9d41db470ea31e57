package config

import "time"

// Config holds runtime configuration for the batch commands and the local server.
type Config struct {
	Port      string
	OutputDir string
	// PollInterval re-reads the sources on a timer; zero loads once at startup.
	PollInterval time.Duration
	Sources      []SourceConfig
	Matching     MatchingConfig
	Scouting     ScoutingConfig
	Snapshots    SnapshotConfig
	Metrics      MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:         envOrDefault(envPort, defaultPort),
		OutputDir:    envOrDefault(envOutputDir, defaultOutputDir),
		PollInterval: durationEnvOrDefault(envPollInterval, 0),
		Sources:      loadSources(),
		Matching:     loadMatching(),
		Scouting:     loadScouting(),
		Snapshots:    loadSnapshots(),
		Metrics:      loadMetrics(),
	}
}
