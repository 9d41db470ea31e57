package config

// SnapshotConfig controls dated rankings snapshots.
type SnapshotConfig struct {
	Enabled       bool
	Folder        string
	RetentionDays int
	AdminToken    string // guards the refresh endpoint
}

func loadSnapshots() SnapshotConfig {
	return SnapshotConfig{
		Enabled:       boolEnvOrDefault(envSnapshotsOn, defaultSnapshotsOn),
		Folder:        envOrDefault(envSnapshotDir, defaultSnapshotDir),
		RetentionDays: intEnvOrDefault(envSnapshotRetention, defaultSnapshotRetention),
		AdminToken:    envOrDefault(envAdminToken, ""),
	}
}
