package config

const (
	envPort              = "PORT"
	envSources           = "SOURCES"
	envGoalUnits         = "GOAL_UNITS"
	envOutputDir         = "OUTPUT_DIR"
	envPollInterval      = "POLL_INTERVAL"
	envFocusTeam         = "FOCUS_TEAM"
	envDivision          = "DIVISION"
	envReferenceStrength = "REFERENCE_STRENGTH"
	envEvenMargin        = "EVEN_MARGIN"
	envStopWords         = "MATCH_EXTRA_STOPWORDS"
	envMinSubstring      = "MATCH_MIN_SUBSTRING"
	envMinTokenMatches   = "MATCH_MIN_TOKENS"
	envHighConfidence    = "MATCH_HIGH_CONFIDENCE_TOKENS"
	envMinTokenLen       = "MATCH_MIN_TOKEN_LEN"
	envMetricsPort       = "METRICS_PORT"
	envMetricsOn         = "METRICS_ENABLED"
	envOtelEndpoint      = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService       = "OTEL_SERVICE_NAME"
	envOtelInsecure      = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken        = "ADMIN_TOKEN"
	envSnapshotsOn       = "SNAPSHOTS_ENABLED"
	envSnapshotDir       = "SNAPSHOT_DIR"
	envSnapshotRetention = "SNAPSHOT_RETENTION_DAYS"

	defaultPort      = "4000"
	defaultOutputDir = "data/out"
	// 50 is the midpoint of the index; used when an opponent has no data.
	defaultReferenceStrength = 50.0
	defaultEvenMargin        = 5.0
	defaultMetricsPort       = "9090"
	defaultServiceName       = "youth-soccer-scout"
	defaultSnapshotsOn       = true
	defaultSnapshotDir       = "data/snapshots"
	defaultSnapshotRetention = 30
)
