package config

import "strings"

// MetricsConfig controls the Prometheus listener and the optional OTLP push.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics() MetricsConfig {
	endpoint, insecure := otlpEndpoint(envOrDefault(envOtelEndpoint, ""), boolEnvOrDefault(envOtelInsecure, true))
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         strings.TrimPrefix(strings.TrimSpace(envOrDefault(envMetricsPort, defaultMetricsPort)), ":"),
		OtlpEndpoint: endpoint,
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpInsecure: insecure,
	}
}

// otlpEndpoint reduces a collector URL to host:port. An explicit scheme
// decides the transport security over the insecure flag.
func otlpEndpoint(raw string, insecure bool) (string, bool) {
	raw = strings.TrimSpace(raw)
	switch {
	case strings.HasPrefix(raw, "https://"):
		raw, insecure = strings.TrimPrefix(raw, "https://"), false
	case strings.HasPrefix(raw, "http://"):
		raw, insecure = strings.TrimPrefix(raw, "http://"), true
	}
	return strings.TrimSuffix(raw, "/"), insecure
}
