package server

import (
	"log/slog"

	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers/registry"
	"github.com/preston-bernstein/youth-soccer-scout/internal/schema"
)

// providerFactory assembles the configured sources with the shared
// instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
	aliases schema.AliasTable
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics, aliases: schema.DefaultAliases()}
}

func (f providerFactory) build(cfg config.Config) ([]providers.RecordProvider, error) {
	provs, err := registry.Build(cfg.Sources, f.aliases, f.logger, f.metrics)
	if err != nil {
		return nil, err
	}
	if len(cfg.Sources) == 0 && f.logger != nil {
		f.logger.Warn("no sources configured, serving fixture standings")
	}
	return provs, nil
}
