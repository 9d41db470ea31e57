// Package registry builds record providers from source configuration.
package registry

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers/csvsource"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers/fixture"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers/htmlsource"
	"github.com/preston-bernstein/youth-soccer-scout/internal/schema"
)

// Build returns one instrumented provider per source, in configuration order.
// With no sources configured the fixture provider is used so the service
// still boots locally.
func Build(sources []config.SourceConfig, aliases schema.AliasTable, logger *slog.Logger, recorder *metrics.Recorder) ([]providers.RecordProvider, error) {
	if len(sources) == 0 {
		return []providers.RecordProvider{
			providers.NewInstrumentedProvider(fixture.New(), logger, recorder),
		}, nil
	}

	out := make([]providers.RecordProvider, 0, len(sources))
	for _, src := range sources {
		base, err := build(src, aliases, logger)
		if err != nil {
			return nil, err
		}
		out = append(out, providers.NewInstrumentedProvider(base, logger, recorder))
	}
	return out, nil
}

func build(src config.SourceConfig, aliases schema.AliasTable, logger *slog.Logger) (providers.RecordProvider, error) {
	if strings.EqualFold(src.Path, fixture.Name) {
		return fixture.New(), nil
	}
	switch src.Format() {
	case "csv":
		return csvsource.New(src.Name, src.Path, src.GoalUnit,
			csvsource.WithAliases(aliases), csvsource.WithLogger(logger)), nil
	case "html":
		return htmlsource.New(src.Name, src.Path, src.GoalUnit,
			htmlsource.WithAliases(aliases), htmlsource.WithLogger(logger)), nil
	default:
		return nil, &providers.SourceError{Source: src.Name, Err: providers.ErrUnsupportedFormat}
	}
}
