package rankings

import (
	"log/slog"

	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/namematch"
)

// OptionsFromConfig maps the matching and scouting settings onto Options.
func OptionsFromConfig(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) Options {
	return Options{
		Matcher:           namematch.NewMatcher(cfg.Matching.MatcherConfig()),
		Division:          cfg.Scouting.Division,
		ReferenceStrength: cfg.Scouting.ReferenceStrength,
		EvenMargin:        cfg.Scouting.EvenMargin,
		Logger:            logger,
		Metrics:           recorder,
	}
}
