package config

import (
	"path/filepath"
	"strings"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// SourceConfig names one standings export on disk. The first configured
// source is primary: its team names are the ones others are matched against.
type SourceConfig struct {
	Name     string
	Path     string
	GoalUnit teams.GoalUnit
}

// Format is derived from the file extension ("csv" or "html").
func (s SourceConfig) Format() string {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".html", ".htm":
		return "html"
	case ".csv":
		return "csv"
	default:
		return ""
	}
}

func loadSources() []SourceConfig {
	return LoadSources(DefaultGoalUnit())
}

// DefaultGoalUnit is GOAL_UNITS, or auto when unset.
func DefaultGoalUnit() teams.GoalUnit {
	return teams.ParseGoalUnit(envOrDefault(envGoalUnits, string(teams.GoalUnitAuto)))
}

// LoadSources reads SOURCES, giving defaultUnit to entries without a #unit suffix.
func LoadSources(defaultUnit teams.GoalUnit) []SourceConfig {
	return ParseSources(listEnvOrDefault(envSources, nil), defaultUnit)
}

// ParseSources reads entries of the form name=path or name=path#unit. A bare
// path uses its base name (without extension) as the source name.
func ParseSources(entries []string, defaultUnit teams.GoalUnit) []SourceConfig {
	out := make([]SourceConfig, 0, len(entries))
	for _, entry := range entries {
		src := SourceConfig{GoalUnit: defaultUnit}
		if name, path, ok := strings.Cut(entry, "="); ok {
			src.Name, entry = strings.TrimSpace(name), path
		}
		if path, unit, ok := strings.Cut(entry, "#"); ok {
			entry = path
			src.GoalUnit = teams.ParseGoalUnit(strings.TrimSpace(unit))
		}
		src.Path = strings.TrimSpace(entry)
		if src.Path == "" {
			continue
		}
		if src.Name == "" {
			base := filepath.Base(src.Path)
			src.Name = strings.TrimSuffix(base, filepath.Ext(base))
		}
		out = append(out, src)
	}
	return out
}
