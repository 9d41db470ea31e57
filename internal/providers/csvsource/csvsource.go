// Package csvsource reads standings exports saved as CSV.
package csvsource

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/schema"
)

// maxPreambleRows bounds how far into a file the header may appear. Exports
// often carry a title and a blank line before the column row.
const maxPreambleRows = 10

// Provider reads one CSV file. It is stateless between calls.
type Provider struct {
	name    string
	path    string
	unit    teams.GoalUnit
	aliases schema.AliasTable
	logger  *slog.Logger
}

// Option customizes a Provider.
type Option func(*Provider)

// WithAliases replaces the header alias table.
func WithAliases(aliases schema.AliasTable) Option {
	return func(p *Provider) {
		if aliases != nil {
			p.aliases = aliases
		}
	}
}

// WithLogger sets the logger used for skipped-row warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

func New(name, path string, unit teams.GoalUnit, opts ...Option) *Provider {
	p := &Provider{
		name:    name,
		path:    path,
		unit:    unit,
		aliases: schema.DefaultAliases(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *Provider) Name() string {
	return p.name
}

func (p *Provider) FetchRecords(ctx context.Context) ([]teams.Record, error) {
	f, err := os.Open(p.path)
	if err != nil {
		return nil, &providers.SourceError{Source: p.name, Err: err}
	}
	defer f.Close()
	return p.read(ctx, f)
}

func (p *Provider) read(ctx context.Context, r io.Reader) ([]teams.Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true

	var (
		cols    schema.Columns
		records []teams.Record
		line    int
	)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, &providers.SourceError{Source: p.name, Line: line, Err: err}
		}
		if blank(row) {
			continue
		}

		if cols == nil {
			resolved, rerr := p.aliases.ResolveHeader(row)
			if rerr == nil {
				cols = resolved
				continue
			}
			if line >= maxPreambleRows {
				break
			}
			continue
		}

		rec, derr := schema.DecodeRow(cols, row, p.unit)
		if derr != nil {
			p.skip(ctx, line, derr)
			continue
		}
		rec.Source = p.name
		records = append(records, rec)
	}

	if cols == nil {
		return nil, &providers.SourceError{Source: p.name, Err: providers.ErrNoHeader}
	}
	return records, nil
}

func (p *Provider) skip(ctx context.Context, line int, err error) {
	providers.LogSkippedRow(ctx, p.logger, p.name, err, slog.Int("line", line))
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

