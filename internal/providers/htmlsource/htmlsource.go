// Package htmlsource reads standings pages saved as HTML. Each <table> whose
// header row resolves is read as one division; the division name comes from
// the table caption or the nearest heading before it.
package htmlsource

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/schema"
)

const headingSelector = "h1,h2,h3,h4,h5"

type Provider struct {
	name    string
	path    string
	unit    teams.GoalUnit
	aliases schema.AliasTable
	logger  *slog.Logger
}

type Option func(*Provider)

func WithAliases(aliases schema.AliasTable) Option {
	return func(p *Provider) {
		if aliases != nil {
			p.aliases = aliases
		}
	}
}

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
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, &providers.SourceError{Source: p.name, Err: err}
	}

	var (
		records []teams.Record
		found   bool
	)
	doc.Find("table").EachWithBreak(func(_ int, table *goquery.Selection) bool {
		if ctx.Err() != nil {
			return false
		}
		rows, ok := p.readTable(ctx, table)
		if ok {
			found = true
			records = append(records, rows...)
		}
		return true
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !found {
		return nil, &providers.SourceError{Source: p.name, Err: providers.ErrNoHeader}
	}
	return records, nil
}

// readTable returns false when no row of the table resolves as a header.
func (p *Provider) readTable(ctx context.Context, table *goquery.Selection) ([]teams.Record, bool) {
	division := tableDivision(table)

	var (
		cols    schema.Columns
		records []teams.Record
	)
	table.Find("tr").Each(func(i int, tr *goquery.Selection) {
		cells := rowCells(tr)
		if len(cells) == 0 {
			return
		}
		if cols == nil {
			if resolved, err := p.aliases.ResolveHeader(cells); err == nil {
				cols = resolved
			}
			return
		}
		// Repeated header rows inside long tables.
		if tr.Find("th").Length() == len(cells) {
			return
		}

		rec, err := schema.DecodeRow(cols, cells, p.unit)
		if err != nil {
			p.skip(ctx, division, i+1, err)
			return
		}
		if rec.Division == "" {
			rec.Division = division
		}
		rec.Source = p.name
		records = append(records, rec)
	})
	return records, cols != nil
}

func (p *Provider) skip(ctx context.Context, division string, row int, err error) {
	providers.LogSkippedRow(ctx, p.logger, p.name, err,
		slog.String(logging.FieldDivision, division),
		slog.Int("row", row),
	)
}

func tableDivision(table *goquery.Selection) string {
	if caption := cleanText(table.Find("caption").First().Text()); caption != "" {
		return caption
	}
	for sel := table; sel.Length() > 0 && !sel.Is("body"); sel = sel.Parent() {
		if heading := sel.PrevAllFiltered(headingSelector).First(); heading.Length() > 0 {
			return cleanText(heading.Text())
		}
	}
	return ""
}

func rowCells(tr *goquery.Selection) []string {
	cells := tr.ChildrenFiltered("th,td")
	if cells.Length() == 0 {
		return nil
	}
	out := make([]string, 0, cells.Length())
	cells.Each(func(_ int, c *goquery.Selection) {
		out = append(out, cleanText(c.Text()))
	})
	return out
}

func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
