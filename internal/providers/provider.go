package providers

import (
	"context"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// RecordProvider reads aggregate team records from one standings source.
// Providers should stamp every record with their Name as the record source.
type RecordProvider interface {
	Name() string
	FetchRecords(ctx context.Context) ([]teams.Record, error)
}
