package testutil

import (
	"context"

	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
)

// StaticProvider returns the provided records with no error.
type StaticProvider struct {
	Source  string
	Records []teams.Record
}

func (p StaticProvider) Name() string { return p.Source }

func (p StaticProvider) FetchRecords(ctx context.Context) ([]teams.Record, error) {
	return p.Records, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Source string
	Err    error
}

func (p ErrProvider) Name() string { return p.Source }

func (p ErrProvider) FetchRecords(ctx context.Context) ([]teams.Record, error) {
	return nil, p.Err
}
