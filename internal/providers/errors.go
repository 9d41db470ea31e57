package providers

import (
	"errors"
	"fmt"
)

var (
	// ErrNoHeader is returned when a source has no row that resolves to a standings header.
	ErrNoHeader = errors.New("no standings header found")
	// ErrUnsupportedFormat is returned for source paths with an unknown extension.
	ErrUnsupportedFormat = errors.New("unsupported source format")
)

// SourceError wraps a failure with the source and, when known, the line or
// table row that caused it.
type SourceError struct {
	Source string
	Line   int
	Err    error
}

func (e *SourceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("source %s line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("source %s: %v", e.Source, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// AsSourceError attempts to unwrap an error into a SourceError.
func AsSourceError(err error) (*SourceError, bool) {
	var srcErr *SourceError
	if errors.As(err, &srcErr) {
		return srcErr, true
	}
	return nil, false
}
