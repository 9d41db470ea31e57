package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
)

// logWithSource tags an entry with the source name. The context logger wins
// over the fallback; with neither, nothing is logged.
func logWithSource(ctx context.Context, fallback *slog.Logger, level slog.Level, source string, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldSource, source))
	logger.Log(ctx, level, msg, args...)
}

// LogSkippedRow warns about a row a source could not decode. where locates
// the row (line number, table division) in the source's own terms.
func LogSkippedRow(ctx context.Context, fallback *slog.Logger, source string, err error, where ...any) {
	logWithSource(ctx, fallback, slog.LevelWarn, source, "skipping standings row", append(where, slog.Any("err", err))...)
}
