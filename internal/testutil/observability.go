package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
)

// NewBufferLogger returns a debug-level text logger and the buffer it writes to.
// Debug is enabled so join decisions show up in assertions.
func NewBufferLogger() (*slog.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logger, &buf
}

// CountLines reports how many log lines in buf contain msg.
func CountLines(buf *bytes.Buffer, msg string) int {
	n := 0
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, msg) {
			n++
		}
	}
	return n
}

// NewRecorderWithShutdown returns an in-memory recorder and a shutdown func
// that owns nothing.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	return metrics.NewRecorder(), func(context.Context) error { return nil }
}
