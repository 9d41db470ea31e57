package server

import "time"

const (
	readTimeout  = 10 * time.Second
	writeTimeout = 30 * time.Second
	idleTimeout  = 60 * time.Second
)

var (
	// shutdownTimeout remains a var for tests to override.
	shutdownTimeout = 10 * time.Second
	// loadTimeout bounds the startup read of every configured source.
	loadTimeout = 30 * time.Second
)
