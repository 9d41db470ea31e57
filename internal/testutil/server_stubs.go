package testutil

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
)

// ErrListen is what NewFailingHTTPServer returns from ListenAndServe.
var ErrListen = errors.New("listen failure")

// StubHTTPServer stands in for the server package's httpServer. Counters are
// safe to read while the server runs in another goroutine.
type StubHTTPServer struct {
	AddrVal     string
	HandlerVal  http.Handler
	ListenErr   error
	ShutdownErr error
	// BlockShutdown, when set, makes Shutdown wait for it to close or for ctx to end.
	BlockShutdown chan struct{}

	listens   atomic.Int32
	shutdowns atomic.Int32
}

// NewClosedHTTPServer returns a stub whose ListenAndServe reports a clean close.
func NewClosedHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: http.ErrServerClosed}
}

// NewFailingHTTPServer returns a stub whose ListenAndServe fails with ErrListen.
func NewFailingHTTPServer() *StubHTTPServer {
	return &StubHTTPServer{ListenErr: ErrListen}
}

func (s *StubHTTPServer) ListenAndServe() error {
	s.listens.Add(1)
	return s.ListenErr
}

func (s *StubHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdowns.Add(1)
	if s.BlockShutdown != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-s.BlockShutdown:
		}
	}
	return s.ShutdownErr
}

func (s *StubHTTPServer) Addr() string {
	if s.AddrVal == "" {
		return ":0"
	}
	return s.AddrVal
}

func (s *StubHTTPServer) Handler() http.Handler {
	if s.HandlerVal == nil {
		return http.NewServeMux()
	}
	return s.HandlerVal
}

// ListenCalls reports how many times ListenAndServe ran.
func (s *StubHTTPServer) ListenCalls() int {
	return int(s.listens.Load())
}

// ShutdownCalls reports how many times Shutdown ran.
func (s *StubHTTPServer) ShutdownCalls() int {
	return int(s.shutdowns.Load())
}
