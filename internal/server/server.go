package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/youth-soccer-scout/internal/app/rankings"
	"github.com/preston-bernstein/youth-soccer-scout/internal/config"
	"github.com/preston-bernstein/youth-soccer-scout/internal/domain/teams"
	httpserver "github.com/preston-bernstein/youth-soccer-scout/internal/http"
	"github.com/preston-bernstein/youth-soccer-scout/internal/http/handlers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/http/middleware"
	"github.com/preston-bernstein/youth-soccer-scout/internal/logging"
	"github.com/preston-bernstein/youth-soccer-scout/internal/metrics"
	"github.com/preston-bernstein/youth-soccer-scout/internal/poller"
	"github.com/preston-bernstein/youth-soccer-scout/internal/providers"
	"github.com/preston-bernstein/youth-soccer-scout/internal/store"
	"github.com/preston-bernstein/youth-soccer-scout/internal/timeutil"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	service       *rankings.Service
	snapshots     snapshotComponents
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
}

// New constructs a server reading the configured sources.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	return newServerWithMetrics(cfg, logger, nil, nil)
}

func newServerWithProviders(cfg config.Config, logger *slog.Logger, provs []providers.RecordProvider) (*Server, error) {
	return newServerWithMetrics(cfg, logger, provs, nil)
}

func newServerWithMetrics(cfg config.Config, logger *slog.Logger, provs []providers.RecordProvider, recorder *metrics.Recorder) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	if provs == nil {
		built, err := newProviderFactory(logger, recorder).build(cfg)
		if err != nil {
			if metricsShutdown != nil {
				_ = metricsShutdown(context.Background())
			}
			return nil, err
		}
		provs = built
	}

	memoryStore, svc := buildService(cfg, provs, logger, recorder)
	snaps := buildSnapshots(cfg)
	httpSrv := buildHTTPServer(cfg, svc, snaps, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		service:       svc,
		snapshots:     snaps,
		poller:        buildPoller(cfg, svc, snaps, logger),
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
	}, nil
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, svc *rankings.Service, httpSrv httpServer) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		service:    svc,
		httpServer: httpSrv,
	}
}

func buildService(cfg config.Config, provs []providers.RecordProvider, logger *slog.Logger, recorder *metrics.Recorder) (*store.MemoryStore, *rankings.Service) {
	memoryStore := store.NewMemoryStore()
	svc := rankings.NewService(memoryStore, provs, rankings.OptionsFromConfig(cfg, logger, recorder))
	return memoryStore, svc
}

// buildPoller returns nil unless a poll interval is configured.
func buildPoller(cfg config.Config, svc *rankings.Service, snaps snapshotComponents, logger *slog.Logger) *poller.Poller {
	if cfg.PollInterval <= 0 {
		return nil
	}
	var writer poller.SnapshotWriter
	if snaps.writer != nil {
		writer = snaps.writer
	}
	return poller.New(svc, writer, logger, cfg.PollInterval)
}

func buildHTTPServer(cfg config.Config, svc *rankings.Service, snaps snapshotComponents, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := handlers.NewHandler(svc, snaps.store, cfg.Scouting.FocusTeam, logger)
	var admin *handlers.AdminHandler
	// Only mount the admin refresh endpoint if a token is set.
	if cfg.Snapshots.AdminToken != "" {
		admin = handlers.NewAdminHandler(svc, snaps.writer, cfg.Snapshots.AdminToken, logger)
	}
	router := httpserver.NewRouter(handler, admin)
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := middleware.LoggingMiddleware(logger, recorder, router)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, loads the sources (once, or on the poll
// interval), then waits for context cancellation to shut down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.startServer(stop)
	if s.poller != nil {
		s.poller.Start(ctx)
	} else {
		s.initialLoad(ctx)
	}

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

// initialLoad builds the first board. A failure leaves /ready at 503 until
// an admin refresh succeeds.
func (s *Server) initialLoad(ctx context.Context) {
	if s.service == nil {
		return
	}
	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	board, err := s.service.Refresh(logging.WithLogger(loadCtx, s.logger))
	if err != nil {
		logging.Warn(s.logger, "initial rankings load failed", slog.Any("err", err))
		return
	}
	s.writeSnapshot(board)
}

func (s *Server) writeSnapshot(board teams.Board) {
	if s.snapshots.writer == nil || len(board.Rankings) == 0 {
		return
	}
	date := timeutil.FormatDate(board.UpdatedAt)
	snap := teams.RankingsResponse{Date: date, Rankings: board.Rankings}
	if err := s.snapshots.writer.WriteRankingsSnapshot(date, snap); err != nil {
		logging.Warn(s.logger, "rankings snapshot write failed",
			slog.String(logging.FieldDate, date),
			slog.Any("err", err),
		)
		return
	}
	logging.Info(s.logger, "rankings snapshot written",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(board.Rankings)),
	)
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if s.poller != nil {
		_ = s.poller.Stop(shutdownCtx)
	}

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "err", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Service exposes the rankings service (useful for tests).
func (s *Server) Service() *rankings.Service {
	return s.service
}
