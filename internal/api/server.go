// Package api exposes the analysis engine over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ZanzyTHEbar/voicetracer/internal/analysis"
	"github.com/ZanzyTHEbar/voicetracer/internal/cache"
	"github.com/ZanzyTHEbar/voicetracer/internal/calibration"
	"github.com/ZanzyTHEbar/voicetracer/internal/config"
	"github.com/ZanzyTHEbar/voicetracer/internal/middleware"
	"github.com/ZanzyTHEbar/voicetracer/internal/monitoring"
	"github.com/ZanzyTHEbar/voicetracer/internal/security"
	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 30 * time.Second

// Server wires the analysis engine, session store and middleware stack
// into a gin engine.
type Server struct {
	cfg         config.Config
	analyzer    *analysis.Analyzer
	sessions    *calibration.Store
	cache       *cache.Cache
	metrics     *monitoring.Metrics
	logger      *monitoring.Logger
	security    *security.SecurityMiddleware
	compression *middleware.CompressionMiddleware
	engine      *gin.Engine
}

// NewServer builds a server from cfg. A nil logger logs JSON to stdout at
// the configured level.
func NewServer(cfg config.Config, logger *monitoring.Logger) *Server {
	if logger == nil {
		logger = monitoring.NewLogger(cfg.Log.SlogLevel())
	}
	gin.SetMode(cfg.Server.Mode)

	metrics := monitoring.NewMetrics()
	s := &Server{
		cfg:      cfg,
		analyzer: analysis.NewAnalyzer(analysis.WithAIismLimit(cfg.Analysis.AIismLimit)),
		sessions: calibration.NewStore(cfg.Session.TTL),
		cache:    cache.New(cfg.Cache.TTL),
		metrics:  metrics,
		logger:   logger,
		security: security.NewSecurityMiddleware(security.SecurityConfig{
			MaxRequestsPerMin: cfg.Server.RateLimitPerMin,
			AllowedOrigins:    cfg.Server.AllowedOrigins,
			RequestTimeout:    cfg.Server.RequestTimeout,
		}, metrics),
		compression: middleware.NewCompressionMiddleware(middleware.DefaultCompressionConfig()),
	}
	s.engine = s.routes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Metrics exposes the server's counters.
func (s *Server) Metrics() *monitoring.Metrics {
	return s.metrics
}

// Run serves on the configured port until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cleanupCtx, stopCleanup := context.WithCancel(ctx)
	defer stopCleanup()
	s.security.Cleanup(cleanupCtx, 5*time.Minute)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting server", "addr", srv.Addr, "mode", s.cfg.Server.Mode)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("Server exited")
	return nil
}
