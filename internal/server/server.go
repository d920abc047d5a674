// internal/server/server.go
//
// Runtime shell driven by the materialized ServerConfig.
//
// Context
// -------
// Run() supervises the long-lived pieces that the configuration
// subsystem feeds: the health-check listener, the metrics listener, and
// the periodic memory-trim loop.  Each optional listener starts only
// when its host is configured.  Everything runs under one errgroup;
// canceling the context shuts all of it down gracefully.

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gooddata/flight-server/internal/config"
	"github.com/gooddata/flight-server/internal/health"
	"github.com/gooddata/flight-server/internal/metrics"
)

// Server wires the immutable configuration to the runtime endpoints.
type Server struct {
	cfg *config.ServerConfig
	log *zap.SugaredLogger
}

// New returns a Server; cfg is treated as read-only.
func New(cfg *config.ServerConfig, log *zap.SugaredLogger) *Server {
	return &Server{cfg: cfg, log: log}
}

// Run blocks until ctx is canceled or a listener fails.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	if s.cfg.HealthCheckHost != nil {
		addr := net.JoinHostPort(*s.cfg.HealthCheckHost, strconv.Itoa(s.cfg.HealthCheckPort))
		g.Go(func() error { return s.serve(ctx, "health", addr, health.Router()) })
	}

	if s.cfg.MetricsHost != nil {
		addr := net.JoinHostPort(*s.cfg.MetricsHost, strconv.Itoa(s.cfg.MetricsPort))
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		g.Go(func() error { return s.serve(ctx, "metrics", addr, mux) })
	}

	g.Go(func() error { return s.trimLoop(ctx) })

	return g.Wait()
}

// serve runs one HTTP listener until ctx is canceled, then shuts it
// down gracefully with a short deadline.
func (s *Server) serve(ctx context.Context, name, addr string, handler http.Handler) error {
	srv := newHTTPServer(addr, handler)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.log.Infow(name+" listener online", "addr", addr)

	select {
	case <-ctx.Done():
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			s.log.Warnw(name+" listener shutdown", "err", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("%s listener on %s: %w", name, addr, err)
	}
}
