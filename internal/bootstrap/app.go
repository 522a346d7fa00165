package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/aqi-advisor/internal/infra/config"
	httpiface "github.com/yanqian/aqi-advisor/internal/interface/http"
)

const startupProbeTimeout = 3 * time.Second

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	server   *http.Server
	analysis httpiface.HealthChecker
}

// NewApp is used by Wire to build the runnable app. analysis is nil when the
// remote variant is disabled.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, analysis httpiface.HealthChecker) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, analysis: analysis}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	a.probeAnalysis(ctx)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "address", a.server.Addr, "default_variant", a.cfg.Advisor.DefaultVariant)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout())
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// probeAnalysis only logs; remote outages surface per request.
func (a *App) probeAnalysis(ctx context.Context) {
	if a.analysis == nil {
		return
	}
	probeCtx, cancel := context.WithTimeout(ctx, startupProbeTimeout)
	defer cancel()
	if err := a.analysis.Health(probeCtx); err != nil {
		a.logger.Warn("analysis service unreachable at startup", "error", err)
		return
	}
	a.logger.Info("analysis service reachable")
}

func (a *App) shutdownTimeout() time.Duration {
	if a.cfg.HTTP.ShutdownTimeout > 0 {
		return a.cfg.HTTP.ShutdownTimeout
	}
	return 10 * time.Second
}
