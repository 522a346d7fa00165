package bootstrap

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/aqi-advisor/internal/infra/config"
)

func TestRunStopsOnContextCancel(t *testing.T) {
	probe := &stubProbe{err: errors.New("connection refused")}
	cfg := &config.Config{HTTP: config.HTTPConfig{ShutdownTimeout: time.Second}}
	server := &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server, probe)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop")
	}
	require.Equal(t, 1, probe.calls)
}

func TestRunReturnsListenError(t *testing.T) {
	cfg := &config.Config{}
	server := &http.Server{Addr: "256.0.0.1:bad", Handler: http.NotFoundHandler()}
	app := NewApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)), server, nil)

	require.Error(t, app.Run(context.Background()))
}

type stubProbe struct {
	err   error
	calls int
}

func (s *stubProbe) Health(ctx context.Context) error {
	s.calls++
	return s.err
}
