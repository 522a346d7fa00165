package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := initializeApp()
	if err != nil {
		// The configured logger is part of the graph, so wiring failures use the default one.
		slog.Error("aqi-advisor failed to start", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		slog.Error("aqi-advisor stopped with error", "error", err)
		os.Exit(1)
	}
}
