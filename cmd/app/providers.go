package main

import (
	"fmt"
	"log/slog"

	"github.com/yanqian/aqi-advisor/internal/domain/aqi"
	"github.com/yanqian/aqi-advisor/internal/infra/analysis"
	"github.com/yanqian/aqi-advisor/internal/infra/config"
	httpiface "github.com/yanqian/aqi-advisor/internal/interface/http"
	"github.com/yanqian/aqi-advisor/pkg/metrics"
)

func provideAdvisorConfig(cfg *config.Config) (aqi.Config, error) {
	variant, err := aqi.ParseVariant(cfg.Advisor.DefaultVariant, aqi.VariantLocal)
	if err != nil {
		return aqi.Config{}, fmt.Errorf("advisor.defaultVariant %q: %w", cfg.Advisor.DefaultVariant, err)
	}
	return aqi.Config{DefaultVariant: variant}, nil
}

func provideMetrics(cfg *config.Config) *metrics.Collector {
	return metrics.NewCollector(cfg.Metrics.Namespace)
}

func provideRecorder(collector *metrics.Collector) aqi.Recorder {
	return collector
}

// provideAnalysisClient returns nil when the remote variant is disabled.
func provideAnalysisClient(cfg *config.Config, collector *metrics.Collector, logger *slog.Logger) *analysis.Client {
	if !cfg.Analysis.Enabled {
		logger.Info("remote analysis disabled, serving local advisories only")
		return nil
	}
	logger.Info("remote analysis enabled", "base_url", cfg.Analysis.BaseURL)
	return analysis.NewClient(analysis.Options{
		BaseURL:           cfg.Analysis.BaseURL,
		Timeout:           cfg.Analysis.Timeout,
		RequestsPerSecond: cfg.Analysis.RequestsPerSecond,
		Burst:             cfg.Analysis.Burst,
	}, collector, logger)
}

func provideProviders(client *analysis.Client) aqi.Providers {
	providers := aqi.Providers{aqi.VariantLocal: aqi.NewLocalProvider()}
	if client != nil {
		providers[aqi.VariantRemote] = client
	}
	return providers
}

func provideHealthChecker(client *analysis.Client) httpiface.HealthChecker {
	if client == nil {
		return nil
	}
	return client
}
