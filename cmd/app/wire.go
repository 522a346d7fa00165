//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/aqi-advisor/internal/bootstrap"
	"github.com/yanqian/aqi-advisor/internal/domain/aqi"
	"github.com/yanqian/aqi-advisor/internal/infra/config"
	httpiface "github.com/yanqian/aqi-advisor/internal/interface/http"
	"github.com/yanqian/aqi-advisor/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideAdvisorConfig,
		provideMetrics,
		provideRecorder,
		provideAnalysisClient,
		provideProviders,
		provideHealthChecker,
		aqi.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
