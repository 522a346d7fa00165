package aqi

import (
	"context"
	"log/slog"

	apperrors "github.com/yanqian/aqi-advisor/pkg/errors"
)

// Service exposes the advisory capability to transports.
type Service interface {
	Advise(ctx context.Context, req Request) (Result, error)
}

// Recorder receives advisory outcomes for metrics.
type Recorder interface {
	RecordAdvisory(variant, category string)
	RecordValidationError(variant string)
}

type service struct {
	cfg       Config
	providers Providers
	recorder  Recorder
	logger    *slog.Logger
}

// NewService wires up the advisory domain.
func NewService(cfg Config, providers Providers, recorder Recorder, logger *slog.Logger) Service {
	return &service{
		cfg:       cfg,
		providers: providers,
		recorder:  recorder,
		logger:    logger.With("component", "aqi.service"),
	}
}

func (s *service) Advise(ctx context.Context, req Request) (Result, error) {
	variant, err := ParseVariant(req.Variant, s.cfg.DefaultVariant)
	if err != nil {
		s.recordValidation("unknown")
		return Result{}, err
	}

	q, err := Validate(RawInput{
		City:      req.City,
		AQI:       string(req.AQI),
		TimeOfDay: req.TimeOfDay,
		Profile:   req.Profile,
	}, variant)
	if err != nil {
		s.recordValidation(string(variant))
		s.logger.Debug("advisory request rejected", "variant", variant, "error", err)
		return Result{}, err
	}

	provider, ok := s.providers[variant]
	if !ok || provider == nil {
		return Result{}, apperrors.Wrap(apperrors.CodeTransportError, "remote analysis is not configured", nil)
	}

	res, err := provider.GetAdvisory(ctx, q)
	if err != nil {
		s.logger.Error("advisory provider failed", "variant", variant, "city", q.City, "aqi", q.AQI, "error", err)
		if apperrors.IsCode(err, apperrors.CodeTransportError) {
			return Result{}, err
		}
		return Result{}, apperrors.Wrap(apperrors.CodeTransportError, "Could not get an advisory from the analysis service", err)
	}

	if s.recorder != nil {
		s.recorder.RecordAdvisory(string(variant), string(res.Category))
	}
	s.logger.Info("advisory generated", "variant", variant, "city", q.City, "aqi", q.AQI, "category", res.Category, "elevated", res.Elevated)
	return res, nil
}

func (s *service) recordValidation(variant string) {
	if s.recorder != nil {
		s.recorder.RecordValidationError(variant)
	}
}
