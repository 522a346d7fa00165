package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/aqi-advisor/internal/domain/aqi"
	apperrors "github.com/yanqian/aqi-advisor/pkg/errors"
)

// healthCheckTimeout bounds the downstream probe so /healthz answers even when
// the analysis service hangs.
const healthCheckTimeout = 2 * time.Second

// HealthChecker probes a downstream dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Handler wires the HTTP transport to the advisory service.
type Handler struct {
	advisorSvc     aqi.Service
	remote         HealthChecker
	defaultVariant aqi.Variant
	healthTimeout  time.Duration
	logger         *slog.Logger
}

// NewHandler constructs the root HTTP handler. remote may be nil when the
// analysis service is disabled.
func NewHandler(advisorSvc aqi.Service, cfg aqi.Config, remote HealthChecker, logger *slog.Logger) *Handler {
	return &Handler{
		advisorSvc:     advisorSvc,
		remote:         remote,
		defaultVariant: cfg.DefaultVariant,
		healthTimeout:  healthCheckTimeout,
		logger:         logger.With("component", "http.handler"),
	}
}

// CreateAdvisory handles POST /api/v1/advisories.
func (h *Handler) CreateAdvisory(c *gin.Context) {
	var req aqi.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.advisorSvc.Advise(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListCategories returns the AQI category table.
func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": aqi.Categories()})
}

// Health reports liveness and, when configured, the analysis service state.
func (h *Handler) Health(c *gin.Context) {
	analysis := "disabled"
	if h.remote != nil {
		analysis = "up"
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.healthTimeout)
		defer cancel()
		if err := h.remote.Health(ctx); err != nil {
			h.logger.Warn("analysis health check failed", "error", err)
			analysis = "down"
		}
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"message":  "Air Quality Health Advisory API is running",
		"analysis": analysis,
	})
}

// Form renders the empty advisory form.
func (h *Handler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "form", newFormView(aqi.Request{}, h.defaultVariant, ""))
}

// Panel renders the advisory panel for query string input.
func (h *Handler) Panel(c *gin.Context) {
	req := aqi.Request{
		City:      c.Query("city"),
		AQI:       aqi.RawText(c.Query("aqi")),
		TimeOfDay: c.Query("timeOfDay"),
		Profile:   c.Query("profile"),
		Variant:   c.Query("variant"),
	}

	resp, err := h.advisorSvc.Advise(c.Request.Context(), req)
	if err != nil {
		httpErr := fromDomainError(err)
		if apperrors.IsCode(err, apperrors.CodeInvalidInput) {
			c.HTML(httpErr.Status, "form", newFormView(req, h.defaultVariant, httpErr.Message))
			return
		}
		h.logger.Error("advisory panel failed", "code", httpErr.Code, "error", err)
		c.HTML(httpErr.Status, "error", httpErr.Message)
		return
	}

	c.HTML(http.StatusOK, "panel", resp)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
