package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/yanqian/aqi-advisor/internal/domain/aqi"
	apperrors "github.com/yanqian/aqi-advisor/pkg/errors"
)

const (
	defaultBaseURL       = "http://localhost:5000"
	maxBodyBytes         = 1 << 20
	defaultHealthTimeout = 5 * time.Second
)

// Options configures the remote analysis client.
type Options struct {
	BaseURL string
	// Timeout of zero leaves requests unbounded.
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
}

// Observer receives call outcomes for metrics.
type Observer interface {
	ObserveRemote(d time.Duration)
	RecordRemoteError(kind string)
}

// Client talks to the external advisory analysis service.
type Client struct {
	baseURL       string
	httpClient    *http.Client
	limiter       *rate.Limiter
	healthTimeout time.Duration
	observer      Observer
	logger        *slog.Logger
}

// NewClient builds an API client.
func NewClient(opts Options, observer Observer, logger *slog.Logger) *Client {
	url := strings.TrimSpace(opts.BaseURL)
	if url == "" {
		url = defaultBaseURL
	}
	var limiter *rate.Limiter
	if opts.RequestsPerSecond > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), burst)
	}
	return &Client{
		baseURL: strings.TrimRight(url, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		limiter:       limiter,
		healthTimeout: defaultHealthTimeout,
		observer:      observer,
		logger:        logger.With("component", "analysis.client"),
	}
}

// AnalyzeRequest is the body posted to /analyze.
type AnalyzeRequest struct {
	City        string `json:"city"`
	AQI         int    `json:"aqi"`
	UserProfile string `json:"user_profile"`
}

// AnalyzeResponse mirrors the /analyze payload. Only AQI and Category are
// required; the advisory texts may be absent.
type AnalyzeResponse struct {
	AQI                *float64 `json:"aqi"`
	Category           *string  `json:"category"`
	HealthImplications *string  `json:"health_implications"`
	GeneralAdvice      *string  `json:"general_advice"`
	SensitiveGroups    *string  `json:"sensitive_groups"`
	OutdoorActivities  *string  `json:"outdoor_activities"`
	ProtectiveMeasures *string  `json:"protective_measures"`
	MaskRecommendation *string  `json:"mask_recommendation"`
}

// TransportError reports a non-2xx status or a failed exchange.
type TransportError struct {
	Status int
	Body   string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.Status != 0:
		return fmt.Sprintf("analysis request error: status=%d body=%s", e.Status, e.Body)
	case e.Err != nil:
		return "analysis request failed: " + e.Err.Error()
	default:
		return "analysis request failed"
	}
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Analyze performs a single POST /analyze exchange. No retries.
func (c *Client) Analyze(ctx context.Context, in AnalyzeRequest) (AnalyzeResponse, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return AnalyzeResponse{}, c.fail("network", &TransportError{Err: fmt.Errorf("rate limit wait canceled: %w", err)})
		}
	}

	payload, err := json.Marshal(in)
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("encode analysis request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze", bytes.NewReader(payload))
	if err != nil {
		return AnalyzeResponse{}, fmt.Errorf("build analysis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if c.observer != nil {
		c.observer.ObserveRemote(time.Since(start))
	}
	if err != nil {
		return AnalyzeResponse{}, c.fail("network", &TransportError{Err: err})
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return AnalyzeResponse{}, c.fail("status", &TransportError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))})
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return AnalyzeResponse{}, c.fail("network", &TransportError{Err: fmt.Errorf("read analysis response: %w", err)})
	}

	var out AnalyzeResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return AnalyzeResponse{}, c.fail("decode", &TransportError{Err: fmt.Errorf("decode analysis response: %w", err)})
	}
	if out.AQI == nil || out.Category == nil {
		return AnalyzeResponse{}, c.fail("decode", &TransportError{Err: errors.New("malformed response: aqi and category are required")})
	}
	if v := *out.AQI; math.IsNaN(v) || math.IsInf(v, 0) || v < aqi.MinAQI || v > aqi.MaxAQI {
		return AnalyzeResponse{}, c.fail("decode", &TransportError{Err: errors.New("malformed response: aqi out of range")})
	}
	return out, nil
}

// GetAdvisory implements aqi.Provider.
func (c *Client) GetAdvisory(ctx context.Context, q aqi.Query) (aqi.Result, error) {
	resp, err := c.Analyze(ctx, AnalyzeRequest{
		City:        q.City,
		AQI:         q.AQI,
		UserProfile: string(q.Profile),
	})
	if err != nil {
		return aqi.Result{}, apperrors.Wrap(apperrors.CodeTransportError, "Could not get an advisory from the analysis service", err)
	}
	return toResult(q, resp), nil
}

// Health probes GET /health. Unlike Analyze it is always bounded: a caller
// without a deadline gets the client's health timeout.
func (c *Client) Health(ctx context.Context) error {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.healthTimeout)
		defer cancel()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("build health request: %w", err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &TransportError{Status: resp.StatusCode}
	}
	return nil
}

func (c *Client) fail(kind string, err error) error {
	if c.observer != nil {
		c.observer.RecordRemoteError(kind)
	}
	c.logger.Warn("analysis request failed", "kind", kind, "error", err)
	return err
}

func toResult(q aqi.Query, resp AnalyzeResponse) aqi.Result {
	label := strings.TrimSpace(*resp.Category)
	category := aqi.CategoryFromLabel(label)
	if label == "" {
		label = category.Label
	}
	merged := mergeGuidance(resp)

	return aqi.Result{
		Source:             aqi.VariantRemote,
		City:               q.City,
		AQI:                int(math.Round(*resp.AQI)),
		Category:           category.Key,
		Label:              label,
		Icon:               category.Icon,
		HealthImplications: merged.HealthImplications,
		Guidance: &aqi.Guidance{
			GeneralAdvice:      merged.GeneralAdvice,
			SensitiveGroups:    merged.SensitiveGroups,
			OutdoorActivities:  merged.OutdoorActivities,
			ProtectiveMeasures: merged.ProtectiveMeasures,
		},
		MaskRecommendation: merged.MaskRecommendation,
		// The warning follows the submitted AQI, not the echoed one.
		Elevated: aqi.IsElevated(q.AQI),
	}
}

var _ aqi.Provider = (*Client)(nil)
