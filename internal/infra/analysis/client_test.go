package analysis

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/aqi-advisor/internal/domain/aqi"
	apperrors "github.com/yanqian/aqi-advisor/pkg/errors"
)

func TestGetAdvisoryFullResponse(t *testing.T) {
	var received AnalyzeRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/analyze", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"city":"Delhi","aqi":275,"category":"Very Unhealthy","icon":"🟣",
			"health_implications":"Serious effects.",
			"general_advice":"Stay in.",
			"sensitive_groups":"Asthma patients stay in.",
			"outdoor_activities":"None.",
			"protective_measures":"Purifiers.",
			"mask_recommendation":"P100."
		}`)
	}))
	defer server.Close()

	obs := &stubObserver{}
	client := NewClient(Options{BaseURL: server.URL + "/"}, obs, newTestLogger())
	res, err := client.GetAdvisory(context.Background(), aqi.Query{City: "Delhi", AQI: 275, Profile: aqi.ProfileAsthma})
	require.NoError(t, err)

	require.Equal(t, AnalyzeRequest{City: "Delhi", AQI: 275, UserProfile: "asthma"}, received)
	require.Equal(t, aqi.VariantRemote, res.Source)
	require.Equal(t, aqi.KeyVeryUnhealthy, res.Category)
	require.Equal(t, "Very Unhealthy", res.Label)
	require.Equal(t, 275, res.AQI)
	require.True(t, res.Elevated)
	require.Equal(t, "Serious effects.", res.HealthImplications)
	require.Equal(t, &aqi.Guidance{
		GeneralAdvice:      "Stay in.",
		SensitiveGroups:    "Asthma patients stay in.",
		OutdoorActivities:  "None.",
		ProtectiveMeasures: "Purifiers.",
	}, res.Guidance)
	require.Equal(t, "P100.", res.MaskRecommendation)
	require.Nil(t, res.TimeOfDay)
	require.Equal(t, 1, obs.observed)
	require.Empty(t, obs.errors)
}

func TestGetAdvisoryMinimalResponseUsesFallbacks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"aqi":42,"category":"Good"}`)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL}, nil, newTestLogger())
	res, err := client.GetAdvisory(context.Background(), aqi.Query{City: "Oslo", AQI: 42, Profile: aqi.ProfileGeneral})
	require.NoError(t, err)

	require.Equal(t, aqi.KeyGood, res.Category)
	require.Equal(t, 42, res.AQI)
	require.False(t, res.Elevated)
	require.Equal(t, FallbackHealthImplications, res.HealthImplications)
	require.Equal(t, FallbackGeneralAdvice, res.Guidance.GeneralAdvice)
	require.Equal(t, FallbackSensitiveGroups, res.Guidance.SensitiveGroups)
	require.Equal(t, FallbackOutdoorActivities, res.Guidance.OutdoorActivities)
	require.Equal(t, FallbackProtectiveMeasures, res.Guidance.ProtectiveMeasures)
	require.Equal(t, FallbackMaskRecommendation, res.MaskRecommendation)
}

func TestGetAdvisoryServerErrorIsTerminal(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"error":"Vector database not initialized"}`)
	}))
	defer server.Close()

	obs := &stubObserver{}
	client := NewClient(Options{BaseURL: server.URL}, obs, newTestLogger())
	_, err := client.GetAdvisory(context.Background(), aqi.Query{City: "Delhi", AQI: 10, Profile: aqi.ProfileGeneral})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeTransportError))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Equal(t, http.StatusInternalServerError, te.Status)
	require.Contains(t, te.Body, "Vector database")
	require.Equal(t, 1, calls, "no retries")
	require.Equal(t, []string{"status"}, obs.errors)
}

func TestGetAdvisoryMalformedResponse(t *testing.T) {
	for _, body := range []string{
		`{"aqi":42}`,
		`{"category":"Good"}`,
		`not json`,
		`{"aqi":1e300,"category":"Good"}`,
		`{"aqi":-3,"category":"Good"}`,
		`{"aqi":500.6,"category":"Hazardous"}`,
	} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, body)
		}))

		client := NewClient(Options{BaseURL: server.URL}, nil, newTestLogger())
		_, err := client.GetAdvisory(context.Background(), aqi.Query{City: "Delhi", AQI: 42})
		require.True(t, apperrors.IsCode(err, apperrors.CodeTransportError), body)

		var te *TransportError
		require.ErrorAs(t, err, &te, body)
		require.Zero(t, te.Status, body)
		server.Close()
	}
}

func TestGetAdvisoryAcceptsBoundaryAQI(t *testing.T) {
	for _, value := range []string{"0", "500", "500.4"} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, `{"aqi":`+value+`,"category":"Hazardous"}`)
		}))

		client := NewClient(Options{BaseURL: server.URL}, nil, newTestLogger())
		res, err := client.GetAdvisory(context.Background(), aqi.Query{City: "Delhi", AQI: 42})
		require.NoError(t, err, value)
		require.GreaterOrEqual(t, res.AQI, aqi.MinAQI)
		require.LessOrEqual(t, res.AQI, aqi.MaxAQI)
		server.Close()
	}
}

func TestGetAdvisoryNetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	obs := &stubObserver{}
	client := NewClient(Options{BaseURL: url}, obs, newTestLogger())
	_, err := client.GetAdvisory(context.Background(), aqi.Query{City: "Delhi", AQI: 42})
	require.True(t, apperrors.IsCode(err, apperrors.CodeTransportError))

	var te *TransportError
	require.ErrorAs(t, err, &te)
	require.Zero(t, te.Status)
	require.Equal(t, []string{"network"}, obs.errors)
}

func TestAnalyzeRespectsLimiterCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"aqi":42,"category":"Good"}`)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL, RequestsPerSecond: 0.001, Burst: 1}, nil, newTestLogger())
	_, err := client.Analyze(context.Background(), AnalyzeRequest{City: "a", AQI: 1, UserProfile: "general"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = client.Analyze(ctx, AnalyzeRequest{City: "a", AQI: 1, UserProfile: "general"})
	var te *TransportError
	require.ErrorAs(t, err, &te)
}

func TestHealth(t *testing.T) {
	healthy := true
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/health", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = io.WriteString(w, `{"status":"healthy"}`)
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL}, nil, newTestLogger())
	require.NoError(t, client.Health(context.Background()))

	healthy = false
	require.Error(t, client.Health(context.Background()))
}

func TestHealthBoundedWithoutDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(Options{BaseURL: server.URL}, nil, newTestLogger())
	client.healthTimeout = 20 * time.Millisecond

	start := time.Now()
	err := client.Health(context.Background())
	require.Error(t, err)
	require.Less(t, time.Since(start), 2*time.Second)
}

func TestMergeGuidanceFieldsAreIndependent(t *testing.T) {
	advice := "Wear a hat."
	blank := "   "
	merged := mergeGuidance(AnalyzeResponse{GeneralAdvice: &advice, OutdoorActivities: &blank})

	require.Equal(t, "Wear a hat.", merged.GeneralAdvice)
	require.Equal(t, FallbackOutdoorActivities, merged.OutdoorActivities)
	require.Equal(t, FallbackHealthImplications, merged.HealthImplications)
	require.Equal(t, FallbackSensitiveGroups, merged.SensitiveGroups)
	require.Equal(t, FallbackProtectiveMeasures, merged.ProtectiveMeasures)
	require.Equal(t, FallbackMaskRecommendation, merged.MaskRecommendation)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubObserver struct {
	observed int
	errors   []string
}

func (s *stubObserver) ObserveRemote(time.Duration) { s.observed++ }

func (s *stubObserver) RecordRemoteError(kind string) { s.errors = append(s.errors, kind) }
