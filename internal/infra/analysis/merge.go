package analysis

import "strings"

// Fallback texts used when the analysis service omits a field.
const (
	FallbackHealthImplications = "No specific health implications available."
	FallbackGeneralAdvice      = "Follow general air quality guidelines."
	FallbackSensitiveGroups    = "Sensitive groups should take extra precautions."
	FallbackOutdoorActivities  = "Limit outdoor activities based on AQI level."
	FallbackProtectiveMeasures = "Take appropriate protective measures."
	FallbackMaskRecommendation = "Follow mask recommendations based on AQI level."
)

type guidance struct {
	HealthImplications string
	GeneralAdvice      string
	SensitiveGroups    string
	OutdoorActivities  string
	ProtectiveMeasures string
	MaskRecommendation string
}

// mergeGuidance resolves every advisory field on its own: server value when
// present and non-blank, otherwise that field's fallback.
func mergeGuidance(resp AnalyzeResponse) guidance {
	return guidance{
		HealthImplications: orFallback(resp.HealthImplications, FallbackHealthImplications),
		GeneralAdvice:      orFallback(resp.GeneralAdvice, FallbackGeneralAdvice),
		SensitiveGroups:    orFallback(resp.SensitiveGroups, FallbackSensitiveGroups),
		OutdoorActivities:  orFallback(resp.OutdoorActivities, FallbackOutdoorActivities),
		ProtectiveMeasures: orFallback(resp.ProtectiveMeasures, FallbackProtectiveMeasures),
		MaskRecommendation: orFallback(resp.MaskRecommendation, FallbackMaskRecommendation),
	}
}

func orFallback(value *string, fallback string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return fallback
	}
	return *value
}
