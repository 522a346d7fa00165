package aqi

// Template is the static advisory text for one category.
type Template struct {
	HealthImplications    string
	RecommendedActions    []string
	SpecialConsiderations string
	Outlook               string
}

// TimeConsideration describes typical pollution drivers for a time of day.
type TimeConsideration struct {
	Factors []string
	Note    string
}

// The tables below are read-only after init. Lookups hand out copies.

var advisoryTemplates = map[CategoryKey]Template{
	KeyGood: {
		HealthImplications: "Air quality is satisfactory and poses little to no risk to public health.",
		RecommendedActions: []string{
			"All outdoor activities are safe and recommended",
			"No special precautions needed",
			"Good time for outdoor exercise and recreation",
		},
		SpecialConsiderations: "No special considerations required for sensitive groups.",
		Outlook:               "Conditions are expected to remain favorable.",
	},
	KeyModerate: {
		HealthImplications: "Air quality is acceptable for most people. Sensitive individuals may experience minor respiratory discomfort.",
		RecommendedActions: []string{
			"Sensitive individuals should consider reducing prolonged outdoor exertion",
			"General population can proceed with normal activities",
			"Monitor air quality updates throughout the day",
		},
		SpecialConsiderations: "People with asthma, heart conditions, or other respiratory issues should take extra precautions. Children and elderly may experience mild symptoms.",
		Outlook:               "Air quality may vary throughout the day. Check updates before planning extended outdoor activities.",
	},
	KeyUnhealthySensitive: {
		HealthImplications: "Sensitive groups may experience health effects. The general public is less likely to be affected.",
		RecommendedActions: []string{
			"Sensitive groups should reduce outdoor activities, especially prolonged exertion",
			"General population can continue normal activities but should be aware of symptoms",
			"Consider indoor alternatives for sensitive individuals",
			"Keep windows closed and use air purifiers if available",
		},
		SpecialConsiderations: "Children, elderly, and those with pre-existing respiratory or cardiovascular conditions should avoid prolonged outdoor activity. Monitor symptoms closely.",
		Outlook:               "Conditions may persist. Sensitive individuals should check updates before planning outdoor activities.",
	},
	KeyUnhealthy: {
		HealthImplications: "Everyone may begin to experience health effects. Sensitive groups are likely to experience more serious effects.",
		RecommendedActions: []string{
			"Reduce outdoor activities, especially prolonged exertion",
			"Sensitive groups should avoid outdoor activities",
			"Keep windows closed and use air purifiers if available",
			"Consider postponing non-essential outdoor activities",
			"If outdoor activity is necessary, use N95 masks",
		},
		SpecialConsiderations: "Children, elderly, and those with pre-existing conditions should remain indoors. Monitor symptoms and seek medical attention if severe.",
		Outlook:               "Conditions are expected to persist. Air quality may improve, but check updates before planning activities.",
	},
	KeyVeryUnhealthy: {
		HealthImplications: "Health alert: everyone may experience more serious health effects. Sensitive groups are at high risk.",
		RecommendedActions: []string{
			"Avoid all outdoor activities",
			"Stay indoors with windows and doors closed",
			"Use air purifiers if available",
			"If outdoor activity is unavoidable, use N95 masks and limit time outside",
			"Postpone all non-essential outdoor activities",
		},
		SpecialConsiderations: "All sensitive groups must remain indoors. General population should also avoid outdoor exposure. Seek medical attention if experiencing severe symptoms.",
		Outlook:               "Conditions are severe and expected to persist. Monitor updates closely and follow health advisories.",
	},
	KeyHazardous: {
		HealthImplications: "Health warning of emergency conditions. The entire population is likely to be affected.",
		RecommendedActions: []string{
			"Remain indoors at all times",
			"Keep all windows and doors closed",
			"Use air purifiers on high settings",
			"Avoid any outdoor exposure",
			"Follow emergency health advisories from local authorities",
			"Consider relocating if conditions persist and you have respiratory conditions",
		},
		SpecialConsiderations: "This is an emergency situation. All individuals, especially sensitive groups, must remain indoors. Seek immediate medical attention if experiencing severe respiratory distress.",
		Outlook:               "Emergency conditions are present. Follow all local health advisories and emergency protocols.",
	},
}

var timeConsiderations = map[TimeOfDay]TimeConsideration{
	Morning: {
		Factors: []string{"Higher traffic emissions", "Temperature inversions", "Rush hour impacts"},
		Note:    "Morning conditions often show higher pollutant concentrations due to traffic and weather patterns.",
	},
	Afternoon: {
		Factors: []string{"Photochemical reactions", "Wind patterns", "Temperature effects"},
		Note:    "Afternoon conditions may improve with increased wind and temperature, but photochemical reactions can increase ozone levels.",
	},
	Evening: {
		Factors: []string{"Rush hour impacts", "Pollutant settling", "Reduced dispersion"},
		Note:    "Evening conditions may show elevated levels from afternoon rush hour and reduced atmospheric mixing.",
	},
	Night: {
		Factors: []string{"Temperature inversions", "Reduced dispersion", "Accumulation"},
		Note:    "Nighttime conditions often show higher concentrations due to temperature inversions and reduced atmospheric mixing.",
	},
}

// Mask ladder keyed by category, same boundaries as the category table.
var maskRecommendations = map[CategoryKey]string{
	KeyGood:               "No mask needed. Air quality is good.",
	KeyModerate:           "Optional: N95 mask for sensitive individuals during prolonged outdoor activities.",
	KeyUnhealthySensitive: "Recommended: N95 or KN95 mask for sensitive groups and during outdoor activities.",
	KeyUnhealthy:          "Strongly Recommended: N95 or KN95 mask for all individuals, especially during outdoor activities.",
	KeyVeryUnhealthy:      "Essential: N95 or KN95 mask required for all outdoor activities. Consider P100 respirator for extended exposure.",
	KeyHazardous:          "Critical: P100 respirator or equivalent required. Minimize all outdoor exposure.",
}

// TemplateFor returns a copy of the advisory template for key.
func TemplateFor(key CategoryKey) (Template, bool) {
	t, ok := advisoryTemplates[key]
	if !ok {
		return Template{}, false
	}
	t.RecommendedActions = cloneStrings(t.RecommendedActions)
	return t, true
}

// ConsiderationFor returns the time-of-day entry for key, falling back to
// morning for empty or unknown keys. The returned key is the one applied.
func ConsiderationFor(key TimeOfDay) (TimeOfDay, TimeConsideration) {
	tc, ok := timeConsiderations[key]
	if !ok {
		key = Morning
		tc = timeConsiderations[Morning]
	}
	tc.Factors = cloneStrings(tc.Factors)
	return key, tc
}

// IsTimeOfDay reports whether key is one of the four recognized values.
func IsTimeOfDay(key TimeOfDay) bool {
	_, ok := timeConsiderations[key]
	return ok
}

// MaskRecommendation returns the mask guidance for a validated AQI.
func MaskRecommendation(aqi int) string {
	return maskRecommendations[Categorize(aqi).Key]
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
