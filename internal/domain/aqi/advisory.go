package aqi

// ElevatedThreshold triggers the warning indicator. It is independent of the
// category table: 150 is still unhealthy-sensitive but not elevated.
const ElevatedThreshold = 150

// IsElevated reports whether aqi warrants the warning indicator.
func IsElevated(aqi int) bool {
	return aqi > ElevatedThreshold
}

// Generate composes the local advisory for a categorized AQI.
func Generate(category Category, aqi int, city string, timeOfDay TimeOfDay) Result {
	tmpl, _ := TemplateFor(category.Key)
	key, tc := ConsiderationFor(timeOfDay)

	return Result{
		Source:                VariantLocal,
		City:                  city,
		AQI:                   aqi,
		Category:              category.Key,
		Label:                 category.Label,
		Icon:                  category.Icon,
		HealthImplications:    tmpl.HealthImplications,
		RecommendedActions:    tmpl.RecommendedActions,
		SpecialConsiderations: tmpl.SpecialConsiderations,
		TimeOfDay: &TimeOfDayNote{
			Key:     key,
			Note:    tc.Note,
			Factors: tc.Factors,
		},
		Outlook:            tmpl.Outlook,
		MaskRecommendation: maskRecommendations[category.Key],
		Elevated:           IsElevated(aqi),
	}
}
