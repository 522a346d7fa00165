package aqi

import "strings"

// CategoryKey identifies one of the six AQI bands.
type CategoryKey string

const (
	KeyGood               CategoryKey = "good"
	KeyModerate           CategoryKey = "moderate"
	KeyUnhealthySensitive CategoryKey = "unhealthy-sensitive"
	KeyUnhealthy          CategoryKey = "unhealthy"
	KeyVeryUnhealthy      CategoryKey = "very-unhealthy"
	KeyHazardous          CategoryKey = "hazardous"
)

// Valid AQI domain, inclusive.
const (
	MinAQI = 0
	MaxAQI = 500
)

// Category is an AQI band with its inclusive range.
type Category struct {
	Key   CategoryKey `json:"key"`
	Label string      `json:"label"`
	Min   int         `json:"min"`
	Max   int         `json:"max"`
	Icon  string      `json:"icon"`
}

// Ascending, contiguous, covering [MinAQI, MaxAQI].
var categories = [...]Category{
	{Key: KeyGood, Label: "Good", Min: 0, Max: 50, Icon: "🟢"},
	{Key: KeyModerate, Label: "Moderate", Min: 51, Max: 100, Icon: "🟡"},
	{Key: KeyUnhealthySensitive, Label: "Unhealthy for Sensitive Groups", Min: 101, Max: 150, Icon: "🟠"},
	{Key: KeyUnhealthy, Label: "Unhealthy", Min: 151, Max: 200, Icon: "🔴"},
	{Key: KeyVeryUnhealthy, Label: "Very Unhealthy", Min: 201, Max: 300, Icon: "🟣"},
	{Key: KeyHazardous, Label: "Hazardous", Min: 301, Max: 500, Icon: "🟤"},
}

// Categorize maps a validated AQI to its band. Callers must reject values
// outside [MinAQI, MaxAQI] first.
func Categorize(aqi int) Category {
	last := len(categories) - 1
	for _, c := range categories[:last] {
		if aqi <= c.Max {
			return c
		}
	}
	return categories[last]
}

// Categories returns a copy of the category table.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryByKey looks up a category by its key.
func CategoryByKey(key CategoryKey) (Category, bool) {
	for _, c := range categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// CategoryFromLabel resolves a free-form label such as the one returned by the
// remote analysis service. Unknown labels resolve to moderate.
func CategoryFromLabel(label string) Category {
	l := strings.ToLower(label)
	var key CategoryKey
	switch {
	case strings.Contains(l, "hazardous"):
		key = KeyHazardous
	case strings.Contains(l, "very") && strings.Contains(l, "unhealthy"):
		key = KeyVeryUnhealthy
	case strings.Contains(l, "unhealthy") && strings.Contains(l, "sensitive"):
		key = KeyUnhealthySensitive
	case strings.Contains(l, "unhealthy"):
		key = KeyUnhealthy
	case strings.Contains(l, "moderate"):
		key = KeyModerate
	case strings.Contains(l, "good"):
		key = KeyGood
	default:
		key = KeyModerate
	}
	c, _ := CategoryByKey(key)
	return c
}
