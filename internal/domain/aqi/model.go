package aqi

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Variant selects which advisory front-end answers a request.
type Variant string

const (
	VariantLocal  Variant = "local"
	VariantRemote Variant = "remote"
)

// TimeOfDay keys the time-of-day consideration table.
type TimeOfDay string

const (
	Morning   TimeOfDay = "morning"
	Afternoon TimeOfDay = "afternoon"
	Evening   TimeOfDay = "evening"
	Night     TimeOfDay = "night"
)

// Profile is the user health profile sent to the remote analysis service.
type Profile string

const (
	ProfileGeneral      Profile = "general"
	ProfileAsthma       Profile = "asthma"
	ProfileHeartDisease Profile = "heart disease"
	ProfileElderly      Profile = "elderly"
	ProfileChildren     Profile = "children"
	ProfilePregnant     Profile = "pregnant"
)

// Profiles lists the accepted health profiles in display order.
func Profiles() []Profile {
	return []Profile{ProfileGeneral, ProfileAsthma, ProfileHeartDisease, ProfileElderly, ProfileChildren, ProfilePregnant}
}

// Request captures the raw payload accepted by the advisory service.
type Request struct {
	City      string  `json:"city"`
	AQI       RawText `json:"aqi"`
	TimeOfDay string  `json:"timeOfDay"`
	Profile   string  `json:"profile"`
	Variant   string  `json:"variant"`
}

// RawInput is the unvalidated form content.
type RawInput struct {
	City      string
	AQI       string
	TimeOfDay string
	Profile   string
}

// Query is a validated advisory request.
type Query struct {
	City      string
	AQI       int
	TimeOfDay TimeOfDay
	Profile   Profile
}

// Result is the composed advisory returned to API consumers.
type Result struct {
	Source                Variant        `json:"source"`
	City                  string         `json:"city"`
	AQI                   int            `json:"aqi"`
	Category              CategoryKey    `json:"category"`
	Label                 string         `json:"label"`
	Icon                  string         `json:"icon"`
	HealthImplications    string         `json:"healthImplications"`
	RecommendedActions    []string       `json:"recommendedActions,omitempty"`
	SpecialConsiderations string         `json:"specialConsiderations,omitempty"`
	TimeOfDay             *TimeOfDayNote `json:"timeOfDay,omitempty"`
	Outlook               string         `json:"outlook,omitempty"`
	Guidance              *Guidance      `json:"guidance,omitempty"`
	MaskRecommendation    string         `json:"maskRecommendation"`
	Elevated              bool           `json:"elevated"`
}

// TimeOfDayNote is the time-of-day section of a local advisory.
type TimeOfDayNote struct {
	Key     TimeOfDay `json:"key"`
	Note    string    `json:"note"`
	Factors []string  `json:"factors"`
}

// Guidance holds the named sections returned by the remote analysis service.
type Guidance struct {
	GeneralAdvice      string `json:"generalAdvice"`
	SensitiveGroups    string `json:"sensitiveGroups"`
	OutdoorActivities  string `json:"outdoorActivities"`
	ProtectiveMeasures string `json:"protectiveMeasures"`
}

// Config wires runtime settings for the advisory domain.
type Config struct {
	DefaultVariant Variant
}

// RawText accepts either a JSON string or a JSON number and keeps its text.
type RawText string

// UnmarshalJSON implements json.Unmarshaler.
func (r *RawText) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		*r = ""
		return nil
	}
	switch trimmed[0] {
	case '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return err
		}
		*r = RawText(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(trimmed, &n); err != nil {
			return err
		}
		*r = RawText(n.String())
		return nil
	default:
		return errors.New("aqi must be a number or a string")
	}
}
