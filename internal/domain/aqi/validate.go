package aqi

import (
	"strconv"
	"strings"

	apperrors "github.com/yanqian/aqi-advisor/pkg/errors"
)

// User facing validation messages.
const (
	MsgCityRequired     = "Please enter a city name."
	MsgInvalidAQI       = "Please enter a valid AQI value between 0 and 500."
	MsgTimeOfDayMissing = "Please select a time of day."
	MsgInvalidProfile   = "Please select a valid health profile."
	MsgInvalidVariant   = "Please choose either the local or the remote advisory."
)

// Validate is the single gate before categorization. Only the first failing
// check is reported.
func Validate(raw RawInput, variant Variant) (Query, error) {
	city := strings.TrimSpace(raw.City)
	if city == "" {
		return Query{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgCityRequired, nil)
	}

	aqi, err := strconv.Atoi(strings.TrimSpace(raw.AQI))
	if err != nil || aqi < MinAQI || aqi > MaxAQI {
		return Query{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgInvalidAQI, nil)
	}

	q := Query{City: city, AQI: aqi}
	switch variant {
	case VariantRemote:
		profile, ok := ParseProfile(raw.Profile)
		if !ok {
			return Query{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgInvalidProfile, nil)
		}
		q.Profile = profile
	default:
		tod := strings.ToLower(strings.TrimSpace(raw.TimeOfDay))
		if tod == "" {
			return Query{}, apperrors.Wrap(apperrors.CodeInvalidInput, MsgTimeOfDayMissing, nil)
		}
		q.TimeOfDay = TimeOfDay(tod)
	}
	return q, nil
}

// ParseProfile normalizes a profile selector. Empty input means general.
func ParseProfile(raw string) (Profile, bool) {
	clean := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	if clean == "" {
		return ProfileGeneral, true
	}
	for _, p := range Profiles() {
		if Profile(clean) == p {
			return p, true
		}
	}
	return "", false
}

// ParseVariant resolves a variant selector, using def when raw is empty.
func ParseVariant(raw string, def Variant) (Variant, error) {
	switch Variant(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		if def == "" {
			return VariantLocal, nil
		}
		return def, nil
	case VariantLocal:
		return VariantLocal, nil
	case VariantRemote:
		return VariantRemote, nil
	default:
		return "", apperrors.Wrap(apperrors.CodeInvalidInput, MsgInvalidVariant, nil)
	}
}
