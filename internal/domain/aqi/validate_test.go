package aqi

import (
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/aqi-advisor/pkg/errors"
)

func TestValidateAccepts(t *testing.T) {
	q, err := Validate(RawInput{City: "  Delhi ", AQI: " 275 ", TimeOfDay: "Evening"}, VariantLocal)
	require.NoError(t, err)
	require.Equal(t, Query{City: "Delhi", AQI: 275, TimeOfDay: Evening}, q)

	q, err = Validate(RawInput{City: "Delhi", AQI: "0", Profile: "Heart  Disease"}, VariantRemote)
	require.NoError(t, err)
	require.Equal(t, ProfileHeartDisease, q.Profile)
	require.Equal(t, 0, q.AQI)
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name    string
		raw     RawInput
		variant Variant
		want    string
	}{
		{"empty city", RawInput{City: "", AQI: "10", TimeOfDay: "morning"}, VariantLocal, MsgCityRequired},
		{"whitespace city", RawInput{City: "   ", AQI: "10", TimeOfDay: "morning"}, VariantLocal, MsgCityRequired},
		{"non numeric aqi", RawInput{City: "Delhi", AQI: "abc", TimeOfDay: "morning"}, VariantLocal, MsgInvalidAQI},
		{"fractional aqi", RawInput{City: "Delhi", AQI: "12.5", TimeOfDay: "morning"}, VariantLocal, MsgInvalidAQI},
		{"negative aqi", RawInput{City: "Delhi", AQI: "-1", TimeOfDay: "morning"}, VariantLocal, MsgInvalidAQI},
		{"aqi above range", RawInput{City: "Delhi", AQI: "501", TimeOfDay: "morning"}, VariantLocal, MsgInvalidAQI},
		{"missing time of day", RawInput{City: "Delhi", AQI: "10"}, VariantLocal, MsgTimeOfDayMissing},
		{"unknown profile", RawInput{City: "Delhi", AQI: "10", Profile: "astronaut"}, VariantRemote, MsgInvalidProfile},
		{"first failure wins", RawInput{City: "", AQI: "abc"}, VariantLocal, MsgCityRequired},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Validate(tc.raw, tc.variant)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.Equal(t, tc.want, err.Error())
		})
	}
}

func TestValidateMessagesAreDistinct(t *testing.T) {
	msgs := map[string]struct{}{}
	for _, m := range []string{MsgCityRequired, MsgInvalidAQI, MsgTimeOfDayMissing, MsgInvalidProfile} {
		msgs[m] = struct{}{}
	}
	require.Len(t, msgs, 4)
}

func TestValidateRemoteDoesNotRequireTimeOfDay(t *testing.T) {
	q, err := Validate(RawInput{City: "Delhi", AQI: "42"}, VariantRemote)
	require.NoError(t, err)
	require.Equal(t, ProfileGeneral, q.Profile)
	require.Empty(t, q.TimeOfDay)
}

func TestParseVariant(t *testing.T) {
	v, err := ParseVariant("", VariantRemote)
	require.NoError(t, err)
	require.Equal(t, VariantRemote, v)

	v, err = ParseVariant("", "")
	require.NoError(t, err)
	require.Equal(t, VariantLocal, v)

	v, err = ParseVariant(" LOCAL ", VariantRemote)
	require.NoError(t, err)
	require.Equal(t, VariantLocal, v)

	_, err = ParseVariant("hybrid", VariantLocal)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}
