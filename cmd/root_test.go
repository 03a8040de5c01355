package cmd

import (
	"io"
	"testing"

	"nearby/internal/location"
	"nearby/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestParseArgsDefaults(t *testing.T) {
	config, err := parseArgs(nil, envFrom(nil), io.Discard)
	require.NoError(t, err)

	assert.Empty(t, config.APIKey)
	assert.Equal(t, location.DefaultIPLookupURL, config.LocationURL)
	assert.False(t, config.HasFixedLocation)
	assert.Empty(t, config.Category)
	assert.Zero(t, config.Radius)
}

func TestParseArgsEnvFallbacks(t *testing.T) {
	env := envFrom(map[string]string{
		"GOOGLE_API_KEY":    "  env-key \n",
		"PLACES_BASE_URL":   "http://localhost:9999",
		"NEARBY_LOCATE_URL": "http://localhost:9998/json",
		"NEARBY_LAT":        "37.77",
		"NEARBY_LNG":        "-122.41",
	})
	config, err := parseArgs(nil, env, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "env-key", config.APIKey)
	assert.Equal(t, "http://localhost:9999", config.BaseURL)
	assert.Equal(t, "http://localhost:9998/json", config.LocationURL)
	require.True(t, config.HasFixedLocation)
	assert.Equal(t, model.Coordinates{Latitude: 37.77, Longitude: -122.41}, config.Coordinates())
}

func TestParseArgsFlagsBeatEnv(t *testing.T) {
	env := envFrom(map[string]string{"GOOGLE_API_KEY": "env-key", "NEARBY_LAT": "1", "NEARBY_LNG": "2"})
	config, err := parseArgs([]string{"-key", "flag-key", "-lat", "10", "-lng", "20"}, env, io.Discard)
	require.NoError(t, err)

	assert.Equal(t, "flag-key", config.APIKey)
	assert.Equal(t, 10.0, config.Latitude)
	assert.Equal(t, 20.0, config.Longitude)
}

func TestParseArgsCategoryAndRadius(t *testing.T) {
	config, err := parseArgs([]string{"-category", "Cafe", "-radius", "2600"}, envFrom(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryCafe, config.Category)
	assert.Equal(t, 3000, config.Radius)

	config, err = parseArgs([]string{"-radius", "90000"}, envFrom(nil), io.Discard)
	require.NoError(t, err)
	assert.Equal(t, model.MaxRadius, config.Radius)
}

func TestParseArgsRejectsBadInput(t *testing.T) {
	cases := map[string][]string{
		"unknown category": {"-category", "zoo"},
		"negative radius":  {"-radius", "-5"},
		"lat without lng":  {"-lat", "10"},
		"lat out of range": {"-lat", "91", "-lng", "0"},
		"lng not a number": {"-lat", "0", "-lng", "east"},
		"lat NaN":          {"-lat", "NaN", "-lng", "0"},
		"lng NaN":          {"-lat", "0", "-lng", "nan"},
		"lat infinite":     {"-lat", "+Inf", "-lng", "0"},
		"unknown flag":     {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := parseArgs(args, envFrom(nil), io.Discard)
			assert.Error(t, err)
		})
	}
}
