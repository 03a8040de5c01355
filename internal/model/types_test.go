package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinatesString(t *testing.T) {
	tests := []struct {
		in   Coordinates
		want string
	}{
		{Coordinates{37.77, -122.41}, "37.77,-122.41"},
		{Coordinates{0, 0}, "0,0"},
		{Coordinates{51.5074, -0.1278}, "51.5074,-0.1278"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.in.String())
	}
}

func TestCoordinatesPointIsLonLat(t *testing.T) {
	p := Coordinates{Latitude: 37.77, Longitude: -122.41}.Point()
	assert.Equal(t, -122.41, p.Lon())
	assert.Equal(t, 37.77, p.Lat())
}

func TestClampRadius(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-5, MinRadius},
		{0, MinRadius},
		{1000, 1000},
		{1499, 1000},
		{1500, 2000},
		{5000, 5000},
		{19999, 20000},
		{25000, MaxRadius},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClampRadius(tt.in), "ClampRadius(%d)", tt.in)
	}
}

func TestClampRadiusAlwaysOnStep(t *testing.T) {
	for m := -2000; m <= 30000; m += 137 {
		got := ClampRadius(m)
		assert.GreaterOrEqual(t, got, MinRadius)
		assert.LessOrEqual(t, got, MaxRadius)
		assert.Zero(t, got%RadiusStep, "ClampRadius(%d) = %d not on step", m, got)
	}
}

func TestCategories(t *testing.T) {
	assert.Len(t, Categories, 8)
	assert.Equal(t, CategoryRestaurant, Categories[0])
	for i, c := range Categories {
		assert.True(t, c.Valid())
		assert.Equal(t, i, c.Index())
		assert.NotEmpty(t, c.Label())
	}

	unknown := Category("museum")
	assert.False(t, unknown.Valid())
	assert.Equal(t, -1, unknown.Index())
	assert.Equal(t, "museum", unknown.Label())
	assert.Equal(t, "Gas Station", CategoryGasStation.Label())
}

func TestSearchCriteriaComparable(t *testing.T) {
	a := SearchCriteria{Center: Coordinates{1, 2}, RadiusMeters: 5000, Category: CategoryCafe}
	b := a
	assert.True(t, a == b)
	b.RadiusMeters = 6000
	assert.False(t, a == b)
}
