package ui

import (
	"strings"
	"testing"

	"nearby/internal/model"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerLabel(t *testing.T) {
	assert.Equal(t, "1", markerLabel(0))
	assert.Equal(t, "9", markerLabel(8))
	assert.Equal(t, "a", markerLabel(9))
	assert.Equal(t, "z", markerLabel(34))
	assert.Equal(t, "*", markerLabel(35))
}

func TestMapGridProjection(t *testing.T) {
	g := newMapGrid(sf, 1000, 21, 11)

	x, y, ok := g.project(sf.Point())
	require.True(t, ok)
	assert.Equal(t, 10, x)
	assert.Equal(t, 5, y)

	x, y, ok = g.project(orb.Point{g.bound.Min.Lon(), g.bound.Max.Lat()})
	require.True(t, ok)
	assert.Equal(t, 0, x)
	assert.Equal(t, 0, y)

	x, y, ok = g.project(orb.Point{g.bound.Max.Lon(), g.bound.Min.Lat()})
	require.True(t, ok)
	assert.Equal(t, 20, x)
	assert.Equal(t, 10, y)

	_, _, ok = g.project(orb.Point{sf.Longitude, sf.Latitude + 1})
	assert.False(t, ok)
}

func TestMapGridDrawsRadiusRing(t *testing.T) {
	g := newMapGrid(sf, 1000, 21, 11)
	ring := 0
	for _, row := range g.cells {
		for _, c := range row {
			if c.glyph == mapRingGlyph {
				ring++
			}
		}
	}
	assert.Greater(t, ring, 0)
	assert.Equal(t, ' ', g.cells[5][10].glyph, "center is inside the ring")
}

func TestRenderMapMarkers(t *testing.T) {
	near := model.Place{ID: "a", Name: "A", Location: model.Coordinates{Latitude: 37.772, Longitude: -122.412}}
	far := model.Place{ID: "b", Name: "B", Location: model.Coordinates{Latitude: 38.5, Longitude: -122.41}}

	out := renderMap(sf, 2000, []model.Place{near, far}, "", 60, 20)
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2 places")
	assert.Contains(t, out, "1 off map")
}

func TestRenderMapTooSmall(t *testing.T) {
	assert.Empty(t, renderMap(sf, 2000, nil, "", 6, 3))
}

func TestDistanceMeters(t *testing.T) {
	d := distanceMeters(sf, model.Coordinates{Latitude: 37.78, Longitude: -122.41})
	// 0.01 degrees of latitude is about 1.1 km.
	assert.InDelta(t, 1112, d, 10)
	assert.Zero(t, distanceMeters(sf, sf))
}

func TestNearbyModelSortByDistance(t *testing.T) {
	farther := model.Place{ID: "far", Location: model.Coordinates{Latitude: 37.80, Longitude: -122.41}}
	closer := model.Place{ID: "near", Location: model.Coordinates{Latitude: 37.771, Longitude: -122.41}}

	m := NewNearbyModel(false)
	m.SetPlaces([]model.Place{farther, closer}, sf, map[string]int64{"near": 1})

	first, _ := m.Selected()
	assert.Equal(t, "far", first.ID)

	assert.True(t, m.ToggleSort())
	first, _ = m.Selected()
	assert.Equal(t, "far", first.ID, "cursor follows the selected place")
	assert.Equal(t, "near", m.rows[0].place.ID)
	assert.Equal(t, "2", m.rows[0].label, "labels keep response order")
	assert.True(t, m.rows[0].saved)

	assert.False(t, m.ToggleSort())
	assert.Equal(t, "far", m.rows[0].place.ID)

	view := m.View(100, 10, "")
	assert.True(t, strings.Contains(view, "2 places"))
}
