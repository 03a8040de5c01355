package ui

import (
	"fmt"
	"math"
	"strings"

	"nearby/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

const (
	mapCenterGlyph = '@'
	mapRingGlyph   = '·'
)

var (
	mapCenterStyle   = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	mapMarkerStyle   = lipgloss.NewStyle().Foreground(ColorAccent).Bold(true)
	mapSelectedStyle = lipgloss.NewStyle().Foreground(ColorBase).Background(ColorYellow).Bold(true)
	mapRingStyle     = lipgloss.NewStyle().Foreground(ColorSurface)
)

// markerLabel returns the single-character label for the i-th result.
func markerLabel(i int) string {
	switch {
	case i < 9:
		return string(rune('1' + i))
	case i < 9+26:
		return string(rune('a' + i - 9))
	default:
		return "*"
	}
}

// distanceMeters is the great-circle distance between two coordinates.
func distanceMeters(from, to model.Coordinates) float64 {
	return geo.Distance(from.Point(), to.Point())
}

type mapCell struct {
	glyph rune
	style *lipgloss.Style
}

// mapGrid projects places onto a character grid covering the square bound
// around the search center.
type mapGrid struct {
	width, height int
	bound         orb.Bound
	cells         [][]mapCell
	outside       int
}

func newMapGrid(center model.Coordinates, radiusMeters, width, height int) *mapGrid {
	g := &mapGrid{
		width:  width,
		height: height,
		bound:  geo.NewBoundAroundPoint(center.Point(), float64(radiusMeters)),
		cells:  make([][]mapCell, height),
	}
	for y := range g.cells {
		g.cells[y] = make([]mapCell, width)
		for x := range g.cells[y] {
			g.cells[y][x] = mapCell{glyph: ' '}
		}
	}
	g.drawRing(center, float64(radiusMeters))
	return g
}

// project returns the cell for p, or ok=false when p lies outside the bound.
func (g *mapGrid) project(p orb.Point) (x, y int, ok bool) {
	if !g.bound.Contains(p) || g.width < 1 || g.height < 1 {
		return 0, 0, false
	}
	lonSpan := g.bound.Max.Lon() - g.bound.Min.Lon()
	latSpan := g.bound.Max.Lat() - g.bound.Min.Lat()
	if lonSpan <= 0 || latSpan <= 0 {
		return 0, 0, false
	}
	fx := (p.Lon() - g.bound.Min.Lon()) / lonSpan
	fy := (g.bound.Max.Lat() - p.Lat()) / latSpan
	x = int(math.Round(fx * float64(g.width-1)))
	y = int(math.Round(fy * float64(g.height-1)))
	return x, y, true
}

// unproject returns the point at the center of a cell.
func (g *mapGrid) unproject(x, y int) orb.Point {
	lonSpan := g.bound.Max.Lon() - g.bound.Min.Lon()
	latSpan := g.bound.Max.Lat() - g.bound.Min.Lat()
	fx, fy := 0.5, 0.5
	if g.width > 1 {
		fx = float64(x) / float64(g.width-1)
	}
	if g.height > 1 {
		fy = float64(y) / float64(g.height-1)
	}
	return orb.Point{g.bound.Min.Lon() + fx*lonSpan, g.bound.Max.Lat() - fy*latSpan}
}

func (g *mapGrid) drawRing(center model.Coordinates, radius float64) {
	if g.width < 2 || g.height < 2 {
		return
	}
	cellMeters := math.Max(2*radius/float64(g.width-1), 2*radius/float64(g.height-1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			d := geo.Distance(center.Point(), g.unproject(x, y))
			if math.Abs(d-radius) <= cellMeters/2 {
				g.cells[y][x] = mapCell{glyph: mapRingGlyph, style: &mapRingStyle}
			}
		}
	}
}

func (g *mapGrid) put(p orb.Point, glyph rune, style *lipgloss.Style) bool {
	x, y, ok := g.project(p)
	if !ok {
		return false
	}
	g.cells[y][x] = mapCell{glyph: glyph, style: style}
	return true
}

func (g *mapGrid) String() string {
	lines := make([]string, g.height)
	for y, row := range g.cells {
		var b strings.Builder
		for _, c := range row {
			if c.style != nil {
				b.WriteString(c.style.Render(string(c.glyph)))
			} else {
				b.WriteRune(c.glyph)
			}
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// renderMap draws the search area with the center marker and one labelled
// marker per place. The selected place is drawn last so it stays visible
// when markers overlap.
func renderMap(center model.Coordinates, radiusMeters int, places []model.Place, selectedID string, width, height int) string {
	innerW := width - 4
	innerH := height - 3
	if innerW < 8 || innerH < 4 {
		return ""
	}

	g := newMapGrid(center, radiusMeters, innerW, innerH)
	selected := -1
	for i, p := range places {
		if p.ID == selectedID {
			selected = i
			continue
		}
		if !g.put(p.Location.Point(), []rune(markerLabel(i))[0], &mapMarkerStyle) {
			g.outside++
		}
	}
	g.put(center.Point(), mapCenterGlyph, &mapCenterStyle)
	if selected >= 0 {
		if !g.put(places[selected].Location.Point(), []rune(markerLabel(selected))[0], &mapSelectedStyle) {
			g.outside++
		}
	}

	legend := HelpDescStyle.Render(fmt.Sprintf("@ you  ·  %d places", len(places)))
	if g.outside > 0 {
		legend += HelpDescStyle.Render(fmt.Sprintf("  ·  %d off map", g.outside))
	}

	return PanelStyle.Padding(0, 1).Width(width - 2).Render(
		lipgloss.JoinVertical(lipgloss.Left, g.String(), legend),
	)
}
