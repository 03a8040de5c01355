package ui

import (
	"strings"

	"nearby/internal/model"
	"nearby/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// CategoryPicker cycles through the enumerated categories. It can only ever
// hold one of model.Categories.
type CategoryPicker struct {
	index int
}

// NewCategoryPicker starts at c, or at the default category if c is unknown.
func NewCategoryPicker(c model.Category) CategoryPicker {
	idx := c.Index()
	if idx < 0 {
		idx = model.DefaultCategory.Index()
	}
	return CategoryPicker{index: idx}
}

// Value returns the selected category.
func (p CategoryPicker) Value() model.Category {
	return model.Categories[p.index]
}

// Next selects the following category, wrapping around.
func (p *CategoryPicker) Next() model.Category {
	p.index = (p.index + 1) % len(model.Categories)
	return p.Value()
}

// Prev selects the preceding category, wrapping around.
func (p *CategoryPicker) Prev() model.Category {
	p.index--
	if p.index < 0 {
		p.index = len(model.Categories) - 1
	}
	return p.Value()
}

// View renders "‹ Cafe ›" with the neighbouring choices dimmed.
func (p CategoryPicker) View() string {
	n := len(model.Categories)
	prev := model.Categories[(p.index-1+n)%n]
	next := model.Categories[(p.index+1)%n]
	return HelpDescStyle.Render(prev.Label()+" ‹ ") +
		BreadcrumbActiveStyle.Bold(true).Render(p.Value().Label()) +
		HelpDescStyle.Render(" › "+next.Label())
}

// RadiusSlider steps the search radius in fixed increments between the
// minimum and maximum radius.
type RadiusSlider struct {
	meters int
}

// NewRadiusSlider snaps meters onto the slider.
func NewRadiusSlider(meters int) RadiusSlider {
	return RadiusSlider{meters: model.ClampRadius(meters)}
}

// Value returns the radius in meters.
func (s RadiusSlider) Value() int {
	return s.meters
}

// Increase widens the radius by one step. It stops at the maximum.
func (s *RadiusSlider) Increase() int {
	s.meters = model.ClampRadius(s.meters + model.RadiusStep)
	return s.meters
}

// Decrease narrows the radius by one step. It stops at the minimum.
func (s *RadiusSlider) Decrease() int {
	s.meters = model.ClampRadius(s.meters - model.RadiusStep)
	return s.meters
}

// View renders a track with one cell per step.
func (s RadiusSlider) View() string {
	steps := (model.MaxRadius - model.MinRadius) / model.RadiusStep
	filled := (s.meters - model.MinRadius) / model.RadiusStep
	track := lipgloss.NewStyle().Foreground(ColorAccent).Render(strings.Repeat("━", filled)) +
		lipgloss.NewStyle().Foreground(ColorYellow).Render("●") +
		HelpDescStyle.Render(strings.Repeat("─", steps-filled))
	return track + " " + NormalRowStyle.Render(util.FormatRadius(s.meters))
}

func renderFilterBar(picker CategoryPicker, slider RadiusSlider, center *model.Coordinates, width int) string {
	parts := []string{
		LabelStyle.Render("Category") + " " + picker.View(),
		LabelStyle.Render("Radius") + " " + slider.View(),
	}
	if center != nil {
		parts = append(parts, HelpDescStyle.Render("@ "+util.FormatCoordinates(*center)))
	}
	return StatusBarStyle.Width(width).Render(strings.Join(parts, "   "))
}
