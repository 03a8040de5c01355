package ui

import (
	"strings"

	"nearby/internal/model"
	"nearby/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// DetailModel holds the photo preview for the selected place. Selection
// state itself lives in search.Selection.
type DetailModel struct {
	photoRef     string
	photoArt     string
	photoErr     error
	photoLoading bool
}

// Reset drops the photo of the previous selection.
func (d *DetailModel) Reset() {
	*d = DetailModel{}
}

// StartPhoto marks ref as loading.
func (d *DetailModel) StartPhoto(ref string) {
	d.photoRef = ref
	d.photoArt = ""
	d.photoErr = nil
	d.photoLoading = true
}

// ApplyPhoto stores a rendered photo if it belongs to the current request.
func (d *DetailModel) ApplyPhoto(msg model.PhotoLoadedMsg) bool {
	if !d.photoLoading || msg.Reference != d.photoRef {
		return false
	}
	d.photoLoading = false
	d.photoArt = msg.Art
	d.photoErr = msg.Err
	return true
}

type detailView struct {
	place    model.Place
	hasPlace bool
	state    model.SelectionState
	err      error
	distance float64
	saved    bool
	spinner  string
}

// View renders the detail panel.
func (d *DetailModel) View(v detailView, width, height int) string {
	shortcuts := HelpDescStyle.Render("f save  p photo  esc close")
	header := lipgloss.NewStyle().
		Width(width - 4).
		Align(lipgloss.Right).
		Render(shortcuts)

	var sections []string

	if !v.hasPlace {
		sections = append(sections, HelpDescStyle.Render("Select a place to see its details."))
		return lipgloss.JoinVertical(lipgloss.Left, header, PanelStyle.Width(width-4).Render(strings.Join(sections, "\n")))
	}

	title := LabelStyle.Render(v.place.Name)
	if v.saved {
		title += " " + lipgloss.NewStyle().Foreground(ColorRed).Render("♥")
	}
	sections = append(sections, title)

	var fields []string
	fields = append(fields, renderField("Vicinity", v.place.Vicinity))
	fields = append(fields, renderField("Distance", util.FormatDistance(v.distance)))

	switch {
	case v.state.DetailsLoading:
		fields = append(fields, v.spinner+" "+HelpDescStyle.Render("Loading details..."))
	case v.state.Details == nil:
		msg := "Details unavailable."
		if v.err != nil {
			msg = "Details unavailable: " + v.err.Error()
		}
		fields = append(fields, ErrorStyle.Padding(0).Render(msg))
	default:
		det := v.state.Details
		fields = append(fields, renderField("Address", det.FormattedAddress))
		rating := util.FormatRating(det.Rating)
		if det.Rating != nil {
			rating = lipgloss.NewStyle().Foreground(ColorYellow).Render(util.FormatRatingStars(det.Rating)) + " " + rating
		}
		fields = append(fields, LabelStyle.Render("Rating:")+" "+rating)
		if det.PhotoReference == "" {
			fields = append(fields, renderField("Photo", "none"))
		}
	}
	sections = append(sections, strings.Join(fields, "\n"))

	switch {
	case d.photoLoading:
		sections = append(sections, v.spinner+" "+HelpDescStyle.Render("Loading photo..."))
	case d.photoErr != nil:
		sections = append(sections, ErrorStyle.Padding(0).Render("Photo failed: "+d.photoErr.Error()))
	case d.photoArt != "":
		sections = append(sections, d.photoArt)
	case v.state.Details != nil && v.state.Details.PhotoReference != "":
		sections = append(sections, HelpDescStyle.Render("Press p to load the photo."))
	}

	info := PanelStyle.
		Width(width - 4).
		MaxHeight(max(0, height-1)).
		Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(lipgloss.Left, header, info)
}
