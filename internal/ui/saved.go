package ui

import (
	"fmt"
	"strings"

	"nearby/internal/model"
	"nearby/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// SavedModel lists bookmarked places.
type SavedModel struct {
	listCursor

	rows []model.SavedPlace
}

// NewSavedModel creates a new saved places model.
func NewSavedModel(rows []model.SavedPlace) *SavedModel {
	return &SavedModel{rows: append([]model.SavedPlace(nil), rows...)}
}

// Index maps place IDs to saved row IDs.
func (m *SavedModel) Index() map[string]int64 {
	idx := make(map[string]int64, len(m.rows))
	for _, r := range m.rows {
		idx[r.PlaceID] = r.ID
	}
	return idx
}

// Selected returns the saved place under the cursor.
func (m *SavedModel) Selected() (model.SavedPlace, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return model.SavedPlace{}, false
	}
	return m.rows[m.cursor], true
}

// Len returns the number of rows.
func (m *SavedModel) Len() int { return len(m.rows) }

// MoveDown moves the cursor down.
func (m *SavedModel) MoveDown() { m.listCursor.MoveDown(len(m.rows)) }

// JumpToBottom jumps to the last item.
func (m *SavedModel) JumpToBottom() { m.listCursor.JumpToBottom(len(m.rows)) }

// HalfPageDown moves down half a page.
func (m *SavedModel) HalfPageDown(pageSize int) { m.listCursor.HalfPageDown(len(m.rows), pageSize) }

// View renders the saved list. Distances are shown when center is known.
func (m *SavedModel) View(width, height int, center *model.Coordinates) string {
	if len(m.rows) == 0 {
		emptyMsg := `    No saved places yet.
    Open a place on the Nearby tab and press  f  to save it.`
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render(emptyMsg)
	}
	m.clamp(len(m.rows))

	widths := fitWidths([]int{24, 12, 8, 10, 10, 20}, width-2)
	headers := []string{"name", "category", "rating", "dist", "saved", "vicinity"}
	for i := range headers {
		headers[i] = formatHeaderLabel(headers[i])
	}
	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := height - 3
	m.viewportHeight = visibleHeight
	var rows []string
	for i := m.offset; i < len(m.rows) && i < m.offset+visibleHeight; i++ {
		row := m.rows[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}

		dist := "—"
		if center != nil {
			dist = util.FormatDistance(distanceMeters(*center, model.Coordinates{Latitude: row.Latitude, Longitude: row.Longitude}))
		}
		cells := []string{
			util.TruncateString(row.Name, widths[0]),
			model.Category(row.Category).Label(),
			util.FormatRating(row.Rating),
			dist,
			util.FormatDateHuman(row.CreatedAt),
			util.TruncateString(row.Vicinity, widths[5]),
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	status := StatusBarStyle.Render(fmt.Sprintf("%d saved  ·  row %d/%d", len(m.rows), m.cursor+1, len(m.rows)))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
	return fillHeight(content, status, height)
}
