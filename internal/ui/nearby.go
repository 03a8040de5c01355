package ui

import (
	"fmt"
	"sort"
	"strings"

	"nearby/internal/model"
	"nearby/internal/util"

	"github.com/charmbracelet/lipgloss"
)

type nearbyRow struct {
	label    string
	place    model.Place
	distance float64
	saved    bool
}

// NearbyModel is the result list of the current search.
type NearbyModel struct {
	listCursor

	rows           []nearbyRow
	sortByDistance bool
}

// NewNearbyModel creates an empty result list.
func NewNearbyModel(sortByDistance bool) *NearbyModel {
	return &NearbyModel{sortByDistance: sortByDistance}
}

// SetPlaces replaces the rows. Marker labels follow the order the places
// were returned in, whatever the list order.
func (m *NearbyModel) SetPlaces(places []model.Place, center model.Coordinates, saved map[string]int64) {
	m.rows = make([]nearbyRow, len(places))
	for i, p := range places {
		_, isSaved := saved[p.ID]
		m.rows[i] = nearbyRow{
			label:    markerLabel(i),
			place:    p,
			distance: distanceMeters(center, p.Location),
			saved:    isSaved,
		}
	}
	m.rebuild()
	m.JumpToTop()
}

// MarkSaved refreshes the saved flag on each row.
func (m *NearbyModel) MarkSaved(saved map[string]int64) {
	for i := range m.rows {
		_, m.rows[i].saved = saved[m.rows[i].place.ID]
	}
}

// ToggleSort switches between response order and distance order.
func (m *NearbyModel) ToggleSort() bool {
	var selectedID string
	if p, ok := m.Selected(); ok {
		selectedID = p.ID
	}
	m.sortByDistance = !m.sortByDistance
	m.rebuild()
	for i, r := range m.rows {
		if r.place.ID == selectedID {
			m.cursor = i
			break
		}
	}
	m.clamp(len(m.rows))
	return m.sortByDistance
}

func (m *NearbyModel) rebuild() {
	if m.sortByDistance {
		sort.SliceStable(m.rows, func(i, j int) bool {
			return m.rows[i].distance < m.rows[j].distance
		})
	} else {
		sort.SliceStable(m.rows, func(i, j int) bool {
			return labelOrder(m.rows[i].label) < labelOrder(m.rows[j].label)
		})
	}
	m.clamp(len(m.rows))
}

func labelOrder(label string) int {
	switch c := label[0]; {
	case c >= '1' && c <= '9':
		return int(c - '1')
	case c >= 'a' && c <= 'z':
		return 9 + int(c-'a')
	default:
		return 1 << 30
	}
}

// Selected returns the place under the cursor.
func (m *NearbyModel) Selected() (model.Place, bool) {
	if len(m.rows) == 0 || m.cursor >= len(m.rows) {
		return model.Place{}, false
	}
	return m.rows[m.cursor].place, true
}

// SelectLabel moves the cursor to the row with the given marker label.
func (m *NearbyModel) SelectLabel(label string) (model.Place, bool) {
	for i, r := range m.rows {
		if r.label == label {
			m.cursor = i
			m.clamp(len(m.rows))
			return r.place, true
		}
	}
	return model.Place{}, false
}

// Len returns the number of rows.
func (m *NearbyModel) Len() int { return len(m.rows) }

// MoveDown moves the cursor down.
func (m *NearbyModel) MoveDown() { m.listCursor.MoveDown(len(m.rows)) }

// JumpToBottom jumps to the last item.
func (m *NearbyModel) JumpToBottom() { m.listCursor.JumpToBottom(len(m.rows)) }

// HalfPageDown moves down half a page.
func (m *NearbyModel) HalfPageDown(pageSize int) { m.listCursor.HalfPageDown(len(m.rows), pageSize) }

// View renders the list. emptyMsg is shown when there are no rows.
func (m *NearbyModel) View(width, height int, emptyMsg string) string {
	if len(m.rows) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render(emptyMsg)
	}

	distHeader := "dist"
	if m.sortByDistance {
		distHeader += " ↑"
	}
	widths := fitWidths([]int{4, 24, 10, 3}, width-2)
	if width >= 80 {
		widths = fitWidths([]int{4, 26, 10, 3, 24}, width-2)
	}
	headers := []string{"#", "name", distHeader, "", "vicinity"}[:len(widths)]
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
		savedCell := ""
		if row.saved {
			savedCell = "♥"
		}
		cells := []string{
			row.label,
			util.TruncateString(row.place.Name, widths[1]),
			util.FormatDistance(row.distance),
			savedCell,
		}
		if len(widths) > 4 {
			cells = append(cells, util.TruncateString(row.place.Vicinity, widths[4]))
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	order := "response order"
	if m.sortByDistance {
		order = "nearest first"
	}
	status := StatusBarStyle.Render(fmt.Sprintf("%d places  ·  row %d/%d  ·  %s", len(m.rows), m.cursor+1, len(m.rows), order))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
	return fillHeight(content, status, height)
}
