package ui

import (
	"fmt"
	"strconv"
	"strings"

	"nearby/internal/places"
	"nearby/internal/util"

	"github.com/charmbracelet/lipgloss"
)

// RequestsModel shows recent places API calls, newest first.
type RequestsModel struct {
	listCursor

	calls *places.CallLog
}

// NewRequestsModel creates a view over calls. calls may be nil.
func NewRequestsModel(calls *places.CallLog) *RequestsModel {
	return &RequestsModel{calls: calls}
}

func (m *RequestsModel) entries() []places.Call {
	if m.calls == nil {
		return nil
	}
	return m.calls.Entries()
}

// MoveDown moves the cursor down.
func (m *RequestsModel) MoveDown() { m.listCursor.MoveDown(len(m.entries())) }

// JumpToBottom jumps to the last item.
func (m *RequestsModel) JumpToBottom() { m.listCursor.JumpToBottom(len(m.entries())) }

// HalfPageDown moves down half a page.
func (m *RequestsModel) HalfPageDown(pageSize int) {
	m.listCursor.HalfPageDown(len(m.entries()), pageSize)
}

// View renders the call log.
func (m *RequestsModel) View(width, height int) string {
	entries := m.entries()
	if len(entries) == 0 {
		return EmptyStateStyle.
			Width(width).
			Height(height).
			Render("    No requests yet.")
	}
	m.clamp(len(entries))

	widths := fitWidths([]int{10, 12, 6, 8, 30}, width-2)
	headers := []string{"time", "endpoint", "status", "took", "detail"}
	for i := range headers {
		headers[i] = formatHeaderLabel(headers[i])
	}
	header := renderTableRow(headers, widths, TableHeaderStyle)
	divider := renderTableDivider(widths)

	visibleHeight := height - 3
	m.viewportHeight = visibleHeight
	var rows []string
	failures := 0
	for _, e := range entries {
		if e.Error != "" {
			failures++
		}
	}
	for i := m.offset; i < len(entries) && i < m.offset+visibleHeight; i++ {
		e := entries[i]
		style := NormalRowStyle
		if i == m.cursor {
			style = SelectedRowStyle
		}

		status := "—"
		if e.Status != 0 {
			status = strconv.Itoa(e.Status)
		}
		detail := e.URL
		if e.Error != "" {
			detail = e.Error
			if i != m.cursor {
				status = lipgloss.NewStyle().Foreground(ColorRed).Render(status)
			}
		}
		cells := []string{
			e.Time.Local().Format("15:04:05"),
			e.Endpoint,
			status,
			util.FormatDuration(e.Duration),
			util.TruncateString(detail, widths[4]),
		}
		rows = append(rows, renderTableRow(cells, widths, style))
	}

	status := StatusBarStyle.Render(fmt.Sprintf("%d requests  ·  %d failed  ·  key redacted", len(entries), failures))
	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		divider,
		strings.Join(rows, "\n"),
	)
	return fillHeight(content, status, height)
}
