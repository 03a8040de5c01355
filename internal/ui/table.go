package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// listCursor tracks the cursor and scroll offset of a list view.
type listCursor struct {
	cursor         int
	offset         int
	viewportHeight int
}

func (c *listCursor) viewport() int {
	if c.viewportHeight <= 0 {
		return 10
	}
	return c.viewportHeight
}

func (c *listCursor) clamp(n int) {
	if n == 0 {
		c.cursor = 0
		c.offset = 0
		return
	}
	if c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.offset > c.cursor {
		c.offset = c.cursor
	}
}

// MoveDown moves the cursor down.
func (c *listCursor) MoveDown(n int) {
	if c.cursor < n-1 {
		c.cursor++
		if c.cursor >= c.offset+c.viewport() {
			c.offset++
		}
	}
}

// MoveUp moves the cursor up.
func (c *listCursor) MoveUp() {
	if c.cursor > 0 {
		c.cursor--
		if c.cursor < c.offset {
			c.offset--
		}
	}
}

// JumpToTop jumps to the first item.
func (c *listCursor) JumpToTop() {
	c.cursor = 0
	c.offset = 0
}

// JumpToBottom jumps to the last item.
func (c *listCursor) JumpToBottom(n int) {
	if n > 0 {
		c.cursor = n - 1
		if c.cursor >= c.viewport() {
			c.offset = c.cursor - c.viewport() + 1
		}
	}
}

// HalfPageDown moves down half a page.
func (c *listCursor) HalfPageDown(n, pageSize int) {
	if n == 0 {
		return
	}
	c.cursor += pageSize / 2
	if c.cursor >= n {
		c.cursor = n - 1
	}
	if c.cursor >= c.offset+c.viewport() {
		c.offset = c.cursor - c.viewport() + 1
	}
}

// HalfPageUp moves up half a page.
func (c *listCursor) HalfPageUp(pageSize int) {
	c.cursor -= pageSize / 2
	if c.cursor < 0 {
		c.cursor = 0
	}
	if c.cursor < c.offset {
		c.offset = c.cursor
	}
}

const tableSeparator = " "

func tableSeparatorWidth() int {
	return lipgloss.Width(tableSeparator)
}

func formatHeaderLabel(label string) string {
	return strings.ToUpper(label)
}

func renderTableRow(cells []string, widths []int, style lipgloss.Style) string {
	var parts []string
	for i, cell := range cells {
		if i >= len(widths) {
			continue
		}
		parts = append(parts, style.Width(widths[i]).MaxWidth(widths[i]).Render(cell))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, interleave(parts, style.Render(tableSeparator))...)
}

func renderTableDivider(widths []int) string {
	total := 0
	for _, w := range widths {
		total += w
	}
	if len(widths) > 1 {
		total += (len(widths) - 1) * tableSeparatorWidth()
	}
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(strings.Repeat("─", total))
}

// fitWidths gives any spare width to the last column.
func fitWidths(widths []int, total int) []int {
	out := append([]int(nil), widths...)
	if len(out) == 0 {
		return out
	}
	used := (len(out) - 1) * tableSeparatorWidth()
	for _, w := range out {
		used += w
	}
	if extra := total - used; extra > 0 {
		out[len(out)-1] += extra
	}
	return out
}

func interleave(parts []string, sep string) []string {
	if len(parts) < 2 {
		return parts
	}
	out := make([]string, 0, len(parts)*2-1)
	for i, p := range parts {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, p)
	}
	return out
}

func renderField(label, value string) string {
	if value == "" {
		value = "—"
	}
	return LabelStyle.Render(label+":") + " " + NormalRowStyle.Render(value)
}

// fillHeight pads content so the status line stays at the bottom.
func fillHeight(content, status string, height int) string {
	spacerHeight := max(0, height-lipgloss.Height(content)-lipgloss.Height(status))
	spacer := lipgloss.NewStyle().Height(spacerHeight).Render("")
	return lipgloss.JoinVertical(lipgloss.Left, content, spacer, status)
}
