package ui

import (
	"strings"

	"nearby/internal/model"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(keys KeyMap, screen model.Screen, panelOpen bool, width int) string {
	var bindings []key.Binding
	switch screen {
	case model.ScreenNearby:
		if panelOpen {
			bindings = []key.Binding{keys.Back, keys.Save, keys.Photo, keys.Up, keys.Down, keys.Select}
		} else {
			bindings = []key.Binding{keys.Down, keys.Select, keys.Marker, keys.PrevCategory, keys.NextCategory, keys.RadiusDown, keys.RadiusUp, keys.SortDistance, keys.Refresh}
		}
	case model.ScreenSaved:
		bindings = []key.Binding{keys.Down, keys.Select, keys.Delete, keys.Undo, keys.Redo}
	case model.ScreenRequests:
		bindings = []key.Binding{keys.Down, keys.Up}
	}
	bindings = append(bindings, keys.NextTab, keys.Help, keys.Quit)

	items := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, helpKey(h.Key, h.Desc))
	}
	return renderHelpLine(items, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Navigation"),
		helpSection([]helpItem{
			{"j / ↓", "Move down"},
			{"k / ↑", "Move up"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"ctrl+d / ctrl+u", "Half page down / up"},
			{"tab / shift+tab", "Next / previous tab"},
			{"1 2 3", "Nearby / Saved / Requests"},
			{"u / ctrl+r", "Undo / redo"},
			{"q", "Quit"},
			{"?", "Toggle help"},
		}),
		titleSection("Nearby"),
		helpSection([]helpItem{
			{"[ / ]", "Previous / next category"},
			{"- / +", "Narrow / widen radius"},
			{"s", "Toggle nearest-first order"},
			{"r", "Search again (retry location if it failed)"},
			{"enter / l", "Open place details"},
			{"m then label", "Open a map marker (m3, mb)"},
			{"esc / h", "Close details"},
			{"f", "Save selected place"},
			{"p", "Load place photo"},
		}),
		titleSection("Saved"),
		helpSection([]helpItem{
			{"enter / l", "Show on the Nearby tab"},
			{"d", "Remove (u to undo)"},
		}),
		titleSection("Map"),
		helpSection([]helpItem{
			{"@", "Your location"},
			{"1-9 a-z", "Result markers, numbered as in the list"},
			{"·", "Search radius"},
		}),
	}

	helpText := content.Render(strings.Join(sections, "\n\n"))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Width(width).Render("Help"),
		helpText,
		FooterStyle.Width(width).Render(HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close help")),
	)
}

type helpItem struct {
	key  string
	desc string
}

func titleSection(title string) string {
	return LabelStyle.Render(title)
}

func helpSection(items []helpItem) string {
	var lines []string
	for _, item := range items {
		lines = append(lines, "  "+HelpKeyStyle.Render(item.key)+" - "+HelpDescStyle.Render(item.desc))
	}
	return strings.Join(lines, "\n")
}
