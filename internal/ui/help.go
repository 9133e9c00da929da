package ui

import (
	"eomarket/internal/model"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderHelp renders the context-sensitive help footer.
func RenderHelp(state model.NavigationState, searchFocused bool, width int) string {
	if searchFocused {
		return renderSearchFieldHelp(width)
	}

	switch state.Overlay {
	case model.OverlayProfile:
		return renderProfileHelp(width)
	case model.OverlayMenu:
		return renderMenuHelp(width)
	}

	switch state.ActivePage {
	case "search":
		return renderSearchHelp(width)
	default:
		return renderDefaultHelp(width)
	}
}

func renderSearchFieldHelp(width int) string {
	keys := []string{
		helpKey("type", "filter"),
		helpKey("ctrl+l", "clear"),
		helpKey("esc/enter", "done"),
	}
	return renderHelpLine(keys, width)
}

func renderProfileHelp(width int) string {
	keys := []string{
		helpKey("tab", "next tab"),
		helpKey("shift+tab", "prev tab"),
		helpKey("esc", "close"),
		helpKey("h/s/f", "go to page"),
	}
	return renderHelpLine(keys, width)
}

func renderMenuHelp(width int) string {
	keys := []string{
		helpKey("h/s/f", "go to page"),
		helpKey("v/c/b", "valuation/contact/meeting"),
		helpKey("esc", "close"),
	}
	return renderHelpLine(keys, width)
}

func renderSearchHelp(width int) string {
	keys := []string{
		helpKey("/", "search field"),
		helpKey("tab", "for sale/upcoming"),
		helpKey("j/k", "scroll"),
		helpKey("1-5", "nav"),
		helpKey("p", "profile"),
		helpKey("?", "help"),
	}
	return renderHelpLine(keys, width)
}

func renderDefaultHelp(width int) string {
	keys := []string{
		helpKey("j/k", "scroll"),
		helpKey("h/s/f", "home/search/saved"),
		helpKey("1-5", "nav"),
		helpKey("p", "profile"),
		helpKey("m", "menu"),
		helpKey("q", "quit"),
		helpKey("?", "help"),
	}
	return renderHelpLine(keys, width)
}

func helpKey(key, desc string) string {
	return HelpKeyStyle.Render(key) + " " + HelpDescStyle.Render(desc)
}

func renderHelpLine(keys []string, width int) string {
	line := strings.Join(keys, "  ")
	return FooterStyle.Width(width).MaxHeight(2).Render(line)
}

// RenderFullHelp renders the full help screen.
func RenderFullHelp(width, height int) string {
	content := lipgloss.NewStyle().
		Width(width-4).
		Height(height-6).
		Padding(1, 2)

	sections := []string{
		titleSection("Scrolling"),
		helpSection([]helpItem{
			{"j / ↓", "Scroll down"},
			{"k / ↑", "Scroll up"},
			{"ctrl+d", "Half page down"},
			{"ctrl+u", "Half page up"},
			{"gg", "Jump to top"},
			{"G", "Jump to bottom"},
			{"wheel", "Scroll"},
		}),
		titleSection("Pages"),
		helpSection([]helpItem{
			{"h", "Home"},
			{"s", "Search"},
			{"f", "Saved homes"},
			{"1-5 / click", "Bottom navigation (mobile)"},
			{"a / v / c / b", "Sell, valuation, contact, book a meeting"},
		}),
		titleSection("Panels"),
		helpSection([]helpItem{
			{"p", "Open profile"},
			{"m", "Open menu"},
			{"tab / shift+tab", "Cycle profile or search tabs"},
			{"esc", "Close panel"},
		}),
		titleSection("Search"),
		helpSection([]helpItem{
			{"/", "Focus the search field"},
			{"ctrl+l", "Clear the search field"},
			{"esc / enter", "Leave the search field"},
		}),
		titleSection("General"),
		helpSection([]helpItem{
			{"?", "Toggle help"},
			{"q / ctrl+c", "Quit"},
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
