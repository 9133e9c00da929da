package ui

import (
	"eomarket/internal/nav"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var profileTabLabels = map[string]string{
	"listings":       "My listings",
	"saved-searches": "Saved searches",
	"settings":       "Settings",
}

var profileSections = map[string][]string{
	"profile-listings-content": {
		"You have no listings yet.",
		"Press a to sell your home with us.",
	},
	"profile-saved-searches-content": {
		"Riverside, 3+ bed, under £650,000",
		"Old Town, any size",
	},
	"profile-settings-content": {
		"Email alerts: weekly",
		"Currency: GBP",
	},
}

var menuEntries = []headerLink{
	{target: "home", label: "Home"},
	{target: "search", label: "Search"},
	{target: "favorites", label: "Saved"},
	{target: "valuation", label: "Valuation"},
	{target: "contact", label: "Contact"},
	{target: "book-meeting", label: "Book a meeting"},
}

// profilePanel renders the profile slideout when it is shown.
func profilePanel(doc *nav.Document, group nav.SegmentGroup, width, height int) string {
	if !doc.Element(nav.ElemProfileSlideout).HasClass(nav.ClassShow) {
		return ""
	}
	inner := width - 6
	if inner < 1 {
		inner = 1
	}

	var lines []string
	lines = append(lines, LabelStyle.Render("Your profile"), "")
	lines = append(lines, renderTabBar(doc, group, profileTabLabels, inner), "")
	for _, t := range group.Tabs {
		section := group.Sections[t]
		if !doc.Element(section).HasClass(nav.ClassActive) {
			continue
		}
		lines = append(lines, profileSections[section]...)
	}
	lines = append(lines, "", HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close"))

	return PanelStyle.Width(width - 2).Height(height - 2).Render(strings.Join(lines, "\n"))
}

// menuPanel renders the full-screen more-menu when it is shown.
func menuPanel(doc *nav.Document, width, height int) string {
	if !doc.Element(nav.ElemOverlayMenu).HasClass(nav.ClassShow) {
		return ""
	}
	var lines []string
	lines = append(lines, LabelStyle.Render("Menu"), "")
	for _, e := range menuEntries {
		lines = append(lines, MenuItemStyle.Render(e.label))
	}
	lines = append(lines, "", HelpKeyStyle.Render("esc")+" "+HelpDescStyle.Render("close"))
	menu := strings.Join(lines, "\n")
	return PanelStyle.Width(width - 2).Height(height - 2).Render(
		lipgloss.Place(width-8, height-4, lipgloss.Center, lipgloss.Center, menu),
	)
}

// compose draws panel over the right edge of background, keeping the
// background visible to its left.
func compose(background string, width, height int, panel string) string {
	bgLines := strings.Split(background, "\n")
	for len(bgLines) < height {
		bgLines = append(bgLines, "")
	}
	if len(bgLines) > height {
		bgLines = bgLines[:height]
	}
	if panel == "" {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(panel, "\n")
	panelWidth := 0
	for _, line := range fgLines {
		if w := lipgloss.Width(line); w > panelWidth {
			panelWidth = w
		}
	}
	if panelWidth > width {
		panelWidth = width
	}
	offsetX := width - panelWidth

	for row := range bgLines {
		fg := ""
		if row < len(fgLines) {
			fg = fgLines[row]
		}
		fg = padToWidth(fg, panelWidth)
		prefix := padToWidth(ansi.Truncate(bgLines[row], offsetX, ""), offsetX)
		bgLines[row] = prefix + fg
	}
	return strings.Join(bgLines, "\n")
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// slideoutWidth is the profile panel width for a terminal of width cells.
func slideoutWidth(width int) int {
	w := width * 2 / 5
	if w < 32 {
		w = 32
	}
	if w > width {
		w = width
	}
	return w
}
