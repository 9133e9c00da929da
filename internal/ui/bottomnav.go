package ui

import (
	"eomarket/internal/model"
	"eomarket/internal/nav"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var navIcons = map[string]string{
	"home":              "⌂",
	"search":            "⌕",
	nav.TargetAddListing: "+",
	"favorites":         "♥",
	nav.TargetMoreMenu:  "≡",
}

// renderBottomNav renders the mobile tab bar into rows cells of height. A
// hidden bar keeps its space, like padding under a translated-away element.
func renderBottomNav(doc *nav.Document, items []model.NavItem, width, rows int) string {
	if rows <= 0 {
		return ""
	}
	bar := doc.Element(nav.ElemBottomNav)
	if !bar.Visible() {
		return ""
	}
	if bar.HasClass(nav.ClassHidden) || len(items) == 0 {
		return lipgloss.NewStyle().Width(width).Height(rows).Render("")
	}

	cells := make([]string, len(items))
	for i, item := range items {
		start, end := navSlot(i, len(items), width)
		style := NavItemStyle
		if doc.Element(nav.NavItemElementID(item.Target)).HasClass(nav.ClassActive) {
			style = ActiveNavItemStyle
		}
		icon := navIcons[item.Target]
		cells[i] = style.Width(end - start).Render(icon + "\n" + item.Label)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	out := BottomNavStyle.Width(width).Render(row)

	// Fit the reserved rows exactly.
	lines := strings.Split(out, "\n")
	for len(lines) < rows {
		lines = append(lines, "")
	}
	return strings.Join(lines[:rows], "\n")
}

// navSlot returns the columns [start, end) of the i-th of n bottom-nav items.
func navSlot(i, n, width int) (int, int) {
	return i * width / n, (i + 1) * width / n
}

// bottomNavTarget maps a click at column x to a nav item.
func bottomNavTarget(items []model.NavItem, width, x int) (string, bool) {
	for i, item := range items {
		start, end := navSlot(i, len(items), width)
		if x >= start && x < end {
			return item.Target, true
		}
	}
	return "", false
}
