package ui

import (
	"eomarket/internal/model"
	"eomarket/internal/nav"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const brand = "EO Market"

// zone is a clickable span of a rendered row, in terminal cells.
type zone struct {
	row        int
	start, end int
	target     string
}

type zones []zone

// at returns the click target under (row, x).
func (z zones) at(row, x int) (string, bool) {
	for _, c := range z {
		if c.row == row && x >= c.start && x < c.end {
			return c.target, true
		}
	}
	return "", false
}

// segment is one rendered piece of a row; a non-empty target makes it
// clickable.
type segment struct {
	text   string
	target string
}

func segmentsWidth(segs []segment) int {
	w := 0
	for _, s := range segs {
		w += lipgloss.Width(s.text)
	}
	return w
}

// joinSegments renders segs on one row starting at column offset.
func joinSegments(segs []segment, row, offset int) (string, zones) {
	var b strings.Builder
	var zs zones
	x := offset
	for _, s := range segs {
		w := lipgloss.Width(s.text)
		if s.target != "" {
			zs = append(zs, zone{row: row, start: x, end: x + w, target: s.target})
		}
		b.WriteString(s.text)
		x += w
	}
	return b.String(), zs
}

// headerLink is a desktop header entry.
type headerLink struct {
	target string
	label  string
}

var desktopLinks = []headerLink{
	{target: "home", label: "Home"},
	{target: "search", label: "Search"},
	{target: "favorites", label: "Saved"},
	{target: "valuation", label: "Valuation"},
	{target: "contact", label: "Contact"},
}

func profileIcon(state model.NavigationState, landing string) string {
	if state.OnLandingPage(landing) {
		return ProfileIconLandingStyle.Render("◯")
	}
	return ProfileIconStyle.Render("◉")
}

// renderDesktopHeader renders the wide header. When the links and the call to
// action do not fit on one row the right side wraps to a second row.
func renderDesktopHeader(doc *nav.Document, state model.NavigationState, landing string, width int) (string, zones) {
	left := []segment{{text: BrandStyle.Render(brand) + "  ", target: landing}}
	for _, l := range desktopLinks {
		style := LinkStyle
		if doc.Element(nav.NavItemElementID(l.target)).HasClass(nav.ClassActive) {
			style = ActiveLinkStyle
		}
		left = append(left, segment{text: style.Render(l.label), target: l.target})
	}
	right := []segment{
		{text: CallToActionStyle.Render("Book a meeting"), target: "book-meeting"},
		{text: " "},
		{text: profileIcon(state, landing), target: nav.TargetProfile},
	}
	return renderHeaderRows(left, right, width)
}

// renderMobileHeader renders the narrow header: brand and profile icon.
func renderMobileHeader(state model.NavigationState, landing string, width int) (string, zones) {
	left := []segment{{text: BrandStyle.Render(brand), target: landing}}
	right := []segment{{text: profileIcon(state, landing), target: nav.TargetProfile}}
	return renderHeaderRows(left, right, width)
}

func renderHeaderRows(left, right []segment, width int) (string, zones) {
	// HeaderStyle pads one cell on each side.
	inner := width - 2
	if inner < 1 {
		inner = 1
	}
	lw, rw := segmentsWidth(left), segmentsWidth(right)

	var rows []string
	var zs zones
	if lw+rw <= inner {
		pad := segment{text: strings.Repeat(" ", inner-lw-rw)}
		line, z := joinSegments(append(append(append([]segment{}, left...), pad), right...), 0, 1)
		rows = append(rows, line)
		zs = append(zs, z...)
	} else {
		line, z := joinSegments(left, 0, 1)
		rows = append(rows, line)
		zs = append(zs, z...)
		offset := inner - rw
		if offset < 0 {
			offset = 0
		}
		line, z = joinSegments(append([]segment{{text: strings.Repeat(" ", offset)}}, right...), 1, 1)
		rows = append(rows, line)
		zs = append(zs, z...)
	}

	return HeaderStyle.Width(width).Render(strings.Join(rows, "\n")), zs
}

// headerHeights returns the rendered heights in cells of both headers.
func headerHeights(doc *nav.Document, state model.NavigationState, landing string, width int) (desktop, mobile int) {
	d, _ := renderDesktopHeader(doc, state, landing, width)
	mo, _ := renderMobileHeader(state, landing, width)
	return lipgloss.Height(d), lipgloss.Height(mo)
}
