package ui

import (
	"eomarket/internal/nav"
	"eomarket/internal/util"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// Listing is a property shown on the search page.
type Listing struct {
	Address string
	Area    string
	Price   int
	Beds    int
	Status  string // "for-sale" or "upcoming"
}

var sampleListings = []Listing{
	{Address: "12 Harbour Row", Area: "Old Town", Price: 425000, Beds: 2, Status: "for-sale"},
	{Address: "3 Mill Lane", Area: "Riverside", Price: 610000, Beds: 4, Status: "for-sale"},
	{Address: "88 Castle Street", Area: "Old Town", Price: 289000, Beds: 1, Status: "for-sale"},
	{Address: "41 Orchard Close", Area: "Northfield", Price: 515000, Beds: 3, Status: "for-sale"},
	{Address: "7 Quay Terrace", Area: "Riverside", Price: 735000, Beds: 5, Status: "upcoming"},
	{Address: "19 Linden Avenue", Area: "Northfield", Price: 398000, Beds: 3, Status: "upcoming"},
}

var searchTabLabels = map[string]string{
	"for-sale": "For sale",
	"upcoming": "Upcoming",
}

// heroView renders the landing hero. Lines appear once their animation delay
// has elapsed since the entrance started.
func heroView(doc *nav.Document, lines []string, art string, elapsed time.Duration, width int) string {
	var b strings.Builder

	if doc.Element(nav.ElemHeroImage).HasClass(nav.ClassAnimate) {
		b.WriteString(art)
	} else {
		b.WriteString(strings.Repeat("\n", lipgloss.Height(art)-1))
	}
	b.WriteString("\n\n")

	for i, text := range lines {
		line := doc.Element(nav.HeroLineID(i))
		if heroLineRevealed(line, elapsed) {
			b.WriteString(HeroLineStyle.Width(width).Render(text))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// heroLineRevealed reports whether an animating line's delay has passed.
func heroLineRevealed(line *nav.Element, elapsed time.Duration) bool {
	if !line.HasClass(nav.ClassAnimate) {
		return false
	}
	delay, err := util.ParseSeconds(line.Style(nav.StyleAnimationDelay))
	if err != nil {
		return true
	}
	return elapsed >= delay
}

// heroDuration is the delay of the last hero line.
func heroDuration(doc *nav.Document, count int) time.Duration {
	var longest time.Duration
	for i := 0; i < count; i++ {
		d, err := util.ParseSeconds(doc.Element(nav.HeroLineID(i)).Style(nav.StyleAnimationDelay))
		if err == nil && d > longest {
			longest = d
		}
	}
	return longest
}

func homeView(doc *nav.Document, lines []string, art string, elapsed time.Duration, width int) string {
	hero := heroView(doc, lines, art, elapsed, width)
	blurb := []string{
		LabelStyle.Render("Local agents, local knowledge"),
		"",
		"Browse homes for sale, follow upcoming listings and keep",
		"the ones you love in your saved list.",
		"",
		HelpKeyStyle.Render("s") + " " + HelpDescStyle.Render("start searching") + "   " +
			HelpKeyStyle.Render("b") + " " + HelpDescStyle.Render("book a meeting"),
	}
	body := lipgloss.NewStyle().Padding(1, 2).Width(width).Render(strings.Join(blurb, "\n"))
	return hero + "\n" + body
}

// renderTabBar renders a segmented control from the Document.
func renderTabBar(doc *nav.Document, group nav.SegmentGroup, labels map[string]string, width int) string {
	tabs := make([]string, 0, len(group.Tabs))
	for _, t := range group.Tabs {
		style := TabStyle
		if doc.Element(nav.TabElementID(t)).HasClass(nav.ClassActive) {
			style = ActiveTabStyle
		}
		label := labels[t]
		if label == "" {
			label = t
		}
		tabs = append(tabs, style.Render(label))
	}
	return TabBarStyle.Width(width).Render(lipgloss.JoinHorizontal(lipgloss.Left, tabs...))
}

// searchFieldView renders the search input and its clear control, which is
// only present while the field holds text.
func searchFieldView(input textinput.Model, width int) string {
	field := InputStyle.Render(input.View())
	if input.Value() != "" {
		field += ClearButtonStyle.Render("✕ ctrl+l")
	}
	return lipgloss.NewStyle().Padding(1, 2, 0, 2).Width(width).Render(field)
}

// filterListings returns listings with status whose address or area contains
// query, ignoring case.
func filterListings(listings []Listing, status, query string) []Listing {
	q := strings.ToLower(strings.TrimSpace(query))
	var out []Listing
	for _, l := range listings {
		if status != "" && l.Status != status {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(l.Address), q) && !strings.Contains(strings.ToLower(l.Area), q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func formatPrice(p int) string {
	s := fmt.Sprintf("%d", p)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteRune(',')
		}
		b.WriteRune(r)
	}
	return "£" + b.String()
}

func searchView(doc *nav.Document, group nav.SegmentGroup, activeTab string, input textinput.Model, width int) string {
	parts := []string{
		renderTabBar(doc, group, searchTabLabels, width),
		searchFieldView(input, width),
		"",
	}

	results := filterListings(sampleListings, activeTab, input.Value())
	if len(results) == 0 {
		parts = append(parts, EmptyStateStyle.Render("No homes match your search."))
		return strings.Join(parts, "\n")
	}
	for _, l := range results {
		meta := fmt.Sprintf("%s · %d bed · %s", l.Area, l.Beds, formatPrice(l.Price))
		parts = append(parts,
			ListingStyle.Render(util.Truncate(l.Address, width-4)),
			ListingStyle.Render(ListingMetaStyle.Render(util.Truncate(meta, width-4))),
			"",
		)
	}
	return strings.Join(parts, "\n")
}

func favoritesView(width int) string {
	title := lipgloss.NewStyle().Padding(1, 2).Render(LabelStyle.Render("Saved homes"))
	empty := EmptyStateStyle.Width(width).Render("No saved homes yet. Tap ♥ on a listing to keep it here.")
	return title + "\n" + empty
}
