package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorBase    = lipgloss.Color("#1B1F24")
	ColorSurface = lipgloss.Color("#272D35")
	ColorMuted   = lipgloss.Color("#7D8794")
	ColorText    = lipgloss.Color("#E3E7EC")
	ColorAccent  = lipgloss.Color("#D9A441")
	ColorBrand   = lipgloss.Color("#5FA8A0")
	ColorRed     = lipgloss.Color("#f38ba8")
	ColorYellow  = lipgloss.Color("#f9e2af")
)

// Styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	BrandStyle = lipgloss.NewStyle().
			Foreground(ColorBrand).
			Bold(true)

	LinkStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1)

	ActiveLinkStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Underline(true).
			Padding(0, 1)

	CallToActionStyle = lipgloss.NewStyle().
				Foreground(ColorBase).
				Background(ColorAccent).
				Bold(true).
				Padding(0, 1)

	// Profile icon over the landing hero vs. on plain pages.
	ProfileIconLandingStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 1)

	ProfileIconStyle = lipgloss.NewStyle().
				Foreground(ColorBrand).
				Bold(true).
				Padding(0, 1)

	BottomNavStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	NavItemStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Align(lipgloss.Center)

	ActiveNavItemStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true).
				Align(lipgloss.Center)

	HeroLineStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Bold(true).
			Padding(0, 2)

	TabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorMuted)

	ActiveTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(ColorText).
			Bold(true).
			Underline(true)

	TabBarStyle = lipgloss.NewStyle().
			BorderBottom(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorMuted)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorMuted)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorAccent)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Padding(0, 1)

	NoticeStyle = lipgloss.NewStyle().
			Foreground(ColorYellow).
			Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorSurface).
			Padding(0, 1)

	ClearButtonStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	PanelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(ColorMuted).
			Background(ColorSurface).
			Padding(1, 2)

	MenuItemStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 2)

	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true).
			Padding(2, 4)

	ListingStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Padding(0, 2)

	ListingMetaStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)
