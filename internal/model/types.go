package model

// Display is the display mode applied to a visible element.
type Display string

const (
	DisplayNone  Display = "none"
	DisplayFlex  Display = "flex"
	DisplayBlock Display = "block"
)

// Page is a logical page of the site. Pages are registered at startup and only
// ever toggled, never destroyed.
type Page struct {
	ID      string
	Display Display
}

// NavItem is a labelled bottom-nav or header entry. Page links target a
// page id; actions target an overlay or a stub.
type NavItem struct {
	Target string
	Label  string
}

// Active reports whether the item points at the active page.
func (n NavItem) Active(state NavigationState) bool {
	return n.Target == state.ActivePage
}

// Overlay identifies the transient panel drawn above the current page.
type Overlay int

const (
	OverlayNone Overlay = iota
	OverlayProfile
	OverlayMenu
)

func (o Overlay) String() string {
	switch o {
	case OverlayProfile:
		return "profile"
	case OverlayMenu:
		return "menu"
	default:
		return "none"
	}
}

// LayoutMode is the rendering strategy chosen from the viewport width.
type LayoutMode int

const (
	LayoutMobile LayoutMode = iota
	LayoutDesktop
)

func (l LayoutMode) String() string {
	if l == LayoutDesktop {
		return "desktop"
	}
	return "mobile"
}

// ScrollState is the retained input of the bottom-nav visibility machine.
type ScrollState struct {
	LastY  int
	Hidden bool
}

// NavigationState is the single source of truth for what is on screen.
// It is rebuilt on every start and never persisted.
type NavigationState struct {
	ActivePage string
	Overlay    Overlay
	Layout     LayoutMode
	Scroll     ScrollState
}

// BottomNavVisible reports whether the bottom nav is rendered and shown.
func (s NavigationState) BottomNavVisible() bool {
	return s.Layout == LayoutMobile && s.Overlay == OverlayNone && !s.Scroll.Hidden
}

// OnLandingPage is the derived style flag for header decorations.
func (s NavigationState) OnLandingPage(landing string) bool {
	return s.ActivePage == landing
}
