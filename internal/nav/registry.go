package nav

import (
	"eomarket/internal/model"
	"time"
)

// Click targets that are not pages.
const (
	TargetProfile    = "profile"
	TargetMoreMenu   = "more-menu"
	TargetAddListing = "add-listing"
)

// SegmentGroup is a segmented control: exactly one of its tabs is active.
type SegmentGroup struct {
	ID   string
	Tabs []string
	// Sections maps a tab id to the content section it reveals, if any.
	Sections map[string]string
}

// Registry is the static description of the site, built once at startup.
type Registry struct {
	Pages []model.Page
	// NavItems link to pages, one per page.
	NavItems []model.NavItem
	// Actions open an overlay or a stub instead of a page.
	Actions []model.NavItem
	// BottomNav orders the bottom bar by target.
	BottomNav []string
	Landing   string
	HeroLines []string
	Stubs     []string
	Segments  []SegmentGroup
}

// DefaultRegistry returns the site layout.
func DefaultRegistry() Registry {
	return Registry{
		Pages: []model.Page{
			{ID: "home", Display: model.DisplayFlex},
			{ID: "search", Display: model.DisplayBlock},
			{ID: "favorites", Display: model.DisplayBlock},
		},
		NavItems: []model.NavItem{
			{Target: "home", Label: "Home"},
			{Target: "search", Label: "Search"},
			{Target: "favorites", Label: "Saved"},
		},
		Actions: []model.NavItem{
			{Target: TargetAddListing, Label: "Sell"},
			{Target: TargetMoreMenu, Label: "More"},
		},
		BottomNav: []string{"home", "search", TargetAddListing, "favorites", TargetMoreMenu},
		Landing: "home",
		HeroLines: []string{
			"Find your next home",
			"with the agents who know",
			"every street in town.",
		},
		Stubs: []string{TargetAddListing, "valuation", "contact", "book-meeting"},
		Segments: []SegmentGroup{
			{
				ID:   "profile",
				Tabs: []string{"listings", "saved-searches", "settings"},
				Sections: map[string]string{
					"listings":       "profile-listings-content",
					"saved-searches": "profile-saved-searches-content",
					"settings":       "profile-settings-content",
				},
			},
			{
				ID:   "search",
				Tabs: []string{"for-sale", "upcoming"},
			},
		},
	}
}

// BottomNavItems returns the bottom bar entries in display order. Targets
// that are neither a page link nor an action are skipped.
func (r Registry) BottomNavItems() []model.NavItem {
	items := make([]model.NavItem, 0, len(r.BottomNav))
	for _, target := range r.BottomNav {
		if item, ok := r.navItem(target); ok {
			items = append(items, item)
		}
	}
	return items
}

func (r Registry) navItem(target string) (model.NavItem, bool) {
	for _, item := range r.NavItems {
		if item.Target == target {
			return item, true
		}
	}
	for _, item := range r.Actions {
		if item.Target == target {
			return item, true
		}
	}
	return model.NavItem{}, false
}

// Page looks up a registered page.
func (r Registry) Page(id string) (model.Page, bool) {
	for _, p := range r.Pages {
		if p.ID == id {
			return p, true
		}
	}
	return model.Page{}, false
}

// IsStub reports whether target is a placeholder without a destination.
func (r Registry) IsStub(target string) bool {
	for _, s := range r.Stubs {
		if s == target {
			return true
		}
	}
	return false
}

// SegmentFor returns the segmented control owning tabID.
func (r Registry) SegmentFor(tabID string) (SegmentGroup, bool) {
	for _, g := range r.Segments {
		for _, t := range g.Tabs {
			if t == tabID {
				return g, true
			}
		}
	}
	return SegmentGroup{}, false
}

// Segment returns the segmented control with the given id.
func (r Registry) Segment(id string) (SegmentGroup, bool) {
	for _, g := range r.Segments {
		if g.ID == id {
			return g, true
		}
	}
	return SegmentGroup{}, false
}

// Options are the tunables of the controller.
type Options struct {
	// Breakpoint is the smallest viewport width rendered as desktop.
	Breakpoint int
	// HideThreshold is how far past the header the user must scroll down
	// before the bottom nav hides.
	HideThreshold int
	// BottomNavHeight is the configured bottom-nav height in px.
	BottomNavHeight int
	// AnimationStagger is the delay added per hero line.
	AnimationStagger time.Duration
	// NoticeText is shown for targets that are not built yet.
	NoticeText string
}

// DefaultOptions mirrors the values the site shipped with.
func DefaultOptions() Options {
	return Options{
		Breakpoint:       768,
		HideThreshold:    10,
		BottomNavHeight:  48,
		AnimationStagger: 200 * time.Millisecond,
		NoticeText:       "This page is under development!",
	}
}

// Bind registers every element the registry knows about on doc. Hosts that
// render fewer elements can bind a subset by hand instead.
func (r Registry) Bind(doc *Document) {
	doc.Bind(ElemDesktopHeader, model.DisplayFlex)
	doc.Bind(ElemMobileHeader, model.DisplayFlex)
	doc.Bind(ElemBottomNav, model.DisplayFlex)
	doc.Bind(ElemProfileSlideout, model.DisplayBlock)
	doc.Bind(ElemOverlayMenu, model.DisplayBlock)
	doc.Bind(ElemHeroImage, model.DisplayBlock)
	for _, p := range r.Pages {
		doc.Bind(PageElementID(p.ID), model.DisplayNone)
	}
	for _, item := range r.NavItems {
		doc.Bind(NavItemElementID(item.Target), model.DisplayFlex)
	}
	for _, item := range r.Actions {
		doc.Bind(NavItemElementID(item.Target), model.DisplayFlex)
	}
	for i := range r.HeroLines {
		doc.Bind(HeroLineID(i), model.DisplayBlock)
	}
	for _, g := range r.Segments {
		for i, t := range g.Tabs {
			doc.Bind(TabElementID(t), model.DisplayFlex).SetClass(ClassActive, i == 0)
			if section, ok := g.Sections[t]; ok {
				doc.Bind(section, model.DisplayBlock).SetClass(ClassActive, i == 0)
			}
		}
	}
}
