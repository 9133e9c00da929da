package nav

import (
	"eomarket/internal/model"
	"testing"

	"github.com/stretchr/testify/require"
)

type harness struct {
	d      *Dispatcher
	doc    *Document
	frames *FrameQueue
}

func newHarness(t *testing.T, width int) harness {
	t.Helper()
	reg := DefaultRegistry()
	doc := NewDocument()
	reg.Bind(doc)
	doc.Element(ElemMobileHeader).Height = 60
	doc.Element(ElemDesktopHeader).Height = 80
	frames := &FrameQueue{}
	d := NewDispatcher(DefaultOptions(), reg, doc, frames, nil)
	d.Start(width)
	frames.Flush()
	return harness{d: d, doc: doc, frames: frames}
}

func visiblePages(doc *Document, reg Registry) []string {
	var out []string
	for _, p := range reg.Pages {
		if doc.Element(PageElementID(p.ID)).Visible() {
			out = append(out, p.ID)
		}
	}
	return out
}

func TestLayoutDetectorBreakpoint(t *testing.T) {
	det := LayoutDetector{Breakpoint: 768}
	for _, w := range []int{768, 769, 1024, 4096} {
		require.Equal(t, model.LayoutDesktop, det.Evaluate(w), "width %d", w)
	}
	for _, w := range []int{-1, 0, 375, 767} {
		require.Equal(t, model.LayoutMobile, det.Evaluate(w), "width %d", w)
	}
}

func TestStartShowsLandingPage(t *testing.T) {
	h := newHarness(t, 375)
	st := h.d.State()
	require.Equal(t, "home", st.ActivePage)
	require.Equal(t, model.LayoutMobile, st.Layout)
	require.Equal(t, []string{"home"}, visiblePages(h.doc, h.d.Registry()))
	require.Equal(t, model.DisplayFlex, h.doc.Element(PageElementID("home")).Display)
	require.Equal(t, 60, h.doc.PaddingTop)
	require.Equal(t, 48, h.doc.PaddingBottom)
	require.True(t, h.doc.Element(NavItemElementID("home")).HasClass(ClassActive))
	require.True(t, st.BottomNavVisible())
}

func TestExactlyOnePageVisible(t *testing.T) {
	h := newHarness(t, 375)
	for _, target := range []string{"search", "favorites", "nope", "home", "add-listing", "search"} {
		h.d.Dispatch(ClickEvent{Target: target})
		h.frames.Flush()
		require.Len(t, visiblePages(h.doc, h.d.Registry()), 1, "after click(%s)", target)
	}
}

func TestNavItemActiveIsDerived(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ClickEvent{Target: "search"})
	for _, item := range h.d.Registry().BottomNavItems() {
		want := item.Target == "search"
		require.Equal(t, want, h.doc.Element(NavItemElementID(item.Target)).HasClass(ClassActive), item.Target)
	}
}

func TestNavItemsLinkPagesOneToOne(t *testing.T) {
	reg := DefaultRegistry()
	require.Len(t, reg.NavItems, len(reg.Pages))
	for _, item := range reg.NavItems {
		_, ok := reg.Page(item.Target)
		require.True(t, ok, item.Target)
	}
	for _, item := range reg.Actions {
		_, ok := reg.Page(item.Target)
		require.False(t, ok, item.Target)
	}

	var order []string
	for _, item := range reg.BottomNavItems() {
		order = append(order, item.Target)
	}
	require.Equal(t, []string{"home", "search", TargetAddListing, "favorites", TargetMoreMenu}, order)
}

func TestDesktopClickReturnsHome(t *testing.T) {
	h := newHarness(t, 1024)
	h.d.Dispatch(ScrollEvent{Y: 300})
	h.d.Dispatch(ClickEvent{Target: "search"})
	h.d.Dispatch(ClickEvent{Target: "home"})
	h.frames.Flush()

	st := h.d.State()
	require.Equal(t, "home", st.ActivePage)
	require.Equal(t, model.OverlayNone, st.Overlay)
	require.Equal(t, 0, h.doc.ScrollY)
	require.Equal(t, model.ScrollState{}, st.Scroll)
	for i := range h.d.Registry().HeroLines {
		line := h.doc.Element(HeroLineID(i))
		require.True(t, line.HasClass(ClassAnimate))
	}
	require.Equal(t, "0s", h.doc.Element(HeroLineID(0)).Style(StyleAnimationDelay))
	require.Equal(t, "0.2s", h.doc.Element(HeroLineID(1)).Style(StyleAnimationDelay))
	require.Equal(t, "0.4s", h.doc.Element(HeroLineID(2)).Style(StyleAnimationDelay))
	require.True(t, h.doc.Element(ElemHeroImage).HasClass(ClassAnimate))
	require.False(t, h.doc.Element(ElemBottomNav).Visible())
	require.Equal(t, 0, h.doc.PaddingBottom)
}

func TestScrollDownHidesBottomNav(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ScrollEvent{Y: 0})
	require.False(t, h.d.State().Scroll.Hidden)
	h.d.Dispatch(ScrollEvent{Y: 50})
	require.False(t, h.d.State().Scroll.Hidden)
	h.d.Dispatch(ScrollEvent{Y: 120})
	require.True(t, h.d.State().Scroll.Hidden)
	require.True(t, h.doc.Element(ElemBottomNav).HasClass(ClassHidden))
	require.Equal(t, 120, h.d.State().Scroll.LastY)
}

func TestScrollUpAndJitter(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ScrollEvent{Y: 200})
	require.True(t, h.d.State().Scroll.Hidden)

	// Downward movement keeps it hidden.
	h.d.Dispatch(ScrollEvent{Y: 205})
	require.True(t, h.d.State().Scroll.Hidden)

	// Any upward movement reveals.
	h.d.Dispatch(ScrollEvent{Y: 204})
	require.False(t, h.d.State().Scroll.Hidden)

	// Same position is no qualifying change.
	h.d.Dispatch(ScrollEvent{Y: 204})
	require.False(t, h.d.State().Scroll.Hidden)

	// Down but still within header+threshold stays visible.
	h.d.Dispatch(ScrollEvent{Y: 0})
	h.d.Dispatch(ScrollEvent{Y: 65})
	require.False(t, h.d.State().Scroll.Hidden)
	h.d.Dispatch(ScrollEvent{Y: 70})
	require.False(t, h.d.State().Scroll.Hidden)
	h.d.Dispatch(ScrollEvent{Y: 71})
	require.True(t, h.d.State().Scroll.Hidden)
}

func TestOverlayKeepsMachineVisible(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ClickEvent{Target: TargetProfile})
	for _, y := range []int{0, 50, 120, 400} {
		h.d.Dispatch(ScrollEvent{Y: y})
		st := h.d.State()
		require.False(t, st.Scroll.Hidden, "y=%d", y)
		require.Equal(t, y, st.Scroll.LastY)
		// The rendered nav is still forced hidden by the overlay.
		require.True(t, h.doc.Element(ElemBottomNav).HasClass(ClassHidden))
		require.False(t, st.BottomNavVisible())
	}
}

func TestLockedBodyDoesNotScroll(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ScrollEvent{Y: 40})
	h.d.Dispatch(ClickEvent{Target: TargetProfile})

	h.d.Dispatch(ScrollEvent{Y: 300})
	require.Equal(t, 40, h.doc.ScrollY)
	require.Equal(t, 300, h.d.State().Scroll.LastY)

	h.d.Dispatch(OverlayCloseEvent{Kind: model.OverlayProfile})
	h.d.Dispatch(ScrollEvent{Y: 310})
	require.Equal(t, 310, h.doc.ScrollY)
}

func TestCloseRecomputesFromPosition(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ClickEvent{Target: TargetMoreMenu})
	h.d.Dispatch(ScrollEvent{Y: 200})
	require.Equal(t, 200, h.d.State().Scroll.LastY)

	h.d.Dispatch(OverlayCloseEvent{Kind: model.OverlayMenu})
	st := h.d.State()
	require.Equal(t, model.OverlayNone, st.Overlay)
	require.True(t, st.Scroll.Hidden)
	require.False(t, h.doc.ScrollLocked)
	require.True(t, h.doc.Element(ElemBottomNav).HasClass(ClassHidden))
}

func TestCloseNearTopReveals(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ClickEvent{Target: TargetProfile})
	h.d.Dispatch(OverlayCloseEvent{Kind: model.OverlayProfile})
	require.True(t, h.d.State().BottomNavVisible())
	require.False(t, h.doc.Element(ElemBottomNav).HasClass(ClassHidden))
}

func TestOverlayFlagsMatchOpenPanel(t *testing.T) {
	h := newHarness(t, 375)
	for _, target := range []string{TargetProfile, TargetMoreMenu} {
		h.d.Dispatch(ClickEvent{Target: target})
		require.NotEqual(t, model.OverlayNone, h.d.State().Overlay)
		require.True(t, h.doc.ScrollLocked)
		require.True(t, h.doc.Element(ElemBottomNav).HasClass(ClassHidden))
	}
}

func TestOverlayLastWriterWins(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ClickEvent{Target: TargetProfile})
	h.d.Dispatch(ClickEvent{Target: TargetMoreMenu})
	require.Equal(t, model.OverlayMenu, h.d.State().Overlay)
	require.False(t, h.doc.Element(ElemProfileSlideout).HasClass(ClassShow))
	require.True(t, h.doc.Element(ElemOverlayMenu).HasClass(ClassShow))

	// Closing a panel that is not the open one changes nothing.
	h.d.Dispatch(OverlayCloseEvent{Kind: model.OverlayProfile})
	require.Equal(t, model.OverlayMenu, h.d.State().Overlay)
	require.True(t, h.doc.ScrollLocked)
}

func TestSwitchToClosesOverlayAndResetsScroll(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ScrollEvent{Y: 500})
	h.d.Dispatch(ClickEvent{Target: TargetProfile})
	h.d.Dispatch(ClickEvent{Target: "search"})

	st := h.d.State()
	require.Equal(t, "search", st.ActivePage)
	require.Equal(t, model.OverlayNone, st.Overlay)
	require.False(t, h.doc.ScrollLocked)
	require.Equal(t, 0, h.doc.ScrollY)
	require.Equal(t, model.ScrollState{}, st.Scroll)
	require.True(t, st.BottomNavVisible())
	require.False(t, h.doc.Element(ElemProfileSlideout).HasClass(ClassShow))
}

func TestSwitchToIsIdempotent(t *testing.T) {
	once := newHarness(t, 375)
	once.d.Dispatch(ClickEvent{Target: "search"})
	once.frames.Flush()

	twice := newHarness(t, 375)
	twice.d.Dispatch(ClickEvent{Target: "search"})
	twice.d.Dispatch(ClickEvent{Target: "search"})
	twice.frames.Flush()

	require.Equal(t, once.d.State(), twice.d.State())
	require.Equal(t, once.doc, twice.doc)

	once.d.Dispatch(ClickEvent{Target: "home"})
	once.frames.Flush()
	twice.d.Dispatch(ClickEvent{Target: "home"})
	twice.d.Dispatch(ClickEvent{Target: "home"})
	twice.frames.Flush()
	require.Equal(t, once.d.State(), twice.d.State())
	require.Equal(t, once.doc, twice.doc)
}

func TestLeavingLandingClearsAnimation(t *testing.T) {
	h := newHarness(t, 375)
	require.True(t, h.doc.Element(ElemHeroImage).HasClass(ClassAnimate))

	h.d.Dispatch(ClickEvent{Target: "search"})
	require.False(t, h.doc.Element(ElemHeroImage).HasClass(ClassAnimate))
	for i := range h.d.Registry().HeroLines {
		line := h.doc.Element(HeroLineID(i))
		require.False(t, line.HasClass(ClassAnimate))
		require.Empty(t, line.Style(StyleAnimationDelay))
	}

	h.d.Dispatch(ClickEvent{Target: "favorites"})
	require.False(t, h.doc.Element(ElemHeroImage).HasClass(ClassAnimate))
}

func TestRapidNavigationDropsStaleEnter(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ClickEvent{Target: "search"})
	h.d.Dispatch(ClickEvent{Target: "home"})
	h.d.Dispatch(ClickEvent{Target: "search"})
	require.Equal(t, 1, h.frames.Len())
	h.frames.Flush()

	require.False(t, h.doc.Element(ElemHeroImage).HasClass(ClassAnimate))
	require.False(t, h.doc.Element(HeroLineID(0)).HasClass(ClassAnimate))
}

func TestEnterWaitsForFrame(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ClickEvent{Target: "search"})
	h.d.Dispatch(ClickEvent{Target: "home"})
	require.False(t, h.doc.Element(ElemHeroImage).HasClass(ClassAnimate))
	require.Equal(t, 1, h.frames.Flush())
	require.True(t, h.doc.Element(ElemHeroImage).HasClass(ClassAnimate))
}

func TestUnknownTargetsAreNoOps(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ScrollEvent{Y: 30})
	before := h.d.State()

	h.d.Dispatch(ClickEvent{Target: "does-not-exist"})
	h.d.Dispatch(ClickEvent{Target: ""})
	h.d.Dispatch(OverlayCloseEvent{Kind: model.OverlayNone})
	h.d.Dispatch(SegmentTabEvent{Tab: "missing"})
	h.d.Dispatch(nil)

	require.Equal(t, before, h.d.State())
	require.Empty(t, h.doc.Notice)
}

func TestOpenUnknownOverlayIsNoOp(t *testing.T) {
	h := newHarness(t, 375)
	ov := Overlays{Scroll: ScrollVisibility{Threshold: 10}}
	st := h.d.State()
	ov.Open(&st, h.doc, model.Overlay(42))
	require.Equal(t, model.OverlayNone, st.Overlay)
	require.False(t, h.doc.ScrollLocked)
}

func TestStubTargetShowsNotice(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(ScrollEvent{Y: 90})
	before := h.d.State()

	h.d.Dispatch(ClickEvent{Target: TargetAddListing})
	require.Equal(t, DefaultOptions().NoticeText, h.doc.Notice)
	require.Equal(t, before, h.d.State())
}

func TestLayoutRoundTripKeepsPage(t *testing.T) {
	h := newHarness(t, 1024)
	h.d.Dispatch(ClickEvent{Target: "favorites"})

	h.d.Dispatch(ResizeEvent{Width: 375})
	require.Equal(t, model.LayoutMobile, h.d.State().Layout)
	require.True(t, h.doc.Element(ElemMobileHeader).Visible())
	require.False(t, h.doc.Element(ElemDesktopHeader).Visible())
	require.True(t, h.doc.Element(ElemBottomNav).Visible())
	require.Equal(t, 60, h.doc.PaddingTop)
	require.Equal(t, 48, h.doc.PaddingBottom)

	h.d.Dispatch(ResizeEvent{Width: 1280})
	require.Equal(t, model.LayoutDesktop, h.d.State().Layout)
	require.Equal(t, "favorites", h.d.State().ActivePage)
	require.Equal(t, 80, h.doc.PaddingTop)
	require.Equal(t, 0, h.doc.PaddingBottom)
	require.False(t, h.d.State().BottomNavVisible())
}

func TestDesktopScrollNeverHides(t *testing.T) {
	h := newHarness(t, 1024)
	for _, y := range []int{0, 100, 500, 900} {
		h.d.Dispatch(ScrollEvent{Y: y})
		require.False(t, h.d.State().Scroll.Hidden)
	}
	require.Equal(t, 900, h.d.State().Scroll.LastY)
}

func TestHeaderMeasurementUpdatesPadding(t *testing.T) {
	h := newHarness(t, 375)
	h.d.Dispatch(HeaderMeasuredEvent{Layout: model.LayoutMobile, Height: 72})
	require.Equal(t, 72, h.doc.PaddingTop)

	// Measuring the inactive header is recorded but does not touch padding.
	h.d.Dispatch(HeaderMeasuredEvent{Layout: model.LayoutDesktop, Height: 120})
	require.Equal(t, 72, h.doc.PaddingTop)
	h.d.Dispatch(ResizeEvent{Width: 900})
	require.Equal(t, 120, h.doc.PaddingTop)
}

func TestPaddingSyncIsIdempotent(t *testing.T) {
	doc := NewDocument()
	p := PaddingSync{BottomNavHeight: 56}
	p.Recompute(doc, model.LayoutMobile, 64)
	p.Recompute(doc, model.LayoutMobile, 64)
	require.Equal(t, 64, doc.PaddingTop)
	require.Equal(t, 56, doc.PaddingBottom)

	p.Recompute(doc, model.LayoutDesktop, -3)
	require.Equal(t, 0, doc.PaddingTop)
	require.Equal(t, 0, doc.PaddingBottom)
}

func TestMissingBindingsDegrade(t *testing.T) {
	reg := DefaultRegistry()
	doc := NewDocument()
	// Only pages are bound: no headers, no bottom nav, no overlays.
	for _, p := range reg.Pages {
		doc.Bind(PageElementID(p.ID), model.DisplayNone)
	}
	frames := &FrameQueue{}
	d := NewDispatcher(DefaultOptions(), reg, doc, frames, nil)
	require.NotPanics(t, func() {
		d.Start(375)
		frames.Flush()
		d.Dispatch(ScrollEvent{Y: 300})
		d.Dispatch(ClickEvent{Target: TargetProfile})
		d.Dispatch(OverlayCloseEvent{Kind: model.OverlayProfile})
		d.Dispatch(ClickEvent{Target: "search"})
		d.Dispatch(SegmentTabEvent{Tab: "upcoming"})
		d.Dispatch(ResizeEvent{Width: 1024})
	})
	require.Equal(t, "search", d.State().ActivePage)
	require.Equal(t, 0, doc.PaddingTop)
}

func TestSegmentSelection(t *testing.T) {
	h := newHarness(t, 375)
	segs := h.d.Segments()
	require.Equal(t, "listings", segs.ActiveTab(h.doc, "profile"))
	require.Equal(t, "for-sale", segs.ActiveTab(h.doc, "search"))

	h.d.Dispatch(SegmentTabEvent{Tab: "settings"})
	require.Equal(t, "settings", segs.ActiveTab(h.doc, "profile"))
	require.True(t, h.doc.Element("profile-settings-content").HasClass(ClassActive))
	require.False(t, h.doc.Element("profile-listings-content").HasClass(ClassActive))
	// Other controls are untouched.
	require.Equal(t, "for-sale", segs.ActiveTab(h.doc, "search"))

	require.Equal(t, "listings", segs.Cycle(h.doc, "profile", 1))
	require.Equal(t, "saved-searches", segs.Cycle(h.doc, "profile", -1))
	require.Equal(t, "", segs.Cycle(h.doc, "missing", 1))
}

func TestFrameQueueDefersNestedSchedules(t *testing.T) {
	q := &FrameQueue{}
	var order []int
	q.Schedule(func() {
		order = append(order, 1)
		q.Schedule(func() { order = append(order, 3) })
	})
	q.Schedule(func() { order = append(order, 2) })

	require.Equal(t, 2, q.Flush())
	require.Equal(t, []int{1, 2}, order)
	require.Equal(t, 1, q.Len())
	q.Flush()
	require.Equal(t, []int{1, 2, 3}, order)
}

func TestEventNames(t *testing.T) {
	require.Equal(t, "scroll(120)", ScrollEvent{Y: 120}.Name())
	require.Equal(t, "click(search)", ClickEvent{Target: "search"}.Name())
	require.Equal(t, "clickOverlayClose(menu)", OverlayCloseEvent{Kind: model.OverlayMenu}.Name())
}
