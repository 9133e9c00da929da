package nav

import (
	"eomarket/internal/model"
	"eomarket/internal/util"
	"time"

	"go.uber.org/zap"
)

// Router owns state.ActivePage and the scroll reset on page changes. It
// composes the other components on every transition.
type Router struct {
	Registry  Registry
	Overlays  Overlays
	Scroll    ScrollVisibility
	Scheduler Scheduler
	Stagger   time.Duration
	Log       *zap.Logger
}

// SwitchTo shows pageID. Unknown ids leave everything untouched.
func (r Router) SwitchTo(state *model.NavigationState, doc *Document, pageID string) {
	page, ok := r.Registry.Page(pageID)
	if !ok {
		orNop(r.Log).Warn("navigation to unknown page ignored", zap.String("page", pageID))
		return
	}

	for _, p := range r.Registry.Pages {
		doc.Element(PageElementID(p.ID)).SetDisplay(model.DisplayNone)
	}
	doc.Element(PageElementID(page.ID)).SetDisplay(page.Display)
	state.ActivePage = page.ID

	for _, item := range r.Registry.NavItems {
		doc.Element(NavItemElementID(item.Target)).SetClass(ClassActive, item.Active(*state))
	}

	if page.ID == r.Registry.Landing {
		r.scheduleLandingEnter(state, doc)
	} else {
		r.clearLanding(doc)
	}

	r.Overlays.Close(state, doc)

	doc.ScrollTo(0)
	state.Scroll = model.ScrollState{}

	r.Scroll.Settle(state, doc, doc.HeaderHeight(state.Layout))
}

// scheduleLandingEnter queues the hero entrance for the next frame. By the
// time it runs the user may have navigated away; then it does nothing.
func (r Router) scheduleLandingEnter(state *model.NavigationState, doc *Document) {
	if r.Scheduler == nil {
		r.enterLanding(doc)
		return
	}
	landing := r.Registry.Landing
	r.Scheduler.Schedule(func() {
		if state.ActivePage != landing {
			return
		}
		r.enterLanding(doc)
	})
}

func (r Router) enterLanding(doc *Document) {
	for i := range r.Registry.HeroLines {
		line := doc.Element(HeroLineID(i))
		line.SetStyle(StyleAnimationDelay, util.FormatSeconds(time.Duration(i)*r.Stagger))
		line.SetClass(ClassAnimate, true)
	}
	doc.Element(ElemHeroImage).SetClass(ClassAnimate, true)
}

// clearLanding removes the hero entrance flags. Clearing twice is harmless.
func (r Router) clearLanding(doc *Document) {
	for i := range r.Registry.HeroLines {
		line := doc.Element(HeroLineID(i))
		line.SetClass(ClassAnimate, false)
		line.RemoveStyle(StyleAnimationDelay)
	}
	doc.Element(ElemHeroImage).SetClass(ClassAnimate, false)
}
