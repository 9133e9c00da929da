package nav

import (
	"eomarket/internal/model"

	"go.uber.org/zap"
)

func overlayElementID(kind model.Overlay) string {
	switch kind {
	case model.OverlayProfile:
		return ElemProfileSlideout
	case model.OverlayMenu:
		return ElemOverlayMenu
	}
	return ""
}

// Overlays owns state.Overlay and the body scroll lock.
type Overlays struct {
	Scroll ScrollVisibility
	Log    *zap.Logger
}

// Open shows kind, replacing any open overlay. There is no stacking.
func (o Overlays) Open(state *model.NavigationState, doc *Document, kind model.Overlay) {
	id := overlayElementID(kind)
	if id == "" {
		orNop(o.Log).Warn("open of unknown overlay ignored", zap.Stringer("overlay", kind))
		return
	}
	if prev := overlayElementID(state.Overlay); prev != "" && prev != id {
		doc.Element(prev).SetClass(ClassShow, false)
	}
	state.Overlay = kind
	doc.Element(id).SetClass(ClassShow, true)
	doc.ScrollLocked = true
	doc.Element(ElemBottomNav).SetClass(ClassHidden, true)
}

// Close hides any overlay, unlocks scrolling and lets the scroll machine
// decide whether the bottom nav comes back.
func (o Overlays) Close(state *model.NavigationState, doc *Document) {
	doc.Element(ElemProfileSlideout).SetClass(ClassShow, false)
	doc.Element(ElemOverlayMenu).SetClass(ClassShow, false)
	state.Overlay = model.OverlayNone
	doc.ScrollLocked = false
	o.Scroll.Settle(state, doc, doc.HeaderHeight(state.Layout))
}
