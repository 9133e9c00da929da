package nav

import "eomarket/internal/model"

// ScrollVisibility is the Visible/Hidden machine behind the bottom nav.
// It owns state.Scroll.LastY and state.Scroll.Hidden.
type ScrollVisibility struct {
	Threshold int
}

// Sample feeds one scroll position through the transition function.
func (v ScrollVisibility) Sample(state *model.NavigationState, doc *Document, y, headerHeight int) {
	switch {
	case state.Overlay != model.OverlayNone:
		state.Scroll.Hidden = false
	case state.Layout == model.LayoutDesktop:
		state.Scroll.Hidden = false
	case y > state.Scroll.LastY && y > headerHeight+v.Threshold:
		state.Scroll.Hidden = true
	case y < state.Scroll.LastY || y <= headerHeight:
		state.Scroll.Hidden = false
	}
	state.Scroll.LastY = y
	v.apply(state, doc)
}

// Settle recomputes visibility from the recorded position alone, without a
// direction. Used when something other than scrolling changed.
func (v ScrollVisibility) Settle(state *model.NavigationState, doc *Document, headerHeight int) {
	y := state.Scroll.LastY
	switch {
	case state.Overlay != model.OverlayNone, state.Layout == model.LayoutDesktop:
		state.Scroll.Hidden = false
	case y <= headerHeight:
		state.Scroll.Hidden = false
	case y > headerHeight+v.Threshold:
		state.Scroll.Hidden = true
	}
	v.apply(state, doc)
}

// apply reflects the machine on the bottom nav. An open overlay always
// forces the nav hidden, whatever the machine says.
func (v ScrollVisibility) apply(state *model.NavigationState, doc *Document) {
	hidden := state.Overlay != model.OverlayNone ||
		(state.Layout == model.LayoutMobile && state.Scroll.Hidden)
	doc.Element(ElemBottomNav).SetClass(ClassHidden, hidden)
}
