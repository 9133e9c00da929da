package nav

import "eomarket/internal/model"

// LayoutDetector classifies viewport widths.
type LayoutDetector struct {
	Breakpoint int
}

// Evaluate returns desktop iff width is at or above the breakpoint.
func (d LayoutDetector) Evaluate(width int) model.LayoutMode {
	if width >= d.Breakpoint {
		return model.LayoutDesktop
	}
	return model.LayoutMobile
}

// applyLayout swaps header and footer visibility for mode.
func applyLayout(doc *Document, mode model.LayoutMode) {
	if mode == model.LayoutDesktop {
		doc.Element(ElemDesktopHeader).SetDisplay(model.DisplayFlex)
		doc.Element(ElemMobileHeader).SetDisplay(model.DisplayNone)
		doc.Element(ElemBottomNav).SetDisplay(model.DisplayNone)
		return
	}
	doc.Element(ElemDesktopHeader).SetDisplay(model.DisplayNone)
	doc.Element(ElemMobileHeader).SetDisplay(model.DisplayFlex)
	doc.Element(ElemBottomNav).SetDisplay(model.DisplayFlex)
}
