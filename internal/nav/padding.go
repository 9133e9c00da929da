package nav

import "eomarket/internal/model"

// PaddingSync keeps content offsets equal to the fixed header and footer.
type PaddingSync struct {
	BottomNavHeight int
}

// Recompute writes the top offset from the measured header height and the
// bottom offset from the configured bottom-nav height on mobile.
func (p PaddingSync) Recompute(doc *Document, mode model.LayoutMode, headerHeight int) {
	if headerHeight < 0 {
		headerHeight = 0
	}
	doc.PaddingTop = headerHeight
	if mode == model.LayoutMobile {
		doc.PaddingBottom = p.BottomNavHeight
		return
	}
	doc.PaddingBottom = 0
}
