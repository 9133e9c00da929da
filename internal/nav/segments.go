package nav

import "go.uber.org/zap"

// Segments switches the active tab of segmented controls.
type Segments struct {
	Registry Registry
	Log      *zap.Logger
}

// Select activates tabID within its own control and reports the control it
// belongs to. Unknown tabs are ignored.
func (s Segments) Select(doc *Document, tabID string) (SegmentGroup, bool) {
	group, ok := s.Registry.SegmentFor(tabID)
	if !ok {
		orNop(s.Log).Warn("selection of unknown tab ignored", zap.String("tab", tabID))
		return SegmentGroup{}, false
	}
	for _, t := range group.Tabs {
		on := t == tabID
		doc.Element(TabElementID(t)).SetClass(ClassActive, on)
		if section, ok := group.Sections[t]; ok {
			doc.Element(section).SetClass(ClassActive, on)
		}
	}
	return group, true
}

// ActiveTab returns the active tab of the group with id groupID.
func (s Segments) ActiveTab(doc *Document, groupID string) string {
	group, ok := s.Registry.Segment(groupID)
	if !ok {
		return ""
	}
	for _, t := range group.Tabs {
		if doc.Element(TabElementID(t)).HasClass(ClassActive) {
			return t
		}
	}
	return ""
}

// Cycle returns the tab delta steps away from the active one, wrapping.
func (s Segments) Cycle(doc *Document, groupID string, delta int) string {
	group, ok := s.Registry.Segment(groupID)
	if !ok || len(group.Tabs) == 0 {
		return ""
	}
	active := s.ActiveTab(doc, groupID)
	idx := 0
	for i, t := range group.Tabs {
		if t == active {
			idx = i
			break
		}
	}
	n := len(group.Tabs)
	idx = ((idx+delta)%n + n) % n
	return group.Tabs[idx]
}
