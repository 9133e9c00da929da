package nav

import (
	"eomarket/internal/model"
	"sort"
	"strconv"
)

// Element ids and class names written by the controller.
const (
	ElemDesktopHeader   = "desktop-header"
	ElemMobileHeader    = "mobile-header"
	ElemBottomNav       = "bottom-nav"
	ElemProfileSlideout = "profile-slideout"
	ElemOverlayMenu     = "overlay-menu"
	ElemHeroImage       = "hero-image"

	ClassActive  = "active"
	ClassShow    = "show"
	ClassHidden  = "hidden"
	ClassAnimate = "animate"

	StyleAnimationDelay = "--animation-delay"
)

// PageElementID returns the element id of a page container.
func PageElementID(pageID string) string { return pageID + "-page" }

// NavItemElementID returns the element id of a nav entry.
func NavItemElementID(target string) string { return "nav-" + target }

// HeroLineID returns the element id of the i-th hero text line.
func HeroLineID(i int) string { return "hero-line-" + strconv.Itoa(i) }

// TabElementID returns the element id of a segmented control button.
func TabElementID(tabID string) string { return "tab-" + tabID }

// Element is one bound UI element. All methods are safe on a nil receiver so a
// binding that was never wired degrades to a no-op.
type Element struct {
	ID      string
	Display model.Display
	// Height is the rendered height in px, reported by the host.
	Height int

	classes map[string]bool
	style   map[string]string
}

func (e *Element) SetDisplay(d model.Display) {
	if e == nil {
		return
	}
	e.Display = d
}

func (e *Element) Visible() bool {
	return e != nil && e.Display != model.DisplayNone
}

func (e *Element) HasClass(class string) bool {
	return e != nil && e.classes[class]
}

func (e *Element) SetClass(class string, on bool) {
	if e == nil {
		return
	}
	if on {
		e.classes[class] = true
		return
	}
	delete(e.classes, class)
}

// Classes returns the element's classes in sorted order.
func (e *Element) Classes() []string {
	if e == nil {
		return nil
	}
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (e *Element) Style(prop string) string {
	if e == nil {
		return ""
	}
	return e.style[prop]
}

func (e *Element) SetStyle(prop, value string) {
	if e == nil {
		return
	}
	e.style[prop] = value
}

func (e *Element) RemoveStyle(prop string) {
	if e == nil {
		return
	}
	delete(e.style, prop)
}

// Document is the outbound effect surface: every visibility, class and style
// decision lands here and the renderer only reads it.
type Document struct {
	elements map[string]*Element

	ScrollLocked  bool
	PaddingTop    int
	PaddingBottom int
	ScrollY       int
	// Notice is a pending user-visible message; the host clears it once shown.
	Notice string
}

func NewDocument() *Document {
	return &Document{elements: make(map[string]*Element)}
}

// Bind registers an element. Binding an existing id returns the existing one.
func (d *Document) Bind(id string, display model.Display) *Element {
	if el, ok := d.elements[id]; ok {
		return el
	}
	el := &Element{
		ID:      id,
		Display: display,
		classes: make(map[string]bool),
		style:   make(map[string]string),
	}
	d.elements[id] = el
	return el
}

// Element returns the bound element or nil.
func (d *Document) Element(id string) *Element {
	return d.elements[id]
}

// HeaderHeight returns the rendered height of the header used by mode.
func (d *Document) HeaderHeight(mode model.LayoutMode) int {
	if mode == model.LayoutDesktop {
		if el := d.Element(ElemDesktopHeader); el != nil {
			return el.Height
		}
		return 0
	}
	if el := d.Element(ElemMobileHeader); el != nil {
		return el.Height
	}
	return 0
}

// ScrollTo moves the window scroll position.
func (d *Document) ScrollTo(y int) {
	if y < 0 {
		y = 0
	}
	d.ScrollY = y
}
