package nav

import (
	"eomarket/internal/model"
	"fmt"

	"go.uber.org/zap"
)

// Event is an inbound UI event.
type Event interface {
	Name() string
}

// ScrollEvent reports the window scroll position in px.
type ScrollEvent struct{ Y int }

// ResizeEvent reports the viewport width in px.
type ResizeEvent struct{ Width int }

// ClickEvent is a click on a page link, overlay trigger or stub.
type ClickEvent struct{ Target string }

// OverlayCloseEvent is a click on an overlay's close control.
type OverlayCloseEvent struct{ Kind model.Overlay }

// SegmentTabEvent is a click on a segmented control button.
type SegmentTabEvent struct{ Tab string }

// HeaderMeasuredEvent reports a new rendered header height for mode.
type HeaderMeasuredEvent struct {
	Layout model.LayoutMode
	Height int
}

func (e ScrollEvent) Name() string { return fmt.Sprintf("scroll(%d)", e.Y) }
func (e ResizeEvent) Name() string { return fmt.Sprintf("resize(%d)", e.Width) }
func (e ClickEvent) Name() string { return fmt.Sprintf("click(%s)", e.Target) }
func (e OverlayCloseEvent) Name() string { return fmt.Sprintf("clickOverlayClose(%s)", e.Kind) }
func (e SegmentTabEvent) Name() string { return fmt.Sprintf("clickSegmentedTab(%s)", e.Tab) }
func (e HeaderMeasuredEvent) Name() string {
	return fmt.Sprintf("headerMeasured(%s,%d)", e.Layout, e.Height)
}

// Dispatcher routes every inbound event to the one component operation that
// handles it. It holds the single NavigationState and Document.
type Dispatcher struct {
	state    *model.NavigationState
	doc      *Document
	registry Registry
	log      *zap.Logger

	layout   LayoutDetector
	padding  PaddingSync
	scroll   ScrollVisibility
	overlays Overlays
	router   Router
	segments Segments
	notice   string
}

// NewDispatcher wires the components over a fresh NavigationState. Elements
// must already be bound on doc; missing ones are skipped.
func NewDispatcher(opts Options, registry Registry, doc *Document, sched Scheduler, log *zap.Logger) *Dispatcher {
	log = orNop(log)
	scroll := ScrollVisibility{Threshold: opts.HideThreshold}
	overlays := Overlays{Scroll: scroll, Log: log}
	return &Dispatcher{
		state:    &model.NavigationState{},
		doc:      doc,
		registry: registry,
		log:      log,
		layout:   LayoutDetector{Breakpoint: opts.Breakpoint},
		padding:  PaddingSync{BottomNavHeight: opts.BottomNavHeight},
		scroll:   scroll,
		overlays: overlays,
		router: Router{
			Registry:  registry,
			Overlays:  overlays,
			Scroll:    scroll,
			Scheduler: sched,
			Stagger:   opts.AnimationStagger,
			Log:       log,
		},
		segments: Segments{Registry: registry, Log: log},
		notice:   opts.NoticeText,
	}
}

// Start shows the landing page and runs the first layout pass.
func (d *Dispatcher) Start(width int) {
	d.router.SwitchTo(d.state, d.doc, d.registry.Landing)
	d.resize(width)
}

// State returns a copy of the navigation state.
func (d *Dispatcher) State() model.NavigationState {
	return *d.state
}

func (d *Dispatcher) Document() *Document {
	return d.doc
}

func (d *Dispatcher) Registry() Registry {
	return d.registry
}

func (d *Dispatcher) Segments() Segments {
	return d.segments
}

// Dispatch handles one event. It never fails: malformed input is a no-op.
// Scroll events move the body only while it is not locked by an overlay.
func (d *Dispatcher) Dispatch(ev Event) {
	switch ev := ev.(type) {
	case ScrollEvent:
		// A locked body keeps its position; the sample is still recorded.
		if !d.doc.ScrollLocked {
			d.doc.ScrollTo(ev.Y)
		}
		d.scroll.Sample(d.state, d.doc, max(0, ev.Y), d.doc.HeaderHeight(d.state.Layout))
	case ResizeEvent:
		d.resize(ev.Width)
	case ClickEvent:
		d.click(ev.Target)
	case OverlayCloseEvent:
		if ev.Kind == model.OverlayNone || ev.Kind != d.state.Overlay {
			d.log.Debug("close of overlay that is not open ignored",
				zap.Stringer("overlay", ev.Kind), zap.Stringer("open", d.state.Overlay))
			return
		}
		d.overlays.Close(d.state, d.doc)
	case SegmentTabEvent:
		group, ok := d.segments.Select(d.doc, ev.Tab)
		if ok && group.ID == "search" {
			d.log.Info("showing listings", zap.String("tab", ev.Tab))
		}
	case HeaderMeasuredEvent:
		d.measureHeader(ev.Layout, ev.Height)
	case nil:
		d.log.Debug("nil event ignored")
	default:
		d.log.Warn("unhandled event", zap.String("event", ev.Name()))
	}
}

func (d *Dispatcher) click(target string) {
	switch {
	case target == TargetProfile:
		d.overlays.Open(d.state, d.doc, model.OverlayProfile)
	case target == TargetMoreMenu:
		d.overlays.Open(d.state, d.doc, model.OverlayMenu)
	case d.registry.IsStub(target):
		d.doc.Notice = d.notice
	default:
		d.router.SwitchTo(d.state, d.doc, target)
	}
}

func (d *Dispatcher) resize(width int) {
	mode := d.layout.Evaluate(width)
	d.state.Layout = mode
	applyLayout(d.doc, mode)
	header := d.doc.HeaderHeight(mode)
	d.padding.Recompute(d.doc, mode, header)
	d.scroll.Sample(d.state, d.doc, d.doc.ScrollY, header)
}

func (d *Dispatcher) measureHeader(mode model.LayoutMode, height int) {
	id := ElemMobileHeader
	if mode == model.LayoutDesktop {
		id = ElemDesktopHeader
	}
	el := d.doc.Element(id)
	if el == nil {
		return
	}
	el.Height = height
	if mode == d.state.Layout {
		d.padding.Recompute(d.doc, mode, height)
	}
}

func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
