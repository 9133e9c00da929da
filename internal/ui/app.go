package ui

import (
	"database/sql"
	"eomarket/internal/config"
	"eomarket/internal/model"
	"eomarket/internal/nav"
	"eomarket/internal/trace"
	"eomarket/internal/util"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

const (
	animationTick = 50 * time.Millisecond
	wheelLines    = 3
	heroHeight    = 10
	heroMaxWidth  = 64
)

// Model is the root Bubble Tea model. It turns terminal input into navigation
// events and renders whatever the Document says.
type Model struct {
	cfg        *config.Config
	dispatcher *nav.Dispatcher
	frames     *nav.FrameQueue
	recorder   *trace.Recorder
	log        *zap.Logger
	caps       TerminalCapabilities

	width   int
	height  int
	started bool
	gState  GState

	viewport viewport.Model
	search   textinput.Model

	hero        string
	heroStarted time.Time
	animAt      time.Time
	clock       func() time.Time

	error       string
	info        string
	showingHelp bool

	keys      KeyMap
	fieldKeys FieldKeyMap
}

// New creates a new root model. recorder may be nil to disable tracing.
func New(cfg *config.Config, recorder *trace.Recorder, log *zap.Logger, caps TerminalCapabilities) Model {
	if log == nil {
		log = zap.NewNop()
	}

	registry := nav.DefaultRegistry()
	if _, ok := registry.Page(cfg.LandingPage); ok {
		registry.Landing = cfg.LandingPage
	} else {
		log.Warn("unknown landing page, using default",
			zap.String("landing_page", cfg.LandingPage), zap.String("default", registry.Landing))
	}

	doc := nav.NewDocument()
	registry.Bind(doc)
	frames := &nav.FrameQueue{}
	opts := nav.Options{
		Breakpoint:       cfg.Breakpoint,
		HideThreshold:    cfg.HideThreshold,
		BottomNavHeight:  cfg.BottomNavHeight,
		AnimationStagger: cfg.AnimationStagger,
		NoticeText:       cfg.NoticeText,
	}

	search := textinput.New()
	search.Placeholder = "Address, area or street"
	search.Prompt = "⌕ "
	search.CharLimit = 64

	return Model{
		cfg:        cfg,
		dispatcher: nav.NewDispatcher(opts, registry, doc, frames, log),
		frames:     frames,
		recorder:   recorder,
		log:        log,
		caps:       caps,
		gState:     GStateIdle,
		viewport:   viewport.New(0, 0),
		search:     search,
		clock:      time.Now,
		keys:       DefaultKeyMap(),
		fieldKeys:  DefaultFieldKeyMap(),
	}
}

// Init initializes the model. Navigation starts on the first WindowSizeMsg,
// when the viewport width is known.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	if m.started {
		cmd = tea.Batch(cmd, m.syncHeroAnimation())
	}
	m.syncViewport()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.hero = RenderHeroImage(m.caps, min(m.width-4, heroMaxWidth), heroHeight)
		widthPx := m.width * m.cfg.CellWidthPx
		var cmds []tea.Cmd
		if !m.started {
			m.started = true
			m.dispatcher.Start(widthPx)
			cmds = append(cmds, m.record(fmt.Sprintf("start(%d)", widthPx)))
		} else {
			cmds = append(cmds, m.dispatch(nav.ResizeEvent{Width: widthPx}))
		}
		cmds = append(cmds, m.measureHeaders()...)
		cmds = append(cmds, m.clampScroll(), m.frameCmd())
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		if !m.started {
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		m.info = ""

		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.search.Focused() {
			return m.handleSearchField(msg)
		}

		if key.Matches(msg, m.keys.Help) {
			m.showingHelp = !m.showingHelp
			return m, nil
		}
		if m.showingHelp {
			if msg.String() == "esc" {
				m.showingHelp = false
			}
			return m, nil
		}

		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.started || m.showingHelp {
			return m, nil
		}
		return m.handleMouse(msg)

	case model.FrameMsg:
		m.frames.Flush()
		return m, m.frameCmd()

	case model.AnimationTickMsg:
		if m.heroStarted.IsZero() {
			return m, nil
		}
		m.animAt = msg.At
		reg := m.dispatcher.Registry()
		if m.animAt.Sub(m.heroStarted) < heroDuration(m.dispatcher.Document(), len(reg.HeroLines)) {
			return m, animationTickCmd()
		}
		return m, nil

	case model.TransitionRecordedMsg:
		return m, nil

	case model.ErrorMsg:
		m.error = msg.Err.Error()
		return m, nil
	}

	if m.search.Focused() {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey maps a key press to a navigation event.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	state := m.dispatcher.State()

	// Handle "gg" state machine
	if msg.String() == "g" {
		if m.gState == GStateIdle {
			m.gState = GStateFirstG
			return m, nil
		}
		m.gState = GStateIdle
		return m.scrollTo(0)
	}
	m.gState = GStateIdle

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		return m.scrollTo(m.viewport.YOffset + 1)
	case key.Matches(msg, m.keys.Up):
		return m.scrollTo(m.viewport.YOffset - 1)
	case key.Matches(msg, m.keys.HalfPageDown):
		return m.scrollTo(m.viewport.YOffset + m.viewport.Height/2)
	case key.Matches(msg, m.keys.HalfPageUp):
		return m.scrollTo(m.viewport.YOffset - m.viewport.Height/2)
	case key.Matches(msg, m.keys.Bottom):
		return m.scrollTo(m.maxScroll())
	case key.Matches(msg, m.keys.Home):
		return m.click("home")
	case key.Matches(msg, m.keys.Search):
		return m.click("search")
	case key.Matches(msg, m.keys.Favorites):
		return m.click("favorites")
	case key.Matches(msg, m.keys.Sell):
		return m.click(nav.TargetAddListing)
	case key.Matches(msg, m.keys.Valuation):
		return m.click("valuation")
	case key.Matches(msg, m.keys.Contact):
		return m.click("contact")
	case key.Matches(msg, m.keys.BookMeeting):
		return m.click("book-meeting")
	case key.Matches(msg, m.keys.Profile):
		return m.click(nav.TargetProfile)
	case key.Matches(msg, m.keys.Menu):
		return m.click(nav.TargetMoreMenu)
	case key.Matches(msg, m.keys.NavSlot):
		items := m.dispatcher.Registry().BottomNavItems()
		i := int(msg.Runes[0] - '1')
		if i < 0 || i >= len(items) {
			return m, nil
		}
		return m.click(items[i].Target)
	case key.Matches(msg, m.keys.Close):
		if state.Overlay == model.OverlayNone {
			return m, nil
		}
		closed := m.dispatch(nav.OverlayCloseEvent{Kind: state.Overlay})
		clamped := m.clampScroll()
		return m, tea.Batch(closed, clamped, m.frameCmd())
	case key.Matches(msg, m.keys.NextTab):
		return m.cycleTab(1)
	case key.Matches(msg, m.keys.PrevTab):
		return m.cycleTab(-1)
	case key.Matches(msg, m.keys.FocusSearch):
		var cmds []tea.Cmd
		if state.ActivePage != "search" || state.Overlay != model.OverlayNone {
			var cmd tea.Cmd
			m, cmd = m.click("search")
			cmds = append(cmds, cmd)
		}
		cmds = append(cmds, m.search.Focus())
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

// handleSearchField routes keys to the focused search input.
func (m Model) handleSearchField(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.fieldKeys.Blur):
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.fieldKeys.Clear):
		m.search.SetValue("")
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		return m.scrollTo(m.viewport.YOffset + wheelLines)
	case tea.MouseButtonWheelUp:
		return m.scrollTo(m.viewport.YOffset - wheelLines)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
	default:
		return m, nil
	}

	l := m.layout()
	if msg.Y < l.headerHeight {
		if target, ok := l.headerZones.at(msg.Y, msg.X); ok {
			return m.click(target)
		}
		return m, nil
	}
	if l.bottomRows > 0 && msg.Y >= l.bottomTop && msg.Y < l.bottomTop+l.bottomRows {
		doc := m.dispatcher.Document()
		if doc.Element(nav.ElemBottomNav).HasClass(nav.ClassHidden) {
			return m, nil
		}
		if target, ok := bottomNavTarget(m.dispatcher.Registry().BottomNavItems(), m.width, msg.X); ok {
			return m.click(target)
		}
	}
	return m, nil
}

func (m Model) click(target string) (Model, tea.Cmd) {
	cmd := m.dispatch(nav.ClickEvent{Target: target})
	doc := m.dispatcher.Document()
	if doc.Notice != "" {
		m.info = doc.Notice
		doc.Notice = ""
	}
	if m.dispatcher.State().ActivePage != "search" {
		m.search.Blur()
	}
	return m, tea.Batch(cmd, m.frameCmd())
}

// cycleTab moves the segmented control that is on screen: the profile tabs
// while the slideout is open, else the search tabs on the search page.
func (m Model) cycleTab(delta int) (Model, tea.Cmd) {
	state := m.dispatcher.State()
	groupID := ""
	switch {
	case state.Overlay == model.OverlayProfile:
		groupID = "profile"
	case state.Overlay == model.OverlayNone && state.ActivePage == "search":
		groupID = "search"
	default:
		return m, nil
	}
	tab := m.dispatcher.Segments().Cycle(m.dispatcher.Document(), groupID, delta)
	if tab == "" {
		return m, nil
	}
	return m, m.dispatch(nav.SegmentTabEvent{Tab: tab})
}

// scrollTo moves the page to line and reports the new window position. Body
// scroll is locked while an overlay is open.
func (m Model) scrollTo(line int) (Model, tea.Cmd) {
	doc := m.dispatcher.Document()
	if doc.ScrollLocked {
		return m, nil
	}
	line = max(0, min(line, m.maxScroll()))
	y := line * m.cfg.CellHeightPx
	if y == doc.ScrollY {
		return m, nil
	}
	return m, m.dispatch(nav.ScrollEvent{Y: y})
}

// clampScroll pulls the page back within the content after the body grew
// or the content shrank, and reports the move as a scroll. Nothing moves
// while an overlay holds the body.
func (m *Model) clampScroll() tea.Cmd {
	doc := m.dispatcher.Document()
	if doc.ScrollLocked {
		return nil
	}
	m.syncViewport()
	y := min(doc.ScrollY/m.cfg.CellHeightPx, m.maxScroll()) * m.cfg.CellHeightPx
	if y == doc.ScrollY {
		return nil
	}
	return m.dispatch(nav.ScrollEvent{Y: y})
}

func (m Model) maxScroll() int {
	return max(0, m.viewport.TotalLineCount()-m.viewport.Height)
}

// dispatch feeds ev to the navigation controller and records the result.
func (m Model) dispatch(ev nav.Event) tea.Cmd {
	m.dispatcher.Dispatch(ev)
	m.log.Debug("dispatched", zap.String("event", ev.Name()))
	return m.record(ev.Name())
}

func (m Model) record(event string) tea.Cmd {
	if m.recorder == nil {
		return nil
	}
	t := m.recorder.Next(event, m.dispatcher.State(), m.dispatcher.Document().ScrollY)
	return recordTransitionCmd(m.recorder.DB(), t)
}

// measureHeaders reports the rendered height of both headers at the current
// width, as a header may wrap onto more rows.
func (m Model) measureHeaders() []tea.Cmd {
	doc := m.dispatcher.Document()
	landing := m.dispatcher.Registry().Landing
	desktop, mobile := headerHeights(doc, m.dispatcher.State(), landing, m.width)
	return []tea.Cmd{
		m.dispatch(nav.HeaderMeasuredEvent{Layout: model.LayoutDesktop, Height: desktop * m.cfg.CellHeightPx}),
		m.dispatch(nav.HeaderMeasuredEvent{Layout: model.LayoutMobile, Height: mobile * m.cfg.CellHeightPx}),
	}
}

// frameCmd schedules a frame when deferred effects are waiting.
func (m Model) frameCmd() tea.Cmd {
	if m.frames.Len() == 0 {
		return nil
	}
	return tea.Tick(m.cfg.FrameDelay, func(time.Time) tea.Msg {
		return model.FrameMsg{}
	})
}

// syncHeroAnimation starts the hero clock once the deferred entrance has been
// applied and resets it as soon as the landing page is left.
func (m *Model) syncHeroAnimation() tea.Cmd {
	animating := m.dispatcher.Document().Element(nav.ElemHeroImage).HasClass(nav.ClassAnimate)
	switch {
	case !animating:
		m.heroStarted = time.Time{}
		m.animAt = time.Time{}
		return nil
	case m.heroStarted.IsZero():
		m.heroStarted = m.clock()
		m.animAt = m.heroStarted
		return animationTickCmd()
	}
	return nil
}

func animationTickCmd() tea.Cmd {
	return tea.Tick(animationTick, func(t time.Time) tea.Msg {
		return model.AnimationTickMsg{At: t}
	})
}

func recordTransitionCmd(database *sql.DB, t model.Transition) tea.Cmd {
	return func() tea.Msg {
		if _, err := trace.InsertTransition(database, t); err != nil {
			return model.ErrorMsg{Err: err}
		}
		return model.TransitionRecordedMsg{Seq: t.Seq}
	}
}

// screenLayout is the vertical split of the terminal for one frame.
type screenLayout struct {
	header       string
	headerZones  zones
	headerHeight int
	banners      []string
	bodyHeight   int
	bottomTop    int
	bottomRows   int
	footer       string
}

func (m Model) layout() screenLayout {
	doc := m.dispatcher.Document()
	state := m.dispatcher.State()
	landing := m.dispatcher.Registry().Landing

	var l screenLayout
	if doc.Element(nav.ElemDesktopHeader).Visible() {
		l.header, l.headerZones = renderDesktopHeader(doc, state, landing, m.width)
	} else {
		l.header, l.headerZones = renderMobileHeader(state, landing, m.width)
	}
	l.headerHeight = lipgloss.Height(l.header)

	if m.error != "" {
		l.banners = append(l.banners, ErrorStyle.Width(m.width).Render("Error: "+m.error))
	}
	if m.info != "" {
		l.banners = append(l.banners, NoticeStyle.Width(m.width).Render(m.info))
	}

	if doc.Element(nav.ElemBottomNav).Visible() {
		l.bottomRows = util.PxToCells(doc.PaddingBottom, m.cfg.CellHeightPx)
	}
	l.footer = RenderHelp(state, m.search.Focused(), m.width)

	used := l.headerHeight + len(l.banners) + l.bottomRows + lipgloss.Height(l.footer)
	l.bodyHeight = max(1, m.height-used)
	l.bottomTop = l.headerHeight + len(l.banners) + l.bodyHeight
	return l
}

// pageView renders the active page from the Document.
func (m Model) pageView() string {
	doc := m.dispatcher.Document()
	reg := m.dispatcher.Registry()
	for _, p := range reg.Pages {
		if !doc.Element(nav.PageElementID(p.ID)).Visible() {
			continue
		}
		switch p.ID {
		case "home":
			return homeView(doc, reg.HeroLines, m.hero, m.animAt.Sub(m.heroStarted), m.width)
		case "search":
			group, _ := reg.Segment("search")
			active := m.dispatcher.Segments().ActiveTab(doc, "search")
			return searchView(doc, group, active, m.search, m.width)
		case "favorites":
			return favoritesView(m.width)
		}
	}
	return ""
}

func (m *Model) syncViewport() {
	if !m.started || m.width == 0 {
		return
	}
	l := m.layout()
	m.search.Width = max(10, min(40, m.width-16))
	m.viewport.Width = m.width
	m.viewport.Height = l.bodyHeight
	m.viewport.SetContent(m.pageView())
	m.viewport.SetYOffset(m.dispatcher.Document().ScrollY / m.cfg.CellHeightPx)
}

// View renders the UI.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 || !m.started {
		return ""
	}

	if m.showingHelp {
		return RenderFullHelp(m.width, m.height)
	}

	l := m.layout()
	doc := m.dispatcher.Document()

	body := m.viewport.View()
	switch m.dispatcher.State().Overlay {
	case model.OverlayProfile:
		group, _ := m.dispatcher.Registry().Segment("profile")
		body = compose(body, m.width, l.bodyHeight, profilePanel(doc, group, slideoutWidth(m.width), l.bodyHeight))
	case model.OverlayMenu:
		body = compose(body, m.width, l.bodyHeight, menuPanel(doc, m.width, l.bodyHeight))
	}
	body = lipgloss.NewStyle().Width(m.width).Height(l.bodyHeight).MaxHeight(l.bodyHeight).Render(body)

	parts := []string{l.header}
	parts = append(parts, l.banners...)
	parts = append(parts, body)
	if bar := renderBottomNav(doc, m.dispatcher.Registry().BottomNavItems(), m.width, l.bottomRows); bar != "" {
		parts = append(parts, bar)
	}
	parts = append(parts, l.footer)
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
