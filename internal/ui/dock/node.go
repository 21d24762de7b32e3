package dock

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/dockpane/internal/config"
	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/property"
	"github.com/bnema/dockpane/internal/ui/windowing"
)

// DockNode is a leaf of the content tree: one piece of application
// content with a title bar, either docked into a pane or floating in
// its own top-level window. Docked, floating and closed are mutually
// exclusive; maximized is only reachable while floating.
type DockNode struct {
	id          string
	parent      ContentContainer
	settingName string

	content  Content
	titleBar *TitleBar

	winsvc windowing.Service
	styles windowing.StyleSink
	cfg    *config.Config
	logger zerolog.Logger

	title     *property.Value[string]
	graphic   *property.Value[string]
	floating  *property.Value[bool]
	docked    *property.Value[bool]
	maximized *property.Value[bool]
	minimized *property.Value[bool]
	tabbed    *property.Value[bool]
	closed    *property.Value[bool]

	stageStyle     windowing.WindowStyle
	resizable      bool
	floatable      bool
	closable       bool
	minimizable    bool
	customTitleBar bool
	alwaysOnTop    bool
	removeOnClose  bool
	ignoreStore    bool
	renamed        bool

	floatWin windowing.Window

	// Floating-size memo: the first float is forced to the configured
	// default size, later floats restore the last floating size.
	everFloated          bool
	floatingW, floatingH float64

	preMaxBounds  entity.Rect
	sceneOffset   entity.Point
	lastScreenPos *entity.Point

	// Resize state for the undecorated floating window border.
	hoverEdge ResizeEdge
	resizing  bool
	sizeLast  entity.Point

	pane            *DockPane
	lastDockPane    *DockPane
	lastDockPos     entity.DockPos
	lastDockSibling TreeNode

	onClose func()
}

// NodeOption configures a DockNode at construction.
type NodeOption func(*DockNode)

// WithStageStyle sets the native decoration of the node's floating
// window. Undecorated windows get the engine's title bar and resize
// border; decorated ones use native chrome.
func WithStageStyle(style windowing.WindowStyle) NodeOption {
	return func(n *DockNode) { n.stageStyle = style }
}

// WithFloatable(false) pins the node: drags and float requests are
// ignored.
func WithFloatable(floatable bool) NodeOption {
	return func(n *DockNode) { n.floatable = floatable }
}

// WithClosable(false) removes the close affordance.
func WithClosable(closable bool) NodeOption {
	return func(n *DockNode) { n.closable = closable }
}

// WithResizable(false) fixes the floating window size.
func WithResizable(resizable bool) NodeOption {
	return func(n *DockNode) { n.resizable = resizable }
}

// WithMinimizable(false) removes the minimize affordance.
func WithMinimizable(minimizable bool) NodeOption {
	return func(n *DockNode) { n.minimizable = minimizable }
}

// WithGraphic sets the icon name shown in the title bar and tabs.
func WithGraphic(graphic string) NodeOption {
	return func(n *DockNode) { n.graphic = property.New(graphic) }
}

// WithCustomTitleBar overrides whether the engine draws its own title
// bar. Defaults to true for undecorated floating windows.
func WithCustomTitleBar(custom bool) NodeOption {
	return func(n *DockNode) { n.customTitleBar = custom }
}

// WithRemoveOnClose drops the pane's reference to the node when it is
// closed, so it cannot be reopened from the layout.
func WithRemoveOnClose() NodeOption {
	return func(n *DockNode) { n.removeOnClose = true }
}

// WithIgnoreStore excludes the node from layout persistence.
func WithIgnoreStore() NodeOption {
	return func(n *DockNode) { n.ignoreStore = true }
}

// NewDockNode wraps content in a dock node. settingName must be unique
// within the application; it keys style updates and persisted layout.
func NewDockNode(ctx context.Context, svc windowing.Service, content Content, settingName, title string, opts ...NodeOption) *DockNode {
	log := logging.FromContext(ctx)

	n := &DockNode{
		id:          uuid.NewString(),
		settingName: settingName,
		content:     content,
		winsvc:      svc,
		styles:      windowing.NopStyleSink{},
		cfg:         config.Defaults(),
		logger:      log.With().Str("component", "dock-node").Str("node", settingName).Logger(),
		title:       property.New(title),
		graphic:     property.New(""),
		floating:    property.New(false),
		docked:      property.New(false),
		maximized:   property.New(false),
		minimized:   property.New(false),
		tabbed:      property.New(false),
		closed:      property.New(false),
		stageStyle:  windowing.StyleTransparent,
		resizable:   true,
		floatable:   true,
		closable:    true,
		minimizable: true,
	}
	n.customTitleBar = true
	for _, opt := range opts {
		opt(n)
	}
	// Decorated windows carry native chrome, never an engine bar.
	if n.stageStyle.Decorated() {
		n.customTitleBar = false
	}
	if n.customTitleBar {
		n.titleBar = newTitleBar(n)
	}
	return n
}

// ID returns the node's stable identifier.
func (n *DockNode) ID() string { return n.id }

// SettingName returns the persistence and styling key.
func (n *DockNode) SettingName() string { return n.settingName }

// Content returns the wrapped application content.
func (n *DockNode) Content() Content { return n.content }

// TitleBar returns the engine title bar, nil for decorated nodes that
// use native window chrome.
func (n *DockNode) TitleBar() *TitleBar { return n.titleBar }

// Parent implements TreeNode.
func (n *DockNode) Parent() ContentContainer { return n.parent }

func (n *DockNode) setParent(parent ContentContainer) { n.parent = parent }

// Title returns the current title.
func (n *DockNode) Title() string { return n.title.Get() }

// TitleProperty exposes the title for title-bar and tab-label binding.
func (n *DockNode) TitleProperty() *property.Value[string] { return n.title }

// Rename changes the title everywhere it is shown.
func (n *DockNode) Rename(title string) {
	if title != n.title.Get() {
		n.renamed = true
	}
	n.title.Set(title)
	if n.floatWin != nil {
		n.floatWin.SetTitle(title)
	}
}

// IsRenamed reports whether the title was changed after construction.
func (n *DockNode) IsRenamed() bool { return n.renamed }

// Graphic returns the icon name shown next to the title.
func (n *DockNode) Graphic() string { return n.graphic.Get() }

// SetGraphic changes the icon shown next to the title.
func (n *DockNode) SetGraphic(graphic string) { n.graphic.Set(graphic) }

// GraphicProperty exposes the graphic for title-bar and tab binding.
func (n *DockNode) GraphicProperty() *property.Value[string] { return n.graphic }

// IsFloating reports whether the node lives in its own window.
func (n *DockNode) IsFloating() bool { return n.floating.Get() }

// IsDocked reports whether the node is attached to a pane tree.
func (n *DockNode) IsDocked() bool { return n.docked.Get() }

// IsMaximized reports whether the floating window fills its display.
func (n *DockNode) IsMaximized() bool { return n.maximized.Get() }

// IsMinimized reports whether the floating window is iconified.
func (n *DockNode) IsMinimized() bool { return n.minimized.Get() }

// IsTabbed reports whether the node currently sits in a tab container.
func (n *DockNode) IsTabbed() bool { return n.tabbed.Get() }

// IsClosed reports whether the node has been closed.
func (n *DockNode) IsClosed() bool { return n.closed.Get() }

// IsIgnoreStore reports whether the node is excluded from persistence.
func (n *DockNode) IsIgnoreStore() bool { return n.ignoreStore }

// FloatingProperty exposes the floating flag for observers.
func (n *DockNode) FloatingProperty() *property.Value[bool] { return n.floating }

// DockedProperty exposes the docked flag for observers.
func (n *DockNode) DockedProperty() *property.Value[bool] { return n.docked }

// MaximizedProperty exposes the maximized flag for observers.
func (n *DockNode) MaximizedProperty() *property.Value[bool] { return n.maximized }

// MinimizedProperty exposes the minimized flag for observers.
func (n *DockNode) MinimizedProperty() *property.Value[bool] { return n.minimized }

// TabbedProperty exposes the tabbed flag for observers.
func (n *DockNode) TabbedProperty() *property.Value[bool] { return n.tabbed }

// ClosedProperty exposes the closed flag for observers.
func (n *DockNode) ClosedProperty() *property.Value[bool] { return n.closed }

// FloatingWindow returns the node's top-level window while floating,
// nil otherwise.
func (n *DockNode) FloatingWindow() windowing.Window { return n.floatWin }

func (n *DockNode) setTabbed(tabbed bool) { n.tabbed.Set(tabbed) }

// adoptPane inherits the pane's collaborators the first time the node
// meets a pane, so a node can be constructed without one.
func (n *DockNode) adoptPane(p *DockPane) {
	n.pane = p
	if p.styles != nil {
		n.styles = p.styles
	}
	if p.cfg != nil {
		n.cfg = p.cfg
	}
	if n.winsvc == nil {
		n.winsvc = p.winsvc
	}
}

// Dock attaches the node to pane at pos relative to sibling, leaving
// the floating state first when needed. Docking a closed node reopens
// it.
func (n *DockNode) Dock(p *DockPane, pos entity.DockPos, sibling TreeNode) {
	if p == nil {
		return
	}
	if n.floating.Get() {
		n.SetFloating(false, nil)
	}
	p.Dock(n, pos, sibling)
}

// DockTo attaches relative to the whole tree.
func (n *DockNode) DockTo(p *DockPane, pos entity.DockPos) {
	n.Dock(p, pos, p.Root())
}

// DockDefault attaches with the pane's default placement.
func (n *DockNode) DockDefault(p *DockPane) {
	if p == nil {
		return
	}
	if n.floating.Get() {
		n.SetFloating(false, nil)
	}
	p.DockDefault(n)
}

// Undock detaches the node from its pane without floating it.
func (n *DockNode) Undock() {
	if !n.docked.Get() || n.pane == nil {
		return
	}
	n.pane.Undock(n)
	n.docked.Set(false)
	n.pushStyleStates()
}

// DockBack returns a floating or detached node to its last docked
// position. When the remembered sibling is gone, closed or itself
// floating, the node falls back to the pane's default placement.
// Reports whether the node ended up docked.
func (n *DockNode) DockBack() bool {
	p := n.lastDockPane
	if p == nil {
		p = n.pane
	}
	if p == nil {
		return false
	}

	sibling := n.lastDockSibling
	if sd, ok := sibling.(*DockNode); ok && (sd.IsClosed() || sd.IsFloating()) {
		sibling = nil
	}
	if sibling == nil || !p.Contains(sibling) {
		n.DockDefault(p)
		return n.docked.Get()
	}

	n.Dock(p, n.lastDockPos, sibling)
	// Landing next to the remembered sibling reclaims an even share of
	// the split instead of the sliver the insert math would give.
	if sc, ok := n.parent.(*SplitContainer); ok {
		sc.ResetDividers()
	}
	return n.docked.Get()
}

// SetFloating moves the node between docked and floating. translation
// shifts the floating window relative to the node's resolved position;
// pass nil to open exactly there. Floating a closed node reopens it.
func (n *DockNode) SetFloating(floating bool, translation *entity.Point) {
	if floating == n.floating.Get() {
		return
	}

	if floating {
		if !n.floatable || n.winsvc == nil {
			return
		}
		wasDocked := n.docked.Get()
		if wasDocked {
			n.Undock()
		}
		n.closed.Set(false)
		n.openFloatingWindow(translation, wasDocked)
		n.floating.Set(true)
	} else {
		n.closeFloatingWindow()
		n.floating.Set(false)
	}
	n.pushStyleStates()
}

// Float detaches the node into its own window at the remembered
// position.
func (n *DockNode) Float() {
	n.SetFloating(true, nil)
}

func (n *DockNode) openFloatingWindow(translation *entity.Point, wasDocked bool) {
	win := n.winsvc.CreateWindow(n.stageStyle)
	win.SetTitle(n.title.Get())
	win.SetResizable(n.resizable)
	win.SetAlwaysOnTop(n.alwaysOnTop)

	w, h := n.floatingSize()
	if cw, ch := n.content.PreferredSize(); cw > 0 && ch > 0 {
		minW, minH := cw, ch
		if minW > w {
			minW = w
		}
		if minH > h {
			minH = h
		}
		win.SetMinSize(minW, minH)
	}

	origin := n.floatOrigin(translation, wasDocked, w, h)
	win.SetBounds(entity.Rect{X: origin.X, Y: origin.Y, W: w, H: h})
	win.SetOnCloseRequest(n.Close)
	win.Show()

	n.floatWin = win
	n.everFloated = true
	n.logger.Debug().
		Float64("x", origin.X).Float64("y", origin.Y).
		Float64("w", w).Float64("h", h).
		Msg("node floated")
}

// floatingSize returns the window size for the next float: the
// configured default the first time, the last floating size after.
func (n *DockNode) floatingSize() (w, h float64) {
	if n.everFloated && n.floatingW > 0 && n.floatingH > 0 {
		return n.floatingW, n.floatingH
	}
	return n.cfg.Floating.DefaultWidth, n.cfg.Floating.DefaultHeight
}

// floatOrigin resolves where the floating window opens: the spot the
// node occupied when it was last docked or floating, else centered on
// the nearest display. An optional translation shifts the resolved
// position.
func (n *DockNode) floatOrigin(translation *entity.Point, wasDocked bool, w, h float64) entity.Point {
	origin := n.floatBase(wasDocked, w, h)
	if translation != nil {
		origin.X += translation.X
		origin.Y += translation.Y
	}
	return origin
}

func (n *DockNode) floatBase(wasDocked bool, w, h float64) entity.Point {
	if wasDocked && n.stageStyle.Decorated() && n.pane != nil && n.pane.hostWindow != nil {
		hb := n.pane.hostWindow.Bounds()
		return entity.Point{X: hb.X + n.sceneOffset.X, Y: hb.Y + n.sceneOffset.Y}
	}
	if n.lastScreenPos != nil {
		return *n.lastScreenPos
	}

	anchor := entity.Rect{W: w, H: h}
	if n.pane != nil && n.pane.hostWindow != nil {
		anchor = n.pane.hostWindow.Bounds()
	}
	var disp windowing.Display
	if anchor.W > 0 || anchor.H > 0 {
		disp = n.winsvc.DisplayContaining(anchor)
	} else {
		disp = n.winsvc.PrimaryDisplay()
	}
	vb := disp.VisualBounds
	return entity.Point{X: vb.X + (vb.W-w)/2, Y: vb.Y + (vb.H-h)/2}
}

func (n *DockNode) closeFloatingWindow() {
	if n.floatWin == nil {
		return
	}
	if n.maximized.Get() {
		// Remember the restored geometry, not the maximized one.
		n.floatWin.SetBounds(n.preMaxBounds)
		n.maximized.Set(false)
	}
	b := n.floatWin.Bounds()
	n.floatingW, n.floatingH = b.W, b.H
	pos := entity.Point{X: b.X, Y: b.Y}
	n.lastScreenPos = &pos

	n.floatWin.SetOnCloseRequest(nil)
	n.floatWin.Close()
	n.floatWin = nil
	n.minimized.Set(false)
	n.resizing = false
	n.hoverEdge = EdgeNone
}

// SetFloatingSize overrides the size the next float opens with, and
// resizes the window immediately while floating.
func (n *DockNode) SetFloatingSize(w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	n.floatingW, n.floatingH = w, h
	n.everFloated = true
	if n.floatWin != nil && !n.maximized.Get() {
		b := n.floatWin.Bounds()
		n.floatWin.SetBounds(entity.Rect{X: b.X, Y: b.Y, W: w, H: h})
	}
}

// SetFloatingWidth adjusts only the width, keeping the current height.
func (n *DockNode) SetFloatingWidth(w float64) {
	_, h := n.floatingSize()
	n.SetFloatingSize(w, h)
}

// SetFloatingHeight adjusts only the height, keeping the current width.
func (n *DockNode) SetFloatingHeight(h float64) {
	w, _ := n.floatingSize()
	n.SetFloatingSize(w, h)
}

// SetMaximized grows the floating window to the visual bounds of the
// display it sits on, or restores the remembered geometry. No-op while
// docked.
func (n *DockNode) SetMaximized(maximized bool) {
	if maximized == n.maximized.Get() || n.floatWin == nil {
		return
	}
	if maximized {
		n.preMaxBounds = n.floatWin.Bounds()
		disp := n.winsvc.DisplayContaining(n.preMaxBounds)
		n.floatWin.SetBounds(disp.VisualBounds)
		n.maximized.Set(true)
	} else {
		n.floatWin.SetBounds(n.preMaxBounds)
		n.maximized.Set(false)
	}
	n.pushStyleStates()
}

// SetMinimized iconifies or restores the floating window. No-op while
// docked or when the node is not minimizable.
func (n *DockNode) SetMinimized(minimized bool) {
	if n.floatWin == nil || (minimized && !n.minimizable) {
		return
	}
	n.floatWin.SetIconified(minimized)
	n.minimized.Set(minimized)
}

// IsMinimizable reports whether the minimize affordance is enabled.
func (n *DockNode) IsMinimizable() bool { return n.minimizable }

// SetAlwaysOnTop keeps the floating window above normal windows.
func (n *DockNode) SetAlwaysOnTop(onTop bool) {
	n.alwaysOnTop = onTop
	if n.floatWin != nil {
		n.floatWin.SetAlwaysOnTop(onTop)
	}
}

// IsClosable reports whether the close affordance is enabled.
func (n *DockNode) IsClosable() bool { return n.closable }

// IsFloatable reports whether the node may leave its pane.
func (n *DockNode) IsFloatable() bool { return n.floatable }

// OnClose registers a callback fired once when the node closes.
func (n *DockNode) OnClose(fn func()) { n.onClose = fn }

// Close leaves whatever state the node is in and marks it closed. With
// removeOnClose set, the pane forgets the node entirely and it cannot
// come back through the layout.
func (n *DockNode) Close() {
	if n.closed.Get() {
		return
	}
	if n.floating.Get() {
		n.SetFloating(false, nil)
	} else if n.docked.Get() {
		n.Undock()
	}
	n.closed.Set(true)
	n.pushStyleStates()

	if n.onClose != nil {
		n.onClose()
	}
	if n.removeOnClose && n.pane != nil {
		n.pane.Remove(n)
	}
	n.logger.Debug().Msg("node closed")
}

// Replace puts other where this node is and closes this node: a
// floating node hands its window geometry to other, a docked one its
// slot in the tree.
func (n *DockNode) Replace(other *DockNode) bool {
	if other == nil || other == n {
		return false
	}

	switch {
	case n.floating.Get():
		b := n.floatWin.Bounds()
		other.SetFloatingSize(b.W, b.H)
		other.Float()
		if other.floatWin == nil {
			return false
		}
		n.Close()
		other.floatWin.SetBounds(b)
	case n.docked.Get():
		other.Dock(n.pane, entity.DockCenter, n)
		n.Close()
	default:
		return false
	}
	return true
}

// refreshLastPosition records where the node sits so DockBack can
// restore it: the neighboring child in a split, or a fellow tab.
func (n *DockNode) refreshLastPosition() {
	n.lastDockPane = n.pane
	n.lastDockSibling = nil
	n.lastDockPos = entity.DockCenter

	switch parent := n.parent.(type) {
	case *TabContainer:
		for _, tab := range parent.tabs {
			if tab != n {
				n.lastDockSibling = tab
				break
			}
		}
	case *SplitContainer:
		i := parent.indexOf(n)
		if i < 0 {
			return
		}
		horizontal := parent.orientation == entity.OrientationHorizontal
		switch {
		case i > 0:
			n.lastDockSibling = parent.children[i-1]
			if horizontal {
				n.lastDockPos = entity.DockRight
			} else {
				n.lastDockPos = entity.DockBottom
			}
		case len(parent.children) > 1:
			n.lastDockSibling = parent.children[1]
			if horizontal {
				n.lastDockPos = entity.DockLeft
			} else {
				n.lastDockPos = entity.DockTop
			}
		}
	}
}

// pushStyleStates tells the renderer which visual states apply now.
func (n *DockNode) pushStyleStates() {
	var states []entity.StyleState
	if n.docked.Get() {
		states = append(states, entity.StyleDocked)
	}
	if n.floating.Get() {
		states = append(states, entity.StyleFloating)
	}
	if n.maximized.Get() {
		states = append(states, entity.StyleMaximized)
	}
	n.styles.ApplyStyleStates(n.settingName, states)
}
