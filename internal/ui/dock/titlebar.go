package dock

import (
	"github.com/bnema/dockpane/internal/domain/entity"
)

// dragThreshold is how far the pointer must travel from the press
// point before a press on the title bar becomes a drag.
const dragThreshold = 4.0

// TitleBar is the engine-drawn strip above a node's content: title
// label, the state and close buttons, and the drag surface that tears
// the node out of its pane and drops it back in.
type TitleBar struct {
	node *DockNode

	// hidden while the node sits in a tab container; the tab strip
	// shows the title instead.
	visible bool

	armed    bool
	dragging bool
	// pressLocal is the press offset inside the title bar, kept so the
	// floating window stays under the pointer at the same offset.
	pressLocal entity.Point

	current *DropTarget

	// OnDropTargetChanged fires whenever the candidate drop target
	// changes during a drag, including with nil when the pointer
	// leaves every zone. Used to move the drop indicator.
	OnDropTargetChanged func(target *DropTarget)
}

func newTitleBar(n *DockNode) *TitleBar {
	tb := &TitleBar{node: n, visible: true}
	n.tabbed.Subscribe(func(_, tabbed bool) {
		tb.visible = !tabbed
	})
	return tb
}

// Node returns the dock node this title bar belongs to.
func (t *TitleBar) Node() *DockNode { return t.node }

// Title returns the text to render.
func (t *TitleBar) Title() string { return t.node.Title() }

// Graphic returns the icon identifier to render next to the title,
// empty when the node has none.
func (t *TitleBar) Graphic() string { return t.node.Graphic() }

// IsVisible reports whether the bar should be rendered. Tabbed nodes
// hide it.
func (t *TitleBar) IsVisible() bool { return t.visible }

// IsDragging reports whether a tear-out drag is in progress.
func (t *TitleBar) IsDragging() bool { return t.dragging }

// CurrentDropTarget returns the drop the drag would commit right now,
// nil when released here the node would stay floating.
func (t *TitleBar) CurrentDropTarget() *DropTarget { return t.current }

// CloseRequested handles the close button.
func (t *TitleBar) CloseRequested() {
	if t.node.IsClosable() {
		t.node.Close()
	}
}

// MinimizeRequested handles the minimize button.
func (t *TitleBar) MinimizeRequested() {
	t.node.SetMinimized(true)
}

// MaximizeRequested toggles the floating window between maximized and
// restored.
func (t *TitleBar) MaximizeRequested() {
	t.node.SetMaximized(!t.node.IsMaximized())
}

// StateToggleRequested handles the dock/float button: a floating node
// returns to its last docked position, a docked one floats.
func (t *TitleBar) StateToggleRequested() {
	if t.node.IsFloating() {
		t.node.DockBack()
	} else if t.node.IsDocked() {
		t.node.Float()
	}
}

// HandlePointer implements PointerEventSink for the title bar surface.
// A press arms a potential drag; movement past the threshold tears a
// docked node out into a floating window that then follows the
// pointer; release either commits the drop target under the pointer
// or leaves the node floating where it is. An abandoned drag never
// touches the tree.
func (t *TitleBar) HandlePointer(ev PointerEvent) {
	switch ev.Kind {
	case PointerPressed:
		t.armed = true
		t.pressLocal = ev.Local
	case PointerDragged:
		if !t.armed {
			return
		}
		if !t.dragging && !t.pastThreshold(ev.Local) {
			return
		}
		t.drag(ev)
	case PointerReleased:
		t.release(ev)
	}
}

func (t *TitleBar) pastThreshold(local entity.Point) bool {
	d := local.Sub(t.pressLocal)
	return d.X*d.X+d.Y*d.Y >= dragThreshold*dragThreshold
}

func (t *TitleBar) drag(ev PointerEvent) {
	n := t.node

	if !t.dragging {
		if n.IsDocked() {
			if !n.IsFloatable() {
				t.armed = false
				return
			}
			// The move below puts the title bar under the pointer at
			// the press offset.
			n.Float()
		}
		if !n.IsFloating() {
			t.armed = false
			return
		}
		t.dragging = true
	}

	if n.IsMaximized() {
		t.unmaximizeUnderPointer(ev)
	}

	b := n.floatWin.Bounds()
	b.X = ev.Screen.X - t.pressLocal.X
	b.Y = ev.Screen.Y - t.pressLocal.Y
	n.floatWin.SetBounds(b)

	t.updateDropTarget(ev.Screen)
}

// unmaximizeUnderPointer restores the window during a drag, scaling
// the press offset so the restored title bar keeps the pointer at the
// same relative position.
func (t *TitleBar) unmaximizeUnderPointer(ev PointerEvent) {
	n := t.node
	maxW := n.floatWin.Bounds().W
	n.SetMaximized(false)
	if maxW > 0 {
		t.pressLocal.X *= n.floatWin.Bounds().W / maxW
	}
}

func (t *TitleBar) updateDropTarget(screen entity.Point) {
	var next *DropTarget
	if p := t.dropPane(); p != nil {
		if dt, ok := p.DropTargetAt(p.PointFromScreen(screen)); ok && dt.Target != TreeNode(t.node) {
			next = &dt
		}
	}
	if !sameDropTarget(t.current, next) {
		t.current = next
		if t.OnDropTargetChanged != nil {
			t.OnDropTargetChanged(next)
		}
	}
}

func (t *TitleBar) dropPane() *DockPane {
	if t.node.pane != nil {
		return t.node.pane
	}
	return t.node.lastDockPane
}

func (t *TitleBar) release(ev PointerEvent) {
	if t.dragging {
		t.updateDropTarget(ev.Screen)
		if dt := t.current; dt != nil {
			t.node.Dock(t.dropPane(), dt.Position, dt.Target)
		}
	}
	t.armed = false
	t.dragging = false
	if t.current != nil {
		t.current = nil
		if t.OnDropTargetChanged != nil {
			t.OnDropTargetChanged(nil)
		}
	}
}

func sameDropTarget(a, b *DropTarget) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Target == b.Target && a.Position == b.Position
}
