package dock

import (
	"github.com/bnema/dockpane/internal/config"
	"github.com/bnema/dockpane/internal/domain/entity"
)

// ResizeEdge is a bit set of the window edges a resize drag moves.
// Corners combine two edges.
type ResizeEdge uint8

const (
	EdgeNone  ResizeEdge = 0
	EdgeNorth ResizeEdge = 1 << (iota - 1)
	EdgeSouth
	EdgeEast
	EdgeWest
)

// borderInset is the width of the drawn resize border on undecorated
// floating windows, in pixels. The hit band extends the configured
// tolerance beyond it.
const borderInset = 4.0

// HoverEdge returns the edge the pointer last hovered over, for cursor
// feedback.
func (n *DockNode) HoverEdge() ResizeEdge { return n.hoverEdge }

// HandlePointer implements PointerEventSink for the floating window
// border. Docked nodes and decorated windows never see these events;
// the toolkit routes them only for the engine-drawn border.
func (n *DockNode) HandlePointer(ev PointerEvent) {
	if n.floatWin == nil || !n.resizable {
		return
	}

	switch ev.Kind {
	case PointerMoved:
		if !n.resizing {
			n.hoverEdge = n.edgeAt(ev.Local)
		}
	case PointerPressed:
		n.hoverEdge = n.edgeAt(ev.Local)
		if n.hoverEdge != EdgeNone && !n.maximized.Get() {
			n.resizing = true
			n.sizeLast = ev.Screen
		}
	case PointerDragged:
		if n.resizing {
			n.applyResize(ev.Screen)
		}
	case PointerReleased:
		n.resizing = false
		n.hoverEdge = n.edgeAt(ev.Local)
	}
}

// edgeAt classifies a window-local point against the resize band:
// within the border inset plus tolerance of an edge.
func (n *DockNode) edgeAt(pt entity.Point) ResizeEdge {
	b := n.floatWin.Bounds()
	band := borderInset + n.edgeTolerance()

	var edge ResizeEdge
	if pt.X <= band {
		edge |= EdgeWest
	} else if pt.X >= b.W-band {
		edge |= EdgeEast
	}
	if pt.Y <= band {
		edge |= EdgeNorth
	} else if pt.Y >= b.H-band {
		edge |= EdgeSouth
	}
	return edge
}

func (n *DockNode) edgeTolerance() float64 {
	if n.cfg != nil && n.cfg.Resize.EdgeTolerance > 0 {
		return n.cfg.Resize.EdgeTolerance
	}
	return config.DefaultEdgeTolerance
}

// applyResize grows or shrinks the window toward the pointer. Each
// axis advances the drag anchor only by the amount actually applied,
// so once the minimum size clamps an axis the pointer has to travel
// back past the edge before the window follows it again.
func (n *DockNode) applyResize(screen entity.Point) {
	b := n.floatWin.Bounds()
	minW, minH := n.floatWin.MinSize()
	dx := screen.X - n.sizeLast.X
	dy := screen.Y - n.sizeLast.Y

	switch {
	case n.hoverEdge&EdgeEast != 0:
		w := b.W + dx
		if w < minW {
			w = minW
		}
		n.sizeLast.X += w - b.W
		b.W = w
	case n.hoverEdge&EdgeWest != 0:
		w := b.W - dx
		if w < minW {
			w = minW
		}
		applied := b.W - w
		b.X += applied
		b.W = w
		n.sizeLast.X += applied
	}

	switch {
	case n.hoverEdge&EdgeSouth != 0:
		h := b.H + dy
		if h < minH {
			h = minH
		}
		n.sizeLast.Y += h - b.H
		b.H = h
	case n.hoverEdge&EdgeNorth != 0:
		h := b.H - dy
		if h < minH {
			h = minH
		}
		applied := b.H - h
		b.Y += applied
		b.H = h
		n.sizeLast.Y += applied
	}

	n.floatWin.SetBounds(b)
	n.floatingW, n.floatingH = b.W, b.H
}
