package dock

import (
	"github.com/bnema/dockpane/internal/domain/entity"
)

// DropTarget is a resolved drop location: the node the pointer is
// over, the position within it the drop would take, and the region a
// drop indicator should highlight.
type DropTarget struct {
	Target   TreeNode
	Position entity.DockPos
	Bounds   entity.Rect
}

// boundsOf returns the rectangle a tree node occupies inside the
// pane, in the pane's coordinate space. Returns false for nodes not
// attached to this pane.
func (p *DockPane) boundsOf(n TreeNode) (entity.Rect, bool) {
	if n == nil || p.root == nil {
		return entity.Rect{}, false
	}
	return boundsWithin(p.root, p.bounds, n)
}

func boundsWithin(cur TreeNode, r entity.Rect, want TreeNode) (entity.Rect, bool) {
	if cur == want {
		return r, true
	}
	switch c := cur.(type) {
	case *SplitContainer:
		for i, child := range c.children {
			if out, ok := boundsWithin(child, c.childRect(r, i), want); ok {
				return out, true
			}
		}
	case *TabContainer:
		// Tabs overlap: every tab occupies the container's full rect.
		for _, tab := range c.tabs {
			if out, ok := boundsWithin(tab, r, want); ok {
				return out, true
			}
		}
	}
	return entity.Rect{}, false
}

// childRect maps child i's fractional slot into the container's
// pixel rectangle.
func (s *SplitContainer) childRect(r entity.Rect, i int) entity.Rect {
	lo, hi := s.slot(i)
	if s.orientation == entity.OrientationHorizontal {
		return entity.Rect{X: r.X + lo*r.W, Y: r.Y, W: (hi - lo) * r.W, H: r.H}
	}
	return entity.Rect{X: r.X, Y: r.Y + lo*r.H, W: r.W, H: (hi - lo) * r.H}
}

// deepestNodeAt returns the leaf or tab container under pt, preferring
// the selected tab of a tab container. Nil when pt is outside the pane
// or the pane is empty.
func (p *DockPane) deepestNodeAt(pt entity.Point) TreeNode {
	if p.root == nil || !p.bounds.Contains(pt) {
		return nil
	}
	cur, r := p.root, p.bounds
	for {
		switch c := cur.(type) {
		case *SplitContainer:
			if len(c.children) == 0 {
				return c
			}
			hit := false
			for i, child := range c.children {
				cr := c.childRect(r, i)
				if cr.Contains(pt) {
					cur, r = child, cr
					hit = true
					break
				}
			}
			if !hit {
				// On a divider: resolve to the last child whose rect
				// ends at or past the point.
				cur, r = c.children[len(c.children)-1], c.childRect(r, len(c.children)-1)
			}
		case *TabContainer:
			if sel := c.Selected(); sel != nil {
				return sel
			}
			return c
		default:
			return cur
		}
	}
}

// DropTargetAt resolves the drop target for a pointer position in the
// pane's coordinate space. An edge position wins when the pointer is
// within the configured zone fraction of the nearest edge; ties are
// broken left, right, top, bottom. Otherwise the drop is a center
// (tab) drop. Returns false when the point misses the pane entirely.
func (p *DockPane) DropTargetAt(pt entity.Point) (DropTarget, bool) {
	target := p.deepestNodeAt(pt)
	if target == nil {
		return DropTarget{}, false
	}
	r, ok := p.boundsOf(target)
	if !ok {
		return DropTarget{}, false
	}

	pos := zonePosition(pt, r, p.zoneFraction())
	return DropTarget{
		Target:   target,
		Position: pos,
		Bounds:   indicatorRect(r, pos),
	}, true
}

// zonePosition classifies a point inside r: the nearest edge when the
// point lies within fraction of that edge's span, center otherwise.
func zonePosition(pt entity.Point, r entity.Rect, fraction float64) entity.DockPos {
	type zone struct {
		pos  entity.DockPos
		dist float64
		span float64
	}
	zones := []zone{
		{entity.DockLeft, pt.X - r.X, r.W},
		{entity.DockRight, r.X + r.W - pt.X, r.W},
		{entity.DockTop, pt.Y - r.Y, r.H},
		{entity.DockBottom, r.Y + r.H - pt.Y, r.H},
	}

	best := entity.DockCenter
	bestDist := 0.0
	for _, z := range zones {
		if z.dist < fraction*z.span && (best == entity.DockCenter || z.dist < bestDist) {
			best, bestDist = z.pos, z.dist
		}
	}
	return best
}

// indicatorRect is the region a drop at pos would occupy, used to
// draw the highlight during a drag.
func indicatorRect(r entity.Rect, pos entity.DockPos) entity.Rect {
	switch pos {
	case entity.DockLeft:
		return entity.Rect{X: r.X, Y: r.Y, W: r.W / 2, H: r.H}
	case entity.DockRight:
		return entity.Rect{X: r.X + r.W/2, Y: r.Y, W: r.W / 2, H: r.H}
	case entity.DockTop:
		return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H / 2}
	case entity.DockBottom:
		return entity.Rect{X: r.X, Y: r.Y + r.H/2, W: r.W, H: r.H / 2}
	default:
		return r
	}
}
