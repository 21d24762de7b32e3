package dock

import (
	"github.com/bnema/dockpane/internal/domain/entity"
)

// insertNode places node relative to target. target nil means the tree
// root. The node must already be detached.
func (p *DockPane) insertNode(pos entity.DockPos, target TreeNode, node *DockNode) {
	if p.root == nil {
		root := newSplitContainer(entity.OrientationHorizontal)
		root.appendChild(node)
		p.root = root
		return
	}
	if target == nil {
		target = p.root
	}
	// A root emptied by undocks is reused, not wrapped.
	if sc, ok := p.root.(*SplitContainer); ok && sc.childCount() == 0 {
		sc.appendChild(node)
		return
	}

	if pos == entity.DockCenter {
		p.insertCenter(target, node)
	} else {
		p.insertEdge(pos, target, node)
	}
	p.normalizeSplits()
}

// insertCenter adds node as a tab of target. Tab containers are always
// flat: targeting a tab, a tab container, or a leaf inside one appends
// to the existing container rather than nesting a new one.
func (p *DockPane) insertCenter(target TreeNode, node *DockNode) {
	switch t := target.(type) {
	case *TabContainer:
		t.addTab(node, true)
		return
	case *DockNode:
		if tc, ok := t.Parent().(*TabContainer); ok {
			tc.addTab(node, true)
			return
		}
		tc := newTabContainer()
		if parent := t.Parent(); parent != nil {
			parent.replaceChild(t, tc)
		} else if p.root == target {
			p.root = tc
		}
		tc.addTab(t, false)
		tc.addTab(node, true)
		return
	case *SplitContainer:
		// Centering on a container resolves to its first leaf.
		if leaf := firstLeafOf(t); leaf != nil {
			p.insertCenter(leaf, node)
			return
		}
		t.appendChild(node)
	}
}

// insertEdge inserts node beside target along the axis the position
// implies: as an immediate sibling when target's parent already splits
// that way, otherwise by wrapping target in a new 50/50 split.
func (p *DockPane) insertEdge(pos entity.DockPos, target TreeNode, node *DockNode) {
	orientation, before, ok := pos.SplitOrientation()
	if !ok {
		return
	}

	// Edge-docking against a tabbed leaf splits against the whole tab
	// group; a tab container only holds leaves.
	if tc, tabbed := target.Parent().(*TabContainer); tabbed {
		target = tc
	}

	if parent, isSplit := target.Parent().(*SplitContainer); isSplit && parent.orientation == orientation {
		parent.insertAdjacent(target, node, before)
		return
	}

	wrapper := newSplitContainer(orientation)
	if parent := target.Parent(); parent != nil {
		parent.replaceChild(target, wrapper)
	} else if p.root == target {
		p.root = wrapper
	}

	if before {
		wrapper.appendChild(node)
		wrapper.appendChild(target)
	} else {
		wrapper.appendChild(target)
		wrapper.appendChild(node)
	}
}

// removeNode detaches node and collapses any container the removal
// leaves degenerate.
func (p *DockPane) removeNode(node *DockNode) {
	parent := node.Parent()
	if parent == nil {
		if p.root == TreeNode(node) {
			p.root = nil
		}
		return
	}
	parent.removeChild(node)
	node.setTabbed(false)
	p.collapseUpward(parent)
}

// collapseUpward enforces tree minimality after a removal: a container
// left with one child is replaced by that child in its own parent, an
// empty container is removed entirely, and the check repeats on the
// grandparent. The root container is exempt so an emptied pane keeps
// an empty root and a lone survivor stays wrapped.
func (p *DockPane) collapseUpward(c ContentContainer) {
	for c != nil {
		gp := c.Parent()
		if gp == nil {
			break
		}

		switch c.childCount() {
		case 0:
			gp.removeChild(c)
		case 1:
			survivor := c.ChildNodes()[0]
			c.removeChild(survivor)
			gp.replaceChild(c, survivor)
		default:
			c = nil
			continue
		}
		c = gp
	}
	p.normalizeSplits()
}

// normalizeSplits restores tree minimality: split containers nested
// inside a split of the same orientation are flattened with their
// dividers remapped, single-child splits dissolve into their parent,
// and a root split left holding just another split hands over the
// root. The root split itself is never collapsed below one level, so
// an emptied pane keeps its root and a lone leaf stays wrapped.
func (p *DockPane) normalizeSplits() {
	for {
		sc, ok := p.root.(*SplitContainer)
		if !ok {
			return
		}
		normalizeSplit(sc)
		if sc.childCount() != 1 {
			return
		}
		child, ok := sc.children[0].(*SplitContainer)
		if !ok {
			return
		}
		sc.removeChild(child)
		p.root = child
	}
}

func normalizeSplit(s *SplitContainer) {
	for i := 0; i < len(s.children); {
		child := s.children[i]
		if cs, ok := child.(*SplitContainer); ok {
			normalizeSplit(cs)
			if len(cs.children) == 0 {
				s.removeChild(cs)
				continue
			}
			// Same orientation merges; a single-child split dissolves
			// whatever its orientation, there is nothing to divide.
			if cs.orientation == s.orientation || len(cs.children) == 1 {
				s.inlineChildSplit(i, cs)
				continue // re-examine the inlined slot
			}
		}
		i++
	}
}
