package dock

import (
	"github.com/google/uuid"

	"github.com/bnema/dockpane/internal/domain/entity"
)

// TreeNode is implemented by the two container kinds and by dock-node
// leaves. A node is referenced by at most one container at a time;
// every mutation detaches before it attaches.
type TreeNode interface {
	// Parent returns the container currently holding this node, nil
	// for the root or a detached node.
	Parent() ContentContainer

	setParent(parent ContentContainer)
}

// ContentContainer is the shared surface of SplitContainer and
// TabContainer. Containers are created and destroyed by the pane's
// insert and collapse logic, never by the application.
type ContentContainer interface {
	TreeNode

	// ID is a stable identifier for the container's lifetime.
	ID() string

	// ChildNodes returns the ordered children.
	ChildNodes() []TreeNode

	childCount() int
	indexOf(child TreeNode) int
	replaceChild(old, new TreeNode) bool
	removeChild(child TreeNode) bool
}

// SplitContainer arranges children side by side along one axis,
// separated by dividers at strictly increasing fractional positions.
type SplitContainer struct {
	id          string
	parent      ContentContainer
	orientation entity.Orientation
	children    []TreeNode
	dividers    []float64
}

func newSplitContainer(orientation entity.Orientation) *SplitContainer {
	return &SplitContainer{
		id:          uuid.NewString(),
		orientation: orientation,
	}
}

// ID implements ContentContainer.
func (s *SplitContainer) ID() string { return s.id }

// Parent implements TreeNode.
func (s *SplitContainer) Parent() ContentContainer { return s.parent }

func (s *SplitContainer) setParent(parent ContentContainer) { s.parent = parent }

// Orientation returns the split axis.
func (s *SplitContainer) Orientation() entity.Orientation { return s.orientation }

// ChildNodes implements ContentContainer.
func (s *SplitContainer) ChildNodes() []TreeNode {
	out := make([]TreeNode, len(s.children))
	copy(out, s.children)
	return out
}

// Dividers returns the divider positions, length len(children)-1.
func (s *SplitContainer) Dividers() []float64 {
	out := make([]float64, len(s.dividers))
	copy(out, s.dividers)
	return out
}

// ResetDividers spaces the dividers evenly.
func (s *SplitContainer) ResetDividers() {
	n := len(s.children)
	if n < 2 {
		s.dividers = nil
		return
	}
	s.dividers = make([]float64, n-1)
	for i := range s.dividers {
		s.dividers[i] = float64(i+1) / float64(n)
	}
}

func (s *SplitContainer) childCount() int { return len(s.children) }

func (s *SplitContainer) indexOf(child TreeNode) int {
	for i, c := range s.children {
		if c == child {
			return i
		}
	}
	return -1
}

// boundaries returns the slot boundaries [0, dividers..., 1].
func (s *SplitContainer) boundaries() []float64 {
	b := make([]float64, 0, len(s.dividers)+2)
	b = append(b, 0)
	b = append(b, s.dividers...)
	b = append(b, 1)
	return b
}

// slot returns the fractional extent occupied by child i.
func (s *SplitContainer) slot(i int) (lo, hi float64) {
	b := s.boundaries()
	return b[i], b[i+1]
}

// appendChild attaches a child at the end without adding a divider.
// Only valid while the container holds fewer than two children.
func (s *SplitContainer) appendChild(child TreeNode) {
	s.children = append(s.children, child)
	child.setParent(s)
	if len(s.children) > 1 {
		s.ResetDividers()
	}
}

// insertAdjacent inserts node next to target, splitting target's slot
// at its midpoint so the newcomer takes an equal share of the space it
// borrows from its neighbor.
func (s *SplitContainer) insertAdjacent(target, node TreeNode, before bool) {
	i := s.indexOf(target)
	if i < 0 {
		return
	}
	lo, hi := s.slot(i)
	mid := (lo + hi) / 2

	at := i
	if !before {
		at = i + 1
	}
	s.children = append(s.children, nil)
	copy(s.children[at+1:], s.children[at:])
	s.children[at] = node
	node.setParent(s)

	// The new divider separates target and node regardless of order.
	s.dividers = append(s.dividers, 0)
	copy(s.dividers[i+1:], s.dividers[i:])
	s.dividers[i] = mid
}

func (s *SplitContainer) replaceChild(old, new TreeNode) bool {
	i := s.indexOf(old)
	if i < 0 {
		return false
	}
	s.children[i] = new
	old.setParent(nil)
	new.setParent(s)
	return true
}

// removeChild drops a child and the divider between it and the
// neighbor that inherits its share.
func (s *SplitContainer) removeChild(child TreeNode) bool {
	i := s.indexOf(child)
	if i < 0 {
		return false
	}
	s.children = append(s.children[:i], s.children[i+1:]...)
	child.setParent(nil)

	if len(s.dividers) > 0 {
		di := i - 1
		if di < 0 {
			di = 0
		}
		s.dividers = append(s.dividers[:di], s.dividers[di+1:]...)
	}
	return true
}

// inlineChildSplit replaces the split child at index i with that
// child's own children, remapping its dividers into the slot it
// occupied. Both splits must share an orientation.
func (s *SplitContainer) inlineChildSplit(i int, child *SplitContainer) {
	lo, hi := s.slot(i)

	newChildren := make([]TreeNode, 0, len(s.children)-1+len(child.children))
	newChildren = append(newChildren, s.children[:i]...)
	newChildren = append(newChildren, child.children...)
	newChildren = append(newChildren, s.children[i+1:]...)

	// Boundaries: keep the outer ones, expand slot i with the child's
	// internal dividers mapped into (lo, hi).
	newDividers := make([]float64, 0, len(s.dividers)+len(child.dividers))
	b := s.boundaries()
	newDividers = append(newDividers, b[1:i+1]...)
	for _, d := range child.dividers {
		newDividers = append(newDividers, lo+d*(hi-lo))
	}
	newDividers = append(newDividers, b[i+1:len(b)-1]...)

	for _, c := range child.children {
		c.setParent(s)
	}
	child.children = nil
	child.dividers = nil
	child.setParent(nil)

	s.children = newChildren
	s.dividers = newDividers
}

// TabContainer stacks dock-node leaves, showing one at a time. It
// never contains another TabContainer; tab leaves are flattened in.
type TabContainer struct {
	id       string
	parent   ContentContainer
	tabs     []*DockNode
	selected int
}

func newTabContainer() *TabContainer {
	return &TabContainer{
		id:       uuid.NewString(),
		selected: -1,
	}
}

// ID implements ContentContainer.
func (t *TabContainer) ID() string { return t.id }

// Parent implements TreeNode.
func (t *TabContainer) Parent() ContentContainer { return t.parent }

func (t *TabContainer) setParent(parent ContentContainer) { t.parent = parent }

// Tabs returns the ordered tab leaves.
func (t *TabContainer) Tabs() []*DockNode {
	out := make([]*DockNode, len(t.tabs))
	copy(out, t.tabs)
	return out
}

// SelectedIndex returns the selected tab index, -1 when empty.
func (t *TabContainer) SelectedIndex() int { return t.selected }

// Selected returns the selected tab, nil when empty.
func (t *TabContainer) Selected() *DockNode {
	if t.selected < 0 || t.selected >= len(t.tabs) {
		return nil
	}
	return t.tabs[t.selected]
}

// Select makes the tab at index i the visible one.
func (t *TabContainer) Select(i int) error {
	if i < 0 || i >= len(t.tabs) {
		return ErrIndexOutOfBounds
	}
	t.selected = i
	return nil
}

// ChildNodes implements ContentContainer.
func (t *TabContainer) ChildNodes() []TreeNode {
	out := make([]TreeNode, len(t.tabs))
	for i, tab := range t.tabs {
		out[i] = tab
	}
	return out
}

func (t *TabContainer) childCount() int { return len(t.tabs) }

func (t *TabContainer) indexOf(child TreeNode) int {
	for i, tab := range t.tabs {
		if TreeNode(tab) == child {
			return i
		}
	}
	return -1
}

// addTab appends a leaf and optionally selects it.
func (t *TabContainer) addTab(node *DockNode, selectIt bool) {
	t.tabs = append(t.tabs, node)
	node.setParent(t)
	node.setTabbed(true)
	if selectIt || t.selected < 0 {
		t.selected = len(t.tabs) - 1
	}
}

func (t *TabContainer) replaceChild(old, new TreeNode) bool {
	node, ok := new.(*DockNode)
	if !ok {
		return false
	}
	i := t.indexOf(old)
	if i < 0 {
		return false
	}
	t.tabs[i].setTabbed(false)
	t.tabs[i].setParent(nil)
	t.tabs[i] = node
	node.setParent(t)
	node.setTabbed(true)
	return true
}

func (t *TabContainer) removeChild(child TreeNode) bool {
	i := t.indexOf(child)
	if i < 0 {
		return false
	}
	removed := t.tabs[i]
	t.tabs = append(t.tabs[:i], t.tabs[i+1:]...)
	removed.setParent(nil)
	removed.setTabbed(false)

	switch {
	case len(t.tabs) == 0:
		t.selected = -1
	case t.selected >= len(t.tabs):
		t.selected = len(t.tabs) - 1
	case t.selected > i:
		t.selected--
	}
	return true
}

// walkTree visits n and every descendant until fn returns false.
func walkTree(n TreeNode, fn func(TreeNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	if c, ok := n.(ContentContainer); ok {
		for _, child := range c.ChildNodes() {
			if !walkTree(child, fn) {
				return false
			}
		}
	}
	return true
}

// firstLeafOf returns the first dock-node leaf in a subtree.
func firstLeafOf(n TreeNode) *DockNode {
	var leaf *DockNode
	walkTree(n, func(t TreeNode) bool {
		if d, ok := t.(*DockNode); ok {
			leaf = d
			return false
		}
		return true
	})
	return leaf
}
