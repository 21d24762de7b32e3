package dock

import (
	"context"
	"math"
	"testing"

	"github.com/bnema/dockpane/internal/domain/entity"
)

func leaf(name string) *DockNode {
	return NewDockNode(context.Background(), nil, SizedContent{Width: 200, Height: 150}, name, name)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func assertDividers(t *testing.T, s *SplitContainer, want ...float64) {
	t.Helper()
	got := s.Dividers()
	if len(got) != len(want) {
		t.Fatalf("dividers = %v, want %v", got, want)
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Fatalf("dividers = %v, want %v", got, want)
		}
	}
}

func TestInsertAdjacentSplitsSlotAtMidpoint(t *testing.T) {
	a, b, c := leaf("a"), leaf("b"), leaf("c")
	s := newSplitContainer(entity.OrientationHorizontal)
	s.appendChild(a)
	s.appendChild(b)
	assertDividers(t, s, 0.5)

	s.insertAdjacent(b, c, false)
	if got := s.childCount(); got != 3 {
		t.Fatalf("childCount = %d, want 3", got)
	}
	if s.children[1] != TreeNode(b) || s.children[2] != TreeNode(c) {
		t.Fatal("new child not placed after target")
	}
	assertDividers(t, s, 0.5, 0.75)
}

func TestInsertAdjacentBeforeFirstChild(t *testing.T) {
	a, b, c := leaf("a"), leaf("b"), leaf("c")
	s := newSplitContainer(entity.OrientationHorizontal)
	s.appendChild(a)
	s.appendChild(b)

	s.insertAdjacent(a, c, true)
	if s.children[0] != TreeNode(c) {
		t.Fatal("new child not placed before target")
	}
	assertDividers(t, s, 0.25, 0.5)
}

func TestRemoveChildDonatesShareToNeighbor(t *testing.T) {
	a, b, c := leaf("a"), leaf("b"), leaf("c")
	s := newSplitContainer(entity.OrientationHorizontal)
	s.appendChild(a)
	s.appendChild(b)
	s.appendChild(c)
	s.dividers = []float64{0.3, 0.7}

	if !s.removeChild(b) {
		t.Fatal("removeChild returned false")
	}
	assertDividers(t, s, 0.7)
	if b.Parent() != nil {
		t.Fatal("removed child still has a parent")
	}

	// Removing the first child drops the leading divider.
	if !s.removeChild(a) {
		t.Fatal("removeChild returned false")
	}
	assertDividers(t, s)
	if s.childCount() != 1 || s.children[0] != TreeNode(c) {
		t.Fatalf("unexpected survivors: %v", s.children)
	}
}

func TestInlineChildSplitRemapsDividers(t *testing.T) {
	a, b, c := leaf("a"), leaf("b"), leaf("c")
	inner := newSplitContainer(entity.OrientationHorizontal)
	inner.appendChild(b)
	inner.appendChild(c)

	outer := newSplitContainer(entity.OrientationHorizontal)
	outer.appendChild(a)
	outer.appendChild(inner)
	outer.dividers = []float64{0.4}

	outer.inlineChildSplit(1, inner)
	if outer.childCount() != 3 {
		t.Fatalf("childCount = %d, want 3", outer.childCount())
	}
	// Inner divider 0.5 maps into the (0.4, 1.0) slot.
	assertDividers(t, outer, 0.4, 0.7)
	for _, child := range outer.children {
		if child.Parent() != ContentContainer(outer) {
			t.Fatal("inlined child not reparented")
		}
	}
}

func TestResetDividersSpacesEvenly(t *testing.T) {
	s := newSplitContainer(entity.OrientationVertical)
	for _, n := range []*DockNode{leaf("a"), leaf("b"), leaf("c"), leaf("d")} {
		s.appendChild(n)
	}
	s.ResetDividers()
	assertDividers(t, s, 0.25, 0.5, 0.75)
}

func TestTabContainerSelection(t *testing.T) {
	a, b, c := leaf("a"), leaf("b"), leaf("c")
	tc := newTabContainer()
	if tc.Selected() != nil {
		t.Fatal("empty container has a selection")
	}

	tc.addTab(a, false)
	tc.addTab(b, true)
	tc.addTab(c, false)
	if tc.SelectedIndex() != 1 {
		t.Fatalf("SelectedIndex = %d, want 1", tc.SelectedIndex())
	}
	if !a.IsTabbed() || !b.IsTabbed() || !c.IsTabbed() {
		t.Fatal("tabs not flagged tabbed")
	}

	if err := tc.Select(5); err != ErrIndexOutOfBounds {
		t.Fatalf("Select(5) = %v, want ErrIndexOutOfBounds", err)
	}

	// Removing a tab before the selection shifts it left.
	tc.removeChild(a)
	if tc.Selected() != b {
		t.Fatalf("Selected = %v, want b", tc.Selected())
	}
	if a.IsTabbed() {
		t.Fatal("removed tab still flagged tabbed")
	}

	// Removing the last tab clamps the selection.
	tc.Select(1)
	tc.removeChild(c)
	if tc.Selected() != b {
		t.Fatalf("Selected = %v, want b", tc.Selected())
	}

	tc.removeChild(b)
	if tc.SelectedIndex() != -1 {
		t.Fatalf("SelectedIndex = %d, want -1 when empty", tc.SelectedIndex())
	}
}

func TestFirstLeafOfUnwrapsContainers(t *testing.T) {
	a, b := leaf("a"), leaf("b")
	tc := newTabContainer()
	tc.addTab(a, true)
	tc.addTab(b, false)

	s := newSplitContainer(entity.OrientationHorizontal)
	s.appendChild(tc)

	if got := firstLeafOf(s); got != a {
		t.Fatalf("firstLeafOf = %v, want first tab", got)
	}
	if got := firstLeafOf(nil); got != nil {
		t.Fatalf("firstLeafOf(nil) = %v, want nil", got)
	}
}
