package dock

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/ui/windowing"
)

func press(tb *TitleBar, local entity.Point, screen entity.Point) {
	tb.HandlePointer(PointerEvent{Kind: PointerPressed, Local: local, Screen: screen})
}

func dragTo(tb *TitleBar, local entity.Point, screen entity.Point) {
	tb.HandlePointer(PointerEvent{Kind: PointerDragged, Local: local, Screen: screen})
}

func releaseAt(tb *TitleBar, screen entity.Point) {
	tb.HandlePointer(PointerEvent{Kind: PointerReleased, Screen: screen})
}

func TestTitleBarHiddenWhileTabbed(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")

	require.NotNil(t, n1.TitleBar())
	assert.True(t, n1.TitleBar().IsVisible())

	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockCenter, n1)
	assert.False(t, n1.TitleBar().IsVisible())

	n2.Undock()
	assert.True(t, n1.TitleBar().IsVisible())
}

func TestDecoratedNodeHasNoTitleBar(t *testing.T) {
	svc := windowing.NewStubService()
	n := NewDockNode(context.Background(), svc, SizedContent{Width: 10, Height: 10},
		"native", "Native", WithStageStyle(windowing.StyleDecorated))
	assert.Nil(t, n.TitleBar())
}

func TestDragBelowThresholdDoesNothing(t *testing.T) {
	p, svc := newTestPane(t)
	n1 := newTestNode(svc, "n1")
	p.DockAt(n1, entity.DockLeft)

	tb := n1.TitleBar()
	press(tb, entity.Point{X: 50, Y: 10}, entity.Point{X: 150, Y: 110})
	dragTo(tb, entity.Point{X: 52, Y: 11}, entity.Point{X: 152, Y: 111})

	assert.False(t, tb.IsDragging())
	assert.True(t, n1.IsDocked())
}

func TestDragTearsOutAndWindowFollowsPointer(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")
	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockRight, n1)

	tb := n1.TitleBar()
	press(tb, entity.Point{X: 50, Y: 10}, entity.Point{X: 150, Y: 110})
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 1000, Y: 900})

	require.True(t, tb.IsDragging())
	require.True(t, n1.IsFloating())
	assert.Equal(t, []string{"n2"}, leafNames(p))

	// The title bar stays under the pointer at the press offset.
	b := n1.FloatingWindow().Bounds()
	assert.Equal(t, 950.0, b.X)
	assert.Equal(t, 890.0, b.Y)

	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 1200, Y: 950})
	b = n1.FloatingWindow().Bounds()
	assert.Equal(t, 1150.0, b.X)
	assert.Equal(t, 940.0, b.Y)
}

func TestDragAbandonedLeavesTreeUntouched(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")
	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockRight, n1)

	tb := n1.TitleBar()
	press(tb, entity.Point{X: 50, Y: 10}, entity.Point{X: 150, Y: 110})
	// Far outside the pane: no drop target anywhere along the way.
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 2000, Y: 1500})
	releaseAt(tb, entity.Point{X: 2000, Y: 1500})

	assert.False(t, tb.IsDragging())
	assert.True(t, n1.IsFloating(), "no target means the node stays floating")
	assert.Equal(t, []string{"n2"}, leafNames(p))
	assert.Nil(t, tb.CurrentDropTarget())
}

func TestDragCommitsDropTargetOnRelease(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")
	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockRight, n1)

	tb := n1.TitleBar()
	press(tb, entity.Point{X: 50, Y: 10}, entity.Point{X: 150, Y: 110})
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 1000, Y: 900})
	require.True(t, n1.IsFloating())

	// After the tear-out n2 fills the pane. Screen (150,400) maps to
	// pane-local (50,300), inside n2's left drop zone.
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 150, Y: 400})
	dt := tb.CurrentDropTarget()
	require.NotNil(t, dt)
	assert.Equal(t, TreeNode(n2), dt.Target)
	assert.Equal(t, entity.DockLeft, dt.Position)

	releaseAt(tb, entity.Point{X: 150, Y: 400})
	assert.True(t, n1.IsDocked())
	assert.False(t, n1.IsFloating())
	assert.Equal(t, []string{"n1", "n2"}, leafNames(p))
}

func TestDropTargetChangeHookFires(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")
	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockRight, n1)

	tb := n1.TitleBar()
	var changes []*DropTarget
	tb.OnDropTargetChanged = func(dt *DropTarget) { changes = append(changes, dt) }

	press(tb, entity.Point{X: 50, Y: 10}, entity.Point{X: 150, Y: 110})
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 2000, Y: 1500}) // outside: no target
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 150, Y: 400})  // n2 left zone
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 160, Y: 410})  // same zone, no event
	dragTo(tb, entity.Point{X: 80, Y: 12}, entity.Point{X: 500, Y: 400})  // n2 center zone
	releaseAt(tb, entity.Point{X: 2000, Y: 1500})                         // left every zone

	require.Len(t, changes, 3)
	assert.Equal(t, entity.DockLeft, changes[0].Position)
	assert.Equal(t, entity.DockCenter, changes[1].Position)
	assert.Nil(t, changes[2])
}

func TestDragIgnoredWhenNotFloatable(t *testing.T) {
	p, svc := newTestPane(t)
	pinned := NewDockNode(context.Background(), svc, SizedContent{Width: 10, Height: 10},
		"pinned", "Pinned", WithFloatable(false))
	p.DockAt(pinned, entity.DockLeft)

	tb := pinned.TitleBar()
	press(tb, entity.Point{X: 50, Y: 10}, entity.Point{X: 150, Y: 110})
	dragTo(tb, entity.Point{X: 200, Y: 10}, entity.Point{X: 300, Y: 110})

	assert.False(t, tb.IsDragging())
	assert.True(t, pinned.IsDocked())
}

func TestDragUnmaximizesUnderPointer(t *testing.T) {
	p, svc := newTestPane(t)
	n1 := newTestNode(svc, "n1")
	p.DockAt(n1, entity.DockLeft)

	n1.Float()
	n1.SetMaximized(true)
	require.Equal(t, 1920.0, n1.FloatingWindow().Bounds().W)

	tb := n1.TitleBar()
	press(tb, entity.Point{X: 960, Y: 10}, entity.Point{X: 960, Y: 50})
	dragTo(tb, entity.Point{X: 960, Y: 40}, entity.Point{X: 960, Y: 80})

	assert.False(t, n1.IsMaximized())
	b := n1.FloatingWindow().Bounds()
	assert.Equal(t, 500.0, b.W, "restored geometry while dragging")
	// Press offset scales with the restore, pointer stays mid-bar.
	assert.Equal(t, 710.0, b.X)
}

func TestTitleBarButtons(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")
	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockRight, n1)

	tb := n1.TitleBar()

	tb.StateToggleRequested()
	assert.True(t, n1.IsFloating())

	tb.MaximizeRequested()
	assert.True(t, n1.IsMaximized())
	tb.MaximizeRequested()
	assert.False(t, n1.IsMaximized())

	tb.MinimizeRequested()
	assert.True(t, n1.FloatingWindow().(*windowing.StubWindow).Iconified())

	tb.StateToggleRequested()
	assert.True(t, n1.IsDocked())
	assert.Equal(t, []string{"n1", "n2"}, leafNames(p))

	tb.CloseRequested()
	assert.True(t, n1.IsClosed())
}

func TestCloseButtonRespectsClosable(t *testing.T) {
	p, svc := newTestPane(t)
	keep := NewDockNode(context.Background(), svc, SizedContent{Width: 10, Height: 10},
		"keep", "Keep", WithClosable(false))
	p.DockAt(keep, entity.DockLeft)

	keep.TitleBar().CloseRequested()
	assert.False(t, keep.IsClosed())
	assert.True(t, keep.IsDocked())
}
