package dock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/domain/entity"
)

func TestBoundsOfPartitionsByDividers(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")

	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockRight, n1)

	b1, ok := p.boundsOf(n1)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 400, H: 600}, b1)

	b2, ok := p.boundsOf(n2)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 400, Y: 0, W: 400, H: 600}, b2)

	detached := newTestNode(svc, "loose")
	_, ok = p.boundsOf(detached)
	assert.False(t, ok)
}

func TestBoundsOfTabsShareTheContainerRect(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")

	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockCenter, n1)

	b1, ok := p.boundsOf(n1)
	require.True(t, ok)
	b2, ok := p.boundsOf(n2)
	require.True(t, ok)
	assert.Equal(t, b1, b2)
	assert.Equal(t, p.Bounds(), b1)
}

func TestDeepestNodeAtPrefersSelectedTab(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2, n3 := newTestNode(svc, "n1"), newTestNode(svc, "n2"), newTestNode(svc, "n3")

	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockCenter, n1)
	p.Dock(n3, entity.DockRight, n1)

	got := p.deepestNodeAt(entity.Point{X: 100, Y: 300})
	assert.Equal(t, TreeNode(n2), got, "selected tab wins inside a tab group")

	got = p.deepestNodeAt(entity.Point{X: 700, Y: 300})
	assert.Equal(t, TreeNode(n3), got)

	assert.Nil(t, p.deepestNodeAt(entity.Point{X: -5, Y: 300}))
}

func TestZonePositionNearestEdgeWins(t *testing.T) {
	r := entity.Rect{X: 0, Y: 0, W: 400, H: 300}

	tests := []struct {
		name string
		pt   entity.Point
		want entity.DockPos
	}{
		{"deep center", entity.Point{X: 200, Y: 150}, entity.DockCenter},
		{"left band", entity.Point{X: 30, Y: 150}, entity.DockLeft},
		{"right band", entity.Point{X: 380, Y: 150}, entity.DockRight},
		{"top band", entity.Point{X: 200, Y: 20}, entity.DockTop},
		{"bottom band", entity.Point{X: 200, Y: 285}, entity.DockBottom},
		// In a corner the closer edge wins.
		{"corner closer to top", entity.Point{X: 60, Y: 30}, entity.DockTop},
		{"corner closer to left", entity.Point{X: 30, Y: 60}, entity.DockLeft},
		// Equidistant corner: earlier of left,right,top,bottom wins.
		{"equidistant corner", entity.Point{X: 40, Y: 40}, entity.DockLeft},
		// Exactly on the zone boundary counts as center.
		{"on boundary", entity.Point{X: 100, Y: 150}, entity.DockCenter},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, zonePosition(tt.pt, r, 0.25))
		})
	}
}

func TestDropTargetAtResolvesLeafAndIndicator(t *testing.T) {
	p, svc := newTestPane(t)
	n1, n2 := newTestNode(svc, "n1"), newTestNode(svc, "n2")

	p.DockAt(n1, entity.DockLeft)
	p.Dock(n2, entity.DockRight, n1)

	// Deep inside n2's right half, near its left edge.
	dt, ok := p.DropTargetAt(entity.Point{X: 430, Y: 300})
	require.True(t, ok)
	assert.Equal(t, TreeNode(n2), dt.Target)
	assert.Equal(t, entity.DockLeft, dt.Position)
	assert.Equal(t, entity.Rect{X: 400, Y: 0, W: 200, H: 600}, dt.Bounds)

	// Dead center of n1 is a tab drop over the full leaf rect.
	dt, ok = p.DropTargetAt(entity.Point{X: 200, Y: 300})
	require.True(t, ok)
	assert.Equal(t, TreeNode(n1), dt.Target)
	assert.Equal(t, entity.DockCenter, dt.Position)
	assert.Equal(t, entity.Rect{X: 0, Y: 0, W: 400, H: 600}, dt.Bounds)

	_, ok = p.DropTargetAt(entity.Point{X: 900, Y: 300})
	assert.False(t, ok, "points outside the pane resolve to nothing")
}

func TestDropTargetAtOnEmptyPane(t *testing.T) {
	p, _ := newTestPane(t)
	_, ok := p.DropTargetAt(entity.Point{X: 100, Y: 100})
	assert.False(t, ok)
}
