package windowing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockpane/internal/domain/entity"
)

func TestStubServiceTracksWindows(t *testing.T) {
	svc := NewStubService()

	w1 := svc.CreateWindow(StyleDecorated).(*StubWindow)
	w2 := svc.CreateWindow(StyleTransparent).(*StubWindow)
	assert.Equal(t, StyleDecorated, w1.Style())
	assert.Equal(t, StyleTransparent, w2.Style())

	w1.Show()
	w2.Show()
	require.Len(t, svc.OpenWindows(), 2)

	w1.Close()
	assert.Len(t, svc.OpenWindows(), 1)
	assert.Len(t, svc.Windows(), 2, "closed windows stay recorded")
	assert.True(t, w1.IsClosed())

	w1.Show()
	assert.False(t, w1.IsShowing(), "a closed window cannot reopen")

	svc.Reset()
	assert.Empty(t, svc.Windows())
}

func TestRequestCloseInvokesCallback(t *testing.T) {
	svc := NewStubService()
	w := svc.CreateWindow(StyleDecorated).(*StubWindow)

	var called int
	w.SetOnCloseRequest(func() { called++ })
	w.RequestClose()
	assert.Equal(t, 1, called)

	w.SetOnCloseRequest(nil)
	w.RequestClose()
	assert.Equal(t, 1, called)
}

func TestDisplayContainingFallsBackToPrimary(t *testing.T) {
	left := Display{VisualBounds: entity.Rect{X: 0, Y: 0, W: 1920, H: 1080}}
	right := Display{VisualBounds: entity.Rect{X: 1920, Y: 0, W: 1280, H: 1024}}
	svc := NewStubService(left, right)

	got := svc.DisplayContaining(entity.Rect{X: 2000, Y: 100, W: 400, H: 300})
	assert.Equal(t, right, got)

	got = svc.DisplayContaining(entity.Rect{X: -5000, Y: -5000, W: 10, H: 10})
	assert.Equal(t, left, got, "off-screen rectangles resolve to primary")

	assert.Equal(t, left, svc.PrimaryDisplay())
}
