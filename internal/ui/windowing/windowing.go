// Package windowing defines the interfaces the docking engine uses to
// reach the host toolkit: top-level windows, display geometry and style
// application. The engine never touches the toolkit directly, which keeps
// the tree and state-machine logic testable without a GUI runtime.
package windowing

import "github.com/bnema/dockpane/internal/domain/entity"

// WindowStyle selects the native decoration of a created window.
type WindowStyle int

const (
	StyleUndecorated WindowStyle = iota
	StyleDecorated
	StyleTransparent
)

// Decorated reports whether the style carries native window chrome.
func (s WindowStyle) Decorated() bool {
	return s == StyleDecorated
}

// Display describes one monitor as seen by the toolkit.
type Display struct {
	// VisualBounds excludes system chrome (task bars, docks).
	VisualBounds entity.Rect
}

// Window is a top-level window handle owned by a floating dock node.
type Window interface {
	SetBounds(bounds entity.Rect)
	Bounds() entity.Rect

	SetMinSize(width, height float64)
	MinSize() (width, height float64)

	SetTitle(title string)
	SetResizable(resizable bool)
	SetAlwaysOnTop(alwaysOnTop bool)
	SetIconified(iconified bool)

	Show()
	Close()

	// SetOnCloseRequest registers the callback invoked when the user
	// closes the window through native controls.
	SetOnCloseRequest(fn func())
}

// Service creates windows and answers display geometry queries.
type Service interface {
	CreateWindow(style WindowStyle) Window

	// DisplayContaining returns the display whose bounds intersect the
	// given rectangle, falling back to the primary display.
	DisplayContaining(bounds entity.Rect) Display
	PrimaryDisplay() Display
}

// StyleSink receives explicit style-state changes for a node. This
// replaces CSS pseudo-class cascading with a pushed enum set.
type StyleSink interface {
	ApplyStyleStates(settingName string, states []entity.StyleState)
}

// NopStyleSink discards style updates.
type NopStyleSink struct{}

// ApplyStyleStates implements StyleSink.
func (NopStyleSink) ApplyStyleStates(string, []entity.StyleState) {}
