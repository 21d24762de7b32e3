package windowing

import (
	"sync"

	"github.com/bnema/dockpane/internal/domain/entity"
)

// StubService is an in-memory Service for tests and the demo binary.
// It records every created window so tests can assert on lifecycle.
type StubService struct {
	mu       sync.Mutex
	displays []Display
	windows  []*StubWindow
}

// NewStubService creates a stub service. With no displays given, a
// single 1920x1040 primary display (40px of chrome reserved) is used.
func NewStubService(displays ...Display) *StubService {
	if len(displays) == 0 {
		displays = []Display{{VisualBounds: entity.Rect{X: 0, Y: 40, W: 1920, H: 1040}}}
	}
	return &StubService{displays: displays}
}

// CreateWindow implements Service.
func (s *StubService) CreateWindow(style WindowStyle) Window {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := &StubWindow{style: style}
	s.windows = append(s.windows, w)
	return w
}

// DisplayContaining implements Service.
func (s *StubService) DisplayContaining(bounds entity.Rect) Display {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.displays {
		if d.VisualBounds.Intersects(bounds) {
			return d
		}
	}
	return s.displays[0]
}

// PrimaryDisplay implements Service.
func (s *StubService) PrimaryDisplay() Display {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displays[0]
}

// Windows returns every window ever created, including closed ones.
func (s *StubService) Windows() []*StubWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*StubWindow, len(s.windows))
	copy(out, s.windows)
	return out
}

// OpenWindows returns the windows currently showing.
func (s *StubService) OpenWindows() []*StubWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*StubWindow
	for _, w := range s.windows {
		if w.IsShowing() {
			out = append(out, w)
		}
	}
	return out
}

// Reset clears recorded windows for deterministic tests.
func (s *StubService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = nil
}

// StubWindow is the in-memory Window produced by StubService.
type StubWindow struct {
	mu             sync.Mutex
	style          WindowStyle
	bounds         entity.Rect
	minW, minH     float64
	title          string
	resizable      bool
	alwaysOnTop    bool
	iconified      bool
	showing        bool
	closed         bool
	onCloseRequest func()
}

// SetBounds implements Window.
func (w *StubWindow) SetBounds(bounds entity.Rect) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bounds = bounds
}

// Bounds implements Window.
func (w *StubWindow) Bounds() entity.Rect {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

// SetMinSize implements Window.
func (w *StubWindow) SetMinSize(width, height float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.minW, w.minH = width, height
}

// MinSize implements Window.
func (w *StubWindow) MinSize() (float64, float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.minW, w.minH
}

// SetTitle implements Window.
func (w *StubWindow) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.title = title
}

// Title returns the last title set on the window.
func (w *StubWindow) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// SetResizable implements Window.
func (w *StubWindow) SetResizable(resizable bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.resizable = resizable
}

// SetAlwaysOnTop implements Window.
func (w *StubWindow) SetAlwaysOnTop(alwaysOnTop bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.alwaysOnTop = alwaysOnTop
}

// AlwaysOnTop reports the last always-on-top value set.
func (w *StubWindow) AlwaysOnTop() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.alwaysOnTop
}

// SetIconified implements Window.
func (w *StubWindow) SetIconified(iconified bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.iconified = iconified
}

// Iconified reports whether the window is currently iconified.
func (w *StubWindow) Iconified() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.iconified
}

// Show implements Window.
func (w *StubWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.closed {
		w.showing = true
	}
}

// Close implements Window.
func (w *StubWindow) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.showing = false
	w.closed = true
}

// IsShowing reports whether the window is visible.
func (w *StubWindow) IsShowing() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.showing
}

// IsClosed reports whether Close was called.
func (w *StubWindow) IsClosed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Style returns the style the window was created with.
func (w *StubWindow) Style() WindowStyle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.style
}

// SetOnCloseRequest implements Window.
func (w *StubWindow) SetOnCloseRequest(fn func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onCloseRequest = fn
}

// RequestClose simulates the user closing the window natively.
func (w *StubWindow) RequestClose() {
	w.mu.Lock()
	fn := w.onCloseRequest
	w.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// RecordingStyleSink captures style-state pushes for assertions.
type RecordingStyleSink struct {
	mu     sync.Mutex
	states map[string][]entity.StyleState
}

// NewRecordingStyleSink creates an empty recording sink.
func NewRecordingStyleSink() *RecordingStyleSink {
	return &RecordingStyleSink{states: make(map[string][]entity.StyleState)}
}

// ApplyStyleStates implements StyleSink.
func (r *RecordingStyleSink) ApplyStyleStates(settingName string, states []entity.StyleState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.states[settingName] = append([]entity.StyleState(nil), states...)
}

// States returns the last state set pushed for a node.
func (r *RecordingStyleSink) States(settingName string) []entity.StyleState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.states[settingName]
}
