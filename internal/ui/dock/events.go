package dock

import "github.com/bnema/dockpane/internal/domain/entity"

// PointerEventKind discriminates the pointer events the engine reacts
// to. Hover is delivered without a button held.
type PointerEventKind int

const (
	PointerPressed PointerEventKind = iota
	PointerDragged
	PointerReleased
	PointerMoved
)

// PointerEvent carries one pointer interaction in both the local
// coordinate space of the receiving surface and in screen coordinates.
type PointerEvent struct {
	Kind   PointerEventKind
	Local  entity.Point
	Screen entity.Point
}

// PointerEventSink is implemented by surfaces that consume pointer
// events forwarded from the toolkit.
type PointerEventSink interface {
	HandlePointer(ev PointerEvent)
}
