// Package dock implements the docking engine: the split/tab content
// tree, the dock pane that mutates it, and the dock node lifecycle
// state machine. Rendering and window creation are delegated to the
// windowing collaborator interfaces.
//
// All operations are single-threaded: they run on the toolkit's event
// dispatch thread in response to pointer and window events.
package dock

import (
	"context"

	"github.com/bnema/dockpane/internal/logging"
)

// Content is the opaque application widget a dock node wraps. The
// engine only ever asks it for a preferred size; everything else is the
// toolkit's business.
type Content interface {
	PreferredSize() (width, height float64)
}

// ContentSource produces content lazily, e.g. from a declarative UI
// loader. It may fail.
type ContentSource func() (Content, error)

// PlaceholderContent stands in for content that failed to load. A load
// failure is recovered locally and never surfaces as an engine fault.
type PlaceholderContent struct {
	Message string
}

// PreferredSize implements Content.
func (PlaceholderContent) PreferredSize() (float64, float64) { return 300, 200 }

// LoadContent resolves a content source, substituting a visible
// placeholder when the source fails.
func LoadContent(ctx context.Context, src ContentSource) Content {
	content, err := src()
	if err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("content source failed, using placeholder")
		return PlaceholderContent{Message: "Could not load content"}
	}
	if content == nil {
		return PlaceholderContent{Message: "Could not load content"}
	}
	return content
}

// SizedContent is a trivial Content with a fixed preferred size,
// useful for tests and demos.
type SizedContent struct {
	Width, Height float64
}

// PreferredSize implements Content.
func (c SizedContent) PreferredSize() (float64, float64) { return c.Width, c.Height }
