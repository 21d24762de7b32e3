package dock

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/dockpane/internal/config"
	"github.com/bnema/dockpane/internal/domain/entity"
	"github.com/bnema/dockpane/internal/logging"
	"github.com/bnema/dockpane/internal/ui/windowing"
)

// ErrIndexOutOfBounds is returned when a tab index is out of range.
var (
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	ErrNodeNotFound     = errors.New("node not found")
)

// DockPane owns one content tree inside a host window and mediates
// every dock, undock and drop-target query against it.
type DockPane struct {
	id     string
	root   TreeNode
	bounds entity.Rect

	hostWindow windowing.Window
	winsvc     windowing.Service
	styles     windowing.StyleSink
	cfg        *config.Config

	// nodes the pane holds a reference to, docked or not. Cleared per
	// node by Remove (removeOnClose).
	nodes []*DockNode

	logger zerolog.Logger
}

// Option configures a DockPane.
type Option func(*DockPane)

// WithHostWindow attaches the host window the pane lives in. Used for
// screen-coordinate conversion and centered float placement.
func WithHostWindow(w windowing.Window) Option {
	return func(p *DockPane) { p.hostWindow = w }
}

// WithStyleSink routes node style-state changes to the renderer.
func WithStyleSink(s windowing.StyleSink) Option {
	return func(p *DockPane) { p.styles = s }
}

// WithConfig overrides the built-in defaults.
func WithConfig(cfg *config.Config) Option {
	return func(p *DockPane) { p.cfg = cfg }
}

// WithBounds sets the pane-local coordinate space used for hit tests.
func WithBounds(r entity.Rect) Option {
	return func(p *DockPane) { p.bounds = r }
}

// NewDockPane creates an empty pane backed by the given windowing
// service.
func NewDockPane(ctx context.Context, svc windowing.Service, opts ...Option) *DockPane {
	log := logging.FromContext(ctx)

	p := &DockPane{
		id:     uuid.NewString(),
		winsvc: svc,
		cfg:    config.Defaults(),
		logger: log.With().Str("component", "dock-pane").Logger(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.styles == nil {
		p.styles = windowing.NopStyleSink{}
	}
	return p
}

// Root returns the root of the content tree. It is a SplitContainer
// once anything has been docked, possibly holding a single child, and
// nil while the pane has never held a node.
func (p *DockPane) Root() TreeNode { return p.root }

// SetBounds updates the pane-local coordinate space on allocation.
func (p *DockPane) SetBounds(r entity.Rect) { p.bounds = r }

// Bounds returns the pane-local coordinate space.
func (p *DockPane) Bounds() entity.Rect { return p.bounds }

// Contains reports whether the given tree node is currently attached
// to this pane's tree.
func (p *DockPane) Contains(n TreeNode) bool {
	found := false
	walkTree(p.root, func(t TreeNode) bool {
		if t == n {
			found = true
			return false
		}
		return true
	})
	return found
}

// Leaves returns every dock node currently in the tree, in order.
func (p *DockPane) Leaves() []*DockNode {
	var out []*DockNode
	walkTree(p.root, func(t TreeNode) bool {
		if d, ok := t.(*DockNode); ok {
			out = append(out, d)
		}
		return true
	})
	return out
}

// NodeByName finds the docked node registered under settingName,
// or ErrNodeNotFound.
func (p *DockPane) NodeByName(name string) (*DockNode, error) {
	for _, n := range p.Leaves() {
		if n.SettingName() == name {
			return n, nil
		}
	}
	return nil, ErrNodeNotFound
}

// Dock inserts node relative to sibling at the given position and
// refreshes the node's placement memo. The node is detached from any
// previous parent first; detach and attach form one atomic operation.
func (p *DockPane) Dock(node *DockNode, pos entity.DockPos, sibling TreeNode) {
	if node == nil || TreeNode(node) == sibling {
		return
	}
	p.register(node)
	node.closed.Set(false)

	if node.IsFloating() {
		node.SetFloating(false, nil)
	}
	if node.Parent() != nil || p.root == TreeNode(node) {
		p.removeNode(node)
	}
	if sibling != nil && !p.Contains(sibling) {
		p.logger.Debug().Str("pos", pos.String()).Msg("dock sibling no longer in tree, using root")
		sibling = p.root
	}

	p.insertNode(pos, sibling, node)
	node.docked.Set(true)
	node.refreshLastPosition()
	node.pushStyleStates()

	p.logger.Debug().
		Str("node", node.SettingName()).
		Str("pos", pos.String()).
		Int("leaves", len(p.Leaves())).
		Msg("docked node")
}

// DockAt docks relative to the tree root.
func (p *DockPane) DockAt(node *DockNode, pos entity.DockPos) {
	p.Dock(node, pos, p.root)
}

// DockDefault docks with the least-surprise default placement: the
// root split's single child as a center target when there is exactly
// one, otherwise to the right of the whole tree.
func (p *DockPane) DockDefault(node *DockNode) {
	target, pos := p.defaultTarget()
	p.Dock(node, pos, target)
}

// defaultTarget mirrors the historical default-placement heuristic.
// It inspects only the root split's immediate child count, which is
// order dependent on deeply nested trees; callers depend on exactly
// this behavior.
func (p *DockPane) defaultTarget() (TreeNode, entity.DockPos) {
	if fc := p.firstChild(); fc != nil {
		return fc, entity.DockCenter
	}
	return p.root, entity.DockRight
}

// firstChild returns the pane's single existing leaf when the root
// split holds exactly one child, unwrapping a tab container to its
// first tab. Nil otherwise.
func (p *DockPane) firstChild() TreeNode {
	sc, ok := p.root.(*SplitContainer)
	if !ok || sc.childCount() != 1 {
		return nil
	}
	switch child := sc.children[0].(type) {
	case *TabContainer:
		if len(child.tabs) > 0 {
			return child.tabs[0]
		}
	case *DockNode:
		return child
	}
	return nil
}

// Undock detaches the node from the tree. Node state flags are the
// caller's responsibility.
func (p *DockPane) Undock(node *DockNode) {
	if node == nil {
		return
	}
	// Capture the placement memo while the neighbor is still known, so
	// DockBack can land the node next to it again.
	node.refreshLastPosition()
	// Remember where the node sat on screen so a float lands there.
	if r, ok := p.boundsOf(node); ok {
		node.sceneOffset = entity.Point{X: r.X, Y: r.Y}
		if p.hostWindow != nil {
			hb := p.hostWindow.Bounds()
			pos := entity.Point{X: hb.X + r.X, Y: hb.Y + r.Y}
			node.lastScreenPos = &pos
		}
	}
	p.removeNode(node)
}

// Remove drops the pane's reference to a closed node.
func (p *DockPane) Remove(node *DockNode) {
	if node.Parent() != nil || p.Contains(node) {
		p.removeNode(node)
	}
	for i, n := range p.nodes {
		if n == node {
			p.nodes = append(p.nodes[:i], p.nodes[i+1:]...)
			break
		}
	}
}

// LayoutEntry is what the persistence collaborator consumes per node.
type LayoutEntry struct {
	SettingName string
	Title       string
}

// LayoutEntries lists the persistable nodes the pane references.
// Nodes flagged ignoreStore are skipped.
func (p *DockPane) LayoutEntries() []LayoutEntry {
	var out []LayoutEntry
	for _, n := range p.nodes {
		if n.IsIgnoreStore() {
			continue
		}
		out = append(out, LayoutEntry{SettingName: n.SettingName(), Title: n.Title()})
	}
	return out
}

func (p *DockPane) register(node *DockNode) {
	for _, n := range p.nodes {
		if n == node {
			return
		}
	}
	p.nodes = append(p.nodes, node)
	node.adoptPane(p)
}

func (p *DockPane) zoneFraction() float64 {
	if p.cfg != nil && p.cfg.Drop.ZoneFraction > 0 {
		return p.cfg.Drop.ZoneFraction
	}
	return config.DefaultZoneFraction
}

// PointFromScreen converts screen coordinates into pane-local ones
// using the host window position when known.
func (p *DockPane) PointFromScreen(screen entity.Point) entity.Point {
	if p.hostWindow == nil {
		return screen
	}
	hb := p.hostWindow.Bounds()
	return entity.Point{X: screen.X - hb.X, Y: screen.Y - hb.Y}
}
