// Package workspace implements C4 (Workspace): the Closed/Open
// lifecycle wrapping a container.Container, its in-memory persist.Graph,
// and the dirty-tracking bookkeeping between a caller's edits and the
// next flush.
package workspace

import (
	"context"
	"fmt"
	"log/slog"
	"weak"

	"github.com/geoh5kit/geoh5kit/internal/container"
	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
	"github.com/geoh5kit/geoh5kit/internal/format"
	"github.com/geoh5kit/geoh5kit/internal/persist"
	"github.com/geoh5kit/geoh5kit/internal/persist/reader"
	"github.com/geoh5kit/geoh5kit/internal/persist/writer"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// Workspace owns one open geoh5 file: its container, its decoded entity
// graph, and the set of entities with unflushed changes. It is not safe
// for concurrent use (spec §5, "single-threaded cooperative").
type Workspace struct {
	path   string
	mode   types.Mode
	state  state
	logger *slog.Logger
	limits types.GraphLimits

	container container.Container
	handle    *types.WorkspaceHandle
	graph     *persist.Graph
	dirty     *dirtySet
}

// New returns an unopened Workspace bound to path. Call Open to acquire
// the file handle.
func New(path string) *Workspace {
	return &Workspace{path: path, state: stateClosed, dirty: newDirtySet()}
}

// CreateGeoh5 opens a brand-new geoh5 file at path, laying out the root
// directory hierarchy and project attributes (spec's create_geoh5).
func CreateGeoh5(path string, opts types.OpenOptions) (*Workspace, error) {
	opts.Mode = types.ModeCreate
	w := New(path)
	if err := w.Open(opts); err != nil {
		return nil, err
	}
	return w, nil
}

// OpenExisting opens path in the requested mode, loading its full entity
// graph.
func OpenExisting(path string, opts types.OpenOptions) (*Workspace, error) {
	if opts.Mode == types.ModeCreate {
		opts.Mode = types.ModeReadWrite
	}
	w := New(path)
	if err := w.Open(opts); err != nil {
		return nil, err
	}
	return w, nil
}

// Root returns the workspace's root group, or nil if the workspace is
// not open.
func (w *Workspace) Root() *entity.Group {
	if w.graph == nil {
		return nil
	}
	return w.graph.Root
}

// Path returns the filesystem path this workspace was opened against.
func (w *Workspace) Path() string {
	return w.path
}

func (w *Workspace) log() *slog.Logger {
	if w.logger != nil {
		return w.logger
	}
	return slog.Default()
}

// Open acquires the file handle, reads project attributes, and either
// loads the existing root and its descendants or lays out a new file
// with an empty root (spec §4.3 "open"). Re-opening an already-open
// workspace is a no-op that logs a warning, per §4.6.
func (w *Workspace) Open(opts types.OpenOptions) error {
	if w.state == stateOpen {
		w.log().Warn("workspace already open, ignoring Open call", "path", w.path)
		return nil
	}
	if opts.Logger != nil {
		w.logger = opts.Logger
	} else {
		w.logger = slog.Default()
	}
	if (opts.Limits == types.GraphLimits{}) {
		opts.Limits = types.DefaultLimits()
	}
	w.limits = opts.Limits
	w.mode = opts.Mode
	w.handle = &types.WorkspaceHandle{UID: types.NewUID()}

	c, err := container.Open(w.path, opts.Mode)
	if err != nil {
		return err
	}
	w.container = c

	if opts.Mode == types.ModeCreate {
		if err := w.initNew(opts); err != nil {
			_ = c.Close()
			return err
		}
	} else {
		g, err := reader.Load(c)
		if err != nil {
			_ = c.Close()
			return err
		}
		w.graph = g
		w.wireWorkspaceHandles()
	}

	w.state = stateOpen
	w.log().Info("workspace opened", "path", w.path, "mode", opts.Mode.String())
	return nil
}

func (w *Workspace) initNew(opts types.OpenOptions) error {
	attrs := projectAttrs(opts)
	if err := writer.Init(w.container, attrs); err != nil {
		return err
	}
	w.graph = persist.NewGraph()
	rootType := entitytype.FindOrCreateGroupType(w.graph.Types, types.NilUID, "Root")
	w.graph.Root = entity.NewGroup(format.RootAttrName, entity.GroupKindRoot, rootType)
	w.wireWorkspaceHandles()
	w.dirty.add(w.graph.Root)
	return nil
}

func projectAttrs(opts types.OpenOptions) map[string]any {
	attrs := make(map[string]any)
	if len(opts.Contributors) > 0 {
		attrs[format.AttrContributors] = opts.Contributors
	}
	if opts.DistanceUnit != "" {
		attrs[format.AttrDistanceUnit] = opts.DistanceUnit
	}
	if opts.GAVersion != "" {
		attrs[format.AttrGAVersion] = opts.GAVersion
	}
	return attrs
}

// wireWorkspaceHandles stamps every loaded entity and type with a weak
// reference back to this workspace, so Data.Workspace()/Type.OnFile()
// resolve correctly for freshly-loaded or newly-created graphs alike.
func (w *Workspace) wireWorkspaceHandles() {
	ref := weak.Make(w.handle)
	for _, t := range w.graph.Types.All() {
		t.SetWorkspace(ref)
	}
	if w.graph.Root != nil {
		w.graph.Root.SetWorkspace(ref)
	}
	for _, g := range w.graph.Groups {
		g.SetWorkspace(ref)
	}
	for _, o := range w.graph.Objects {
		o.SetWorkspace(ref)
	}
	for _, d := range w.graph.Data {
		d.SetWorkspace(ref)
	}
}

// Close flushes dirty entities, writes the root's updated child list,
// closes the handle, and — if opts.Repack is set — best-effort
// compacts the file (spec §4.3 "close", §4.5 "failure semantics").
func (w *Workspace) Close(opts types.WriteOptions) error {
	if w.state == stateClosed {
		return nil
	}
	if w.mode != types.ModeReadOnly {
		if err := w.flush(); err != nil {
			return fmt.Errorf("workspace: flush: %w", err)
		}
	}
	if err := w.container.Close(); err != nil {
		return fmt.Errorf("workspace: close: %w", err)
	}
	if opts.Repack {
		writer.Repack(context.Background(), w.path, opts, w.log())
	}
	w.state = stateClosed
	w.Deactivate()
	w.log().Info("workspace closed", "path", w.path)
	return nil
}

// flush writes every dirty entity, parents before children (§5,
// "Dirty-attribute application order ... topologically sorted
// children-after-parents").
func (w *Workspace) flush() error {
	order := w.dirty.orderedForFlush(w.depthOf)
	if len(order) == 0 {
		return nil
	}
	if err := writer.SaveEntities(w.container, w.graph, order); err != nil {
		return err
	}
	for _, n := range order {
		if cd, ok := n.(interface{ ClearDirty() }); ok {
			cd.ClearDirty()
		}
	}
	w.dirty.clear()
	return nil
}

// depthOf returns n's distance from the root along its parent chain,
// used to order flush writes so a child never writes before a parent
// that does not yet exist on file.
func (w *Workspace) depthOf(uid types.UID) int {
	n, ok := w.lookupNode(uid)
	if !ok {
		return 0
	}
	return nodeDepth(n, make(map[types.UID]bool))
}

func nodeDepth(n entity.Node, visited map[types.UID]bool) int {
	pn, ok := n.(interface{ ParentNodes() []entity.Node })
	if !ok {
		return 0
	}
	parents := pn.ParentNodes()
	if len(parents) == 0 {
		return 0
	}
	max := 0
	for _, p := range parents {
		if visited[p.EntityUID()] {
			continue
		}
		visited[p.EntityUID()] = true
		if d := nodeDepth(p, visited) + 1; d > max {
			max = d
		}
	}
	return max
}
