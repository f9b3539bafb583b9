// Package containertest provides an in-memory Container implementation
// for exercising internal/persist/reader, internal/persist/writer, and
// internal/workspace without an on-disk HDF5 file. It implements the
// container.Container/Group contract directly rather than wrapping
// gonum.org/v1/hdf5, mirroring how hdf5Container does it but backed by
// plain Go maps instead of a real file handle.
package containertest

import (
	"path"
	"strings"

	"github.com/geoh5kit/geoh5kit/internal/container"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// MemContainer is an in-memory container.Container.
type MemContainer struct {
	root *memGroup
	mode types.Mode
	path string
}

// New returns an empty in-memory container, as if freshly created.
func New(path string, mode types.Mode) *MemContainer {
	return &MemContainer{
		root: newMemGroup("/"),
		mode: mode,
		path: path,
	}
}

func (c *MemContainer) Mode() types.Mode { return c.mode }
func (c *MemContainer) Path() string     { return c.path }
func (c *MemContainer) Close() error     { return nil }

func (c *MemContainer) Group(groupPath string, create bool) (container.Group, error) {
	clean := strings.Trim(path.Clean("/"+groupPath), "/")
	if clean == "" {
		return c.root, nil
	}
	return c.root.openOrCreatePath(clean, create)
}

// memGroup is an in-memory container.Group.
type memGroup struct {
	path     string
	attrs    map[string]any
	children map[string]*memGroup
	datasets map[string]container.Dataset
}

func newMemGroup(path string) *memGroup {
	return &memGroup{
		path:     path,
		attrs:    make(map[string]any),
		children: make(map[string]*memGroup),
		datasets: make(map[string]container.Dataset),
	}
}

func (g *memGroup) openOrCreatePath(clean string, create bool) (container.Group, error) {
	segments := strings.Split(clean, "/")
	cur := g
	for _, seg := range segments {
		child, ok := cur.children[seg]
		if !ok {
			if !create {
				return nil, types.NotFound(path.Join(cur.path, seg))
			}
			child = newMemGroup(path.Join(cur.path, seg))
			cur.children[seg] = child
		}
		cur = child
	}
	return cur, nil
}

func (g *memGroup) Path() string { return g.path }

func (g *memGroup) Attr(name string) (any, bool) {
	v, ok := g.attrs[name]
	return v, ok
}

func (g *memGroup) SetAttr(name string, value any) error {
	g.attrs[name] = value
	return nil
}

func (g *memGroup) AttrNames() ([]string, error) {
	names := make([]string, 0, len(g.attrs))
	for name := range g.attrs {
		names = append(names, name)
	}
	return names, nil
}

func (g *memGroup) SubGroup(name string, create bool) (container.Group, error) {
	child, ok := g.children[name]
	if !ok {
		if !create {
			return nil, types.NotFound(path.Join(g.path, name))
		}
		child = newMemGroup(path.Join(g.path, name))
		g.children[name] = child
	}
	return child, nil
}

func (g *memGroup) SubGroupNames() ([]string, error) {
	names := make([]string, 0, len(g.children))
	for name := range g.children {
		names = append(names, name)
	}
	return names, nil
}

func (g *memGroup) Dataset(name string) (container.Dataset, error) {
	ds, ok := g.datasets[name]
	if !ok {
		return container.Dataset{}, types.NotFound(path.Join(g.path, name))
	}
	return ds, nil
}

func (g *memGroup) WriteDataset(name string, data container.Dataset) error {
	g.datasets[name] = data
	return nil
}

func (g *memGroup) DatasetNames() ([]string, error) {
	names := make([]string, 0, len(g.datasets))
	for name := range g.datasets {
		names = append(names, name)
	}
	return names, nil
}

func (g *memGroup) Delete(name string) error {
	if _, ok := g.children[name]; ok {
		delete(g.children, name)
		return nil
	}
	if _, ok := g.datasets[name]; ok {
		delete(g.datasets, name)
		return nil
	}
	return types.NotFound(path.Join(g.path, name))
}
