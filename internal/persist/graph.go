// Package persist defines the in-memory Graph shape internal/persist/
// reader produces from a container.Container and internal/persist/
// writer consumes back into one (C5/C6). It has no dependency on
// internal/workspace — workspace.Workspace assembles a Graph's pieces
// into its own bookkeeping, rather than persist depending on workspace,
// to keep the import direction acyclic.
package persist

import (
	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/entitytype"
)

// Graph is every on-disk entity a container holds, decoded into Go
// values but not yet wired into a Workspace's lifecycle/dirty-tracking
// state.
type Graph struct {
	Root  *entity.Group
	Types *entitytype.Registry

	Groups  map[string]*entity.Group // keyed by uid string
	Objects map[string]*entity.ObjectBase
	Data    map[string]*entity.Data
}

// NewGraph returns an empty Graph with initialized maps, the shape
// Workspace.CreateGeoh5 starts a brand-new file from.
func NewGraph() *Graph {
	return &Graph{
		Types:   entitytype.NewRegistry(),
		Groups:  make(map[string]*entity.Group),
		Objects: make(map[string]*entity.ObjectBase),
		Data:    make(map[string]*entity.Data),
	}
}
