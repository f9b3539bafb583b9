package workspace

import (
	"sort"

	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// dirtySet tracks entities with unflushed changes, keyed by uid so
// repeated MarkDirty calls on the same entity collapse to one pending
// write. Grounded on the teacher's sorted-path change index
// (internal/edit/changeindex.go), generalized from registry paths to
// entity uids ordered by graph depth rather than lexical order.
type dirtySet struct {
	entries map[types.UID]entity.Node
}

func newDirtySet() *dirtySet {
	return &dirtySet{entries: make(map[types.UID]entity.Node)}
}

func (d *dirtySet) add(n entity.Node) {
	d.entries[n.EntityUID()] = n
}

func (d *dirtySet) remove(uid types.UID) {
	delete(d.entries, uid)
}

func (d *dirtySet) clear() {
	d.entries = make(map[types.UID]entity.Node)
}

// orderedForFlush returns the dirty entities sorted so that parents are
// written before children can reference them, and ties broken by uid
// string for determinism — the write order §6's save_entity recursion
// needs ("create typed sub-groups ... then recurse into children").
func (d *dirtySet) orderedForFlush(depth func(types.UID) int) []entity.Node {
	out := make([]entity.Node, 0, len(d.entries))
	for _, n := range d.entries {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool {
		di, dj := depth(out[i].EntityUID()), depth(out[j].EntityUID())
		if di != dj {
			return di < dj
		}
		return out[i].EntityUID().String() < out[j].EntityUID().String()
	})
	return out
}
