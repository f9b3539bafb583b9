// Package concat implements C7 (Concatenation layer): a Concatenator
// binds many logical drillholes' short, numerous per-log arrays onto a
// handful of shared backing arrays keyed by channel name, each
// contained object's slice of which is tracked by index.go's Index.
//
// Grounded on the teacher's multi-file merge shape (internal/regmerge):
// ParseAndOptimize there combines many small per-file operation lists
// into one optimized list keyed by path; here the combination is of
// many small per-object value slices into one array keyed by channel,
// with the same motivation — many small records are wasteful to store
// standalone.
package concat

import "github.com/geoh5kit/geoh5kit/pkg/types"

// Concatenator owns the shared channel arrays for every object nested
// under one DrillholeGroup-kind parent, plus the per-object flattened
// attribute dictionary geoh5py calls concatenated_attributes.
type Concatenator struct {
	ParentUID types.UID

	// Channels holds each channel's full backing array, in the order
	// objects were appended (spec §4.7: "shared concatenated arrays
	// keyed by channel name").
	Channels map[string][]float64

	// Index maps an object uid and channel name to its (start, length)
	// window within Channels[channel].
	Index *Index

	// ConcatenatedAttributes holds each contained object's flat
	// attribute map, keyed by uid — the metadata a standalone entity
	// would otherwise carry its own on-disk record for.
	ConcatenatedAttributes map[types.UID]map[string]any

	// ObjectIDs lists every non-removed object uid, in insertion order
	// (spec §4.7: "concatenated_object_ids list").
	ObjectIDs []types.UID

	dirty bool
}

// NewConcatenator returns an empty Concatenator owned by parentUID.
func NewConcatenator(parentUID types.UID) *Concatenator {
	return &Concatenator{
		ParentUID:              parentUID,
		Channels:               make(map[string][]float64),
		Index:                  NewIndex(),
		ConcatenatedAttributes: make(map[types.UID]map[string]any),
	}
}

// AddObject binds uid's storage to the concatenator's shared arrays,
// per spec §4.7: "Adding a Concatenated object under a Concatenator
// parent binds its storage to the parent's shared arrays." attrs is
// the object's flattened attribute map.
func (c *Concatenator) AddObject(uid types.UID, attrs map[string]any) {
	for _, existing := range c.ObjectIDs {
		if existing == uid {
			c.ConcatenatedAttributes[uid] = attrs
			return
		}
	}
	c.ObjectIDs = append(c.ObjectIDs, uid)
	c.ConcatenatedAttributes[uid] = attrs
	c.dirty = true
}

// AppendChannel grows channel's shared array by values and records
// uid's window into it, redispatching what would otherwise be a
// standalone save_entity call (spec §4.7: "its save_entity is
// re-dispatched to the concatenator, which grows the shared arrays and
// updates the index").
func (c *Concatenator) AppendChannel(uid types.UID, channel string, values []float64) error {
	if _, ok := c.ConcatenatedAttributes[uid]; !ok {
		return types.NotFound(uid.String())
	}
	start := len(c.Channels[channel])
	c.Channels[channel] = append(c.Channels[channel], values...)
	c.Index.Set(uid, channel, start, len(values))
	c.dirty = true
	return nil
}

// Values reads uid's slice of channel back out of the shared array
// (spec §4.7: "Fetching values for a Concatenated entity reads the
// slice at the stored (start, length)").
func (c *Concatenator) Values(uid types.UID, channel string) ([]float64, bool) {
	entry, ok := c.Index.Get(uid, channel)
	if !ok || entry.Tombstoned {
		return nil, false
	}
	arr := c.Channels[channel]
	if entry.Start+entry.Length > len(arr) {
		return nil, false
	}
	return arr[entry.Start : entry.Start+entry.Length], true
}

// RemoveObject tombstones uid's index entries and drops it from
// ObjectIDs and ConcatenatedAttributes, without touching the shared
// arrays themselves — reclamation is deferred to Reclaim (spec §4.7:
// "Removing a concatenated entity invalidates its slice (tombstoned in
// the index); reclamation happens at repack time").
func (c *Concatenator) RemoveObject(uid types.UID) {
	c.Index.TombstoneObject(uid)
	delete(c.ConcatenatedAttributes, uid)
	for i, existing := range c.ObjectIDs {
		if existing == uid {
			c.ObjectIDs = append(c.ObjectIDs[:i], c.ObjectIDs[i+1:]...)
			break
		}
	}
	c.dirty = true
}

// Dirty reports whether the concatenator's index or arrays changed
// since the last ClearDirty.
func (c *Concatenator) Dirty() bool { return c.dirty }

// ClearDirty resets the dirty flag after a flush.
func (c *Concatenator) ClearDirty() { c.dirty = false }

// Reclaim compacts every channel array, dropping tombstoned ranges and
// rewriting the index to match — the repack-time cleanup spec §4.7
// defers to.
func (c *Concatenator) Reclaim() {
	for channel, arr := range c.Channels {
		compacted := make([]float64, 0, len(arr))
		for _, uid := range c.ObjectIDs {
			entry, ok := c.Index.Get(uid, channel)
			if !ok || entry.Tombstoned {
				continue
			}
			newStart := len(compacted)
			compacted = append(compacted, arr[entry.Start:entry.Start+entry.Length]...)
			c.Index.Set(uid, channel, newStart, entry.Length)
		}
		c.Channels[channel] = compacted
	}
	c.Index.PruneTombstones()
	c.dirty = true
}
