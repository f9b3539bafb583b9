package concat

import "github.com/geoh5kit/geoh5kit/pkg/types"

// IndexEntry is one object's window into a channel's shared backing
// array.
type IndexEntry struct {
	Start      int
	Length     int
	Tombstoned bool
}

type indexKey struct {
	uid     types.UID
	channel string
}

// Index maps (object uid, channel name) to an IndexEntry, the structure
// spec §4.7 calls "a concatenator index mapping each contained
// object's uid to (start, length)".
type Index struct {
	entries map[indexKey]IndexEntry
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{entries: make(map[indexKey]IndexEntry)}
}

// Set records uid's window into channel.
func (idx *Index) Set(uid types.UID, channel string, start, length int) {
	idx.entries[indexKey{uid, channel}] = IndexEntry{Start: start, Length: length}
}

// Get returns uid's window into channel, if any.
func (idx *Index) Get(uid types.UID, channel string) (IndexEntry, bool) {
	e, ok := idx.entries[indexKey{uid, channel}]
	return e, ok
}

// TombstoneObject marks every channel window belonging to uid as
// tombstoned, without removing the entries (Reclaim prunes them).
func (idx *Index) TombstoneObject(uid types.UID) {
	for key, entry := range idx.entries {
		if key.uid == uid {
			entry.Tombstoned = true
			idx.entries[key] = entry
		}
	}
}

// PruneTombstones removes every tombstoned entry outright, called after
// Concatenator.Reclaim rewrites the backing arrays.
func (idx *Index) PruneTombstones() {
	for key, entry := range idx.entries {
		if entry.Tombstoned {
			delete(idx.entries, key)
		}
	}
}
