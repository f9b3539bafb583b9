// Package container wraps the HDF5 container a geoh5 file is stored
// in. It is the only package in this module that touches
// gonum.org/v1/hdf5 directly — everything above it (internal/entity,
// internal/entitytype, internal/workspace, internal/persist/*) speaks
// in terms of the Container interface's group/attribute/dataset
// primitives, never raw HDF5 handles or byte offsets.
package container

import "github.com/geoh5kit/geoh5kit/pkg/types"

// Container is the storage primitive C5/C6 read and write through: an
// HDF5 file opened in one of the modes in types.Mode.
type Container interface {
	// Group returns the group at path, creating intermediate and
	// terminal groups if create is true and they don't yet exist.
	Group(path string, create bool) (Group, error)

	// Close flushes pending writes and releases the underlying file
	// handle and advisory lock.
	Close() error

	// Mode reports the mode the container was opened with.
	Mode() types.Mode

	// Path reports the filesystem path the container was opened from.
	Path() string
}

// Group is a node in the HDF5 hierarchy: it carries attributes and may
// have child groups and datasets.
type Group interface {
	// Path returns this group's full path within the container.
	Path() string

	// Attr reads a scalar attribute. ok is false if absent.
	Attr(name string) (value any, ok bool)

	// SetAttr writes a scalar attribute (string, int32, int, int64, or
	// float64 — the concrete types internal/entitytype and
	// internal/entity exchange with this package).
	SetAttr(name string, value any) error

	// AttrNames lists every attribute name present on this group.
	AttrNames() ([]string, error)

	// SubGroup opens or creates a named child group.
	SubGroup(name string, create bool) (Group, error)

	// SubGroupNames lists the names of this group's child groups.
	SubGroupNames() ([]string, error)

	// Dataset reads a named dataset in full.
	Dataset(name string) (Dataset, error)

	// WriteDataset creates or overwrites a named dataset.
	WriteDataset(name string, data Dataset) error

	// DatasetNames lists the names of this group's child datasets.
	DatasetNames() ([]string, error)

	// Delete removes a child group or dataset by name.
	Delete(name string) error
}

// Dataset is an in-memory staging area for a single HDF5 dataset's
// payload, decoupled from any particular Go element type so callers can
// pass typed slices ([]int32, []float64, []byte, []string, ...) without
// this package needing a case for every Data primitive type.
type Dataset struct {
	// Values holds the dataset payload as a concrete slice type; the
	// HDF5 binding maps it onto the matching native HDF5 datatype.
	Values any
	// Dims describes the dataset's shape for multi-dimensional
	// data (e.g. n x 3 vertex arrays). A 1-D dataset has len(Dims)==1.
	Dims []int
}
