package types

import "log/slog"

// Mode gates what a Workspace may do to the underlying container, and
// which advisory lock internal/container acquires (spec §5, "Locking
// discipline").
type Mode int

const (
	// ModeReadOnly takes a shared lock; writes are rejected with
	// ErrReadOnly.
	ModeReadOnly Mode = iota
	// ModeReadWrite takes an exclusive lock against an existing file.
	ModeReadWrite
	// ModeCreate takes an exclusive lock and truncates/creates the file.
	ModeCreate
)

func (m Mode) String() string {
	switch m {
	case ModeReadOnly:
		return "ReadOnly"
	case ModeReadWrite:
		return "ReadWrite"
	case ModeCreate:
		return "Create"
	default:
		return "Unknown"
	}
}

// OpenOptions configures Workspace.Open, mirroring the teacher's
// options-struct configuration idiom (no config files, no env vars).
type OpenOptions struct {
	Mode Mode
	// Logger receives lifecycle and warning events (§10.1). Defaults to
	// slog.Default() when nil.
	Logger *slog.Logger
	// Limits bounds the entity graph accepted from this file. Defaults
	// to DefaultLimits().
	Limits GraphLimits
	// Contributors, DistanceUnit, and GAVersion override the
	// corresponding root workspace attributes at creation time (§11.1).
	// Ignored unless Mode == ModeCreate.
	Contributors []string
	DistanceUnit string
	GAVersion    string
}

// DefaultOpenOptions returns the options used when a caller supplies
// none: read-write access to an existing file, default logger, default
// limits.
func DefaultOpenOptions() OpenOptions {
	return OpenOptions{
		Mode:   ModeReadWrite,
		Logger: slog.Default(),
		Limits: DefaultLimits(),
	}
}

// WriteOptions configures Workspace.Close's flush/repack behaviour.
type WriteOptions struct {
	// Repack invokes the external h5repack tool (best effort) after
	// flushing, to reclaim space left by deleted/resized datasets.
	Repack bool
	// RepackPath overrides the h5repack executable name/path. Defaults
	// to "h5repack" resolved via PATH.
	RepackPath string
}

// DefaultWriteOptions disables repack: it is a best-effort optimization,
// not required for correctness, and shells out to an external tool.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Repack: false, RepackPath: "h5repack"}
}
