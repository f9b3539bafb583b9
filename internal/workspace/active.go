package workspace

import "sync"

// activeMu guards the package-level "currently active" workspace
// pointer, grounded on geoh5py's Workspace.active()/activate()/
// deactivate() (original_source geoh5py/workspace/workspace.py): a
// single process-wide default workspace that code paths not explicitly
// threading a *Workspace can fall back to.
var (
	activeMu sync.Mutex
	active   *Workspace
)

// Activate makes w the process-wide active workspace.
func (w *Workspace) Activate() {
	activeMu.Lock()
	defer activeMu.Unlock()
	active = w
}

// Deactivate clears w as the active workspace if it currently is one.
// Deactivating a workspace that isn't active is a no-op.
func (w *Workspace) Deactivate() {
	activeMu.Lock()
	defer activeMu.Unlock()
	if active == w {
		active = nil
	}
}

// Active returns the process-wide active workspace, or nil if none is
// active.
func Active() *Workspace {
	activeMu.Lock()
	defer activeMu.Unlock()
	return active
}
