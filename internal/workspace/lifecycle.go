package workspace

import "github.com/geoh5kit/geoh5kit/pkg/types"

// state tracks the Closed -> Open[mode] -> Closed lifecycle spec §5
// describes, grounded on the teacher's transaction
// committed/rolledBack flag pair (internal/edit/planner.go) generalized
// from a one-shot transaction to a reopenable Workspace.
type state int

const (
	stateClosed state = iota
	stateOpen
)

// checkOpen returns ErrClosed if the workspace is not currently open,
// mirroring the teacher's checkState guard called at the top of every
// mutating transaction method.
func (w *Workspace) checkOpen() error {
	if w.state != stateOpen {
		return types.ErrClosed
	}
	return nil
}

// checkWritable returns ErrReadOnly if the workspace is open read-only,
// in addition to the checkOpen guard.
func (w *Workspace) checkWritable() error {
	if err := w.checkOpen(); err != nil {
		return err
	}
	if w.mode == types.ModeReadOnly {
		return types.ErrReadOnly
	}
	return nil
}
