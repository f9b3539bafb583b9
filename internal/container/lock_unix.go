//go:build unix

package container

import (
	"os"

	"github.com/geoh5kit/geoh5kit/pkg/types"
	"golang.org/x/sys/unix"
)

// fileLock holds the open file descriptor an flock(2) advisory lock is
// held against, released on Close.
type fileLock struct {
	f *os.File
}

// acquireLock takes a shared lock for ModeReadOnly and an exclusive
// lock otherwise, matching the single-writer/multi-reader discipline
// spec §5 requires. It does not block: a lock already held by another
// writer surfaces immediately as a Validation error rather than
// hanging the caller.
func acquireLock(path string, mode types.Mode) (*fileLock, error) {
	flags := os.O_RDONLY
	lockType := unix.LOCK_SH
	if mode != types.ModeReadOnly {
		flags = os.O_RDWR | os.O_CREATE
		lockType = unix.LOCK_EX
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}

	if err := unix.Flock(int(f.Fd()), lockType|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, types.Validation(path, "file is locked by another process")
	}

	return &fileLock{f: f}, nil
}

func (l *fileLock) release() error {
	if l == nil || l.f == nil {
		return nil
	}
	_ = unix.Flock(int(l.f.Fd()), unix.LOCK_UN)
	return l.f.Close()
}
