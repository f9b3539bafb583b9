//go:build windows

package container

import (
	"os"

	"github.com/geoh5kit/geoh5kit/pkg/types"
	"golang.org/x/sys/windows"
)

// fileLock holds the Windows handle a LockFileEx advisory lock is held
// against, released on Close.
type fileLock struct {
	f *os.File
}

func acquireLock(path string, mode types.Mode) (*fileLock, error) {
	flags := os.O_RDONLY
	exclusive := mode != types.ModeReadOnly
	if exclusive {
		flags = os.O_RDWR | os.O_CREATE
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}

	handle := windows.Handle(f.Fd())
	var flagsLock uint32 = windows.LOCKFILE_FAIL_IMMEDIATELY
	if exclusive {
		flagsLock |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}
	overlapped := new(windows.Overlapped)
	if err := windows.LockFileEx(handle, flagsLock, 0, 1, 0, overlapped); err != nil {
		f.Close()
		return nil, types.Validation(path, "file is locked by another process")
	}

	return &fileLock{f: f}, nil
}

func (l *fileLock) release() error {
	if l == nil || l.f == nil {
		return nil
	}
	handle := windows.Handle(l.f.Fd())
	overlapped := new(windows.Overlapped)
	_ = windows.UnlockFileEx(handle, 0, 1, 0, overlapped)
	return l.f.Close()
}
