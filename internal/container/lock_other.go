//go:build !unix && !windows

package container

import (
	"os"

	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// fileLock is a no-op on platforms with neither flock nor LockFileEx.
// Single-writer/multi-reader discipline then relies entirely on
// application-level coordination.
type fileLock struct {
	f *os.File
}

func acquireLock(path string, mode types.Mode) (*fileLock, error) {
	flags := os.O_RDONLY
	if mode != types.ModeReadOnly {
		flags = os.O_RDWR | os.O_CREATE
	}
	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return nil, err
	}
	return &fileLock{f: f}, nil
}

func (l *fileLock) release() error {
	if l == nil || l.f == nil {
		return nil
	}
	return l.f.Close()
}
