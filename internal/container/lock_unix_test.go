//go:build unix

package container

import (
	"path/filepath"
	"testing"

	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireLock_ExclusiveRejectsSecondWriter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.geoh5")

	first, err := acquireLock(p, types.ModeCreate)
	require.NoError(t, err)
	defer first.release()

	_, err = acquireLock(p, types.ModeReadWrite)
	assert.Error(t, err, "a second exclusive lock on the same file must fail while the first is held")
}

func TestAcquireLock_SharedLocksCoexist(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.geoh5")

	first, err := acquireLock(p, types.ModeCreate)
	require.NoError(t, err)
	require.NoError(t, first.release())

	a, err := acquireLock(p, types.ModeReadOnly)
	require.NoError(t, err)
	defer a.release()

	b, err := acquireLock(p, types.ModeReadOnly)
	require.NoError(t, err)
	defer b.release()
}

func TestAcquireLock_ReleaseAllowsReacquire(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.geoh5")

	first, err := acquireLock(p, types.ModeCreate)
	require.NoError(t, err)
	require.NoError(t, first.release())

	second, err := acquireLock(p, types.ModeReadWrite)
	require.NoError(t, err)
	assert.NoError(t, second.release())
}

func TestFileLock_ReleaseOnNilIsNoop(t *testing.T) {
	var l *fileLock
	assert.NoError(t, l.release())
}
