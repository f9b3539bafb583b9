package writer

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestRepack_SkipsWhenDisabled(t *testing.T) {
	result := Repack(context.Background(), "unused.geoh5", types.WriteOptions{Repack: false}, nil)

	assert.True(t, result.Skipped)
	assert.False(t, result.Applied)
	assert.NoError(t, result.Err)
}

func TestRepack_SkipsWhenToolMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.geoh5")

	result := Repack(context.Background(), p, types.WriteOptions{Repack: true, RepackPath: "geoh5kit-nonexistent-repack-tool"}, nil)

	assert.True(t, result.Skipped)
	assert.False(t, result.Applied)
	assert.Error(t, result.Err, "a missing h5repack binary must be tolerated, not fatal")
}
