package writer

import (
	"context"
	"log/slog"
	"os"
	"os/exec"
	"time"

	"github.com/geoh5kit/geoh5kit/pkg/types"
)

// RepackResult reports the outcome of a best-effort h5repack invocation,
// grounded on the teacher's EngineResult shape (internal/repair/engine.go)
// generalized from a multi-step repair log to a single external-tool
// call.
type RepackResult struct {
	Applied  bool
	Skipped  bool
	Duration time.Duration
	Err      error
}

// Repack invokes h5repack (or opts.RepackPath) on path in place,
// tolerating its absence per spec §6.3 ("absence of the tool is
// tolerated, best-effort"). h5repack writes to path+".repack.tmp", which
// is renamed over the original only on success. Failures are logged and
// swallowed, leaving the original file untouched.
func Repack(ctx context.Context, path string, opts types.WriteOptions, logger *slog.Logger) RepackResult {
	if !opts.Repack {
		return RepackResult{Skipped: true}
	}
	if logger == nil {
		logger = slog.Default()
	}

	toolPath := opts.RepackPath
	if toolPath == "" {
		toolPath = "h5repack"
	}
	if _, err := exec.LookPath(toolPath); err != nil {
		logger.Warn("repack tool not found, skipping", "tool", toolPath)
		return RepackResult{Skipped: true, Err: err}
	}

	start := time.Now()
	cmd := exec.CommandContext(ctx, toolPath, "-i", path, "-o", path+".repack.tmp")
	if err := cmd.Run(); err != nil {
		logger.Warn("repack failed, original file preserved", "path", path, "error", err)
		return RepackResult{Duration: time.Since(start), Err: types.ErrRepackFailed}
	}

	if err := os.Rename(path+".repack.tmp", path); err != nil {
		logger.Warn("repack post-move failed, original file preserved", "path", path, "error", err)
		return RepackResult{Duration: time.Since(start), Err: types.ErrRepackFailed}
	}

	return RepackResult{Applied: true, Duration: time.Since(start)}
}
