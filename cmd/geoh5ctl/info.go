package main

import (
	"fmt"
	"os"

	"github.com/geoh5kit/geoh5kit/internal/workspace"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <geoh5-file>",
		Short: "Report file size and entity graph metadata",
		Long: `info opens a geoh5 project file read-only and reports basic
metadata: file size, project attributes, and entity counts by class.

Example:
  geoh5ctl info project.geoh5
  geoh5ctl info project.geoh5 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

type fileInfo struct {
	Path        string `json:"path"`
	SizeBytes   int64  `json:"size_bytes"`
	GroupCount  int    `json:"group_count"`
	ObjectCount int    `json:"object_count"`
	DataCount   int    `json:"data_count"`
	TypeCount   int    `json:"type_count"`
}

func runInfo(path string) error {
	printVerbose("Opening %s\n", path)

	opts := types.DefaultOpenOptions()
	opts.Mode = types.ModeReadOnly
	w, err := workspace.OpenExisting(path, opts)
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer w.Close(types.DefaultWriteOptions())

	stats := w.Stats()
	info := fileInfo{
		Path:        path,
		GroupCount:  stats.GroupCount,
		ObjectCount: stats.ObjectCount,
		DataCount:   stats.DataCount,
		TypeCount:   stats.TypeCount,
	}
	if stat, err := os.Stat(path); err == nil {
		info.SizeBytes = stat.Size()
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nProject file: %s\n", info.Path)
	printInfo("  Size: %s\n", humanSize(info.SizeBytes))
	printInfo("  Groups:  %d\n", info.GroupCount)
	printInfo("  Objects: %d\n", info.ObjectCount)
	printInfo("  Data:    %d\n", info.DataCount)
	printInfo("  Types:   %d\n", info.TypeCount)
	return nil
}

func humanSize(size int64) string {
	switch {
	case size < 1024:
		return fmt.Sprintf("%d bytes", size)
	case size < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(size)/1024)
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/(1024*1024))
	}
}
