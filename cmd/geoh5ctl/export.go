package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/workspace"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/spf13/cobra"
)

var exportStdout bool

func init() {
	cmd := newExportCmd()
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <geoh5-file> <object-uid> [output.csv]",
		Short: "Export an object's vertices and vertex-associated data to CSV",
		Long: `export writes one row per vertex of the named object: its X/Y/Z
coordinates followed by one column per VERTEX-associated data channel
attached to that object.

Example:
  geoh5ctl export project.geoh5 3fa85f64-... points.csv
  geoh5ctl export project.geoh5 3fa85f64-... --stdout > points.csv`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
}

func runExport(args []string) error {
	path := args[0]
	uidArg := args[1]
	var outputPath string
	if len(args) > 2 {
		outputPath = args[2]
	}
	if outputPath != "" && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}
	if outputPath == "" && !exportStdout {
		return fmt.Errorf("must specify output file or use --stdout")
	}

	uid, err := types.ParseUID(uidArg)
	if err != nil {
		return fmt.Errorf("invalid object uid: %w", err)
	}

	printVerbose("Opening %s\n", path)
	opts := types.DefaultOpenOptions()
	opts.Mode = types.ModeReadOnly
	w, err := workspace.OpenExisting(path, opts)
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer w.Close(types.DefaultWriteOptions())

	obj, ok := w.FindObject(uid)
	if !ok {
		return fmt.Errorf("no object with uid %s", uid.String())
	}

	var out *os.File
	if exportStdout {
		out = os.Stdout
	} else {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	return exportObjectCSV(out, obj)
}

func exportObjectCSV(out *os.File, obj *entity.ObjectBase) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	channels := vertexDataChannels(obj)
	header := []string{"X", "Y", "Z"}
	for _, d := range channels {
		header = append(header, d.Name)
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for i, v := range obj.Vertices {
		row := []string{
			strconv.FormatFloat(v.X, 'g', -1, 64),
			strconv.FormatFloat(v.Y, 'g', -1, 64),
			strconv.FormatFloat(v.Z, 'g', -1, 64),
		}
		for _, d := range channels {
			row = append(row, formatDataValueAt(d, i))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

func vertexDataChannels(obj *entity.ObjectBase) []*entity.Data {
	var out []*entity.Data
	for _, c := range obj.Children {
		if d, ok := c.(*entity.Data); ok && d.Association == types.AssociationVertex {
			out = append(out, d)
		}
	}
	return out
}

func formatDataValueAt(d *entity.Data, i int) string {
	switch values := d.Values.(type) {
	case []float64:
		if i < len(values) {
			return strconv.FormatFloat(values[i], 'g', -1, 64)
		}
	case []int32:
		if i < len(values) {
			return strconv.FormatInt(int64(values[i]), 10)
		}
	case []string:
		if i < len(values) {
			return values[i]
		}
	case []bool:
		if i < len(values) {
			return strconv.FormatBool(values[i])
		}
	}
	return ""
}
