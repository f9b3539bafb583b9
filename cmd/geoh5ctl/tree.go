package main

import (
	"fmt"
	"strings"

	"github.com/geoh5kit/geoh5kit/internal/entity"
	"github.com/geoh5kit/geoh5kit/internal/workspace"
	"github.com/geoh5kit/geoh5kit/pkg/types"
	"github.com/spf13/cobra"
)

var treeDepth int

func init() {
	cmd := newTreeCmd()
	cmd.Flags().IntVar(&treeDepth, "depth", 0, "Maximum depth (0 = unlimited)")
	rootCmd.AddCommand(cmd)
}

func newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree <geoh5-file>",
		Short: "Display the entity graph as a tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTree(args[0])
		},
	}
}

func runTree(path string) error {
	printVerbose("Opening %s\n", path)
	opts := types.DefaultOpenOptions()
	opts.Mode = types.ModeReadOnly
	w, err := workspace.OpenExisting(path, opts)
	if err != nil {
		return fmt.Errorf("failed to open workspace: %w", err)
	}
	defer w.Close(types.DefaultWriteOptions())

	root := w.Root()
	if root == nil {
		return fmt.Errorf("workspace has no root group")
	}
	printTreeNode(root, 0, 1)
	return nil
}

func printTreeNode(n entity.Node, depth int, indent int) {
	if treeDepth > 0 && depth > treeDepth {
		return
	}
	name := entityLabel(n)
	fmt.Printf("%s%s\n", strings.Repeat("  ", indent-1), name)
	for _, c := range childrenOfNode(n) {
		printTreeNode(c, depth+1, indent+1)
	}
}

func entityLabel(n entity.Node) string {
	switch e := n.(type) {
	case *entity.Group:
		return fmt.Sprintf("%s [Group %s]", e.Name, e.UID.String())
	case *entity.ObjectBase:
		return fmt.Sprintf("%s [Object %s]", e.Name, e.UID.String())
	case *entity.Data:
		return fmt.Sprintf("%s [Data %s]", e.Name, e.UID.String())
	default:
		return n.EntityUID().String()
	}
}

func childrenOfNode(n entity.Node) []entity.Node {
	switch e := n.(type) {
	case *entity.Group:
		return e.Children
	case *entity.ObjectBase:
		return e.Children
	default:
		return nil
	}
}
