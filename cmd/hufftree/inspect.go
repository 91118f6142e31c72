package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chronos-tachyon/hufftree"
)

var inspectFormat string

var inspectCmd = &cobra.Command{
	Use:   "inspect [artifact]",
	Short: "Show the code table stored in an artifact",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := hufftree.ParseDescriptorFormat(inspectFormat)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		tree, payload, err := hufftree.ReadArtifact(data, format)
		if err != nil {
			return fmt.Errorf("inspect %s: %w", args[0], err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d symbols, %d payload bits\n", args[0], tree.Len(), len(payload))
		_, err = hufftree.NewCodeTable(tree).Dump(out)
		return err
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of hufftree",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), progName, "version 0.1.0")
	},
}

func init() {
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", hufftree.FormatSplit.String(), "Tree descriptor format: split|interleaved")
}
