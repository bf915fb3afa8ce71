package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newMergeCommand(ctx *commandContext) *cobra.Command {
	var outputName string

	cmd := &cobra.Command{
		Use:   "merge --output <name> <file>...",
		Short: "Concatenate input files with per-file headers",
		Long: `Merge reads each named file from the input directory, prefixes its
content with a "--- <name> ---" header, and writes the combined document to
the output directory.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.openWorkspace()
			if err != nil {
				return err
			}
			if err := ws.MergeFiles(args, outputName); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Merged %d file(s) into %s\n", len(args), outputName)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputName, "output", "o", "merged_files.txt", "Name of the merged file in the output directory")
	return cmd
}
