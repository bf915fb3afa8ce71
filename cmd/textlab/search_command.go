package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textlab/internal/textstats"
)

type searchReport struct {
	Pattern string   `json:"pattern"`
	Source  string   `json:"source"`
	Count   int      `json:"count"`
	Matches []string `json:"matches"`
}

func newSearchCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "search <pattern> [file]",
		Short: "Find regex matches in a file or stdin",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			content, source, err := readSource(cmd, ctx, args[1:])
			if err != nil {
				return err
			}

			matches, err := textstats.Search(content, pattern)
			if err != nil {
				return err
			}

			if jsonOutput {
				report := searchReport{Pattern: pattern, Source: source, Count: len(matches), Matches: matches}
				if report.Matches == nil {
					report.Matches = []string{}
				}
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%d match(es) for %q in %s\n", len(matches), pattern, source)
			for _, m := range matches {
				fmt.Fprintln(out, m)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of plain text")
	return cmd
}
