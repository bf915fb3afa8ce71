package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textlab/internal/profile"
)

func newProfileCommand(ctx *commandContext) *cobra.Command {
	var (
		asCSV      bool
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "profile <file>",
		Short: "Summarize a text or CSV file",
		Long: `Profile reports line/word/character totals for text files, or row,
column, and missing-value counts for CSV files. Files ending in .csv are
profiled as CSV unless overridden.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			ws, err := ctx.openWorkspace()
			if err != nil {
				return err
			}
			content, err := ws.ReadFile(name)
			if err != nil {
				return err
			}

			if asCSV || strings.HasSuffix(strings.ToLower(name), ".csv") {
				report, err := profile.CSV(strings.NewReader(content))
				if err != nil {
					return err
				}
				if jsonOutput {
					return writeJSON(cmd, report)
				}
				renderCSVProfile(cmd, name, report)
				return nil
			}

			report := profile.Text(content)
			if jsonOutput {
				return writeJSON(cmd, report)
			}
			renderTextProfile(cmd, name, report)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "Force CSV profiling regardless of file extension")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	return cmd
}

func renderTextProfile(cmd *cobra.Command, name string, report profile.TextProfile) {
	printHeading(cmd, fmt.Sprintf("Profile of %s", name))
	rows := [][]string{
		{displayLabel("lines"), formatCount(report.Lines)},
		{displayLabel("words"), formatCount(report.Words)},
		{displayLabel("characters"), formatCount(report.Characters)},
		{displayLabel("average_words_per_line"), formatAverage(report.AverageWordsPerLine)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))
}

func renderCSVProfile(cmd *cobra.Command, name string, report profile.CSVProfile) {
	printHeading(cmd, fmt.Sprintf("Profile of %s", name))
	rows := [][]string{
		{displayLabel("rows"), formatCount(report.Rows)},
		{displayLabel("columns"), formatCount(report.Columns)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))

	missingRows := make([][]string, 0, len(report.Names))
	for _, col := range report.Names {
		missingRows = append(missingRows, []string{col, formatCount(report.Missing[col])})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Column", "Missing"},
		missingRows,
		[]columnAlignment{alignLeft, alignRight},
	))
}
