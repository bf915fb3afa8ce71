package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"textlab/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var (
		limit      int
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded analyses, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			effective := limit
			if effective <= 0 {
				effective = cfg.History.Limit
			}
			return ctx.withHistory(func(store *history.Store) error {
				records, err := store.Recent(cmd.Context(), effective)
				if err != nil {
					return err
				}
				if jsonOutput {
					if records == nil {
						records = []history.Record{}
					}
					return writeJSON(cmd, records)
				}
				renderHistory(cmd, records)
				return nil
			})
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of records to list (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")

	cmd.AddCommand(newHistoryClearCommand(ctx))
	return cmd
}

func newHistoryClearCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all recorded analyses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				removed, err := store.Clear(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %d record(s)\n", removed)
				return nil
			})
		},
	}
}

func renderHistory(cmd *cobra.Command, records []history.Record) {
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No analyses recorded yet")
		return
	}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		words := make([]string, 0, len(rec.TopWords))
		for _, wf := range rec.TopWords {
			words = append(words, fmt.Sprintf("%s(%d)", wf.Word, wf.Count))
		}
		rows = append(rows, []string{
			rec.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			rec.FileName,
			formatCount(rec.WordCount),
			formatCount(rec.SentenceCount),
			formatAverage(rec.AverageWordLength),
			strings.Join(words, " "),
		})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"When", "File", "Words", "Sentences", "Avg Len", "Top Words"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignLeft},
	))
}
