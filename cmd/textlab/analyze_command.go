package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"textlab/internal/history"
	"textlab/internal/logging"
	"textlab/internal/textstats"
)

func newAnalyzeCommand(ctx *commandContext) *cobra.Command {
	var (
		topWords   int
		jsonOutput bool
		noRecord   bool
	)

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Compute word, character, and sentence statistics",
		Long: `Analyze computes word count, character count, sentence count, average
word length, and the most common words for a file in the input directory,
or for stdin when no file is named.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			content, source, err := readSource(cmd, ctx, args)
			if err != nil {
				return err
			}

			top := topWords
			if top <= 0 {
				top = cfg.Analysis.TopWords
			}
			result := textstats.AnalyzeTop(content, top)

			if cfg.History.Enabled && !noRecord && source != "stdin" {
				if err := recordAnalysis(cmd.Context(), ctx, source, result); err != nil {
					logger, lerr := ctx.ensureLogger()
					if lerr == nil {
						logger.Warn("history record failed",
							logging.String("file", source),
							logging.Error(err))
					}
				}
			}

			if jsonOutput {
				return writeJSON(cmd, result)
			}
			renderAnalysis(cmd, source, result)
			return nil
		},
	}

	cmd.Flags().IntVar(&topWords, "top", 0, "Number of most common words to report (default from config)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of a table")
	cmd.Flags().BoolVar(&noRecord, "no-record", false, "Skip recording this run in the history database")
	return cmd
}

func recordAnalysis(runCtx context.Context, ctx *commandContext, fileName string, result textstats.Result) error {
	return ctx.withHistory(func(store *history.Store) error {
		_, err := store.Add(runCtx, fileName, result)
		return err
	})
}

func renderAnalysis(cmd *cobra.Command, source string, result textstats.Result) {
	printHeading(cmd, fmt.Sprintf("Analysis of %s", source))

	rows := [][]string{
		{displayLabel("word_count"), formatCount(result.WordCount)},
		{displayLabel("character_count"), formatCount(result.CharacterCount)},
		{displayLabel("sentence_count"), formatCount(result.SentenceCount)},
		{displayLabel("average_word_length"), formatAverage(result.AverageWordLength)},
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Metric", "Value"},
		rows,
		[]columnAlignment{alignLeft, alignRight},
	))

	if len(result.MostCommonWords) == 0 {
		return
	}
	wordRows := make([][]string, 0, len(result.MostCommonWords))
	for _, wf := range result.MostCommonWords {
		wordRows = append(wordRows, []string{wf.Word, formatCount(wf.Count)})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Word", "Count"},
		wordRows,
		[]columnAlignment{alignLeft, alignRight},
	))
}
