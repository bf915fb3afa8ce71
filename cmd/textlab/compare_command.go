package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"textlab/internal/textutil"
)

type compareReport struct {
	Left       string  `json:"left"`
	Right      string  `json:"right"`
	Similarity float64 `json:"similarity"`
	LeftTerms  int     `json:"left_terms"`
	RightTerms int     `json:"right_terms"`
}

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "compare <file> <file>",
		Short: "Score lexical similarity between two input files",
		Long: `Compare tokenizes both files, builds term-frequency fingerprints, and
reports their cosine similarity in the range [0, 1].`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := ctx.openWorkspace()
			if err != nil {
				return err
			}
			left, err := ws.ReadFile(args[0])
			if err != nil {
				return err
			}
			right, err := ws.ReadFile(args[1])
			if err != nil {
				return err
			}

			leftPrint := textutil.NewFingerprint(left)
			rightPrint := textutil.NewFingerprint(right)
			report := compareReport{
				Left:       args[0],
				Right:      args[1],
				Similarity: textutil.CosineSimilarity(leftPrint, rightPrint),
				LeftTerms:  leftPrint.TermCount(),
				RightTerms: rightPrint.TermCount(),
			}

			if jsonOutput {
				return writeJSON(cmd, report)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s vs %s: similarity %s (%d vs %d distinct terms)\n",
				report.Left, report.Right, formatAverage(report.Similarity), report.LeftTerms, report.RightTerms)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit JSON instead of plain text")
	return cmd
}
