package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	ansiBlue  = "\x1b[34m"
	ansiReset = "\x1b[0m"
)

var labelCaser = cases.Title(language.English)

// displayLabel turns a snake_case field name into a human heading,
// e.g. "word_count" -> "Word Count".
func displayLabel(field string) string {
	return labelCaser.String(strings.ReplaceAll(field, "_", " "))
}

func formatCount(n int) string {
	return strconv.Itoa(n)
}

func formatAverage(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func shouldColorize(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printHeading(cmd *cobra.Command, heading string) {
	out := cmd.OutOrStdout()
	if shouldColorize(out) {
		heading = ansiBlue + heading + ansiReset
	}
	fmt.Fprintln(out, heading)
}

// readSource returns the content for a command that accepts an optional file
// argument, falling back to stdin when no file is named. The returned label is
// the file name, or "stdin".
func readSource(cmd *cobra.Command, ctx *commandContext, args []string) (string, string, error) {
	if len(args) > 0 {
		name := strings.TrimSpace(args[0])
		ws, err := ctx.openWorkspace()
		if err != nil {
			return "", "", err
		}
		content, err := ws.ReadFile(name)
		if err != nil {
			return "", "", err
		}
		return content, name, nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), "stdin", nil
}
