// Package profile summarizes the shape of text and CSV files: line/word/
// character totals for plain text, and row/column/missing-value counts for
// tabular data.
package profile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"textlab/internal/services"
)

// TextProfile describes a plain-text file.
type TextProfile struct {
	Lines               int     `json:"lines"`
	Words               int     `json:"words"`
	Characters          int     `json:"characters"`
	AverageWordsPerLine float64 `json:"average_words_per_line"`
}

// CSVProfile describes a tabular file. Rows excludes the header row.
type CSVProfile struct {
	Rows    int            `json:"rows"`
	Columns int            `json:"columns"`
	Names   []string       `json:"column_names"`
	Missing map[string]int `json:"missing_values"`
}

// Text profiles raw text content. Lines are separated by '\n'; any string has
// at least one line, so AverageWordsPerLine is words divided by the line count.
func Text(content string) TextProfile {
	lines := strings.Split(content, "\n")
	words := strings.Fields(content)

	return TextProfile{
		Lines:               len(lines),
		Words:               len(words),
		Characters:          utf8.RuneCountInString(content),
		AverageWordsPerLine: float64(len(words)) / float64(len(lines)),
	}
}

// CSV profiles tabular content. The first record is the header; empty cells
// count as missing values for their column. Ragged rows are a validation error.
func CSV(r io.Reader) (CSVProfile, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return CSVProfile{}, services.Wrap(services.ErrValidation, "profile", "csv", "empty input", nil)
	}
	if err != nil {
		return CSVProfile{}, services.Wrap(services.ErrValidation, "profile", "csv", "read header", err)
	}

	result := CSVProfile{
		Columns: len(header),
		Names:   header,
		Missing: make(map[string]int, len(header)),
	}
	for _, name := range header {
		result.Missing[name] = 0
	}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return CSVProfile{}, services.Wrap(services.ErrValidation, "profile", "csv",
				fmt.Sprintf("read row %d", result.Rows+2), err)
		}
		result.Rows++
		for i, cell := range record {
			if strings.TrimSpace(cell) == "" {
				result.Missing[header[i]]++
			}
		}
	}

	return result, nil
}
