package history

import (
	"time"

	"textlab/internal/textstats"
)

// Record is one stored analysis run.
type Record struct {
	ID                string                    `json:"id"`
	FileName          string                    `json:"file_name"`
	WordCount         int                       `json:"word_count"`
	CharacterCount    int                       `json:"character_count"`
	SentenceCount     int                       `json:"sentence_count"`
	AverageWordLength float64                   `json:"average_word_length"`
	TopWords          []textstats.WordFrequency `json:"top_words"`
	CreatedAt         time.Time                 `json:"created_at"`
}
