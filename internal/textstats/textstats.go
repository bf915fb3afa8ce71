package textstats

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// DefaultTopWords is the number of most-frequent words reported by Analyze.
const DefaultTopWords = 5

// sentencePattern matches runs of sentence-terminating punctuation.
var sentencePattern = regexp.MustCompile(`[.!?]+`)

// WordFrequency pairs a word with its occurrence count.
type WordFrequency struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Result holds the statistics computed for one text.
type Result struct {
	WordCount         int             `json:"word_count"`
	CharacterCount    int             `json:"character_count"`
	SentenceCount     int             `json:"sentence_count"`
	AverageWordLength float64         `json:"average_word_length"`
	MostCommonWords   []WordFrequency `json:"most_common_words"`
}

// Analyze computes statistics for text with the default top-word limit.
func Analyze(text string) Result {
	return AnalyzeTop(text, DefaultTopWords)
}

// AnalyzeTop computes statistics for text, reporting at most top frequent
// words. A non-positive top yields no frequency entries.
func AnalyzeTop(text string, top int) Result {
	words := strings.Fields(text)

	result := Result{
		WordCount:       len(words),
		CharacterCount:  utf8.RuneCountInString(text),
		SentenceCount:   len(sentencePattern.Split(text, -1)),
		MostCommonWords: TopWords(words, top),
	}

	if len(words) > 0 {
		var total int
		for _, word := range words {
			total += utf8.RuneCountInString(word)
		}
		result.AverageWordLength = float64(total) / float64(len(words))
	}

	return result
}

// TopWords returns up to top (word, count) pairs ordered by descending count.
// Ties keep the order of each word's first occurrence, so output is
// deterministic for a given input.
func TopWords(words []string, top int) []WordFrequency {
	if top <= 0 || len(words) == 0 {
		return nil
	}

	counts := make(map[string]int, len(words))
	firstSeen := make(map[string]int, len(words))
	order := make([]string, 0, len(words))
	for i, word := range words {
		if _, ok := counts[word]; !ok {
			firstSeen[word] = i
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return firstSeen[order[i]] < firstSeen[order[j]]
	})

	if len(order) > top {
		order = order[:top]
	}
	frequencies := make([]WordFrequency, len(order))
	for i, word := range order {
		frequencies[i] = WordFrequency{Word: word, Count: counts[word]}
	}
	return frequencies
}
