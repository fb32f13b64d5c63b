// Package batch reads word lists for batch card generation.
package batch

import (
	"fmt"
	"os"
	"strings"
)

// WordEntry represents a word with optional translation
type WordEntry struct {
	Word        string
	Translation string
}

// HasTranslation reports whether the list already supplied an English meaning
func (e WordEntry) HasTranslation() bool {
	return e.Translation != ""
}

// ReadBatchFile reads words from a file and returns WordEntry slice
// Supports formats:
// - Japanese word only: "単語" (the model translates it)
// - With translation: "単語 = vocabulary" (translation prompt is skipped)
// Lines without a word ("= vocabulary") are ignored.
func ReadBatchFile(filename string) ([]WordEntry, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return ParseEntries(string(content)), nil
}

// ParseEntries parses word list content. Lines are trimmed, blank lines are
// ignored and CRLF line endings are tolerated.
func ParseEntries(content string) []WordEntry {
	var entries []WordEntry

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		word, translation, found := strings.Cut(line, "=")
		if !found {
			entries = append(entries, WordEntry{Word: line})
			continue
		}

		word = strings.TrimSpace(word)
		if word == "" {
			continue
		}
		entries = append(entries, WordEntry{
			Word:        word,
			Translation: strings.TrimSpace(translation),
		})
	}

	return entries
}
