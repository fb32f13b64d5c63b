package phonetic

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ErrMalformedParse is returned when analyzer output does not carry a
// reading field.
var ErrMalformedParse = errors.New("malformed analyzer output")

// Analyzer tokenizes Japanese text into a MeCab-format parse.
type Analyzer interface {
	// Parse returns one "surface\tfeatures" line per token followed by EOS.
	Parse(ctx context.Context, text string) (string, error)

	// Name returns the analyzer name
	Name() string
}

// NewAnalyzer creates the analyzer registered under name.
func NewAnalyzer(name string) (Analyzer, error) {
	switch name {
	case "", "kagome":
		return NewKagomeAnalyzer()
	case "mecab":
		return NewMecabAnalyzer("")
	default:
		return nil, fmt.Errorf("unknown analyzer: %s", name)
	}
}

// ExtractReading returns the second-to-last comma-delimited feature of the
// first token in parse. With the IPA dictionary schema that field is the
// katakana reading.
func ExtractReading(parse string) (string, error) {
	line := firstTokenLine(parse)
	if line == "" {
		return "", fmt.Errorf("%w: no tokens in %q", ErrMalformedParse, parse)
	}

	if _, features, ok := strings.Cut(line, "\t"); ok {
		line = features
	}

	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return "", fmt.Errorf("%w: expected at least 2 fields, got %d in %q", ErrMalformedParse, len(fields), line)
	}

	reading := strings.TrimSpace(fields[len(fields)-2])
	if reading == "" || reading == "*" {
		return "", fmt.Errorf("%w: no reading in %q", ErrMalformedParse, line)
	}
	return reading, nil
}

// Reading parses text with a and extracts its reading.
func Reading(ctx context.Context, a Analyzer, text string) (string, error) {
	parse, err := a.Parse(ctx, text)
	if err != nil {
		return "", fmt.Errorf("%s analyzer failed: %w", a.Name(), err)
	}
	return ExtractReading(parse)
}

func firstTokenLine(parse string) string {
	for _, line := range strings.Split(parse, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" || line == "EOS" {
			continue
		}
		return line
	}
	return ""
}

// ValidateJapaneseText checks that text contains at least one kana or kanji
func ValidateJapaneseText(text string) error {
	if text == "" {
		return fmt.Errorf("text cannot be empty")
	}

	for _, r := range text {
		if unicode.In(r, unicode.Hiragana, unicode.Katakana, unicode.Han) {
			return nil
		}
	}

	return fmt.Errorf("text must contain Japanese characters")
}
