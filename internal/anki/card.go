package anki

import (
	"context"
	"errors"
	"fmt"

	"codeberg.org/snonux/tangocards/internal/kana"
	"codeberg.org/snonux/tangocards/internal/phonetic"
)

// FieldSeparator splits front and back in a formatted card. It is not
// escaped inside the fields.
const FieldSeparator = ";"

// LineBreak is the HTML line break Anki renders inside a field.
const LineBreak = "<br>"

// ErrInsufficientInput is returned when a card lacks its vocabulary word
// or translation.
var ErrInsufficientInput = errors.New("vocab and translation are required")

// Card is a finished flashcard. The zero value is not useful; cards are
// created by NewCard and never change afterwards.
type Card struct {
	front string
	back  string
}

// Front returns the prompt side: the word and its example sentence.
func (c *Card) Front() string {
	return c.front
}

// Back returns the answer side: the word with its reading and the translation.
func (c *Card) Back() string {
	return c.back
}

// Format renders the card as a single Anki import record.
func (c *Card) Format() string {
	return c.front + FieldSeparator + c.back
}

// CardParams holds the parts of a card before it is built.
type CardParams struct {
	Vocab       string // Required
	Example     string // Optional example sentence
	Translation string // Required
}

// WithVocab appends s to the vocabulary word.
func (p CardParams) WithVocab(s string) CardParams {
	p.Vocab += s
	return p
}

// WithExample appends s to the example sentence.
func (p CardParams) WithExample(s string) CardParams {
	p.Example += s
	return p
}

// WithTranslation appends s to the translation.
func (p CardParams) WithTranslation(s string) CardParams {
	p.Translation += s
	return p
}

// NewCard validates params, looks up the reading of the vocabulary word with
// analyzer and assembles the card. Missing input is reported as
// StatusSkipped without calling the analyzer.
func NewCard(ctx context.Context, analyzer phonetic.Analyzer, params CardParams) Result {
	if params.Vocab == "" || params.Translation == "" {
		return Result{Word: params.Vocab, Status: StatusSkipped, Err: ErrInsufficientInput}
	}

	reading, err := phonetic.Reading(ctx, analyzer, params.Vocab)
	if err != nil {
		status := StatusFailed
		if errors.Is(err, phonetic.ErrMalformedParse) {
			status = StatusMalformed
		}
		return Result{
			Word:   params.Vocab,
			Status: status,
			Err:    fmt.Errorf("reading for %q: %w", params.Vocab, err),
		}
	}

	card := &Card{
		front: fmt.Sprintf("「%s」%s%s", params.Vocab, LineBreak, params.Example),
		back: fmt.Sprintf("<ruby>%s<rt>%s</rt></ruby>%s%s",
			params.Vocab, kana.KatakanaToHiragana(reading), LineBreak, params.Translation),
	}
	return Result{Word: params.Vocab, Card: card, Status: StatusOK}
}
