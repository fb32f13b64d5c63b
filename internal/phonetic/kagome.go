package phonetic

import (
	"context"
	"fmt"
	"strings"

	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

// KagomeAnalyzer is an in-process MeCab replacement backed by the IPA
// dictionary.
type KagomeAnalyzer struct {
	tokenizer *tokenizer.Tokenizer
}

// NewKagomeAnalyzer loads the IPA dictionary and builds a tokenizer
func NewKagomeAnalyzer() (*KagomeAnalyzer, error) {
	t, err := tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	if err != nil {
		return nil, fmt.Errorf("failed to create kagome tokenizer: %w", err)
	}
	return &KagomeAnalyzer{tokenizer: t}, nil
}

// Parse renders the tokens of text in MeCab's default output format.
func (k *KagomeAnalyzer) Parse(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, token := range k.tokenizer.Tokenize(text) {
		b.WriteString(token.Surface)
		b.WriteByte('\t')
		b.WriteString(strings.Join(token.Features(), ","))
		b.WriteByte('\n')
	}
	b.WriteString("EOS\n")
	return b.String(), nil
}

// Name returns the analyzer name
func (k *KagomeAnalyzer) Name() string {
	return "kagome"
}
