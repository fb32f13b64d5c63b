package anki

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath string // Output text file path
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath: "anki_cards.txt",
	}
}

// Generator collects cards and writes Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []*Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]*Card, 0),
	}
}

// AddCard adds a card to the collection. Nil cards are ignored.
func (g *Generator) AddCard(card *Card) {
	if card == nil {
		return
	}
	g.cards = append(g.cards, card)
}

// AddResults adds the card of every successful result, keeping their order.
func (g *Generator) AddResults(results []Result) {
	for _, r := range results {
		if r.OK() {
			g.AddCard(r.Card)
		}
	}
}

// Render joins the formatted cards with newlines. There is no header and
// no trailing newline.
func (g *Generator) Render() string {
	lines := make([]string, len(g.cards))
	for i, card := range g.cards {
		lines[i] = card.Format()
	}
	return strings.Join(lines, "\n")
}

// WriteFile writes the rendered cards to the output path, replacing any
// previous content.
func (g *Generator) WriteFile() error {
	dir := filepath.Dir(g.options.OutputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	if err := os.WriteFile(g.options.OutputPath, []byte(g.Render()), 0644); err != nil {
		return fmt.Errorf("failed to write cards file: %w", err)
	}
	return nil
}

// OutputPath returns the file WriteFile writes to
func (g *Generator) OutputPath() string {
	return g.options.OutputPath
}

// Stats returns the number of collected cards
func (g *Generator) Stats() int {
	return len(g.cards)
}
