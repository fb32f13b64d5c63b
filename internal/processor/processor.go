package processor

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"codeberg.org/snonux/tangocards/internal/anki"
	"codeberg.org/snonux/tangocards/internal/archive"
	"codeberg.org/snonux/tangocards/internal/batch"
	"codeberg.org/snonux/tangocards/internal/config"
	"codeberg.org/snonux/tangocards/internal/llm"
	"codeberg.org/snonux/tangocards/internal/phonetic"
	"codeberg.org/snonux/tangocards/internal/translation"
)

// Processor handles the main word processing logic
type Processor struct {
	config     *config.Config
	translator *translation.Translator
	analyzer   phonetic.Analyzer
	out        io.Writer
	outMu      sync.Mutex
}

// NewProcessor creates a new word processor around the given collaborators
func NewProcessor(cfg *config.Config, model llm.Model, analyzer phonetic.Analyzer) *Processor {
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Processor{
		config:     cfg,
		translator: translation.NewTranslator(model, cfg.Model, translation.NewResponseCache(0), limiter),
		analyzer:   analyzer,
		out:        os.Stdout,
	}
}

// FromConfig builds the model backend and analyzer named in cfg
func FromConfig(ctx context.Context, cfg *config.Config) (*Processor, error) {
	model, err := llm.NewModel(ctx, cfg.LLM())
	if err != nil {
		return nil, err
	}

	analyzer, err := phonetic.NewAnalyzer(cfg.Analyzer)
	if err != nil {
		return nil, err
	}

	return NewProcessor(cfg, model, analyzer), nil
}

// SetOutput redirects progress and summary output, stdout by default
func (p *Processor) SetOutput(w io.Writer) {
	p.out = w
}

// GenerateCard builds the card for one word. Every failure is reported in
// the result; nothing here aborts other words.
func (p *Processor) GenerateCard(ctx context.Context, entry batch.WordEntry) anki.Result {
	if err := phonetic.ValidateJapaneseText(entry.Word); err != nil {
		return anki.Result{
			Word:   entry.Word,
			Status: anki.StatusSkipped,
			Err:    fmt.Errorf("invalid word '%s': %w", entry.Word, err),
		}
	}

	if p.config.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.config.RequestTimeout)
		defer cancel()
	}

	translated := entry.Translation
	if !entry.HasTranslation() {
		var err error
		translated, err = p.translator.TranslateWord(ctx, entry.Word)
		if err != nil {
			return anki.Result{Word: entry.Word, Status: anki.StatusFailed, Err: err}
		}
	}

	example, err := p.translator.ExampleSentence(ctx, entry.Word)
	if err != nil {
		return anki.Result{Word: entry.Word, Status: anki.StatusFailed, Err: err}
	}

	return anki.NewCard(ctx, p.analyzer, anki.CardParams{
		Vocab:       entry.Word,
		Example:     example,
		Translation: translated,
	})
}

// ProcessBatch generates cards for every word in the configured batch file
// and writes them, in input order, to the configured output file.
func (p *Processor) ProcessBatch(ctx context.Context) (*Summary, error) {
	entries, err := batch.ReadBatchFile(p.config.BatchFile)
	if err != nil {
		return nil, err
	}

	logger := slog.With("run", uuid.NewString())
	logger.Info("batch started",
		"words", len(entries),
		"provider", p.config.Provider,
		"model", p.config.Model,
		"analyzer", p.analyzer.Name(),
		"concurrency", p.config.Concurrency)

	results := p.generateAll(ctx, logger, entries)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch interrupted, %s left untouched: %w", p.config.OutputFile, err)
	}

	summary := &Summary{}
	for _, r := range results {
		summary.Add(r)
	}

	if p.config.Archive {
		archived, err := archive.ArchiveFile(p.config.OutputFile)
		if err != nil {
			return summary, err
		}
		summary.ArchivePath = archived
	}

	generator := anki.NewGenerator(&anki.GeneratorOptions{OutputPath: p.config.OutputFile})
	generator.AddResults(results)
	if err := generator.WriteFile(); err != nil {
		return summary, err
	}
	summary.OutputPath = generator.OutputPath()
	summary.Written = generator.Stats()

	logger.Info("batch finished",
		"written", summary.Written,
		"skipped", summary.Skipped,
		"malformed", summary.Malformed,
		"failed", summary.Failed,
		"cached_answers", p.translator.CachedAnswers())
	summary.Print(p.out)

	return summary, nil
}

// generateAll runs one goroutine per entry and returns the results indexed
// like entries.
func (p *Processor) generateAll(ctx context.Context, logger *slog.Logger, entries []batch.WordEntry) []anki.Result {
	results := make([]anki.Result, len(entries))

	eg, egCtx := errgroup.WithContext(ctx)
	if p.config.Concurrency > 0 {
		eg.SetLimit(p.config.Concurrency)
	}

	for i, entry := range entries {
		eg.Go(func() error {
			r := p.GenerateCard(egCtx, entry)
			r.Index = i
			results[i] = r

			if r.OK() {
				p.printf("Generated card %d/%d: %s\n", i+1, len(entries), entry.Word)
			} else {
				logger.Warn("card not generated",
					"index", i,
					"word", entry.Word,
					"status", r.Status.String(),
					"error", r.Err)
			}
			return nil
		})
	}

	// Tasks report failures through their results.
	_ = eg.Wait()
	return results
}

func (p *Processor) printf(format string, args ...any) {
	p.outMu.Lock()
	defer p.outMu.Unlock()
	fmt.Fprintf(p.out, format, args...)
}

// ProcessSingleWord generates one card and prints its import line
func (p *Processor) ProcessSingleWord(ctx context.Context, word string) error {
	r := p.GenerateCard(ctx, batch.WordEntry{Word: word})
	if !r.OK() {
		if r.Err == nil {
			return fmt.Errorf("no card generated for '%s'", word)
		}
		return r.Err
	}

	fmt.Fprintln(p.out, r.Card.Format())
	return nil
}
