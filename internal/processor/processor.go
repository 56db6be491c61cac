package processor

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"codeberg.org/snonux/mdglot/internal/output"
	"codeberg.org/snonux/mdglot/internal/scan"
	"codeberg.org/snonux/mdglot/internal/translation"
)

// Config carries everything the pipeline needs for one run. It is passed
// in explicitly at construction; nothing is read from globals.
type Config struct {
	SourceRoot string
	OutputRoot string
	Model      string

	// Force re-translates every document regardless of staleness.
	Force bool
	// DryRun classifies documents without calling the provider or
	// writing any files.
	DryRun bool
	// Pace is the delay inserted between documents to stay under the
	// provider's request-rate ceiling. Zero disables pacing (tests).
	Pace time.Duration
}

// Processor drives the batch translation pipeline
type Processor struct {
	config       Config
	provider     translation.Provider
	materializer *output.Materializer
}

// New creates a processor for one run
func New(config Config, provider translation.Provider) *Processor {
	return &Processor{
		config:       config,
		provider:     provider,
		materializer: output.NewMaterializer(config.SourceRoot, config.OutputRoot, config.Model),
	}
}

// Run discovers all documents under the source root and processes them
// sequentially in discovery order. A missing or unreadable source root is
// the only fatal condition and aborts before any document is touched;
// every per-document problem is logged, counted as failed and the batch
// moves on.
func (p *Processor) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats

	if _, err := os.Stat(p.config.SourceRoot); err != nil {
		return stats, fmt.Errorf("source directory not accessible: %w", err)
	}

	docs := scan.Discover(p.config.SourceRoot)
	stats.Total = len(docs)

	for i, doc := range docs {
		fmt.Printf("\nProcessing %d/%d: %s\n", i+1, len(docs), doc)

		p.record(&stats, p.processDocument(ctx, doc))

		if p.config.Pace > 0 && !p.config.DryRun && i < len(docs)-1 {
			time.Sleep(p.config.Pace)
		}
	}

	p.printSummary(&stats)
	return stats, nil
}

// RunSingle processes exactly one document through the same per-item
// state machine as a batch run.
func (p *Processor) RunSingle(ctx context.Context, doc string) (RunStats, error) {
	var stats RunStats

	if _, err := os.Stat(doc); err != nil {
		return stats, fmt.Errorf("document not accessible: %w", err)
	}
	if !scan.IsDocument(doc) {
		return stats, fmt.Errorf("unsupported document type: %s", doc)
	}

	stats.Total = 1
	fmt.Printf("\nProcessing: %s\n", doc)
	p.record(&stats, p.processDocument(ctx, doc))

	p.printSummary(&stats)
	return stats, nil
}

func (p *Processor) record(stats *RunStats, outcome Outcome) {
	switch outcome {
	case OutcomeSkipped:
		stats.Skipped++
	case OutcomeSaved:
		stats.Translated++
	case OutcomeFailed:
		stats.Failed++
	}
}

// processDocument takes one document through the per-item state machine:
// staleness check (bypassed by force), read, translate, persist. It never
// returns an error; failures collapse into OutcomeFailed so one bad
// document cannot abort the batch.
func (p *Processor) processDocument(ctx context.Context, doc string) Outcome {
	if !p.config.Force && p.materializer.IsCurrent(doc) {
		fmt.Printf("  Skipping - translation is up to date\n")
		return OutcomeSkipped
	}

	if p.config.DryRun {
		fmt.Printf("  Would translate to %s\n", p.materializer.Path(doc))
		return OutcomeSaved
	}

	content, err := os.ReadFile(doc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", doc, err)
		return OutcomeFailed
	}
	if strings.TrimSpace(string(content)) == "" {
		fmt.Fprintf(os.Stderr, "Error: %s has no translatable content\n", doc)
		return OutcomeFailed
	}

	fmt.Printf("  Translating with %s (%s)...\n", p.provider.Name(), p.config.Model)
	translated, err := p.provider.Translate(ctx, string(content))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error translating %s: %v\n", doc, err)
		return OutcomeFailed
	}
	if translated == "" {
		// Empty content means "do not persist", never "write an empty file".
		fmt.Fprintf(os.Stderr, "Error translating %s: provider returned no content\n", doc)
		return OutcomeFailed
	}

	outPath, err := p.materializer.Write(doc, translated)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", doc, err)
		return OutcomeFailed
	}

	fmt.Printf("  Saved: %s\n", outPath)
	return OutcomeSaved
}

func (p *Processor) printSummary(stats *RunStats) {
	fmt.Printf("\n=== Translation Summary ===\n")
	fmt.Printf("Documents found: %d\n", stats.Total)
	if p.config.DryRun {
		fmt.Printf("Would translate: %d\n", stats.Translated)
	} else {
		fmt.Printf("Translated: %d\n", stats.Translated)
	}
	fmt.Printf("Skipped (up to date): %d\n", stats.Skipped)
	if stats.Failed > 0 {
		fmt.Printf("Failed: %d\n", stats.Failed)
	}
	fmt.Printf("===========================\n")
}
