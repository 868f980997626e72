package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/sitescribe/sitescribe/internal/crawler"
	"github.com/sitescribe/sitescribe/internal/extractor"
	"github.com/sitescribe/sitescribe/internal/report"
	"github.com/sitescribe/sitescribe/internal/summarizer"
)

// CrawlStep fetches the site's pages breadth-first.
type CrawlStep struct {
	spider *crawler.Spider
}

// NewCrawlStep creates the crawl step around a configured Spider.
// The caller keeps ownership of the Spider's fetcher and must close it
// after the pipeline finishes, whatever the outcome.
func NewCrawlStep(spider *crawler.Spider) *CrawlStep {
	return &CrawlStep{spider: spider}
}

// Name returns the step name.
func (s *CrawlStep) Name() string { return "crawl" }

// Do crawls the site and records the fetched pages on the run.
// A crawl that yields no pages at all is a fatal error: nothing
// downstream can work without content.
func (s *CrawlStep) Do(ctx context.Context, run *Run) error {
	pages, err := s.spider.Crawl(ctx, run.Config.SeedURL)
	if err != nil {
		return fmt.Errorf("crawl failed: %w", err)
	}

	if len(pages) == 0 {
		return errors.New("no pages were successfully crawled")
	}

	run.Pages = pages
	return nil
}

// ExtractStep converts fetched pages into structured content.
type ExtractStep struct {
	extractor *extractor.Extractor
}

// NewExtractStep creates the extraction step.
func NewExtractStep() *ExtractStep {
	return &ExtractStep{extractor: extractor.New()}
}

// Name returns the step name.
func (s *ExtractStep) Name() string { return "extract" }

// Do extracts structured content from every fetched page. Extraction
// never fails per-page; failed pages become minimal records.
func (s *ExtractStep) Do(_ context.Context, run *Run) error {
	run.Contents = s.extractor.ExtractAll(run.Pages)
	return nil
}

// DumpStep writes the full content dump report.
type DumpStep struct {
	generator *report.Generator
}

// NewDumpStep creates the dump step around a report generator.
func NewDumpStep(generator *report.Generator) *DumpStep {
	return &DumpStep{generator: generator}
}

// Name returns the step name.
func (s *DumpStep) Name() string { return "dump" }

// Do writes the content dump and records its path on the run.
func (s *DumpStep) Do(_ context.Context, run *Run) error {
	path, err := s.generator.GenerateDump(run.Contents, "")
	if err != nil {
		return fmt.Errorf("failed to generate content dump: %w", err)
	}
	run.GeneratedFiles = append(run.GeneratedFiles, path)
	return nil
}

// SummarizeStep answers the loaded questions and writes the summary
// report. It is a no-op when the run carries no questions.
type SummarizeStep struct {
	summarizer *summarizer.Summarizer
	generator  *report.Generator
}

// NewSummarizeStep creates the summarize step.
func NewSummarizeStep(generator *report.Generator) *SummarizeStep {
	return &SummarizeStep{
		summarizer: summarizer.New(),
		generator:  generator,
	}
}

// Name returns the step name.
func (s *SummarizeStep) Name() string { return "summarize" }

// Do answers the questions over the extracted content and writes the
// Q&A summary report.
func (s *SummarizeStep) Do(ctx context.Context, run *Run) error {
	if len(run.Questions) == 0 {
		return nil
	}

	summary, err := s.summarizer.Summarize(ctx, run.Contents, run.Questions)
	if err != nil {
		return fmt.Errorf("failed to summarize: %w", err)
	}
	run.Summary = summary

	path, err := s.generator.GenerateSummary(summary)
	if err != nil {
		return fmt.Errorf("failed to generate summary: %w", err)
	}
	run.GeneratedFiles = append(run.GeneratedFiles, path)
	return nil
}

// IndexStep writes the index linking all generated reports.
type IndexStep struct {
	generator *report.Generator
}

// NewIndexStep creates the index step.
func NewIndexStep(generator *report.Generator) *IndexStep {
	return &IndexStep{generator: generator}
}

// Name returns the step name.
func (s *IndexStep) Name() string { return "index" }

// Do writes index.md and records its path on the run.
func (s *IndexStep) Do(_ context.Context, run *Run) error {
	path, err := s.generator.GenerateIndex(run.GeneratedFiles)
	if err != nil {
		return fmt.Errorf("failed to generate index: %w", err)
	}
	run.GeneratedFiles = append(run.GeneratedFiles, path)
	return nil
}
