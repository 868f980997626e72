package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sitescribe/sitescribe/internal/config"
	"github.com/sitescribe/sitescribe/internal/crawler"
	"github.com/sitescribe/sitescribe/internal/log"
	"github.com/sitescribe/sitescribe/internal/pipeline"
	"github.com/sitescribe/sitescribe/internal/progress"
	"github.com/sitescribe/sitescribe/internal/report"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [url]",
		Short: "Crawl a website and generate markdown reports",
		Long: `Scan crawls a website breadth-first starting from the given URL,
staying within the URL's domain, then extracts structured content from
every page and writes markdown reports into the output directory.

When a questions file is available (via --questions, ./questions.yaml,
or the XDG config directory) the crawled text is also mined for answers
and a Q&A summary report is generated.

Examples:
  # Crawl and dump content
  sitescribe scan https://example.com

  # Answer questions from a YAML file
  sitescribe scan example.com --questions questions.yaml

  # JavaScript-heavy site: render pages in headless Chrome
  sitescribe scan https://spa-site.com --render --delay 2s

  # Small polite crawl
  sitescribe scan example.com --max-pages 10 --max-depth 2`,
		Args: cobra.ExactArgs(1),
		RunE: runScanCmd,
	}

	// Crawl behavior flags
	cmd.Flags().IntP("max-pages", "p", config.DefaultMaxPages,
		"Maximum number of pages to crawl")
	cmd.Flags().IntP("max-depth", "d", config.DefaultMaxDepth,
		"Maximum link depth from the seed page")
	cmd.Flags().DurationP("delay", "w", config.DefaultDelay,
		"Politeness delay between requests")
	cmd.Flags().DurationP("timeout", "t", config.DefaultTimeout,
		"Per-request fetch timeout")
	cmd.Flags().BoolP("render", "r", false,
		"Render pages in headless Chrome (for JavaScript-heavy sites)")
	cmd.Flags().String("user-agent", config.DefaultUserAgent,
		"User-Agent header sent with every request")

	// Output flags
	cmd.Flags().StringP("questions", "q", "",
		"YAML file of questions to answer (default: ./questions.yaml, then XDG config)")
	cmd.Flags().StringP("output", "o", config.DefaultOutputDir,
		"Output directory for generated reports")
	cmd.Flags().Bool("dump-only", false,
		"Only generate the raw content dump, skip the Q&A summary")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cfg.Verbose)
	slog.SetDefault(logger)

	// Context cancelled on SIGINT/SIGTERM so the crawl stops promptly
	// and held resources (HTTP client, browser) are released.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runScan(ctx, cfg, logger)
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.SeedURL = args[0]

	var err error
	if cfg.MaxPages, err = cmd.Flags().GetInt("max-pages"); err != nil {
		return nil, err
	}
	if cfg.MaxDepth, err = cmd.Flags().GetInt("max-depth"); err != nil {
		return nil, err
	}
	if cfg.Delay, err = cmd.Flags().GetDuration("delay"); err != nil {
		return nil, err
	}
	if cfg.Timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}
	if cfg.Render, err = cmd.Flags().GetBool("render"); err != nil {
		return nil, err
	}
	if cfg.UserAgent, err = cmd.Flags().GetString("user-agent"); err != nil {
		return nil, err
	}
	if cfg.QuestionsPath, err = cmd.Flags().GetString("questions"); err != nil {
		return nil, err
	}
	if cfg.OutputDir, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if cfg.DumpOnly, err = cmd.Flags().GetBool("dump-only"); err != nil {
		return nil, err
	}
	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// setupLogger creates a structured logger based on verbosity setting.
// String attributes are length-capped so URLs and fetch errors can't
// flood the output.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(log.NewTrimHandler(handler))
}

// newFetcher selects the fetch strategy for the session.
func newFetcher(cfg *config.Config) crawler.Fetcher {
	if cfg.Render {
		return crawler.NewRenderedFetcher(cfg.Timeout, cfg.UserAgent)
	}
	return crawler.NewStaticFetcher(cfg.Timeout, cfg.UserAgent)
}

// loadQuestions resolves and loads the questions file, honoring
// dump-only mode. An explicitly given path that doesn't exist is an
// error; a missing default file just means no summary.
func loadQuestions(cfg *config.Config, logger *slog.Logger) ([]string, error) {
	if cfg.DumpOnly {
		return nil, nil
	}

	path := config.FindQuestionsFile(cfg.QuestionsPath)
	if path == "" {
		if cfg.QuestionsPath != "" {
			return nil, fmt.Errorf("%w: %s", config.ErrQuestionsNotFound, cfg.QuestionsPath)
		}
		logger.Warn("no questions file found, running in dump-only mode")
		return nil, nil
	}

	questions, err := config.LoadQuestions(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load questions: %w", err)
	}
	logger.Info("loaded questions", "path", path, "count", len(questions))
	return questions, nil
}

// runScan executes the scrape pipeline: crawl, extract, dump,
// summarize, index.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	// Questions are resolved up front so a bad --questions path fails
	// before any request is made.
	questions, err := loadQuestions(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting scan",
		"url", cfg.SeedURL,
		"maxPages", cfg.MaxPages,
		"maxDepth", cfg.MaxDepth,
		"render", cfg.Render,
	)

	// The fetcher is closed on every exit path so the HTTP client and
	// any launched browser are always released.
	fetcher := newFetcher(cfg)
	defer func() {
		if err := fetcher.Close(); err != nil {
			logger.Warn("failed to close fetcher", "error", err)
		}
	}()

	prog := progress.NewCrawl(cfg.MaxPages)
	spider := crawler.NewSpider(fetcher,
		crawler.WithMaxPages(cfg.MaxPages),
		crawler.WithMaxDepth(cfg.MaxDepth),
		crawler.WithDelay(cfg.Delay),
		crawler.WithProgressFunc(prog.Update),
	)

	generator, err := report.NewGenerator(cfg.OutputDir)
	if err != nil {
		return err
	}

	p := pipeline.New(pipeline.WithLogger(logger))
	p.AddSteps(
		pipeline.NewCrawlStep(spider),
		pipeline.NewExtractStep(),
		pipeline.NewDumpStep(generator),
		pipeline.NewSummarizeStep(generator),
		pipeline.NewIndexStep(generator),
	)

	run := &pipeline.Run{Config: cfg, Questions: questions}

	prog.Start()
	err = p.Execute(ctx, run)
	prog.Stop()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			return errors.New("scan interrupted")
		}
		return err
	}

	for _, path := range run.GeneratedFiles {
		fmt.Fprintf(os.Stdout, "Created: %s\n", path)
	}

	logger.Info("scan complete",
		"pages", len(run.Pages),
		"files", len(run.GeneratedFiles),
		"outputDir", cfg.OutputDir,
	)
	fmt.Fprintf(os.Stdout, "Done: %d pages crawled, %d files generated in %s\n",
		len(run.Pages), len(run.GeneratedFiles), cfg.OutputDir)

	return nil
}
