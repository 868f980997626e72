package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These match the defaults of the original scraper where applicable.
const (
	// DefaultMaxPages is the maximum number of pages to collect per
	// crawl. This prevents runaway crawling on large or
	// infinitely-generating sites. Users can override this via the
	// --max-pages CLI flag.
	DefaultMaxPages = 50

	// DefaultMaxDepth is the maximum link depth from the seed page.
	// Depth 0 means only fetch the seed page. Five levels reaches
	// essentially all content on typical marketing and documentation
	// sites.
	DefaultMaxDepth = 5

	// DefaultDelay is the politeness pause between fetch attempts.
	// 1 second is conservative and respectful of server resources.
	DefaultDelay = 1 * time.Second

	// DefaultTimeout is the per-request timeout. 30 seconds covers slow
	// origins without letting a dead host stall the whole crawl.
	DefaultTimeout = 30 * time.Second

	// DefaultUserAgent identifies the scraper in HTTP requests.
	// A descriptive User-Agent lets operators recognize the traffic.
	DefaultUserAgent = "sitescribe/1.0 (+https://github.com/sitescribe/sitescribe)"

	// DefaultOutputDir is where generated reports are written.
	DefaultOutputDir = "output"

	// AppName is the application name used for XDG directory paths.
	AppName = "sitescribe"

	// QuestionsFileName is the default questions file name searched for
	// when --questions is not given.
	QuestionsFileName = "questions.yaml"
)

// Config holds all options for one scrape run: crawl bounds, fetch
// behavior, and output destinations. It is populated from CLI flags,
// validated once, and treated as immutable for the session.
type Config struct {
	// SeedURL is the URL the crawl starts from. A missing scheme is
	// treated as https.
	SeedURL string

	// MaxPages is the maximum number of pages to collect.
	MaxPages int

	// MaxDepth is the maximum link depth from the seed.
	MaxDepth int

	// Delay is the politeness pause between fetch attempts.
	Delay time.Duration

	// Timeout is the per-request fetch timeout.
	Timeout time.Duration

	// Render enables headless-browser fetching for sites that build
	// their markup with client-side script. Considerably slower than
	// static fetching and requires a Chrome installation.
	Render bool

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// QuestionsPath is the YAML questions file to answer. Empty means
	// dump-only mode unless a default file is found (see FindQuestionsFile).
	QuestionsPath string

	// OutputDir is the directory generated markdown files are written to.
	OutputDir string

	// DumpOnly skips the question-answering summary and generates only
	// the raw content dump.
	DumpOnly bool

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig returns a Config with all defaults applied.
func NewConfig() *Config {
	return &Config{
		MaxPages:  DefaultMaxPages,
		MaxDepth:  DefaultMaxDepth,
		Delay:     DefaultDelay,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
		OutputDir: DefaultOutputDir,
	}
}

// Validate checks the configuration for values that would make the
// crawl misbehave.
func (c *Config) Validate() error {
	if c.SeedURL == "" {
		return ErrNoSeedURL
	}
	if c.MaxPages <= 0 {
		return ErrInvalidMaxPages
	}
	if c.MaxDepth < 0 {
		return ErrInvalidMaxDepth
	}
	if c.Delay < 0 {
		return ErrInvalidDelay
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	return nil
}

// DefaultQuestionsPath returns the XDG config location for the user's
// standing questions file (~/.config/sitescribe/questions.yaml on
// Linux).
func DefaultQuestionsPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, QuestionsFileName)
}
