package crawler

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/sitescribe/sitescribe/internal/model"
)

// Spider crawls one website breadth-first, starting from a seed URL and
// staying within the seed's host. It owns the visited set and the
// pending-work queue and drives the configured Fetcher.
//
// Design decision: The Spider is single-threaded and issues one fetch
// at a time because:
//  1. A mandatory politeness delay makes parallel fetching pointless
//  2. Strict FIFO dequeue gives deterministic breadth-first order
//  3. The shared browser instance is not safe for concurrent tabs from
//     two crawl sessions anyway
type Spider struct {
	// fetcher retrieves individual pages.
	fetcher Fetcher

	// maxDepth limits how deep to crawl from the seed.
	// Pages at maxDepth are fetched but yield no further links.
	maxDepth int

	// maxPages limits the total number of pages to collect.
	maxPages int

	// delay is the politeness pause after every attempted fetch.
	delay time.Duration

	// progress, if set, is called after each attempted fetch with the
	// URL just processed and the number of pages collected so far.
	progress func(url string, collected int)

	// Per-session state, reset at the start of every Crawl call.
	visited map[string]bool
	pages   []*model.Page
}

// queueItem is one frontier entry: a URL and the depth it was
// discovered at. Entries are owned by the queue and dropped on dequeue.
type queueItem struct {
	url   string
	depth int
}

// Option configures a Spider.
type Option func(*Spider)

// WithMaxDepth sets the maximum crawl depth.
// 0 = only the seed page, 1 = seed plus directly linked pages, etc.
func WithMaxDepth(depth int) Option {
	return func(s *Spider) {
		s.maxDepth = depth
	}
}

// WithMaxPages sets the maximum number of pages to collect.
func WithMaxPages(maxPages int) Option {
	return func(s *Spider) {
		s.maxPages = maxPages
	}
}

// WithDelay sets the politeness delay between fetch attempts.
func WithDelay(d time.Duration) Option {
	return func(s *Spider) {
		s.delay = d
	}
}

// WithProgressFunc registers a callback invoked after every attempted
// fetch. Used by the CLI to drive its progress display.
func WithProgressFunc(fn func(url string, collected int)) Option {
	return func(s *Spider) {
		s.progress = fn
	}
}

// NewSpider creates a Spider that fetches pages through the given
// Fetcher. The caller keeps ownership of the fetcher and is responsible
// for closing it.
func NewSpider(fetcher Fetcher, opts ...Option) *Spider {
	s := &Spider{
		fetcher:  fetcher,
		maxDepth: 5,
		maxPages: 50,
		delay:    time.Second,
		visited:  make(map[string]bool),
		pages:    make([]*model.Page, 0),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Crawl fetches pages breadth-first starting from seedURL and returns
// the successfully fetched pages in collection order.
//
// Per-page failures never abort the crawl; they are logged and skipped.
// The only error conditions are an unparseable seed URL and context
// cancellation, and on cancellation the pages collected so far are
// still returned.
func (s *Spider) Crawl(ctx context.Context, seedURL string) ([]*model.Page, error) {
	seed, baseHost, err := prepareSeed(seedURL)
	if err != nil {
		return nil, err
	}

	// Reset session state so the Spider can be reused.
	s.visited = make(map[string]bool)
	s.pages = make([]*model.Page, 0)

	queue := []queueItem{{url: seed, depth: 0}}

	slog.Info("starting crawl",
		"host", baseHost,
		"maxPages", s.maxPages,
		"maxDepth", s.maxDepth,
	)

	for len(queue) > 0 && len(s.pages) < s.maxPages {
		select {
		case <-ctx.Done():
			return s.pages, ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]

		// Already-visited and too-deep entries are discarded without a
		// politeness delay: no request was made.
		if s.visited[item.url] || item.depth > s.maxDepth {
			continue
		}
		s.visited[item.url] = true

		page := s.fetcher.Fetch(ctx, item.url)

		if page.Failed() {
			slog.Warn("failed to fetch page", "url", item.url, "error", page.Error)
		} else {
			s.pages = append(s.pages, page)

			if item.depth < s.maxDepth {
				queue = append(queue, s.discover(page, item.depth, baseHost)...)
			}
		}

		if s.progress != nil {
			s.progress(item.url, len(s.pages))
		}

		// Politeness delay after every attempted fetch, success or not.
		if s.delay > 0 {
			select {
			case <-ctx.Done():
				return s.pages, ctx.Err()
			case <-time.After(s.delay):
			}
		}
	}

	slog.Info("crawl complete", "pages", len(s.pages))

	return s.pages, nil
}

// discover extracts the page's in-domain links and returns frontier
// entries for the ones not yet visited, preserving document order.
func (s *Spider) discover(page *model.Page, depth int, baseHost string) []queueItem {
	parser, err := NewParser(page.URL)
	if err != nil {
		return nil
	}

	links, err := parser.ExtractLinks(strings.NewReader(page.HTML), baseHost)
	if err != nil {
		slog.Debug("failed to parse links", "url", page.URL, "error", err)
		return nil
	}

	items := make([]queueItem, 0, len(links))
	for _, link := range links {
		if !s.visited[link] {
			items = append(items, queueItem{url: link, depth: depth + 1})
		}
	}
	return items
}

// prepareSeed normalizes the seed URL and extracts the host that scopes
// the crawl. A seed without a scheme is assumed to be https.
func prepareSeed(seedURL string) (seed, baseHost string, err error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return "", "", fmt.Errorf("invalid seed URL: %w", err)
	}

	if u.Scheme == "" {
		u, err = url.Parse("https://" + seedURL)
		if err != nil {
			return "", "", fmt.Errorf("invalid seed URL: %w", err)
		}
	}

	if u.Host == "" {
		return "", "", fmt.Errorf("seed URL has no host: %s", seedURL)
	}

	return NormalizeURL(u.String()), u.Host, nil
}
