// Package progress renders the interactive crawl progress display.
package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
)

// maxURLWidth caps how much of the current URL is shown so the spinner
// line never wraps on a normal terminal.
const maxURLWidth = 60

// Crawl is a terminal spinner that tracks crawl progress: the URL being
// fetched and how many pages have been collected against the limit.
//
// It degrades gracefully: all methods are safe to call whether or not
// the spinner ever started, so callers don't need to special-case
// non-TTY environments.
type Crawl struct {
	spin     *spinner.Spinner
	maxPages int
}

// NewCrawl creates a crawl progress display for the given page limit.
func NewCrawl(maxPages int) *Crawl {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " starting crawl..."
	return &Crawl{spin: s, maxPages: maxPages}
}

// Start begins rendering the spinner.
func (c *Crawl) Start() {
	c.spin.Start()
}

// Update reports the URL just processed and the pages collected so far.
// Safe to call from the crawl loop's progress callback.
func (c *Crawl) Update(url string, collected int) {
	if len(url) > maxURLWidth {
		url = url[:maxURLWidth] + "..."
	}
	c.spin.Suffix = fmt.Sprintf(" [%d/%d] %s", collected, c.maxPages, url)
}

// Stop halts the spinner and clears its line.
func (c *Crawl) Stop() {
	c.spin.Stop()
}
