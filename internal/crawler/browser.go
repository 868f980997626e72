package crawler

import (
	"context"
	"strings"
	"time"

	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"

	"github.com/sitescribe/sitescribe/internal/model"
)

var _ Fetcher = (*RenderedFetcher)(nil)

// RenderedFetcher fetches pages through a headless Chrome instance so
// that client-side script runs before the document is read. Use it for
// single-page applications whose markup is assembled in the browser.
//
// One browser process is shared across the whole session. It is started
// lazily on the first Fetch and torn down in Close. Each Fetch opens a
// fresh tab and closes it when done, so a navigation failure in one tab
// cannot take down the session.
type RenderedFetcher struct {
	timeout   time.Duration
	userAgent string

	// Browser state, populated on first use.
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	started       bool
	startErr      error
}

// NewRenderedFetcher creates a RenderedFetcher with the given per-page
// navigation timeout and User-Agent. The browser is not launched until
// the first Fetch call.
func NewRenderedFetcher(timeout time.Duration, userAgent string) *RenderedFetcher {
	return &RenderedFetcher{
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// start launches the shared headless browser. A launch failure is
// remembered so every subsequent Fetch reports it per-page instead of
// retrying the launch.
func (f *RenderedFetcher) start(ctx context.Context) error {
	if f.started {
		return f.startErr
	}
	f.started = true

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.DisableGPU,
		chromedp.NoSandbox,
		chromedp.Headless,
		chromedp.UserAgent(f.userAgent),
	)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	// Force the browser process to start now so launch problems (no
	// Chrome binary, sandbox restrictions) surface on the first page
	// rather than midway through the crawl.
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		f.startErr = err
		return err
	}

	f.allocCancel = allocCancel
	f.browserCtx = browserCtx
	f.browserCancel = browserCancel
	return nil
}

// Fetch renders the page in a fresh browser tab and returns the final
// document. The status code is taken from the main document response;
// failures of any step yield an error page with status zero.
func (f *RenderedFetcher) Fetch(ctx context.Context, pageURL string) *model.Page {
	page := &model.Page{URL: pageURL}

	if err := f.start(ctx); err != nil {
		page.Error = "browser unavailable: " + err.Error()
		return page
	}

	tabCtx, cancel := chromedp.NewContext(f.browserCtx)
	defer cancel()

	timeoutCtx, timeoutCancel := context.WithTimeout(tabCtx, f.timeout)
	defer timeoutCancel()

	// Capture the status code of the main document response. Subresource
	// responses are ignored.
	var status int
	chromedp.ListenTarget(timeoutCtx, func(ev any) {
		if resp, ok := ev.(*network.EventResponseReceived); ok {
			if status == 0 && resp.Type == network.ResourceTypeDocument {
				status = int(resp.Response.Status)
			}
		}
	})

	var rendered, title string
	err := chromedp.Run(timeoutCtx,
		network.Enable(),
		chromedp.Navigate(pageURL),
		chromedp.WaitReady("body"),
		chromedp.Title(&title),
		chromedp.OuterHTML("html", &rendered),
	)
	if err != nil {
		page.Error = err.Error()
		return page
	}

	if status == 0 {
		// No document response observed (e.g. served from cache).
		status = 200
	}

	page.HTML = rendered
	page.Title = strings.TrimSpace(title)
	page.StatusCode = status
	return page
}

// Close shuts down the shared browser instance if it was started.
func (f *RenderedFetcher) Close() error {
	if f.browserCancel != nil {
		f.browserCancel()
		f.browserCancel = nil
	}
	if f.allocCancel != nil {
		f.allocCancel()
		f.allocCancel = nil
	}
	return nil
}
