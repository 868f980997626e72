package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sitescribe/sitescribe/internal/model"
)

// Fetcher retrieves a single page.
//
// Design decision: Fetch never returns an error. Every failure mode
// (transport error, timeout, non-2xx status, browser crash) is captured
// in the returned Page's Error field because:
//  1. The crawl loop treats failed and successful fetches uniformly
//  2. One bad page must never abort the session
//  3. Callers decide externally whether a run full of failures is fatal
type Fetcher interface {
	// Fetch retrieves the page at url. The returned page is never nil.
	Fetch(ctx context.Context, url string) *model.Page

	// Close releases any resources held by the fetcher. It is safe to
	// call Close even if Fetch was never invoked.
	Close() error
}

// maxBodySize limits the size of response bodies to read.
const maxBodySize = 10 * 1024 * 1024 // 10MB

var _ Fetcher = (*StaticFetcher)(nil)

// StaticFetcher fetches pages with plain HTTP GET requests, without
// executing client-side script. One HTTP client is reused for the whole
// session so connections can be pooled.
type StaticFetcher struct {
	client    *http.Client
	userAgent string
}

// NewStaticFetcher creates a StaticFetcher with the given per-request
// timeout and User-Agent header.
func NewStaticFetcher(timeout time.Duration, userAgent string) *StaticFetcher {
	return &StaticFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch performs a single GET request.
// On a non-2xx response the page carries the received status code; on a
// transport failure the status code is zero.
func (f *StaticFetcher) Fetch(ctx context.Context, pageURL string) *model.Page {
	page := &model.Page{URL: pageURL}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		page.Error = err.Error()
		return page
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		page.Error = err.Error()
		return page
	}
	defer resp.Body.Close() //nolint:errcheck // Read-side close failure is not actionable

	page.StatusCode = resp.StatusCode
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		page.Error = fmt.Sprintf("unexpected status: %s", resp.Status)
		return page
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		page.Error = err.Error()
		return page
	}

	page.HTML = string(body)
	page.Title = extractTitle(page.HTML)
	return page
}

// Close releases the fetcher's idle connections.
func (f *StaticFetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
