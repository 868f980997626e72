// Package crawler provides single-site breadth-first web crawling.
//
// # Architecture
//
// The package is built around the Spider type, which drives the crawl:
// it dequeues frontier entries in FIFO order, fetches each page through
// a Fetcher, and feeds discovered links back into the queue. The
// visited set lives in the Spider, so a URL is fetched at most once per
// session regardless of how many pages link to it.
//
// Two Fetcher implementations exist:
//
//   - StaticFetcher: a plain HTTP GET with a shared client. Fast and
//     sufficient for server-rendered sites.
//   - RenderedFetcher: navigation through a shared headless Chrome
//     instance (chromedp), for sites that assemble their markup with
//     client-side script.
//
// The choice is made once, at session start; the crawl loop itself is
// strategy-agnostic.
//
// # Politeness
//
// The Spider issues one request at a time and pauses after every
// attempted fetch, successful or not. Entries discarded for being
// already visited or beyond the depth limit incur no pause.
//
// # Failure handling
//
// Fetchers never return errors; failures are recorded on the returned
// page and the crawl moves on. A crawl aborts only when the seed URL is
// unusable or the context is cancelled.
package crawler
