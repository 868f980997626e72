// Package extractor converts fetched pages into structured content:
// title, main text, headings, metadata, outbound links, and a raw-text
// fallback.
//
// Main content comes from a readability heuristic (go-trafilatura)
// that isolates the article-like portion of a page. When the heuristic
// fails or extracts nothing, the whole-page text with non-content tags
// stripped is used instead, truncated to a fixed length.
//
// Extraction is independent of the crawl loop: each page is processed
// on its own, and pages that failed to fetch produce minimal records
// rather than errors.
package extractor
