// Package pipeline orchestrates the phases of one scrape run: crawl,
// extract, dump, summarize, index.
//
// Each phase is a Step executing against a shared Run that accumulates
// state. The pipeline stops at the first step error. Per-page problems
// never surface as step errors; they are recorded on the affected
// pages and contents.
package pipeline
