// Package model defines the data types shared across the crawl,
// extraction, summarization, and report phases.
//
// The types are intentionally plain: no behavior beyond small helpers,
// so that every phase can consume them without importing its neighbors.
package model
