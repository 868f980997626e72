// Package report generates the markdown output files: a full content
// dump of every crawled page, an optional question-and-answer summary,
// and an index linking the generated files.
//
// File names are derived from the site's organization name, guessed
// from page titles, and sanitized for the filesystem.
package report
