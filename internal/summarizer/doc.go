// Package summarizer answers user-supplied questions from crawled site
// content.
//
// It is deliberately mechanical: regex patterns for structured data
// (emails, phone numbers, addresses, prices, URLs, years), keyword
// matching for relevant sentences, and heading lookups for section
// content. Every
// answer is a verbatim fragment of the crawled text with a confidence
// score derived from how many independent fragments agreed.
package summarizer
