// Package main provides the entry point for the sitescribe CLI.
//
// Sitescribe crawls a single website, extracts structured content from
// every page, and generates markdown reports. Given a YAML file of
// questions, it also answers them from the crawled text.
//
// Usage:
//
//	sitescribe scan https://example.com
//	sitescribe scan example.com --questions questions.yaml
//
// See --help for all available options.
package main

// main is the entry point for sitescribe.
func main() {
	Execute()
}
