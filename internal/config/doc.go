// Package config holds the scrape configuration and the questions file
// loader.
//
// Configuration flows one way: CLI flags populate a Config, Validate
// runs once, and the struct is passed down unchanged. There is no
// package-level state and no re-reading of flags deeper in the call
// tree.
//
// Questions files are YAML documents whose scalar values are the
// questions; nesting (sections, lists) is flattened in document order.
package config
