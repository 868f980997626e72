package config

import "errors"

// Configuration validation errors.
var (
	// ErrNoSeedURL is returned when no seed URL was provided.
	ErrNoSeedURL = errors.New("no seed URL provided")

	// ErrInvalidMaxPages is returned when the page limit is not positive.
	ErrInvalidMaxPages = errors.New("max pages must be greater than zero")

	// ErrInvalidMaxDepth is returned when the depth limit is negative.
	ErrInvalidMaxDepth = errors.New("max depth must not be negative")

	// ErrInvalidDelay is returned when the politeness delay is negative.
	ErrInvalidDelay = errors.New("delay must not be negative")

	// ErrInvalidTimeout is returned when the fetch timeout is not positive.
	ErrInvalidTimeout = errors.New("timeout must be greater than zero")

	// ErrQuestionsNotFound is returned when the questions file does not
	// exist at the given path.
	ErrQuestionsNotFound = errors.New("questions file not found")
)
