package model

// MetadataKeys is the render order for Content.Metadata.
// Go maps do not preserve insertion order, so report generation iterates
// this fixed list to keep output deterministic.
var MetadataKeys = []string{
	"description", "keywords", "author", "published", "modified", "canonical",
}

// Content is the structured content extracted from one fetched page.
type Content struct {
	// URL is the page URL the content was extracted from.
	URL string `json:"url"`

	// Title is the best available page title. Resolution order:
	// fetch-level title, readability title, meta title, "Untitled".
	Title string `json:"title"`

	// Description is the page description from metadata, if any.
	Description string `json:"description,omitempty"`

	// MainContent is the readability-extracted article text, or the
	// truncated raw text when extraction failed or found nothing.
	MainContent string `json:"main_content,omitempty"`

	// Headings are all h1-h6 headings in document order.
	Headings []Heading `json:"headings,omitempty"`

	// Links are the anchors with visible text, kept raw and unresolved.
	// These are for reporting; crawl-time link discovery is separate.
	Links []Link `json:"links,omitempty"`

	// Metadata holds the deduplicated meta tag values keyed by
	// MetadataKeys entries. First matching alternate name wins.
	Metadata map[string]string `json:"metadata,omitempty"`

	// RawText is the whole-page text with non-content tags stripped
	// and whitespace runs collapsed.
	RawText string `json:"raw_text,omitempty"`
}

// Heading is a single document heading.
type Heading struct {
	// Level is the heading level, 1 through 6.
	Level int `json:"level"`

	// Text is the whitespace-normalized heading text.
	Text string `json:"text"`
}

// Link is an anchor with its visible text.
type Link struct {
	// Text is the anchor's visible text, whitespace-normalized.
	Text string `json:"text"`

	// URL is the raw href attribute, not resolved or normalized.
	URL string `json:"url"`
}
