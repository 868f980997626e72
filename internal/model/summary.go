package model

// Confidence levels for question answers.
const (
	ConfidenceLow    = "low"
	ConfidenceMedium = "medium"
	ConfidenceHigh   = "high"
)

// QuestionAnswer is a question with its extracted answer.
type QuestionAnswer struct {
	// Question is the question text as loaded from the questions file.
	Question string `json:"question"`

	// Answer is the compiled answer text, or a fixed "no information"
	// message when nothing relevant was found.
	Answer string `json:"answer"`

	// Sources are the page URLs the answer was drawn from, at most three.
	Sources []string `json:"sources,omitempty"`

	// Confidence is one of the Confidence* constants, based on how many
	// distinct answer fragments were found.
	Confidence string `json:"confidence"`
}

// PageSummary is a brief per-page digest used in the summary report.
type PageSummary struct {
	// URL is the page URL.
	URL string `json:"url"`

	// Title is the extracted page title.
	Title string `json:"title"`

	// Description is the meta description, or the opening sentences of
	// the page content when no description exists.
	Description string `json:"description,omitempty"`

	// Headings are the first few heading texts on the page.
	Headings []string `json:"headings,omitempty"`
}

// Summary is the full question-and-answer summary of one crawled site.
type Summary struct {
	// SiteURL is the URL of the first extracted page.
	SiteURL string `json:"site_url"`

	// SiteTitle is the title of the first extracted page.
	SiteTitle string `json:"site_title"`

	// TotalPages is the number of pages the summary covers.
	TotalPages int `json:"total_pages"`

	// Answers holds one entry per question, in question order.
	Answers []QuestionAnswer `json:"answers,omitempty"`

	// PageSummaries holds one digest per extracted page, in crawl order.
	PageSummaries []PageSummary `json:"page_summaries,omitempty"`
}
