package model

// Page represents the result of a single fetch attempt.
// It is created per attempt and consumed immediately by the extraction
// phase; failed fetches carry the failure description in Error.
//
// Design decision: We record failures on the page rather than returning
// errors from the fetcher because:
//  1. A failed page and a successful page flow through the same loop
//  2. The crawl must never abort because one page failed
//  3. Downstream reporting can show which URLs were unreachable
type Page struct {
	// URL is the normalized URL that was fetched.
	URL string `json:"url"`

	// HTML is the response body, or the rendered document when the
	// rendered fetcher is in use. Empty when the fetch failed.
	HTML string `json:"-"`

	// Title is the page title as reported by the fetcher: parsed from
	// the body by the static fetcher, read from the browser by the
	// rendered fetcher.
	Title string `json:"title,omitempty"`

	// StatusCode is the HTTP response status code.
	// Zero when no response was received at all.
	StatusCode int `json:"status_code"`

	// Error describes why the fetch failed. Empty on success.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the fetch attempt produced no usable content.
func (p *Page) Failed() bool {
	return p.Error != ""
}
