package extractor

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/markusmobius/go-trafilatura"

	"github.com/sitescribe/sitescribe/internal/model"
)

// fallbackLimit caps the length of the raw-text fallback used when
// readability extraction fails or finds nothing.
const fallbackLimit = 5000

// removeTags are stripped from the document before raw text is read.
// They never carry visible prose.
var removeTags = []string{
	"script", "style", "noscript", "iframe", "svg",
	"canvas", "video", "audio", "map", "object", "embed",
}

// metaAlternates maps each metadata key to its meta tag names in
// priority order. The first tag with non-empty content wins; a name
// attribute match is checked before a property attribute match.
var metaAlternates = map[string][]string{
	"description": {"description", "og:description", "twitter:description"},
	"keywords":    {"keywords"},
	"author":      {"author", "article:author"},
	"published":   {"article:published_time", "datePublished"},
	"modified":    {"article:modified_time", "dateModified"},
}

// titleAlternates are the meta tag names consulted for the title
// fallback, after the fetch-level and readability titles.
var titleAlternates = []string{"title", "og:title", "twitter:title"}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Extractor turns fetched pages into structured content.
//
// The zero value is not usable; create instances with New.
type Extractor struct {
	// skipPatterns match class/id values of boilerplate elements
	// (navigation, footers, ad slots, cookie banners). They are part of
	// the extractor's configuration but are not applied during
	// extraction: main content comes from the readability heuristic,
	// and the raw-text fallback is intentionally unfiltered.
	// TODO: apply these in the raw-text fallback path once the fallback
	// quality on nav-heavy sites has been evaluated against real crawls.
	skipPatterns []*regexp.Regexp
}

// New creates a ready-to-use Extractor.
func New() *Extractor {
	patterns := []string{
		"nav", "header", "footer", "sidebar", "menu",
		"breadcrumb", "pagination", "comment", "social",
		"share", "related", "advertisement", "ad-", "ads-",
		"cookie", "popup", "modal", "banner",
	}

	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile("(?i)"+regexp.QuoteMeta(p)))
	}

	return &Extractor{skipPatterns: compiled}
}

// Extract produces structured content for one fetched page.
//
// Pages that failed to fetch (or fetched empty) yield a minimal record
// carrying only the URL and a fallback title; no parsing is attempted.
func (e *Extractor) Extract(page *model.Page) *model.Content {
	if page.Failed() || page.HTML == "" {
		title := page.Title
		if title == "" {
			title = "Error loading page"
		}
		return &model.Content{URL: page.URL, Title: title}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page.HTML))
	if err != nil {
		return &model.Content{URL: page.URL, Title: "Error loading page"}
	}

	readabilityTitle, mainContent := e.extractReadable(page)
	metadata := extractMetadata(doc)
	headings := extractHeadings(doc)
	links := extractLinks(doc)
	rawText := extractRawText(page.HTML)

	// Title resolution: fetch-level title wins, then the readability
	// title, then meta title tags, then a fixed placeholder.
	title := page.Title
	if title == "" {
		title = readabilityTitle
	}
	if title == "" {
		title = metaTitle(doc)
	}
	if title == "" {
		title = "Untitled"
	}

	if mainContent == "" {
		mainContent = truncate(rawText, fallbackLimit)
	}

	return &model.Content{
		URL:         page.URL,
		Title:       title,
		Description: metadata["description"],
		MainContent: mainContent,
		Headings:    headings,
		Links:       links,
		Metadata:    metadata,
		RawText:     rawText,
	}
}

// ExtractAll extracts content from every page, in order.
func (e *Extractor) ExtractAll(pages []*model.Page) []*model.Content {
	contents := make([]*model.Content, 0, len(pages))
	for _, page := range pages {
		contents = append(contents, e.Extract(page))
	}
	return contents
}

// extractReadable runs the readability heuristic over the raw HTML and
// returns the derived title and plain-text main content. Both are empty
// when the heuristic fails or extracts nothing; the caller falls back
// to raw text.
func (e *Extractor) extractReadable(page *model.Page) (title, content string) {
	opts := trafilatura.Options{}
	if u, err := url.Parse(page.URL); err == nil {
		opts.OriginalURL = u
	}

	result, err := trafilatura.Extract(strings.NewReader(page.HTML), opts)
	if err != nil || result == nil {
		return "", ""
	}

	return result.Metadata.Title, cleanText(result.ContentText)
}

// extractHeadings collects h1-h6 headings in document order.
func extractHeadings(doc *goquery.Document) []model.Heading {
	headings := make([]model.Heading, 0)

	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, s *goquery.Selection) {
		text := cleanText(s.Text())
		if text == "" {
			return
		}
		level := int(goquery.NodeName(s)[1] - '0')
		headings = append(headings, model.Heading{Level: level, Text: text})
	})

	return headings
}

// extractMetadata reads the page's meta tags and canonical link.
// For each key the alternates are tried in order and the first
// non-empty content attribute wins.
func extractMetadata(doc *goquery.Document) map[string]string {
	metadata := make(map[string]string)

	for _, key := range model.MetadataKeys {
		names, ok := metaAlternates[key]
		if !ok {
			continue
		}
		for _, name := range names {
			if content := findMeta(doc, name); content != "" {
				metadata[key] = content
				break
			}
		}
	}

	if href, ok := doc.Find(`link[rel="canonical"]`).Attr("href"); ok && href != "" {
		metadata["canonical"] = href
	}

	return metadata
}

// findMeta returns the content of the first meta tag whose name or
// property attribute equals name. The name attribute takes priority.
func findMeta(doc *goquery.Document, name string) string {
	sel := doc.Find(`meta[name="` + name + `"]`).First()
	if sel.Length() == 0 {
		sel = doc.Find(`meta[property="` + name + `"]`).First()
	}
	content, _ := sel.Attr("content")
	return strings.TrimSpace(content)
}

// metaTitle returns the first title-like meta tag value.
func metaTitle(doc *goquery.Document) string {
	for _, name := range titleAlternates {
		if content := findMeta(doc, name); content != "" {
			return content
		}
	}
	return ""
}

// extractLinks collects every anchor with visible text for reporting.
// Hrefs are kept raw: resolution and normalization only matter for
// crawling, which uses its own link extraction.
func extractLinks(doc *goquery.Document) []model.Link {
	links := make([]model.Link, 0)

	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		text := cleanText(s.Text())
		if text == "" ||
			strings.HasPrefix(href, "#") ||
			strings.HasPrefix(href, "javascript:") ||
			strings.HasPrefix(href, "mailto:") {
			return
		}
		links = append(links, model.Link{Text: text, URL: href})
	})

	return links
}

// extractRawText returns the whole-page text with non-content tags
// removed and whitespace runs collapsed. The document is re-parsed so
// tag removal cannot disturb the other extraction passes.
func extractRawText(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	doc.Find(strings.Join(removeTags, ", ")).Remove()

	return cleanText(doc.Text())
}

// isBoilerplate reports whether a class/id string matches the
// boilerplate skip patterns. See the skipPatterns field for why this is
// not called from Extract.
func (e *Extractor) isBoilerplate(classID string) bool {
	for _, p := range e.skipPatterns {
		if p.MatchString(classID) {
			return true
		}
	}
	return false
}

// cleanText collapses whitespace runs to single spaces and trims the
// result.
func cleanText(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// truncate cuts text to at most limit runes.
func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit])
}
