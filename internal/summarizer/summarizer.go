package summarizer

import (
	"context"
	"regexp"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sitescribe/sitescribe/internal/model"
)

// noAnswer is the answer text used when nothing relevant was found.
const noAnswer = "No relevant information found."

// answerConcurrency bounds how many questions are answered at once.
// Answering is pure text scanning, so a small bound keeps memory flat
// without leaving cores idle on long question lists.
const answerConcurrency = 4

// patterns extract common structured data from page text.
type patternKind string

const (
	patternEmail   patternKind = "email"
	patternPhone   patternKind = "phone"
	patternAddress patternKind = "address"
	patternPrice   patternKind = "price"
	patternURL     patternKind = "url"
	patternYear    patternKind = "year"
)

var patterns = map[patternKind]*regexp.Regexp{
	patternEmail:   regexp.MustCompile(`(?i)[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`),
	patternPhone:   regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	patternAddress: regexp.MustCompile(`(?i)\d+\s+[\w\s]+(?:Street|St|Avenue|Ave|Road|Rd|Boulevard|Blvd|Drive|Dr|Lane|Ln|Way|Court|Ct)\.?(?:\s*,\s*[\w\s]+)?(?:\s*,\s*[A-Z]{2}\s*\d{5})?`),
	patternPrice:   regexp.MustCompile(`\$[\d,]+(?:\.\d{2})?`),
	patternURL:     regexp.MustCompile(`https?://[^\s<>"']+`),
	patternYear:    regexp.MustCompile(`\b(?:19|20)\d{2}\b`),
}

// patternTriggers map question vocabulary to the pattern that should
// answer it.
var patternTriggers = map[patternKind][]string{
	patternEmail:   {"email", "mail", "contact"},
	patternPhone:   {"phone", "call", "telephone", "number"},
	patternAddress: {"address", "location", "where", "office"},
	patternPrice:   {"price", "cost", "pricing", "subscription"},
	patternURL:     {"website", "url", "link"},
	patternYear:    {"year", "founded", "established", "since"},
}

// contentIndicators group keywords that signal a question is about a
// recognizable site section, used to pull content from under matching
// headings.
var contentIndicators = map[string][]string{
	"mission":  {"mission", "vision", "purpose", "goal", "believe", "committed to"},
	"products": {"product", "service", "solution", "offering", "feature"},
	"team":     {"team", "leadership", "founder", "ceo", "executive", "staff", "employee"},
	"contact":  {"contact", "email", "phone", "address", "reach", "location"},
	"about":    {"about", "who we are", "our story", "history", "founded"},
	"pricing":  {"pricing", "price", "cost", "plan", "subscription", "free", "premium"},
}

// stopWords are excluded when deriving keywords from question text.
var stopWords = map[string]bool{
	"what": true, "which": true, "where": true, "when": true,
	"does": true, "this": true, "that": true, "have": true,
	"with": true, "from": true, "about": true, "their": true,
}

var questionWordRe = regexp.MustCompile(`\b\w{4,}\b`)

// Summarizer answers questions over extracted site content using
// pattern matching and keyword scanning. No network access and no
// model inference; answers are verbatim fragments of the crawled text.
type Summarizer struct{}

// New creates a Summarizer.
func New() *Summarizer {
	return &Summarizer{}
}

// Summarize answers every question against the extracted content and
// builds per-page digests. Questions are answered concurrently but the
// returned answers preserve question order.
func (s *Summarizer) Summarize(ctx context.Context, contents []*model.Content, questions []string) (*model.Summary, error) {
	summary := &model.Summary{
		TotalPages: len(contents),
		Answers:    make([]model.QuestionAnswer, len(questions)),
	}
	if len(contents) > 0 {
		summary.SiteURL = contents[0].URL
		summary.SiteTitle = contents[0].Title
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(answerConcurrency)

	for i, question := range questions {
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			summary.Answers[i] = s.answer(question, contents)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, content := range contents {
		summary.PageSummaries = append(summary.PageSummaries, pageSummary(content))
	}

	return summary, nil
}

// answer builds the answer for a single question from all page content.
// Three extraction passes feed it: data patterns (emails, phones, ...),
// keyword-matching sentences, and content under matching headings.
func (s *Summarizer) answer(question string, contents []*model.Content) model.QuestionAnswer {
	questionLower := strings.ToLower(question)
	var answerParts []string
	var sources []string

	// Pattern pass: questions about emails, phones, addresses, prices.
	if kind, ok := detectPattern(questionLower); ok {
		var allText strings.Builder
		for _, c := range contents {
			allText.WriteString(c.MainContent)
			allText.WriteString(" ")
			allText.WriteString(c.RawText)
			allText.WriteString("\n")
		}

		matches := extractPattern(kind, allText.String())
		if len(matches) > 5 {
			matches = matches[:5]
		}
		answerParts = append(answerParts, matches...)

		for _, c := range contents {
			combined := c.MainContent + " " + c.RawText
			for _, m := range matches {
				if strings.Contains(combined, m) {
					sources = append(sources, c.URL)
					break
				}
			}
		}
	}

	// Keyword pass: sentences containing the question's content words.
	keywords := questionKeywords(questionLower)
	if len(keywords) > 0 {
		for _, c := range contents {
			text := c.MainContent
			if text == "" {
				text = c.RawText
			}
			sentences := relevantSentences(text, keywords, 3)
			if len(sentences) > 0 {
				answerParts = append(answerParts, sentences...)
				sources = append(sources, c.URL)
			}
		}
	}

	// Section pass: content under headings matching the question topic.
	if sectionKeywords := sectionKeywordsFor(questionLower); len(sectionKeywords) > 0 {
		for _, c := range contents {
			if section := sectionContent(c, sectionKeywords); section != "" {
				answerParts = append(answerParts, section)
				sources = append(sources, c.URL)
			}
		}
	}

	return compileAnswer(question, answerParts, sources)
}

// compileAnswer deduplicates the collected fragments and scores
// confidence by how many distinct fragments survived.
func compileAnswer(question string, parts, sources []string) model.QuestionAnswer {
	seen := make(map[string]bool)
	unique := make([]string, 0, len(parts))
	for _, part := range parts {
		key := strings.ToLower(strings.TrimSpace(part))
		if len(key) > 100 {
			key = key[:100]
		}
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, strings.TrimSpace(part))
	}

	qa := model.QuestionAnswer{
		Question:   question,
		Confidence: model.ConfidenceLow,
	}

	if len(unique) == 0 {
		qa.Answer = noAnswer
		return qa
	}

	if len(unique) > 5 {
		unique = unique[:5]
	}
	qa.Answer = strings.Join(unique, "\n\n")

	switch {
	case len(unique) >= 3:
		qa.Confidence = model.ConfidenceHigh
	default:
		qa.Confidence = model.ConfidenceMedium
	}

	qa.Sources = dedupeStrings(sources, 3)
	return qa
}

// patternOrder fixes the trigger evaluation order so a question that
// mentions several data kinds always resolves to the same one.
var patternOrder = []patternKind{
	patternEmail, patternPhone, patternAddress,
	patternPrice, patternURL, patternYear,
}

// detectPattern decides whether the question asks for patterned data.
func detectPattern(questionLower string) (patternKind, bool) {
	for _, kind := range patternOrder {
		for _, trigger := range patternTriggers[kind] {
			if strings.Contains(questionLower, trigger) {
				return kind, true
			}
		}
	}
	return "", false
}

// extractPattern returns all unique matches for the named pattern,
// preserving first-seen order.
func extractPattern(kind patternKind, text string) []string {
	re, ok := patterns[kind]
	if !ok {
		return nil
	}

	matches := re.FindAllString(text, -1)
	return dedupeStrings(matches, len(matches))
}

// questionKeywords extracts the content words of a question.
func questionKeywords(questionLower string) []string {
	words := questionWordRe.FindAllString(questionLower, -1)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if !stopWords[w] {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// relevantSentences returns up to max sentences containing any keyword.
// Very short and very long sentences are skipped; the former carry no
// information and the latter are usually concatenated boilerplate.
func relevantSentences(text string, keywords []string, max int) []string {
	var relevant []string
	for _, sentence := range splitSentences(text) {
		sentenceLower := strings.ToLower(sentence)
		for _, kw := range keywords {
			if strings.Contains(sentenceLower, kw) {
				cleaned := strings.TrimSpace(sentence)
				if len(cleaned) > 20 && len(cleaned) < 500 {
					relevant = append(relevant, cleaned)
				}
				break
			}
		}
		if len(relevant) >= max {
			break
		}
	}
	return relevant
}

// splitSentences splits text after sentence-ending punctuation followed
// by whitespace.
func splitSentences(text string) []string {
	var sentences []string
	start := 0
	runes := []rune(text)
	for i := 0; i < len(runes)-1; i++ {
		if (runes[i] == '.' || runes[i] == '!' || runes[i] == '?') &&
			(runes[i+1] == ' ' || runes[i+1] == '\n' || runes[i+1] == '\t') {
			sentences = append(sentences, string(runes[start:i+1]))
			start = i + 2
			i++
		}
	}
	if start < len(runes) {
		sentences = append(sentences, string(runes[start:]))
	}
	return sentences
}

// sectionKeywordsFor returns the indicator keywords for the question's
// topic, if the question maps onto a known section category.
func sectionKeywordsFor(questionLower string) []string {
	for _, indicators := range contentIndicators {
		for _, ind := range indicators {
			if strings.Contains(questionLower, ind) {
				return indicators
			}
		}
	}
	return nil
}

// sectionContent finds headings matching the keywords and pulls the
// text that follows each heading in the page's raw text, up to 500
// characters per heading and three headings total.
func sectionContent(content *model.Content, keywords []string) string {
	var matched []string
	for _, heading := range content.Headings {
		headingLower := strings.ToLower(heading.Text)
		for _, kw := range keywords {
			if strings.Contains(headingLower, kw) {
				matched = append(matched, heading.Text)
				break
			}
		}
	}
	if len(matched) == 0 {
		return ""
	}

	rawLower := strings.ToLower(content.RawText)
	var results []string
	for _, heading := range matched {
		idx := strings.Index(rawLower, strings.ToLower(heading))
		if idx < 0 {
			continue
		}
		after := content.RawText[idx+len(heading):]
		after = strings.TrimLeft(after, ": \t\n")
		if len(after) < 50 {
			continue
		}
		if len(after) > 500 {
			after = after[:500]
		}
		results = append(results, strings.TrimSpace(after))
		if len(results) == 3 {
			break
		}
	}

	return strings.Join(results, " ")
}

// pageSummary builds the brief digest of one page for the report.
func pageSummary(content *model.Content) model.PageSummary {
	ps := model.PageSummary{
		URL:         content.URL,
		Title:       content.Title,
		Description: content.Description,
	}

	if ps.Description == "" {
		text := content.MainContent
		if text == "" {
			text = content.RawText
		}
		var opening []string
		for _, sentence := range splitSentences(text) {
			cleaned := strings.TrimSpace(sentence)
			if len(cleaned) > 20 {
				opening = append(opening, cleaned)
			}
			if len(opening) == 3 {
				break
			}
		}
		joined := strings.Join(opening, " ")
		if len(joined) > 300 {
			joined = joined[:300]
		}
		ps.Description = joined
	}

	for i, heading := range content.Headings {
		if i == 5 {
			break
		}
		ps.Headings = append(ps.Headings, heading.Text)
	}

	return ps
}

// dedupeStrings removes duplicates case-insensitively, preserving
// first-seen order, and caps the result at max entries.
func dedupeStrings(values []string, max int) []string {
	seen := make(map[string]bool)
	unique := make([]string, 0, len(values))
	for _, v := range values {
		key := strings.ToLower(v)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, v)
		if len(unique) == max {
			break
		}
	}
	return unique
}
