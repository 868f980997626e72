package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/nao1215/markdown"

	"github.com/sitescribe/sitescribe/internal/model"
)

// Generator writes markdown reports for crawled content.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation because:
//  1. Type-safe construction of tables, lists, and headers
//  2. No manual escaping or string concatenation bugs
//  3. One Build call per document makes write errors visible
type Generator struct {
	// outputDir is where generated files are written. Created on New.
	outputDir string

	// now returns the timestamp stamped into reports. Overridable in
	// tests for stable output.
	now func() time.Time
}

// NewGenerator creates a Generator writing into outputDir, creating the
// directory if needed.
func NewGenerator(outputDir string) (*Generator, error) {
	if err := os.MkdirAll(outputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Generator{outputDir: outputDir, now: time.Now}, nil
}

// GenerateDump writes the full content dump of every extracted page and
// returns the generated file path. The site name for the file name is
// derived from the page titles when not given.
func (g *Generator) GenerateDump(contents []*model.Content, siteName string) (string, error) {
	if siteName == "" {
		titles := make([]string, 0, len(contents))
		for _, c := range contents {
			if c.Title != "" {
				titles = append(titles, c.Title)
			}
		}
		siteName = ExtractOrgName(titles)
	}
	siteName = sanitizeFilename(siteName)

	path := filepath.Join(g.outputDir, siteName+".md")
	f, err := os.Create(path) //nolint:gosec // Path is confined to the output directory
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Build error below covers write failures

	md := markdown.NewMarkdown(f)

	md.H1("Full Content Dump: " + siteName)
	md.PlainText("")
	md.PlainTextf("**Total Pages:** %d", len(contents))
	md.PlainTextf("**Generated:** %s", g.now().Format("2006-01-02 15:04:05"))
	md.PlainText("")
	md.HorizontalRule()

	for i, content := range contents {
		g.writePageDump(md, i+1, content)
	}

	return path, md.Build()
}

// writePageDump writes one page's section of the content dump.
func (g *Generator) writePageDump(md *markdown.Markdown, index int, content *model.Content) {
	title := content.Title
	if title == "" {
		title = "Untitled"
	}

	md.H2(fmt.Sprintf("Page %d: %s", index, title))
	md.PlainText("")
	md.PlainTextf("**URL:** %s", content.URL)
	md.PlainText("")

	if content.Description != "" {
		md.H3("Description")
		md.PlainText(content.Description)
		md.PlainText("")
	}

	if len(content.Metadata) > 0 {
		md.H3("Metadata")
		items := make([]string, 0, len(content.Metadata))
		// Fixed key order keeps dumps diffable between runs.
		for _, key := range model.MetadataKeys {
			if value, ok := content.Metadata[key]; ok {
				items = append(items, "**"+key+":** "+value)
			}
		}
		md.BulletList(items...)
		md.PlainText("")
	}

	if len(content.Headings) > 0 {
		md.H3("Headings")
		for _, heading := range content.Headings {
			indent := strings.Repeat("  ", heading.Level-1)
			md.PlainText(indent + "- " + heading.Text)
		}
		md.PlainText("")
	}

	if content.MainContent != "" {
		md.H3("Content")
		md.PlainText(content.MainContent)
		md.PlainText("")
	}

	md.HorizontalRule()
}

// GenerateSummary writes the question-and-answer summary report and
// returns the generated file path.
func (g *Generator) GenerateSummary(summary *model.Summary) (string, error) {
	siteName := sanitizeFilename(summary.SiteTitle)
	if siteName == "" {
		siteName = "website"
	}

	path := filepath.Join(g.outputDir, siteName+" - Summary.md")
	f, err := os.Create(path) //nolint:gosec // Path is confined to the output directory
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Build error below covers write failures

	md := markdown.NewMarkdown(f)

	md.H1("Website Summary: " + summary.SiteTitle)
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"URL", summary.SiteURL},
			{"Pages Crawled", strconv.Itoa(summary.TotalPages)},
			{"Generated", g.now().Format("2006-01-02 15:04:05")},
		},
	})
	md.PlainText("")
	md.HorizontalRule()

	if len(summary.Answers) > 0 {
		md.H2("Questions & Answers")
		md.PlainText("")
		for i, qa := range summary.Answers {
			g.writeAnswer(md, i+1, qa)
		}
	}

	if len(summary.PageSummaries) > 0 {
		md.H2("Pages Crawled")
		md.PlainText("")
		for _, page := range summary.PageSummaries {
			g.writePageSummary(md, page)
		}
	}

	return path, md.Build()
}

// writeAnswer writes one question-and-answer block.
func (g *Generator) writeAnswer(md *markdown.Markdown, index int, qa model.QuestionAnswer) {
	md.H3(fmt.Sprintf("%d. %s", index, qa.Question))
	md.PlainText("")
	md.PlainText(qa.Answer)
	md.PlainText("")

	if len(qa.Sources) > 0 {
		md.PlainText("**Sources:**")
		md.BulletList(qa.Sources...)
		md.PlainText("")
	}

	md.PlainTextf("*Confidence: %s*", qa.Confidence)
	md.PlainText("")
	md.HorizontalRule()
}

// writePageSummary writes one page digest block.
func (g *Generator) writePageSummary(md *markdown.Markdown, page model.PageSummary) {
	title := page.Title
	if title == "" {
		title = "Untitled Page"
	}

	md.H3(title)
	md.PlainText("")
	md.PlainTextf("**URL:** %s", page.URL)
	md.PlainText("")

	if page.Description != "" {
		md.PlainText(page.Description)
		md.PlainText("")
	}

	if len(page.Headings) > 0 {
		md.PlainText("**Key sections:**")
		md.BulletList(page.Headings...)
		md.PlainText("")
	}

	md.HorizontalRule()
}

// GenerateIndex writes an index.md linking every generated report and
// returns its path.
func (g *Generator) GenerateIndex(paths []string) (string, error) {
	indexPath := filepath.Join(g.outputDir, "index.md")
	f, err := os.Create(indexPath) //nolint:gosec // Path is confined to the output directory
	if err != nil {
		return "", err
	}
	defer f.Close() //nolint:errcheck // Build error below covers write failures

	md := markdown.NewMarkdown(f)

	md.H1("Sitescribe Output")
	md.PlainText("")
	md.PlainTextf("**Generated:** %s", g.now().Format("2006-01-02 15:04:05"))
	md.PlainText("")
	md.H2("Generated Files")
	md.PlainText("")

	links := make([]string, 0, len(paths))
	for _, p := range paths {
		name := filepath.Base(p)
		stem := strings.TrimSuffix(name, filepath.Ext(name))
		links = append(links, fmt.Sprintf("[%s](%s)", stem, name))
	}
	md.BulletList(links...)

	return indexPath, md.Build()
}
