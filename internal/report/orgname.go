package report

import "strings"

// titleSeparators are the separators sites commonly put between the
// page name and the organization name in <title> text.
var titleSeparators = []string{" - ", " | ", " :: ", " : ", " — ", " – "}

// pageTypes are generic page names that should never be mistaken for an
// organization name.
var pageTypes = map[string]bool{
	"home": true, "about": true, "about us": true, "contact": true,
	"contact us": true, "products": true, "services": true, "blog": true,
	"news": true, "team": true, "careers": true, "faq": true, "help": true,
	"support": true, "login": true, "sign in": true, "register": true,
}

// ExtractOrgName guesses the organization name from page titles.
// Titles like "Home - WHEELS Global Foundation" or "About | Company"
// are split on common separators; the fragment appearing most often
// across the first few pages is almost always the site owner's name.
func ExtractOrgName(titles []string) string {
	if len(titles) == 0 {
		return "website"
	}

	counts := make(map[string]int)
	order := make([]string, 0)

	limit := len(titles)
	if limit > 5 {
		limit = 5
	}

	for _, title := range titles[:limit] {
		if title == "" {
			continue
		}

		parts := []string{title}
		for _, sep := range titleSeparators {
			var split []string
			for _, part := range parts {
				split = append(split, strings.Split(part, sep)...)
			}
			parts = split
		}

		for _, part := range parts {
			part = strings.TrimSpace(part)
			if len(part) <= 2 || pageTypes[strings.ToLower(part)] {
				continue
			}
			if counts[part] == 0 {
				order = append(order, part)
			}
			counts[part]++
		}
	}

	if len(order) == 0 {
		return titles[0]
	}

	// Most frequent candidate wins; first-seen breaks ties so the
	// result is stable across runs.
	best := order[0]
	for _, candidate := range order {
		if counts[candidate] > counts[best] {
			best = candidate
		}
	}
	return best
}

// sanitizeFilename strips characters that are invalid in file names and
// caps the length.
func sanitizeFilename(name string) string {
	const invalid = `<>:"/\|?*`
	var b strings.Builder
	for _, r := range name {
		if strings.ContainsRune(invalid, r) {
			b.WriteRune('_')
		} else {
			b.WriteRune(r)
		}
	}

	cleaned := strings.TrimSpace(b.String())
	if len(cleaned) > 100 {
		cleaned = cleaned[:100]
	}
	return cleaned
}
