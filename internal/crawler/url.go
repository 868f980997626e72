package crawler

import (
	"net/url"
	"strings"
)

// skipExtensions lists path suffixes that never point at HTML pages:
// documents, images, audio/video, archives, stylesheets, scripts,
// fonts, and icons.
var skipExtensions = []string{
	".pdf", ".jpg", ".jpeg", ".png", ".gif", ".svg", ".webp",
	".mp3", ".mp4", ".avi", ".mov", ".zip", ".tar", ".gz",
	".css", ".js", ".ico", ".woff", ".woff2", ".ttf", ".eot",
}

// NormalizeURL canonicalizes a URL to its dedup key: scheme, host, and
// path only. Query strings and fragments are dropped, which conflates
// pages that differ only by query (e.g. paginated listings); this
// mirrors the visited-set semantics the crawl depends on and must not
// be changed without revisiting page counts and dedup behavior.
//
// A single trailing slash is stripped unless the path is the root, so
// "https://example.com/about/" and "https://example.com/about" map to
// the same key. Normalization is idempotent.
func NormalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	normalized := u.Scheme + "://" + u.Host + u.Path
	if strings.HasSuffix(normalized, "/") && len(u.Path) > 1 {
		normalized = strings.TrimRight(normalized, "/")
	}
	return normalized
}

// IsSameDomain reports whether a URL belongs to the crawled host.
// An empty host means the URL is relative and therefore in-domain.
func IsSameDomain(raw, baseHost string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Host == baseHost || u.Host == ""
}

// IsValidURL reports whether a URL is worth fetching: http(s) or
// schemeless, and not pointing at a known non-page file extension.
func IsValidURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	if u.Scheme != "" && u.Scheme != "http" && u.Scheme != "https" {
		return false
	}

	path := strings.ToLower(u.Path)
	for _, ext := range skipExtensions {
		if strings.HasSuffix(path, ext) {
			return false
		}
	}
	return true
}
