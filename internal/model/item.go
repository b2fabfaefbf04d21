package model

import (
	"net/url"
	"path"
	"path/filepath"
	"regexp"
	"strings"
)

// Item is one entry of an expanded sequence: a token, the concrete URL
// it produced, and the local path the file will be saved to.
//
// The path is computed once when creating an item via NewItem, using
// the OutputConfig placeholders, and never changes afterwards.
//
// Example:
//
//	cfg := &OutputConfig{Dir: "./download"}
//	item := NewItem(0, "0001", "http://example.com/a0001.jpg", cfg)
//	// item.Path = "download/a0001.jpg"
type Item struct {
	// Index is the position of this item in the expanded sequence,
	// starting at zero. Results are reported in index order.
	Index int

	// Token is the zero-padded string form of the expanded number.
	Token string

	// URL is the concrete URL produced by substituting Token into the
	// target pattern.
	URL string

	// Path is the computed local file path where the download will be
	// saved. Set by NewItem from the OutputConfig.
	Path string
}

// OutputConfig controls where downloaded files are placed and how they
// are named.
//
// FileNameFormat supports placeholders:
//   - {token} - the expanded token, e.g. "0004"
//   - {name} - the trailing path segment of the concrete URL
//
// An empty FileNameFormat falls back to the URL's trailing path
// segment, so http://example.com/a3.jpg is saved as "a3.jpg".
type OutputConfig struct {
	// Dir is the directory downloads are saved into.
	Dir string

	// FileNameFormat is the optional filename template.
	FileNameFormat string
}

// NewItem creates an Item with its output path resolved.
//
// Invalid filename characters are replaced with underscores. When the
// URL has no usable trailing segment (e.g. it ends in "/"), the token
// itself is used as the filename.
func NewItem(index int, token, rawURL string, cfg *OutputConfig) *Item {
	item := &Item{
		Index: index,
		Token: token,
		URL:   rawURL,
	}

	name := urlBaseName(rawURL, token)
	if cfg.FileNameFormat != "" {
		f := cfg.FileNameFormat
		f = strings.ReplaceAll(f, "{token}", token)
		f = strings.ReplaceAll(f, "{name}", name)
		name = f
	}

	item.Path = filepath.Join(cfg.Dir, sanitizeFileName(name))
	return item
}

// urlBaseName extracts the trailing path segment of a URL, falling back
// to the token when the URL path yields nothing usable.
func urlBaseName(rawURL, token string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return token
	}
	base := path.Base(u.Path)
	if base == "/" || base == "." || base == "" {
		return token
	}
	return base
}

// sanitizeFileName removes or replaces characters that are invalid in
// file names, so the computed paths work across operating systems.
//
// Transformations applied:
//   - Invalid characters (<>:"/\|?* and control chars 0x00-0x1f) → underscore
//   - Trailing dots → removed
//   - Multiple whitespace → single space
//   - Trailing whitespace → removed
func sanitizeFileName(name string) string {
	invalidChars := regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	name = invalidChars.ReplaceAllString(name, "_")

	name = regexp.MustCompile(`\.+$`).ReplaceAllString(name, "")
	name = regexp.MustCompile(`\s+`).ReplaceAllString(name, " ")
	name = strings.TrimRight(name, " ")

	return name
}
