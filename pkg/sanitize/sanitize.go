// Package sanitize strips untrusted markup from post fields before they
// reach the stored collection. The Markdown body is stored as written and
// sanitized by the rendering layer; title and excerpt are plain text and
// must never carry HTML, and image URLs must be web URLs.
package sanitize

import (
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// PostSanitizer cleans the plain-text and URL fields of a post.
type PostSanitizer struct {
	text *bluemonday.Policy
}

// NewPostSanitizer builds a sanitizer with a strict no-markup policy for
// text fields.
func NewPostSanitizer() *PostSanitizer {
	return &PostSanitizer{text: bluemonday.StrictPolicy()}
}

// Text removes all HTML from a plain-text field such as a title or
// excerpt. Idempotent: sanitized input passes through unchanged.
func (s *PostSanitizer) Text(raw string) string {
	return strings.TrimSpace(s.text.Sanitize(raw))
}

// ImageURL validates that raw is an absolute http(s) URL and returns it,
// or returns the empty string for anything else (javascript:, data:,
// relative paths, garbage).
func (s *PostSanitizer) ImageURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ""
	}
	return u.String()
}
