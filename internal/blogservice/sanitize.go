package blogservice

import "regexp"

var scriptTagPattern = regexp.MustCompile(`(?i)<\s*script[^>]*>(.*?)<\s*/\s*script\s*>`)

// sanitizeRichText strips script tags from editor-submitted HTML before it
// is persisted. Everything else passes through untouched.
func sanitizeRichText(s string) string {
	return scriptTagPattern.ReplaceAllString(s, "")
}
