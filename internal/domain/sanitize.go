package domain

import (
	"regexp"
	"strings"
)

// Sanitization is layered: markup is stripped first, then the stripped
// text is rejected outright if a script-injection pattern remains, and
// finally anything outside a strict character allow-list is rejected.
// "<b>alert(1)</b>" therefore fails rather than shrinking to "alert(1)".
var (
	markupPattern    = regexp.MustCompile(`(?s)<[^>]*>`)
	forbiddenPattern = regexp.MustCompile(`(?i)alert\s*\(|javascript:|onerror\s*=|onload\s*=`)
	allowedText      = regexp.MustCompile(`^[\w\s.,!?@#\-()\[\]{}:;"'«»–—]+$`)
)

// Sanitize strips all markup tags and attributes from text, then rejects
// it if a forbidden pattern or a character outside the allow-list remains.
// On success the cleaned text is returned with surrounding whitespace
// trimmed.
func Sanitize(text string) (string, error) {
	clean := markupPattern.ReplaceAllString(text, "")

	if forbiddenPattern.MatchString(clean) {
		return "", NewValidationError(CodeForbiddenPattern, "Input contains forbidden patterns")
	}
	if !allowedText.MatchString(clean) {
		return "", NewValidationError(CodeForbiddenCharacters, "Input contains forbidden characters")
	}

	return strings.TrimSpace(clean), nil
}
