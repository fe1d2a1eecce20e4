package parse

import "regexp"

// Case signature formats as used by Polish environmental authorities, e.g.
// OŚ-IV-UII.6220.13.2025.SPA, RDOŚ-Gd-WOO.420.60.2024.JP.23, WGK.6220.1.2025.
// Ordered from most to least specific. Patterns with a capture group extract
// the signature that follows a "znak:"/"sygnatura:" label.
var signaturePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)[A-Z]{2,}[-.]?[A-Z]{0,4}[-.]?\d{4}[-.]\d{1,4}[-.]\d{4}(?:[-.][A-Z]{2,5})?(?:[-.]\d{1,3})?`),
	regexp.MustCompile(`(?i)[A-Z]{2,6}[-.]\d{4}[-.]\d{1,4}[-.]\d{4}[-.][A-Z]{2,5}`),
	regexp.MustCompile(`(?i)[A-Z]{2,6}-[A-Z]{2}-[A-Z]{2,4}\.\d{3}\.\d{1,4}\.\d{4}\.[A-Z]{2,4}\.\d{1,3}`),
	regexp.MustCompile(`(?i)[A-Z]{2,4}\.\d{4}\.\d{1,4}\.\d{4}`),
	regexp.MustCompile(`(?i)znak[:\s]+([A-Z0-9.\-/]+)`),
	regexp.MustCompile(`(?i)sygnatur[ay]?[:\s]+([A-Z0-9.\-/]+)`),
}

// ExtractSignature pulls a case signature out of free text. Patterns are
// tried in order and the first hit wins; when the matching pattern carries
// a capture group the group is returned instead of the whole match.
// Returns "" when no pattern matches.
func ExtractSignature(text string) string {
	if text == "" {
		return ""
	}
	for _, pattern := range signaturePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return m[1]
		}
		return m[0]
	}
	return ""
}
