package extract

import "payment-intent-parser/internal/parser/patterns"

// Reference extracts an invoice/reference/id/vendor token, or "" when none of
// the marker patterns match.
func Reference(input string) string {
	for _, pattern := range patterns.ReferencePatterns {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[2]
		}
	}
	return ""
}
