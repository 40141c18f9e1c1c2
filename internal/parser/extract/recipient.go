package extract

import (
	"strings"

	"payment-intent-parser/internal/parser/patterns"
)

// Recipient extracts the recipient from input. The matchers run in priority
// order and the first hit wins: vendor markers, relationship keywords,
// capitalized names after to/for, any standalone capitalized phrase not on the
// skip list, then a loose to/for fallback. Returns nil when nothing matches.
func Recipient(input string) *string {
	if match := patterns.VendorIDPattern.FindStringSubmatch(input); match != nil {
		value := match[2]
		return &value
	}

	if match := patterns.RelationshipKeywords.FindString(input); match != "" {
		value := strings.TrimSpace(match)
		return &value
	}

	if match := patterns.RecipientAfterPreposition.FindStringSubmatch(input); match != nil {
		value := match[1]
		return &value
	}

	for _, match := range patterns.CapitalizedName.FindAllStringSubmatch(input, -1) {
		candidate := match[1]
		if isSkipWord(candidate) {
			continue
		}
		return &candidate
	}

	if match := patterns.RecipientFallback.FindStringSubmatch(input); match != nil {
		value := match[1]
		return &value
	}

	return nil
}

func isSkipWord(candidate string) bool {
	for _, skip := range patterns.RecipientSkipWords {
		if candidate == skip {
			return true
		}
	}
	return false
}
