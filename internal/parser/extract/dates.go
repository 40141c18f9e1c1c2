package extract

import (
	"regexp"
	"strings"

	"payment-intent-parser/internal/models"
)

var (
	dateRangeBoth  = regexp.MustCompile(`(?i)\b(?:from|since|after)\s+([A-Za-z0-9\s,]+?)\s+(?:to|until|before|and)\s+([A-Za-z0-9\s,]+)`)
	dateRangeStart = regexp.MustCompile(`(?i)\b(?:since|from|after)\s+([A-Za-z0-9\s,]+)`)
	dateRangeEnd   = regexp.MustCompile(`(?i)\b(?:before|until)\s+([A-Za-z0-9\s,]+)`)
	relativeRange  = regexp.MustCompile(`(?i)\b(?:last|past)\s+(?:week|month|year|30\s+days|7\s+days)`)

	datePhrases = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(?:on|at|for)\s+([A-Za-z]+\s+\d{1,2},?\s+\d{4})`),
		regexp.MustCompile(`(?i)\b(?:on|at|for)\s+(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`),
		regexp.MustCompile(`(?i)\b(?:on|at|for)\s+([A-Za-z]+\s+\d{1,2})`),
		regexp.MustCompile(`(?i)\b(today|yesterday|tomorrow)\b`),
		regexp.MustCompile(`(?i)\b((?:last|this|next)\s+(?:week|month|year|monday|tuesday|wednesday|thursday|friday|saturday|sunday))`),
	}
)

// DateRange extracts a start/end pair from the input. The values are the
// literal captured phrases; callers interpret them downstream. Explicit
// "from X to Y" ranges win over single-ended ranges, which win over relative
// phrases like "last week" (stored as the start). Nil when nothing matches.
func DateRange(input string) *models.DateRange {
	if match := dateRangeBoth.FindStringSubmatch(input); match != nil {
		return &models.DateRange{
			Start: strings.TrimSpace(match[1]),
			End:   strings.TrimSpace(match[2]),
		}
	}
	if match := dateRangeStart.FindStringSubmatch(input); match != nil {
		return &models.DateRange{Start: strings.TrimSpace(match[1])}
	}
	if match := dateRangeEnd.FindStringSubmatch(input); match != nil {
		return &models.DateRange{End: strings.TrimSpace(match[1])}
	}
	if match := relativeRange.FindString(input); match != "" {
		return &models.DateRange{Start: match}
	}
	return nil
}

// Date extracts a single date phrase, most specific form first: dated
// phrases ("on January 15, 2024", slash dates, "on January 15"), then bare
// relative words. Returns "" when nothing matches.
func Date(input string) string {
	for _, pattern := range datePhrases {
		if match := pattern.FindStringSubmatch(input); match != nil {
			return match[1]
		}
	}
	return ""
}
