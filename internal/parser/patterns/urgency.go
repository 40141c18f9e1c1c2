package patterns

import "regexp"

// HighUrgencyKeywords flips a payment to high urgency.
var HighUrgencyKeywords = regexp.MustCompile(`(?i)\b(urgent|asap|as soon as possible|immediately|right now|now|emergency|critical)\b`)

// StandardUrgencyKeywords are recognized but carry no effect beyond the
// default; kept for symmetry with the urgency vocabulary.
var StandardUrgencyKeywords = regexp.MustCompile(`(?i)\b(standard|normal|regular|whenever|eventually)\b`)
