// Package patterns holds the static lexical tables shared by the extractors:
// currency keywords, relationship words, reference markers, urgency words and
// the country lookup. The tables are ordered where order is load-bearing.
package patterns

import "regexp"

// CurrencyPattern pairs an ISO-like code with the keyword regex that detects
// it. Evaluation order matters: the first matching entry wins.
type CurrencyPattern struct {
	Code    string
	Pattern *regexp.Regexp
}

// CurrencyPatterns is the ordered currency keyword table.
var CurrencyPatterns = []CurrencyPattern{
	{"USD", regexp.MustCompile(`(?i)\b(usd|dollar|dollars)\b|\$`)},
	{"EUR", regexp.MustCompile(`(?i)\b(eur|euro|euros)\b|€`)},
	{"USDC", regexp.MustCompile(`(?i)\b(usdc|usd coin)\b`)},
	{"GBP", regexp.MustCompile(`(?i)\b(gbp|pound|pounds)\b|£`)},
	{"PHP", regexp.MustCompile(`(?i)\b(php|peso|pesos)\b`)},
	{"MAD", regexp.MustCompile(`(?i)\b(mad|dirham|dirhams)\b`)},
	{"NGN", regexp.MustCompile(`(?i)\b(ngn|naira)\b`)},
}

// AmountPatterns are the per-currency-family amount regexes. Each captures
// the numeric part; the full match provides the context used for currency
// inference. The first (dollar) pattern doubles as the generic number
// matcher because both its symbol and unit are optional.
var AmountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\$?\s*(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\s*(?:usd|dollar|dollars)?`),
	regexp.MustCompile(`(?i)(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\s*(?:eur|euro|euros|€)`),
	regexp.MustCompile(`(?i)(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\s*(?:usdc|usd coin)`),
	regexp.MustCompile(`(?i)(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\s*(?:gbp|pound|pounds|£)`),
	regexp.MustCompile(`(?i)(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\s*(?:php|peso|pesos)`),
	regexp.MustCompile(`(?i)(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\s*(?:mad|dirham|dirhams)`),
	regexp.MustCompile(`(?i)(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\s*(?:ngn|naira)`),
}

// BareNumberPattern is the last-resort amount matcher.
var BareNumberPattern = regexp.MustCompile(`\b(\d+(?:[,\s]\d{3})*(?:\.\d{2})?)\b`)
