package extract

import (
	"regexp"
	"strings"

	"payment-intent-parser/internal/parser/patterns"
)

// locationPhrase captures capitalized words after a location preposition.
var locationPhrase = regexp.MustCompile(`\b(?:in|to|at|from)\s+([A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*)`)

var wordToken = regexp.MustCompile(`[A-Za-z]+`)

// countryStopwords are tokens never tried as country names on their own.
// "in" is here twice over: it is both a preposition and India's alpha-2 code.
var countryStopwords = map[string]bool{
	"send": true, "for": true, "the": true, "a": true, "an": true,
	"to": true, "in": true, "at": true, "from": true,
	"my": true, "his": true, "her": true, "their": true,
}

// DestinationCountry resolves the destination country to an ISO 3166 alpha-2
// code, or nil when the input names no known country or city.
//
// Preposition phrases ("in Manila", "to Morocco") are tried first. Failing
// that, every word token is tried against the lookup table, both standalone
// and as the start of a two- or three-word window so multi-word names like
// "south korea" and "united arab emirates" resolve. First hit in input order
// wins.
func DestinationCountry(input string) *string {
	for _, match := range locationPhrase.FindAllStringSubmatch(input, -1) {
		if code := patterns.CountryCode(match[1]); code != "" {
			return &code
		}
	}

	tokens := wordToken.FindAllString(input, -1)
	for i, token := range tokens {
		if countryStopwords[strings.ToLower(token)] {
			continue
		}
		if code := patterns.CountryCode(token); code != "" {
			return &code
		}
		for window := 2; window <= 3 && i+window <= len(tokens); window++ {
			phrase := strings.Join(tokens[i:i+window], " ")
			if code := patterns.CountryCode(phrase); code != "" {
				return &code
			}
		}
	}

	return nil
}
