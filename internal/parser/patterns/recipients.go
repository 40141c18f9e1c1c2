package patterns

import "regexp"

// RelationshipKeywords matches relationship words that identify a recipient,
// optionally preceded by "my". The whole match is returned as the recipient,
// which preserves "my sister" style wording.
var RelationshipKeywords = regexp.MustCompile(`(?i)\b(my\s+)?(sister|brother|mother|father|mom|dad|parent|parents|friend|friends|contractor|contractors|vendor|vendors|employee|employees|colleague|colleagues|client|clients|customer|customers|partner|partners|associate|associates|relative|relatives|family|families)\b`)

// ReferencePatterns match reference markers (invoice/ref/id/vendor) followed
// by an optional separator and the referenced token. Tried in order; the
// second capture group is the reference value.
var ReferencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(invoice|inv)[\s\-:]?\s*([a-zA-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)\b(ref|reference)[\s\-:]?\s*([a-zA-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)\b(id|identifier)[\s\-:]?\s*([a-zA-Z0-9\-]+)`),
	regexp.MustCompile(`(?i)\b(vendor_id|vendor)[\s\-:]?\s*([a-zA-Z0-9\-:]+)`),
}

// VendorIDPattern identifies vendor markers for recipient extraction; the
// second capture group is the vendor token (e.g. "4421").
var VendorIDPattern = regexp.MustCompile(`(?i)\b(vendor_id|vendor)[\s\-:]?\s*([a-zA-Z0-9\-:]+)`)

// RecipientAfterPreposition matches "to Name" / "for Name" with one or two
// capitalized words. Deliberately case-sensitive.
var RecipientAfterPreposition = regexp.MustCompile(`\b(?:to|for)\s+([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)

// CapitalizedName matches standalone capitalized words or two-word phrases.
var CapitalizedName = regexp.MustCompile(`\b([A-Z][a-z]+(?:\s+[A-Z][a-z]+)?)`)

// RecipientFallback is the last-resort recipient matcher: any single word
// after "to" or "for", case-insensitive.
var RecipientFallback = regexp.MustCompile(`(?i)\b(?:to|for)\s+(\w+)`)

// RecipientSkipWords are capitalized words that are never recipients: action
// verbs and the location names the country extractor owns.
var RecipientSkipWords = []string{"Send", "Pay", "Transfer", "Wire", "Give", "Manila", "Morocco", "Nigeria", "Philippines"}
