// Package classify assigns one of the intent types to raw input via
// prioritized pattern sets.
package classify

import (
	"regexp"
	"strings"

	"payment-intent-parser/internal/models"
)

type intentPatterns struct {
	intentType models.IntentType
	priority   int
	patterns   []*regexp.Regexp
}

// intentPatternTable is ordered by descending priority. Query patterns sit
// above the broad payment catch-alls so "show my last payment" classifies as
// a transaction query even though it contains "payment".
var intentPatternTable = []intentPatterns{
	{
		intentType: models.IntentQueryStatus,
		priority:   10,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(did|has|have|is|was|were)\s+(my\s+)?(payment|transaction|transfer|wire|pay)\s+(to|for)\s+`),
			regexp.MustCompile(`(?i)\b(status|state|condition)\s+(of|for)\s+(my\s+)?(payment|transaction|transfer|wire|pay)`),
			regexp.MustCompile(`(?i)\b(is|was|has|have)\s+(my\s+)?(payment|transaction|transfer|wire|pay)\s+(to|for)\s+.*\s+(done|complete|completed|finished|processed|successful|failed|pending|approved|rejected)`),
			regexp.MustCompile(`(?i)\b(did|has|have)\s+(my\s+)?(payment|transaction|transfer|wire|pay)\s+(to|for)\s+.*\s+(go\s+through|succeed|fail|complete|finish|work|process)`),
			regexp.MustCompile(`(?i)\b(check|verify|confirm|tell\s+me)\s+(the\s+)?(status|state)\s+(of|for)\s+(my\s+)?(payment|transaction|transfer|wire)`),
			regexp.MustCompile(`(?i)\b(what|what's|what is)\s+(the\s+)?(status|state)\s+(of|for)\s+(my\s+)?(payment|transaction|transfer|wire)`),
			regexp.MustCompile(`(?i)\b(is|was)\s+.*\s+(payment|transaction|transfer|wire)\s+(to|for)\s+.*\s+(done|complete|completed|finished|processed|successful|failed)`),
			regexp.MustCompile(`(?i)\b(did|has|have)\s+.*\s+(payment|transaction|transfer|wire)\s+(to|for)\s+.*\s+(succeed|fail|complete|finish|go\s+through)`),
			regexp.MustCompile(`(?i)\b(payment|transaction|transfer|wire)\s+(to|for)\s+.*\s+(status|state|condition)`),
			regexp.MustCompile(`(?i)\b(is|was)\s+.*\s+(payment|transaction|transfer|wire)\s+(to|for)\s+.*\s+(successful|failed|pending|approved|rejected)`),
		},
	},
	{
		intentType: models.IntentQueryTransaction,
		priority:   9,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(my\s+)?(last|latest|recent|first|oldest|previous|most\s+recent)\s+(transaction|payment|transfer|wire|pay)`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(my\s+)?(transaction|payment|transfer|wire|pay)\s+(last|latest|recent|first|oldest|previous|most\s+recent)`),
			regexp.MustCompile(`(?i)\b(what|what's|what is)\s+(my\s+)?(last|latest|recent|first|oldest|previous|most\s+recent)\s+(transaction|payment|transfer|wire|pay)`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(the\s+)?(last|latest|recent|first|oldest)\s+\d+\s+(transaction|payment|transfer|wire)`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(my\s+)?(transaction|payment|transfer|wire)\s+(from|on|in)\s+`),
			regexp.MustCompile(`(?i)\b(last|latest|recent|first|oldest)\s+(transaction|payment|transfer|wire)`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view)\s+(me\s+)?(my\s+)?(most\s+recent|previous)\s+(transaction|payment|transfer|wire)`),
		},
	},
	{
		intentType: models.IntentQueryBalance,
		priority:   8,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|what|what's|what is)\s+(me\s+)?(my\s+)?(balance|account\s+balance|available\s+balance)`),
			regexp.MustCompile(`(?i)\b(how\s+much)\s+(do\s+i\s+have|is\s+in\s+my\s+account|is\s+available)`),
			regexp.MustCompile(`(?i)\b(what|what's|what is)\s+(my\s+)?(current\s+)?(balance|account\s+balance)`),
			regexp.MustCompile(`(?i)\b(check|see|view)\s+(my\s+)?(balance|account\s+balance)`),
		},
	},
	{
		intentType: models.IntentQueryHistory,
		priority:   7,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(my\s+)?(payment|transaction|transfer|wire|pay)\s+(history|record|records|log|logs|activity)`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(my\s+)?(history|record|records|log|logs|activity)\s+(of\s+)?(payment|transaction|transfer|wire|pay)`),
			regexp.MustCompile(`(?i)\b(what|what's|what is)\s+(my\s+)?(payment|transaction|transfer|wire|pay)\s+(history|record|records|log|logs|activity)`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(payment|transaction|transfer|wire|pay)\s+(from|since|between|after|before)\s+`),
			regexp.MustCompile(`(?i)\b(transaction|payment|transfer|wire)\s+(history|record|records|log|logs|activity)`),
			regexp.MustCompile(`(?i)\b(past|previous|old)\s+(transaction|payment|transfer|wire)`),
		},
	},
	{
		intentType: models.IntentQuerySearch,
		priority:   6,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(find|search|look\s+for|locate|find\s+me)\s+(my\s+)?(payment|transaction|transfer|wire|pay)\s+(to|for)\s+`),
			regexp.MustCompile(`(?i)\b(find|search|look\s+for|locate|find\s+me)\s+(payment|transaction|transfer|wire|pay)\s+(to|for)\s+`),
			regexp.MustCompile(`(?i)\b(search|find|look\s+for|locate)\s+(for\s+)?(payment|transaction|transfer|wire|pay)\s+`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(payment|transaction|transfer|wire|pay)\s+(to|for)\s+`),
			regexp.MustCompile(`(?i)\b(find|search|look\s+for|locate)\s+.*\s+(payment|transaction|transfer|wire|pay)\s+(to|for)\s+`),
		},
	},
	{
		intentType: models.IntentQueryList,
		priority:   6,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(list|show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(all\s+)?(my\s+)?(transactions|payments|transfers|wires|pays)`),
			regexp.MustCompile(`(?i)\b(list|show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(my\s+)?(recipients|contacts|accounts|people)`),
			regexp.MustCompile(`(?i)\b(what|what's|what are)\s+(my\s+)?(transactions|payments|transfers|wires|pays)`),
			regexp.MustCompile(`(?i)\b(show|display|get|fetch|retrieve|see|view|tell\s+me|give\s+me)\s+(me\s+)?(pending|completed|failed|successful|unsuccessful|processing)\s+(transactions|payments|transfers|wires)`),
			regexp.MustCompile(`(?i)\b(all|every)\s+(my\s+)?(transactions|payments|transfers|wires)`),
			regexp.MustCompile(`(?i)\b(list|show|display|get|fetch|retrieve|see|view)\s+(me\s+)?(my\s+)?(transactions|payments|transfers|wires)\s+(list|all)`),
		},
	},
	{
		intentType: models.IntentPayment,
		priority:   1,
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(send|pay|transfer|wire|give|forward|dispatch|remit|send\s+money|pay\s+money)\s+`),
			regexp.MustCompile(`(?i)\b(make|execute|process|initiate|create|do)\s+(a\s+)?(payment|transfer|wire|pay)`),
			regexp.MustCompile(`(?i)\b(need\s+to\s+)?(send|pay|transfer|wire|give)\s+`),
			regexp.MustCompile(`(?i)\b(want\s+to\s+)?(send|pay|transfer|wire|give)\s+`),
		},
	},
}

// Classify assigns an intent type to the input. The table is walked in
// priority order and the first matching pattern decides; unmatched input
// defaults to payment, preserving compatibility with the single-intent
// predecessor of this parser.
func Classify(input string) models.IntentType {
	normalized := strings.ToLower(strings.TrimSpace(input))
	for _, bucket := range intentPatternTable {
		for _, pattern := range bucket.patterns {
			if pattern.MatchString(normalized) {
				return bucket.intentType
			}
		}
	}
	return models.IntentPayment
}

// Confidence scores the classification: base 0.7, plus 0.1 per additional
// matching pattern within the winning type's set, capped at 0.95.
func Confidence(input string, intentType models.IntentType) float64 {
	var bucket *intentPatterns
	for i := range intentPatternTable {
		if intentPatternTable[i].intentType == intentType {
			bucket = &intentPatternTable[i]
			break
		}
	}
	if bucket == nil {
		return 0.5
	}

	matchCount := 0
	for _, pattern := range bucket.patterns {
		if pattern.MatchString(input) {
			matchCount++
		}
	}
	if matchCount <= 1 {
		return 0.7
	}
	confidence := 0.7 + float64(matchCount-1)*0.1
	if confidence > 0.95 {
		confidence = 0.95
	}
	return confidence
}
