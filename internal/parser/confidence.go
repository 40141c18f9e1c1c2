package parser

import (
	"fmt"
	"math"
)

// ExtractedFields are the payment fields the confidence score is built from.
type ExtractedFields struct {
	Amount             *float64
	Currency           *string
	Recipient          *string
	DestinationCountry *string
	Corridor           *string
}

// ConfidenceResult carries the score plus what is missing and, when the
// score is low, the one question to ask the user.
type ConfidenceResult struct {
	Confidence          float64
	MissingFields       []string
	ClarificationNeeded string
}

// clarificationThreshold is the score below which a clarification question
// is generated.
const clarificationThreshold = 0.6

// CalculateConfidence scores a payment intent from field presence. Each of
// the four primary fields is worth 0.25; a derivable corridor adds a 0.05
// bonus. The score is capped at 1.0 and rounded to 2 decimals. Below 0.6 a
// single clarification question is derived, asking for the most important
// missing field first.
func CalculateConfidence(fields ExtractedFields) ConfidenceResult {
	var missing []string
	score := 0.0

	if fields.Amount != nil {
		score += 0.25
	} else {
		missing = append(missing, "amount")
	}
	if fields.Currency != nil {
		score += 0.25
	} else {
		missing = append(missing, "currency")
	}
	if fields.Recipient != nil {
		score += 0.25
	} else {
		missing = append(missing, "recipient")
	}
	if fields.DestinationCountry != nil {
		score += 0.25
	} else {
		missing = append(missing, "destination_country")
	}

	if fields.Corridor != nil {
		score += 0.05
	}

	score = math.Min(score, 1.0)
	score = math.Round(score*100) / 100

	result := ConfidenceResult{
		Confidence:    score,
		MissingFields: missing,
	}
	if score < clarificationThreshold {
		result.ClarificationNeeded = clarification(missing, fields.Recipient)
	}
	return result
}

func clarification(missing []string, recipient *string) string {
	has := func(field string) bool {
		for _, m := range missing {
			if m == field {
				return true
			}
		}
		return false
	}

	who := "the recipient"
	if recipient != nil {
		who = *recipient
	}

	switch {
	case has("amount") && has("currency"):
		return "How much would you like to send and in what currency?"
	case has("amount"):
		return "How much would you like to send?"
	case has("currency"):
		return "What currency would you like to use?"
	case has("destination_country"):
		return fmt.Sprintf("Where is %s located?", who)
	case has("recipient"):
		return "Who would you like to send money to?"
	default:
		// Score is low on classifier signal alone
		return fmt.Sprintf("How much would you like to send and where is %s located?", who)
	}
}
