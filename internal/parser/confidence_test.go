package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func strPtr(v string) *string     { return &v }

func TestCalculateConfidence_AllFields(t *testing.T) {
	result := CalculateConfidence(ExtractedFields{
		Amount:             floatPtr(500),
		Currency:           strPtr("USD"),
		Recipient:          strPtr("John"),
		DestinationCountry: strPtr("PH"),
		Corridor:           strPtr("USD-PHP"),
	})

	assert.Equal(t, 1.0, result.Confidence)
	assert.Empty(t, result.MissingFields)
	assert.Empty(t, result.ClarificationNeeded)
}

func TestCalculateConfidence_NoCorridorBonus(t *testing.T) {
	result := CalculateConfidence(ExtractedFields{
		Amount:             floatPtr(500),
		Currency:           strPtr("USD"),
		Recipient:          strPtr("John"),
		DestinationCountry: strPtr("PH"),
	})

	// Four primaries alone already reach the cap
	assert.Equal(t, 1.0, result.Confidence)
	assert.Empty(t, result.MissingFields)
}

func TestCalculateConfidence_OneMissing(t *testing.T) {
	result := CalculateConfidence(ExtractedFields{
		Amount:    floatPtr(500),
		Currency:  strPtr("USD"),
		Recipient: strPtr("John"),
	})

	assert.Equal(t, 0.75, result.Confidence)
	assert.Equal(t, []string{"destination_country"}, result.MissingFields)
	assert.Empty(t, result.ClarificationNeeded, "no clarification above the threshold")
}

func TestCalculateConfidence_AllMissing(t *testing.T) {
	result := CalculateConfidence(ExtractedFields{})

	assert.Equal(t, 0.0, result.Confidence)
	assert.ElementsMatch(t,
		[]string{"amount", "currency", "recipient", "destination_country"},
		result.MissingFields)
	assert.Equal(t, "How much would you like to send and in what currency?", result.ClarificationNeeded)
}

func TestCalculateConfidence_ClarificationPrecedence(t *testing.T) {
	t.Run("amount before destination", func(t *testing.T) {
		result := CalculateConfidence(ExtractedFields{
			Currency:  strPtr("USD"),
			Recipient: strPtr("John"),
		})
		assert.Equal(t, 0.5, result.Confidence)
		assert.Equal(t, "How much would you like to send?", result.ClarificationNeeded)
	})

	t.Run("currency before destination", func(t *testing.T) {
		result := CalculateConfidence(ExtractedFields{
			Amount:    floatPtr(200),
			Recipient: strPtr("Maria"),
		})
		assert.Equal(t, 0.5, result.Confidence)
		assert.Equal(t, "What currency would you like to use?", result.ClarificationNeeded)
	})

	t.Run("location names the recipient", func(t *testing.T) {
		result := CalculateConfidence(ExtractedFields{
			Amount:   floatPtr(200),
			Currency: strPtr("USD"),
		})
		assert.Equal(t, 0.5, result.Confidence)
		assert.Equal(t, "Where is the recipient located?", result.ClarificationNeeded)
	})

	t.Run("location uses known recipient name", func(t *testing.T) {
		question := clarification([]string{"destination_country"}, strPtr("Maria"))
		assert.Equal(t, "Where is Maria located?", question)
	})

	t.Run("recipient question", func(t *testing.T) {
		question := clarification([]string{"recipient"}, nil)
		assert.Equal(t, "Who would you like to send money to?", question)
	})

	t.Run("nothing missing but score low", func(t *testing.T) {
		question := clarification(nil, strPtr("Maria"))
		assert.Equal(t, "How much would you like to send and where is Maria located?", question)
	})
}

func TestCalculateConfidence_Rounding(t *testing.T) {
	result := CalculateConfidence(ExtractedFields{
		Amount:   floatPtr(100),
		Currency: strPtr("USD"),
		Corridor: strPtr("USD-PHP"),
	})

	assert.Equal(t, 0.55, result.Confidence)
}
