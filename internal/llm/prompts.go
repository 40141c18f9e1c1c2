package llm

import (
	"encoding/json"
	"fmt"
	"strings"

	"payment-intent-parser/internal/models"
)

// SystemPrompt frames every enhancement request.
const SystemPrompt = `You are an expert at parsing natural language payment and transaction queries into structured JSON.

Your task is to analyze user input and extract structured information about:
1. Payment intents (sending money)
2. Transaction queries (showing transactions)
3. Status queries (checking payment status)
4. Balance queries
5. History queries
6. Search queries
7. List queries

Return ONLY valid JSON, no additional text or explanation.`

// PaymentIntentPrompt asks the model to complete a partially parsed payment.
func PaymentIntentPrompt(input string, intent models.Intent) string {
	return fmt.Sprintf(`Parse this payment intent: %q

Current parsed data (from pattern matching):
%s

Extract and return a JSON object with these fields:
- amount: number or null
- currency: string (ISO code like USD, EUR) or null
- recipient: string or null
- destination_country: string (ISO country code) or null
- urgency: "standard" or "high"
- reference: string (invoice/transaction ID) or null

Fill in any missing fields. Return ONLY the JSON object, no markdown formatting.`,
		input, intentJSON(intent))
}

// QueryIntentPrompt asks the model to complete a partially parsed query.
func QueryIntentPrompt(input string, intent models.Intent) string {
	return fmt.Sprintf(`Parse this %s query: %q

Current parsed data (from pattern matching):
%s

Extract and return a JSON object with relevant fields for this query type.
Fill in any missing fields based on the input.

Return ONLY the JSON object, no markdown formatting.`,
		intent.IntentType(), input, intentJSON(intent))
}

// FillMissingFieldsPrompt asks the model only for the named gaps.
func FillMissingFieldsPrompt(input string, intent models.Intent, missingFields []string) string {
	return fmt.Sprintf(`Enhance this parsed intent: %q

Current parsed data:
%s

Missing or unclear fields: %s

Extract the missing fields from the input and return a JSON object with the complete data.
Return ONLY the JSON object, no markdown formatting.`,
		input, intentJSON(intent), strings.Join(missingFields, ", "))
}

func intentJSON(intent models.Intent) string {
	data, err := json.MarshalIndent(intent, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
