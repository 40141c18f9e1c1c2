// Package models defines the intent records produced by the parser.
package models

import (
	"encoding/json"
	"fmt"
)

// IntentType discriminates the intent union.
type IntentType string

const (
	IntentPayment          IntentType = "payment"
	IntentQueryTransaction IntentType = "query_transaction"
	IntentQueryStatus      IntentType = "query_status"
	IntentQueryBalance     IntentType = "query_balance"
	IntentQueryHistory     IntentType = "query_history"
	IntentQuerySearch      IntentType = "query_search"
	IntentQueryList        IntentType = "query_list"
)

// Urgency is the payment urgency level.
type Urgency string

const (
	UrgencyStandard Urgency = "standard"
	UrgencyHigh     Urgency = "high"
)

// Intent is the interface shared by every parsed intent variant.
type Intent interface {
	IntentType() IntentType
	GetConfidence() float64
	SetConfidence(c float64)
	GetRawInput() string
}

// BaseIntent carries the fields common to all intent variants.
type BaseIntent struct {
	Type       IntentType `json:"type"`
	Confidence float64    `json:"confidence"`
	RawInput   string     `json:"raw_input"`
}

func (b *BaseIntent) IntentType() IntentType  { return b.Type }
func (b *BaseIntent) GetConfidence() float64  { return b.Confidence }
func (b *BaseIntent) SetConfidence(c float64) { b.Confidence = c }
func (b *BaseIntent) GetRawInput() string     { return b.RawInput }

// PaymentIntent is a request to move money. Nullable primary fields are
// pointers so absent values serialize as JSON null.
type PaymentIntent struct {
	BaseIntent
	Amount              *float64 `json:"amount"`
	Currency            *string  `json:"currency"`
	Recipient           *string  `json:"recipient"`
	DestinationCountry  *string  `json:"destination_country"`
	Corridor            *string  `json:"corridor"`
	Urgency             Urgency  `json:"urgency"`
	Reference           string   `json:"reference,omitempty"`
	MissingFields       []string `json:"missing_fields,omitempty"`
	ClarificationNeeded string   `json:"clarification_needed,omitempty"`
}

// DateRange holds an optional start/end pair. Values are the literal phrases
// captured from the input, not normalized dates.
type DateRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

// TransactionFilters narrows transaction and history queries.
type TransactionFilters struct {
	Recipient string  `json:"recipient,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Status    string  `json:"status,omitempty"`
}

// SearchFilters narrows search queries.
type SearchFilters struct {
	Recipient string  `json:"recipient,omitempty"`
	Amount    float64 `json:"amount,omitempty"`
	Currency  string  `json:"currency,omitempty"`
	Date      string  `json:"date,omitempty"`
}

// ListFilters narrows list queries.
type ListFilters struct {
	Status   string `json:"status,omitempty"`
	Currency string `json:"currency,omitempty"`
	Date     string `json:"date,omitempty"`
}

type QueryTransactionIntent struct {
	BaseIntent
	TransactionType string              `json:"transaction_type,omitempty"`
	Count           int                 `json:"count,omitempty"`
	DateRange       *DateRange          `json:"date_range,omitempty"`
	Filters         *TransactionFilters `json:"filters,omitempty"`
}

type QueryStatusIntent struct {
	BaseIntent
	Recipient     string `json:"recipient,omitempty"`
	Reference     string `json:"reference,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
	PaymentID     string `json:"payment_id,omitempty"`
	Date          string `json:"date,omitempty"`
}

type QueryBalanceIntent struct {
	BaseIntent
	Currency    string `json:"currency,omitempty"`
	AccountType string `json:"account_type,omitempty"`
}

type QueryHistoryIntent struct {
	BaseIntent
	DateRange *DateRange          `json:"date_range,omitempty"`
	Filters   *TransactionFilters `json:"filters,omitempty"`
	Limit     int                 `json:"limit,omitempty"`
}

type QuerySearchIntent struct {
	BaseIntent
	SearchTerm string         `json:"search_term"`
	Filters    *SearchFilters `json:"filters,omitempty"`
}

type QueryListIntent struct {
	BaseIntent
	EntityType string       `json:"entity_type"`
	Filters    *ListFilters `json:"filters,omitempty"`
	Limit      int          `json:"limit,omitempty"`
}

// MarshalIntent serializes an intent for transport or caching.
func MarshalIntent(intent Intent) ([]byte, error) {
	return json.Marshal(intent)
}

// UnmarshalIntent decodes a serialized intent into its concrete variant by
// inspecting the type discriminator.
func UnmarshalIntent(data []byte) (Intent, error) {
	var head struct {
		Type IntentType `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode intent type: %w", err)
	}

	var intent Intent
	switch head.Type {
	case IntentPayment:
		intent = &PaymentIntent{}
	case IntentQueryTransaction:
		intent = &QueryTransactionIntent{}
	case IntentQueryStatus:
		intent = &QueryStatusIntent{}
	case IntentQueryBalance:
		intent = &QueryBalanceIntent{}
	case IntentQueryHistory:
		intent = &QueryHistoryIntent{}
	case IntentQuerySearch:
		intent = &QuerySearchIntent{}
	case IntentQueryList:
		intent = &QueryListIntent{}
	default:
		return nil, fmt.Errorf("unknown intent type %q", head.Type)
	}

	if err := json.Unmarshal(data, intent); err != nil {
		return nil, fmt.Errorf("decode %s intent: %w", head.Type, err)
	}
	return intent, nil
}
