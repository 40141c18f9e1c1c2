package extract

import (
	"regexp"
	"strconv"
	"strings"

	"payment-intent-parser/internal/models"
)

var (
	lastLatestRecent = regexp.MustCompile(`(?i)\b(last|latest|recent)\b`)
	firstOldest      = regexp.MustCompile(`(?i)\b(first|oldest)\b`)
	wordLast         = regexp.MustCompile(`(?i)\blast\b`)
	wordLatest       = regexp.MustCompile(`(?i)\blatest\b`)
	wordFirst        = regexp.MustCompile(`(?i)\bfirst\b`)
	countAfterType   = regexp.MustCompile(`(?i)\b(?:last|latest|recent|first|oldest)\s+(\d+)`)
	historyLimit     = regexp.MustCompile(`(?i)\b(?:last|latest|recent)\s+(\d+)`)
	listLimit        = regexp.MustCompile(`(?i)\b(?:last|latest|recent|first)\s+(\d+)`)

	transactionIDMarker = regexp.MustCompile(`(?i)\b(?:transaction|transfer|wire)[\s\-_]?(?:id|number|#|no\.?)[\s\-:]?\s*([a-zA-Z0-9\-]{3,})`)
	paymentIDMarker     = regexp.MustCompile(`(?i)\b(?:payment|pay)[\s\-_]?(?:id|number|#|no\.?)[\s\-:]?\s*([a-zA-Z0-9\-]{3,})`)
	looseIDAfterNoun    = regexp.MustCompile(`(?i)\b(transaction|payment|transfer|wire)\s+([a-zA-Z0-9\-]{3,})`)

	accountTypeWord = regexp.MustCompile(`(?i)\b(savings|checking|current|business|personal)\s+account`)
	searchObject    = regexp.MustCompile(`(?i)\b(?:find|search|look\s+for|locate)\s+(?:payment|transaction|transfer|wire)\s+(?:to|for)\s+(.+?)(?:\s|$)`)

	listRecipients = regexp.MustCompile(`(?i)\b(recipient|contact|person|people)\b`)
	listAccounts   = regexp.MustCompile(`(?i)\b(account|accounts)\b`)
	listPayments   = regexp.MustCompile(`(?i)\b(payment|payments)\b`)

	pendingWords   = regexp.MustCompile(`(?i)\b(pending|processing|in\s+progress)\b`)
	completedWords = regexp.MustCompile(`(?i)\b(completed|done|finished|successful|success)\b`)
	failedWords    = regexp.MustCompile(`(?i)\b(failed|error|unsuccessful)\b`)
)

// StatusWord maps the shared status vocabulary onto the canonical status
// values, or "" when no status word is present.
func StatusWord(input string) string {
	switch {
	case pendingWords.MatchString(input):
		return "pending"
	case completedWords.MatchString(input):
		return "completed"
	case failedWords.MatchString(input):
		return "failed"
	}
	return ""
}

// TransactionQuery extracts the optional fields of a transaction query:
// which transaction (last/first/...), how many, a date range and filters.
func TransactionQuery(input string) models.QueryTransactionIntent {
	intent := models.QueryTransactionIntent{}

	if lastLatestRecent.MatchString(input) {
		switch {
		case wordLast.MatchString(input):
			intent.TransactionType = "last"
		case wordLatest.MatchString(input):
			intent.TransactionType = "latest"
		default:
			intent.TransactionType = "recent"
		}
	} else if firstOldest.MatchString(input) {
		if wordFirst.MatchString(input) {
			intent.TransactionType = "first"
		} else {
			intent.TransactionType = "oldest"
		}
	}

	if match := countAfterType.FindStringSubmatch(input); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			intent.Count = n
		}
	}
	intent.DateRange = DateRange(input)
	intent.Filters = transactionFilters(input, false)
	return intent
}

// transactionFilters builds the shared filter bag. The status filter is only
// meaningful for history queries; transaction queries identify a single
// transaction by position instead.
func transactionFilters(input string, withStatus bool) *models.TransactionFilters {
	filters := models.TransactionFilters{}
	if recipient := Recipient(input); recipient != nil {
		filters.Recipient = *recipient
	}
	ac := AmountAndCurrency(input)
	if ac.Amount != nil {
		filters.Amount = *ac.Amount
	}
	if ac.Currency != nil {
		filters.Currency = *ac.Currency
	}
	if withStatus {
		filters.Status = StatusWord(input)
	}

	if filters == (models.TransactionFilters{}) {
		return nil
	}
	return &filters
}

// StatusQuery extracts the identifiers a status query can reference. Explicit
// id markers win; the loose "transaction <token>" form rejects the
// prepositions that would otherwise capture as ids.
func StatusQuery(input string) models.QueryStatusIntent {
	intent := models.QueryStatusIntent{}

	if recipient := Recipient(input); recipient != nil {
		intent.Recipient = *recipient
	}
	intent.Reference = Reference(input)

	if match := transactionIDMarker.FindStringSubmatch(input); match != nil {
		intent.TransactionID = match[1]
	}
	if match := paymentIDMarker.FindStringSubmatch(input); match != nil {
		intent.PaymentID = match[1]
	}
	if intent.TransactionID == "" && intent.PaymentID == "" {
		if match := looseIDAfterNoun.FindStringSubmatch(input); match != nil {
			token := match[2]
			lower := strings.ToLower(token)
			if lower != "to" && lower != "for" {
				if strings.Contains(strings.ToLower(match[1]), "payment") {
					intent.PaymentID = token
				} else {
					intent.TransactionID = token
				}
			}
		}
	}

	intent.Date = Date(input)
	return intent
}

// BalanceQuery extracts the optional currency and account type.
func BalanceQuery(input string) models.QueryBalanceIntent {
	intent := models.QueryBalanceIntent{}
	if currency := AmountAndCurrency(input).Currency; currency != nil {
		intent.Currency = *currency
	}
	if match := accountTypeWord.FindStringSubmatch(input); match != nil {
		intent.AccountType = strings.ToLower(match[1])
	}
	return intent
}

// HistoryQuery extracts the date range, filters and result limit.
func HistoryQuery(input string) models.QueryHistoryIntent {
	intent := models.QueryHistoryIntent{}
	intent.DateRange = DateRange(input)
	intent.Filters = transactionFilters(input, true)
	if match := historyLimit.FindStringSubmatch(input); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			intent.Limit = n
		}
	}
	return intent
}

// SearchQuery extracts the search term and filters. The term prefers the
// recipient, then the reference, then the object phrase of a find/search
// clause, and finally the literal "all".
func SearchQuery(input string) models.QuerySearchIntent {
	intent := models.QuerySearchIntent{SearchTerm: "all"}

	recipient := Recipient(input)
	reference := Reference(input)

	switch {
	case recipient != nil:
		intent.SearchTerm = *recipient
	case reference != "":
		intent.SearchTerm = reference
	default:
		if match := searchObject.FindStringSubmatch(input); match != nil {
			if term := strings.TrimSpace(match[1]); term != "" {
				intent.SearchTerm = term
			}
		}
	}

	filters := models.SearchFilters{}
	ac := AmountAndCurrency(input)
	if ac.Amount != nil {
		filters.Amount = *ac.Amount
	}
	if ac.Currency != nil {
		filters.Currency = *ac.Currency
	}
	filters.Date = Date(input)
	if filters != (models.SearchFilters{}) {
		intent.Filters = &filters
	}
	return intent
}

// ListQuery infers the listed entity type from keyword presence and extracts
// status/currency/date filters plus a limit.
func ListQuery(input string) models.QueryListIntent {
	intent := models.QueryListIntent{EntityType: "transactions"}

	switch {
	case listRecipients.MatchString(input):
		intent.EntityType = "recipients"
	case listAccounts.MatchString(input):
		intent.EntityType = "accounts"
	case listPayments.MatchString(input):
		intent.EntityType = "payments"
	}

	filters := models.ListFilters{
		Status: StatusWord(input),
		Date:   Date(input),
	}
	if currency := AmountAndCurrency(input).Currency; currency != nil {
		filters.Currency = *currency
	}
	if filters != (models.ListFilters{}) {
		intent.Filters = &filters
	}

	if match := listLimit.FindStringSubmatch(input); match != nil {
		if n, err := strconv.Atoi(match[1]); err == nil {
			intent.Limit = n
		}
	}
	return intent
}
