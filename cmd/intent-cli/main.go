// cmd/intent-cli/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/common/logger"
	"payment-intent-parser/internal/models"
	"payment-intent-parser/internal/parser"
)

const usage = `Intent Parser CLI

Usage:
  intent-cli "send $500 to John in Manila"
  intent-cli --json "pay my sister 200 euros"
  echo "send money" | intent-cli

Options:
  --json, -j    Output as JSON
  --help, -h    Show this help message
`

func main() {
	args := os.Args[1:]

	jsonOutput := false
	var inputArgs []string
	for _, arg := range args {
		switch arg {
		case "--help", "-h":
			fmt.Print(usage)
			os.Exit(0)
		case "--json", "-j":
			jsonOutput = true
		default:
			inputArgs = append(inputArgs, arg)
		}
	}

	input := strings.Join(inputArgs, " ")
	if input == "" {
		if stat, err := os.Stdin.Stat(); err != nil || stat.Mode()&os.ModeCharDevice != 0 {
			fmt.Print(usage)
			os.Exit(1)
		}
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading stdin: %v\n", err)
			os.Exit(1)
		}
		input = strings.TrimSpace(string(data))
		if input == "" {
			fmt.Fprintln(os.Stderr, "Error: No input provided via stdin")
			os.Exit(1)
		}
	}

	if _, err := config.Load(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: Could not load config, using defaults")
	}

	svc := parser.NewService(logger.NewNop())
	intent, err := svc.Parse(context.Background(), input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing intent: %v\n", err)
		os.Exit(1)
	}

	if jsonOutput {
		out, err := json.MarshalIndent(models.ParseResponse{
			Success:  true,
			Intent:   intent,
			RawInput: input,
			ParsedAt: time.Now().UTC().Format(time.RFC3339),
		}, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding result: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(out))
		return
	}

	displayIntent(intent, input)
}

var intentTypeLabels = map[models.IntentType]string{
	models.IntentPayment:          "Payment Intent",
	models.IntentQueryTransaction: "Transaction Query",
	models.IntentQueryStatus:      "Status Query",
	models.IntentQueryBalance:     "Balance Query",
	models.IntentQueryHistory:     "History Query",
	models.IntentQuerySearch:      "Search Query",
	models.IntentQueryList:        "List Query",
}

func displayIntent(intent models.Intent, input string) {
	label := intentTypeLabels[intent.IntentType()]
	if label == "" {
		label = "Intent"
	}

	fmt.Printf("\nParsed %s\n\n", label)
	fmt.Printf("Input: %q\n\n", input)
	fmt.Printf("Intent Type: %s\n", intent.IntentType())
	fmt.Printf("Confidence:  %.0f%%\n\n", intent.GetConfidence()*100)

	switch v := intent.(type) {
	case *models.PaymentIntent:
		displayPayment(v)
	case *models.QueryTransactionIntent:
		displayTransactionQuery(v)
	case *models.QueryStatusIntent:
		displayStatusQuery(v)
	case *models.QueryBalanceIntent:
		displayBalanceQuery(v)
	case *models.QueryHistoryIntent:
		displayHistoryQuery(v)
	case *models.QuerySearchIntent:
		displaySearchQuery(v)
	case *models.QueryListIntent:
		displayListQuery(v)
	}
	fmt.Println()
}

func field(name, value string) {
	if value == "" {
		value = "(not specified)"
	}
	fmt.Printf("%-13s %s\n", name+":", value)
}

func displayPayment(intent *models.PaymentIntent) {
	amount := ""
	if intent.Amount != nil {
		amount = strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", *intent.Amount), "0"), ".")
	}
	field("Amount", amount)
	field("Currency", strVal(intent.Currency))
	field("Recipient", strVal(intent.Recipient))
	field("Destination", strVal(intent.DestinationCountry))
	field("Corridor", strVal(intent.Corridor))
	field("Urgency", string(intent.Urgency))
	if intent.Reference != "" {
		field("Reference", intent.Reference)
	}
	if len(intent.MissingFields) > 0 {
		fmt.Printf("\nMissing Fields: %s\n", strings.Join(intent.MissingFields, ", "))
	}
	if intent.ClarificationNeeded != "" {
		fmt.Printf("\n%s\n", intent.ClarificationNeeded)
	}
}

func displayTransactionQuery(intent *models.QueryTransactionIntent) {
	if intent.TransactionType != "" {
		field("Type", intent.TransactionType)
	}
	if intent.Count > 0 {
		field("Count", fmt.Sprintf("%d", intent.Count))
	}
	displayDateRange(intent.DateRange)
	displayTransactionFilters(intent.Filters)
}

func displayStatusQuery(intent *models.QueryStatusIntent) {
	if intent.Recipient != "" {
		field("Recipient", intent.Recipient)
	}
	if intent.Reference != "" {
		field("Reference", intent.Reference)
	}
	if intent.TransactionID != "" {
		field("Transaction", intent.TransactionID)
	}
	if intent.PaymentID != "" {
		field("Payment", intent.PaymentID)
	}
	if intent.Date != "" {
		field("Date", intent.Date)
	}
	if intent.Recipient == "" && intent.Reference == "" && intent.TransactionID == "" && intent.PaymentID == "" {
		fmt.Println("No specific identifier found")
	}
}

func displayBalanceQuery(intent *models.QueryBalanceIntent) {
	if intent.Currency != "" {
		field("Currency", intent.Currency)
	}
	if intent.AccountType != "" {
		field("Account Type", intent.AccountType)
	}
}

func displayHistoryQuery(intent *models.QueryHistoryIntent) {
	displayDateRange(intent.DateRange)
	if intent.Limit > 0 {
		field("Limit", fmt.Sprintf("%d", intent.Limit))
	}
	displayTransactionFilters(intent.Filters)
}

func displaySearchQuery(intent *models.QuerySearchIntent) {
	field("Search Term", intent.SearchTerm)
	if intent.Filters != nil {
		fmt.Println("\nFilters:")
		if intent.Filters.Amount > 0 {
			fmt.Printf("  Amount:   %v\n", intent.Filters.Amount)
		}
		if intent.Filters.Currency != "" {
			fmt.Printf("  Currency: %s\n", intent.Filters.Currency)
		}
		if intent.Filters.Date != "" {
			fmt.Printf("  Date:     %s\n", intent.Filters.Date)
		}
	}
}

func displayListQuery(intent *models.QueryListIntent) {
	field("Entity Type", intent.EntityType)
	if intent.Limit > 0 {
		field("Limit", fmt.Sprintf("%d", intent.Limit))
	}
	if intent.Filters != nil {
		fmt.Println("\nFilters:")
		if intent.Filters.Status != "" {
			fmt.Printf("  Status:   %s\n", intent.Filters.Status)
		}
		if intent.Filters.Currency != "" {
			fmt.Printf("  Currency: %s\n", intent.Filters.Currency)
		}
		if intent.Filters.Date != "" {
			fmt.Printf("  Date:     %s\n", intent.Filters.Date)
		}
	}
}

func displayDateRange(dr *models.DateRange) {
	if dr == nil {
		return
	}
	if dr.Start != "" {
		field("Start Date", dr.Start)
	}
	if dr.End != "" {
		field("End Date", dr.End)
	}
}

func displayTransactionFilters(filters *models.TransactionFilters) {
	if filters == nil {
		return
	}
	fmt.Println("\nFilters:")
	if filters.Recipient != "" {
		fmt.Printf("  Recipient: %s\n", filters.Recipient)
	}
	if filters.Amount > 0 {
		fmt.Printf("  Amount:    %v\n", filters.Amount)
	}
	if filters.Currency != "" {
		fmt.Printf("  Currency:  %s\n", filters.Currency)
	}
	if filters.Status != "" {
		fmt.Printf("  Status:    %s\n", filters.Status)
	}
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
