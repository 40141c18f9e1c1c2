// Package extract holds the pure field extractors. Every function scans the
// raw input for one semantic field; none of them mutate shared state, so all
// are safe for concurrent use.
package extract

import (
	"strconv"
	"strings"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/parser/patterns"
)

// AmountCurrency is the result of the amount/currency scan. Nil means the
// field was not found.
type AmountCurrency struct {
	Amount   *float64
	Currency *string
}

var separatorReplacer = strings.NewReplacer(",", "", " ", "")

// AmountAndCurrency extracts the payment amount and currency from input.
//
// The currency keyword table runs first, independent of any amount. Then the
// per-currency amount patterns run; among their matches the largest numeric
// value wins, and a currency symbol or word inside the matched span overrides
// nothing set by the keyword pass but fills it when empty. When no pattern
// matched, the largest bare number anywhere in the string is used. An amount
// with no currency falls back to USD when a "$" appears anywhere, else to the
// configured default currency.
func AmountAndCurrency(input string) AmountCurrency {
	var result AmountCurrency

	for _, cp := range patterns.CurrencyPatterns {
		if cp.Pattern.MatchString(input) {
			code := cp.Code
			result.Currency = &code
			break
		}
	}

	var (
		bestAmount   float64
		bestCurrency string
		found        bool
	)

	for _, pattern := range patterns.AmountPatterns {
		match := pattern.FindStringSubmatch(input)
		if match == nil || match[1] == "" {
			continue
		}
		parsed, err := strconv.ParseFloat(separatorReplacer.Replace(match[1]), 64)
		if err != nil || parsed <= 0 {
			continue
		}

		context := strings.ToLower(match[0])
		inferred := ""
		switch {
		case strings.Contains(context, "$") || strings.Contains(context, "dollar"):
			inferred = "USD"
		case strings.Contains(context, "€") || strings.Contains(context, "euro"):
			inferred = "EUR"
		case strings.Contains(context, "£") || strings.Contains(context, "pound"):
			inferred = "GBP"
		case strings.Contains(context, "usdc"):
			inferred = "USDC"
		}

		// Keep the largest amount found
		if !found || parsed > bestAmount {
			bestAmount = parsed
			bestCurrency = inferred
			found = true
		}
	}

	if !found {
		maxAmount := 0.0
		for _, match := range patterns.BareNumberPattern.FindAllStringSubmatch(input, -1) {
			parsed, err := strconv.ParseFloat(separatorReplacer.Replace(match[1]), 64)
			if err != nil {
				continue
			}
			if parsed > maxAmount {
				maxAmount = parsed
			}
		}
		if maxAmount > 0 {
			bestAmount = maxAmount
			found = true
		}
	}

	if found {
		result.Amount = &bestAmount
		if result.Currency == nil && bestCurrency != "" {
			result.Currency = &bestCurrency
		}
	}

	if result.Amount != nil && result.Currency == nil {
		code := "USD"
		if !strings.Contains(input, "$") {
			if cfg, err := config.Get(); err == nil {
				code = cfg.Parser.DefaultCurrency
			}
		}
		result.Currency = &code
	}

	return result
}
