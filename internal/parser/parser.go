// Package parser assembles typed intent records from natural language input.
package parser

import (
	"context"
	"math"
	"strings"
	"time"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/common/errors"
	"payment-intent-parser/internal/common/logger"
	"payment-intent-parser/internal/common/metrics"
	"payment-intent-parser/internal/models"
	"payment-intent-parser/internal/parser/classify"
	"payment-intent-parser/internal/parser/extract"
	"payment-intent-parser/internal/parser/patterns"
)

// fallbackMaxInputLength applies when configuration is unavailable.
const fallbackMaxInputLength = 1000

// Enhancer is the optional post-processing step that fills gaps in a
// low-confidence intent via an external language model.
type Enhancer interface {
	Enhance(ctx context.Context, input string, intent models.Intent) (models.Intent, error)
}

// Service parses natural language into structured intents. All methods are
// safe for concurrent use; the only blocking work is an optional Enhancer
// call.
type Service struct {
	log      logger.Logger
	enhancer Enhancer
}

// Option customizes a Service.
type Option func(*Service)

// WithEnhancer installs the enhancement step.
func WithEnhancer(e Enhancer) Option {
	return func(s *Service) { s.enhancer = e }
}

// NewService builds a parse service.
func NewService(log logger.Logger, opts ...Option) *Service {
	if log == nil {
		log = logger.NewNop()
	}
	s := &Service{log: log}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Parse converts input into a typed intent. It fails with EMPTY_INPUT when
// the trimmed input is blank and INPUT_TOO_LONG past the configured maximum;
// otherwise it always produces a complete intent.
func (s *Service) Parse(ctx context.Context, input string) (models.Intent, error) {
	start := time.Now()

	normalized := strings.TrimSpace(input)
	if normalized == "" {
		metrics.ParseFailures.WithLabelValues(string(errors.ErrCodeEmptyInput)).Inc()
		return nil, errors.NewEmptyInputError()
	}

	maxLength := fallbackMaxInputLength
	if cfg, err := config.Get(); err == nil {
		maxLength = cfg.Parser.MaxInputLength
	}
	if len(normalized) > maxLength {
		metrics.ParseFailures.WithLabelValues(string(errors.ErrCodeInputTooLong)).Inc()
		return nil, errors.NewInputTooLongError(len(normalized), maxLength)
	}

	intentType := classify.Classify(normalized)
	baseConfidence := classify.Confidence(normalized, intentType)

	var intent models.Intent
	switch intentType {
	case models.IntentQueryTransaction:
		intent = s.parseTransactionQuery(normalized, baseConfidence)
	case models.IntentQueryStatus:
		intent = s.parseStatusQuery(normalized, baseConfidence)
	case models.IntentQueryBalance:
		intent = s.parseBalanceQuery(normalized, baseConfidence)
	case models.IntentQueryHistory:
		intent = s.parseHistoryQuery(normalized, baseConfidence)
	case models.IntentQuerySearch:
		intent = s.parseSearchQuery(normalized, baseConfidence)
	case models.IntentQueryList:
		intent = s.parseListQuery(normalized, baseConfidence)
	default:
		intent = s.parsePaymentIntent(normalized, baseConfidence)
	}

	intent, err := s.maybeEnhance(ctx, normalized, intent)
	if err != nil {
		metrics.ParseFailures.WithLabelValues(string(errors.AsStandard(err).Code)).Inc()
		return nil, err
	}

	metrics.ParseRequests.WithLabelValues(string(intent.IntentType())).Inc()
	metrics.ParseDuration.WithLabelValues(string(intent.IntentType())).Observe(time.Since(start).Seconds())

	s.log.Debug("parsed intent", map[string]interface{}{
		"intent_type": string(intent.IntentType()),
		"confidence":  intent.GetConfidence(),
	})
	return intent, nil
}

func (s *Service) parsePaymentIntent(input string, baseConfidence float64) models.Intent {
	ac := extract.AmountAndCurrency(input)
	recipient := extract.Recipient(input)
	country := extract.DestinationCountry(input)

	var corridor *string
	if ac.Currency != nil && country != nil {
		if c := patterns.Corridor(*ac.Currency, *country); c != "" {
			corridor = &c
		}
	}

	result := CalculateConfidence(ExtractedFields{
		Amount:             ac.Amount,
		Currency:           ac.Currency,
		Recipient:          recipient,
		DestinationCountry: country,
		Corridor:           corridor,
	})

	intent := &models.PaymentIntent{
		BaseIntent: models.BaseIntent{
			Type:       models.IntentPayment,
			Confidence: math.Max(baseConfidence, result.Confidence),
			RawInput:   input,
		},
		Amount:              ac.Amount,
		Currency:            ac.Currency,
		Recipient:           recipient,
		DestinationCountry:  country,
		Corridor:            corridor,
		Urgency:             extract.UrgencyLevel(input),
		Reference:           extract.Reference(input),
		MissingFields:       result.MissingFields,
		ClarificationNeeded: result.ClarificationNeeded,
	}
	return intent
}

func (s *Service) parseTransactionQuery(input string, baseConfidence float64) models.Intent {
	intent := extract.TransactionQuery(input)
	intent.BaseIntent = models.BaseIntent{
		Type:       models.IntentQueryTransaction,
		Confidence: baseConfidence,
		RawInput:   input,
	}
	return &intent
}

func (s *Service) parseStatusQuery(input string, baseConfidence float64) models.Intent {
	intent := extract.StatusQuery(input)

	// An identifying field makes the classification far more certain
	confidence := baseConfidence
	if intent.Recipient != "" || intent.Reference != "" || intent.TransactionID != "" || intent.PaymentID != "" {
		confidence = math.Min(0.95, baseConfidence+0.2)
	}

	intent.BaseIntent = models.BaseIntent{
		Type:       models.IntentQueryStatus,
		Confidence: confidence,
		RawInput:   input,
	}
	return &intent
}

func (s *Service) parseBalanceQuery(input string, baseConfidence float64) models.Intent {
	intent := extract.BalanceQuery(input)
	intent.BaseIntent = models.BaseIntent{
		Type:       models.IntentQueryBalance,
		Confidence: baseConfidence,
		RawInput:   input,
	}
	return &intent
}

func (s *Service) parseHistoryQuery(input string, baseConfidence float64) models.Intent {
	intent := extract.HistoryQuery(input)
	intent.BaseIntent = models.BaseIntent{
		Type:       models.IntentQueryHistory,
		Confidence: baseConfidence,
		RawInput:   input,
	}
	return &intent
}

func (s *Service) parseSearchQuery(input string, baseConfidence float64) models.Intent {
	intent := extract.SearchQuery(input)

	confidence := baseConfidence
	if intent.SearchTerm != "" && intent.SearchTerm != "all" {
		confidence = math.Min(0.95, baseConfidence+0.15)
	}

	intent.BaseIntent = models.BaseIntent{
		Type:       models.IntentQuerySearch,
		Confidence: confidence,
		RawInput:   input,
	}
	return &intent
}

func (s *Service) parseListQuery(input string, baseConfidence float64) models.Intent {
	intent := extract.ListQuery(input)
	intent.BaseIntent = models.BaseIntent{
		Type:       models.IntentQueryList,
		Confidence: baseConfidence,
		RawInput:   input,
	}
	return &intent
}

// maybeEnhance runs the enhancement step when one is installed. A nil intent
// with nil error means the enhancer declined (high confidence, disabled, or
// recovered failure) and the heuristic intent stands. An error surfaces only
// when the enhancer's fallback is disabled.
func (s *Service) maybeEnhance(ctx context.Context, input string, intent models.Intent) (models.Intent, error) {
	if s.enhancer == nil {
		return intent, nil
	}

	enhanced, err := s.enhancer.Enhance(ctx, input, intent)
	if err != nil {
		s.log.WithError(err).Warn("enhancement failed", map[string]interface{}{
			"intent_type": string(intent.IntentType()),
		})
		return nil, err
	}
	if enhanced == nil {
		return intent, nil
	}
	return enhanced, nil
}
