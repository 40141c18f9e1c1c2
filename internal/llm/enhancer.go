package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/xeipuuv/gojsonschema"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/common/errors"
	"payment-intent-parser/internal/common/logger"
	"payment-intent-parser/internal/common/metrics"
	"payment-intent-parser/internal/models"
)

// enhancedConfidenceCap bounds the post-enhancement confidence.
const enhancedConfidenceCap = 0.95

// patchSchema accepts any JSON object whose known fields carry the right
// types. A completion that is not an object, or types a field wrongly, is
// rejected before the merge.
const patchSchema = `{
	"type": "object",
	"properties": {
		"amount": {"type": ["number", "null"]},
		"currency": {"type": ["string", "null"]},
		"recipient": {"type": ["string", "null"]},
		"destination_country": {"type": ["string", "null"]},
		"corridor": {"type": ["string", "null"]},
		"urgency": {"type": "string", "enum": ["standard", "high"]},
		"reference": {"type": ["string", "null"]},
		"search_term": {"type": "string"},
		"entity_type": {"type": "string"},
		"transaction_type": {"type": "string"},
		"count": {"type": "integer"},
		"limit": {"type": "integer"}
	}
}`

var (
	patchSchemaLoader = gojsonschema.NewStringLoader(patchSchema)

	openingFence = regexp.MustCompile("(?i)^```(?:json)?\\s*")
	closingFence = regexp.MustCompile("\\s*```$")
)

// Enhancer fills gaps in low-confidence intents by consulting a
// text-completion backend and merging its JSON reply into the record.
type Enhancer struct {
	provider Provider
	cfg      config.LLMConfig
	log      logger.Logger
}

// NewEnhancer builds the enhancement step from configuration. The returned
// enhancer declines every request when no backend is usable.
func NewEnhancer(cfg config.LLMConfig, log logger.Logger) *Enhancer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Enhancer{
		provider: ConfiguredProvider(cfg),
		cfg:      cfg,
		log:      log,
	}
}

// NewEnhancerWithProvider injects an explicit backend. Test hook.
func NewEnhancerWithProvider(provider Provider, cfg config.LLMConfig, log logger.Logger) *Enhancer {
	if log == nil {
		log = logger.NewNop()
	}
	return &Enhancer{provider: provider, cfg: cfg, log: log}
}

// Available reports whether the enhancement step can run at all.
func (e *Enhancer) Available() bool {
	return e.cfg.Enabled && e.provider != nil && e.provider.IsConfigured()
}

// Enhance consults the backend when the intent's confidence is below the
// configured threshold. It returns the merged intent with confidence boosted
// by 0.2 (capped at 0.95), or nil when it declines or recovers from a
// failure. A provider error surfaces only when the fallback flag is off.
func (e *Enhancer) Enhance(ctx context.Context, input string, intent models.Intent) (models.Intent, error) {
	if intent.GetConfidence() >= e.cfg.ConfidenceThreshold {
		return nil, nil
	}
	if !e.Available() {
		return nil, nil
	}

	var prompt string
	if intent.IntentType() == models.IntentPayment {
		prompt = PaymentIntentPrompt(input, intent)
	} else {
		prompt = QueryIntentPrompt(input, intent)
	}

	response, err := e.call(ctx, prompt)
	if err != nil {
		if e.cfg.UseFallback {
			metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "fallback").Inc()
			e.log.WithError(err).Warn("enhancement call failed, using original intent", nil)
			return nil, nil
		}
		metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "error").Inc()
		return nil, err
	}

	patch, err := e.parsePatch(response)
	if err != nil {
		// A malformed completion is always recovered locally
		metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "unparsable").Inc()
		e.log.WithError(err).Warn("enhancement reply not usable, using original intent", nil)
		return nil, nil
	}

	merged, err := Merge(intent, patch)
	if err != nil {
		metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "unparsable").Inc()
		e.log.WithError(err).Warn("enhancement merge failed, using original intent", nil)
		return nil, nil
	}

	merged.SetConfidence(math.Min(enhancedConfidenceCap, intent.GetConfidence()+0.2))
	metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "success").Inc()
	return merged, nil
}

// FillMissingFields is a second enhancement entry point: same merge, but the
// confidence is left untouched. All failures are recovered into "no
// enhancement".
func (e *Enhancer) FillMissingFields(ctx context.Context, input string, intent models.Intent, missingFields []string) (models.Intent, error) {
	if !e.Available() || len(missingFields) == 0 {
		return nil, nil
	}

	response, err := e.call(ctx, FillMissingFieldsPrompt(input, intent, missingFields))
	if err != nil {
		metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "fallback").Inc()
		e.log.WithError(err).Warn("fill-missing-fields call failed", nil)
		return nil, nil
	}

	patch, err := e.parsePatch(response)
	if err != nil {
		metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "unparsable").Inc()
		e.log.WithError(err).Warn("fill-missing-fields reply not usable", nil)
		return nil, nil
	}

	merged, err := Merge(intent, patch)
	if err != nil {
		metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "unparsable").Inc()
		return nil, nil
	}

	merged.SetConfidence(intent.GetConfidence())
	metrics.LLMEnhancements.WithLabelValues(e.provider.Name(), "success").Inc()
	return merged, nil
}

func (e *Enhancer) call(ctx context.Context, prompt string) (string, error) {
	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(e.cfg.Timeout)*time.Millisecond)
		defer cancel()
	}
	return e.provider.Call(ctx, prompt, CallOptions{
		SystemPrompt: SystemPrompt,
		Temperature:  e.cfg.Temperature,
		MaxTokens:    e.cfg.MaxTokens,
	})
}

// parsePatch strips an optional markdown code fence, parses the completion as
// JSON and validates its shape.
func (e *Enhancer) parsePatch(response string) (map[string]interface{}, error) {
	jsonStr := strings.TrimSpace(response)
	jsonStr = openingFence.ReplaceAllString(jsonStr, "")
	jsonStr = closingFence.ReplaceAllString(jsonStr, "")
	jsonStr = strings.TrimSpace(jsonStr)

	result, err := gojsonschema.Validate(patchSchemaLoader, gojsonschema.NewStringLoader(jsonStr))
	if err != nil {
		return nil, errors.NewLLMResponseUnparsableError(err)
	}
	if !result.Valid() {
		var reasons []string
		for _, desc := range result.Errors() {
			reasons = append(reasons, desc.String())
		}
		return nil, errors.NewLLMResponseUnparsableError(fmt.Errorf("schema violation: %s", strings.Join(reasons, "; ")))
	}

	var patch map[string]interface{}
	if err := json.Unmarshal([]byte(jsonStr), &patch); err != nil {
		return nil, errors.NewLLMResponseUnparsableError(err)
	}
	return patch, nil
}

// Merge shallow-merges patch over base: patch fields win on collision, the
// type discriminator and raw input always come from base. The result is a
// fresh intent of the same concrete variant.
func Merge(base models.Intent, patch map[string]interface{}) (models.Intent, error) {
	baseJSON, err := json.Marshal(base)
	if err != nil {
		return nil, fmt.Errorf("marshal base intent: %w", err)
	}

	var record map[string]interface{}
	if err := json.Unmarshal(baseJSON, &record); err != nil {
		return nil, fmt.Errorf("decode base intent: %w", err)
	}

	for key, value := range patch {
		record[key] = value
	}
	record["type"] = string(base.IntentType())
	record["raw_input"] = base.GetRawInput()

	mergedJSON, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("marshal merged intent: %w", err)
	}
	return models.UnmarshalIntent(mergedJSON)
}
