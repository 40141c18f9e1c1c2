package llm

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/models"
)

type fakeProvider struct {
	response   string
	err        error
	configured bool
	calls      int
	lastPrompt string
	lastOpts   CallOptions
}

func (f *fakeProvider) Name() string       { return "fake" }
func (f *fakeProvider) IsConfigured() bool { return f.configured }

func (f *fakeProvider) Call(ctx context.Context, prompt string, opts CallOptions) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	f.lastOpts = opts
	return f.response, f.err
}

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		Enabled:             true,
		Provider:            "fake",
		ConfidenceThreshold: 0.6,
		Temperature:         0.3,
		MaxTokens:           500,
		UseFallback:         true,
		Timeout:             1000,
	}
}

func lowConfidencePayment() *models.PaymentIntent {
	recipient := "my friend"
	return &models.PaymentIntent{
		BaseIntent: models.BaseIntent{
			Type:       models.IntentPayment,
			Confidence: 0.25,
			RawInput:   "send some money to my friend",
		},
		Recipient: &recipient,
		Urgency:   models.UrgencyStandard,
	}
}

func TestEnhance_DeclinesAboveThreshold(t *testing.T) {
	provider := &fakeProvider{configured: true}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	intent := lowConfidencePayment()
	intent.Confidence = 0.8

	enhanced, err := enhancer.Enhance(context.Background(), intent.RawInput, intent)
	require.NoError(t, err)
	assert.Nil(t, enhanced)
	assert.Zero(t, provider.calls)
}

func TestEnhance_DeclinesWhenDisabled(t *testing.T) {
	provider := &fakeProvider{configured: true}
	cfg := testLLMConfig()
	cfg.Enabled = false
	enhancer := NewEnhancerWithProvider(provider, cfg, nil)

	enhanced, err := enhancer.Enhance(context.Background(), "send money", lowConfidencePayment())
	require.NoError(t, err)
	assert.Nil(t, enhanced)
	assert.Zero(t, provider.calls)
}

func TestEnhance_DeclinesWhenProviderUnconfigured(t *testing.T) {
	provider := &fakeProvider{configured: false}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	enhanced, err := enhancer.Enhance(context.Background(), "send money", lowConfidencePayment())
	require.NoError(t, err)
	assert.Nil(t, enhanced)
	assert.Zero(t, provider.calls)
}

func TestEnhance_MergesPatchAndBoostsConfidence(t *testing.T) {
	provider := &fakeProvider{
		configured: true,
		response:   `{"amount": 250, "currency": "USD", "recipient": "Alex"}`,
	}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	base := lowConfidencePayment()
	enhanced, err := enhancer.Enhance(context.Background(), base.RawInput, base)
	require.NoError(t, err)
	require.NotNil(t, enhanced)

	payment, ok := enhanced.(*models.PaymentIntent)
	require.True(t, ok)
	require.NotNil(t, payment.Amount)
	assert.Equal(t, 250.0, *payment.Amount)
	require.NotNil(t, payment.Currency)
	assert.Equal(t, "USD", *payment.Currency)
	// Patch wins over the heuristic recipient
	require.NotNil(t, payment.Recipient)
	assert.Equal(t, "Alex", *payment.Recipient)
	assert.Equal(t, models.IntentPayment, payment.Type)
	assert.Equal(t, base.RawInput, payment.RawInput)
	assert.InDelta(t, 0.45, payment.Confidence, 1e-9)
}

func TestEnhance_StripsCodeFence(t *testing.T) {
	provider := &fakeProvider{
		configured: true,
		response:   "```json\n{\"amount\": 100}\n```",
	}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	enhanced, err := enhancer.Enhance(context.Background(), "send money", lowConfidencePayment())
	require.NoError(t, err)
	require.NotNil(t, enhanced)

	payment := enhanced.(*models.PaymentIntent)
	require.NotNil(t, payment.Amount)
	assert.Equal(t, 100.0, *payment.Amount)
}

func TestEnhance_ConfidenceCap(t *testing.T) {
	provider := &fakeProvider{configured: true, response: `{"amount": 100}`}
	cfg := testLLMConfig()
	cfg.ConfidenceThreshold = 0.9
	enhancer := NewEnhancerWithProvider(provider, cfg, nil)

	intent := lowConfidencePayment()
	intent.Confidence = 0.85

	enhanced, err := enhancer.Enhance(context.Background(), intent.RawInput, intent)
	require.NoError(t, err)
	require.NotNil(t, enhanced)
	assert.Equal(t, 0.95, enhanced.GetConfidence())
}

func TestEnhance_ProviderErrorWithFallback(t *testing.T) {
	provider := &fakeProvider{configured: true, err: fmt.Errorf("connection refused")}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	enhanced, err := enhancer.Enhance(context.Background(), "send money", lowConfidencePayment())
	require.NoError(t, err)
	assert.Nil(t, enhanced)
	assert.Equal(t, 1, provider.calls)
}

func TestEnhance_ProviderErrorWithoutFallback(t *testing.T) {
	callErr := fmt.Errorf("connection refused")
	provider := &fakeProvider{configured: true, err: callErr}
	cfg := testLLMConfig()
	cfg.UseFallback = false
	enhancer := NewEnhancerWithProvider(provider, cfg, nil)

	enhanced, err := enhancer.Enhance(context.Background(), "send money", lowConfidencePayment())
	require.Error(t, err)
	assert.Equal(t, callErr, err)
	assert.Nil(t, enhanced)
}

func TestEnhance_UnparsableResponseRecovered(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"plain text", "sorry, I cannot help with that"},
		{"wrong field type", `{"amount": "lots"}`},
		{"not an object", `[1, 2, 3]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{configured: true, response: tt.response}
			enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

			enhanced, err := enhancer.Enhance(context.Background(), "send money", lowConfidencePayment())
			require.NoError(t, err)
			assert.Nil(t, enhanced)
		})
	}
}

func TestEnhance_ForwardsCallOptions(t *testing.T) {
	provider := &fakeProvider{configured: true, response: `{"amount": 100}`}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	_, err := enhancer.Enhance(context.Background(), "send money", lowConfidencePayment())
	require.NoError(t, err)

	assert.Equal(t, SystemPrompt, provider.lastOpts.SystemPrompt)
	assert.Equal(t, 0.3, provider.lastOpts.Temperature)
	assert.Equal(t, 500, provider.lastOpts.MaxTokens)
	assert.Contains(t, provider.lastPrompt, "send money")
}

func TestFillMissingFields_KeepsConfidence(t *testing.T) {
	provider := &fakeProvider{configured: true, response: `{"amount": 75}`}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	base := lowConfidencePayment()
	filled, err := enhancer.FillMissingFields(context.Background(), base.RawInput, base, []string{"amount"})
	require.NoError(t, err)
	require.NotNil(t, filled)

	payment := filled.(*models.PaymentIntent)
	require.NotNil(t, payment.Amount)
	assert.Equal(t, 75.0, *payment.Amount)
	assert.Equal(t, 0.25, filled.GetConfidence())
}

func TestFillMissingFields_DeclinesWithNothingMissing(t *testing.T) {
	provider := &fakeProvider{configured: true, response: `{"amount": 75}`}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	filled, err := enhancer.FillMissingFields(context.Background(), "send money", lowConfidencePayment(), nil)
	require.NoError(t, err)
	assert.Nil(t, filled)
	assert.Zero(t, provider.calls)
}

func TestFillMissingFields_RecoversProviderError(t *testing.T) {
	provider := &fakeProvider{configured: true, err: fmt.Errorf("timeout")}
	enhancer := NewEnhancerWithProvider(provider, testLLMConfig(), nil)

	filled, err := enhancer.FillMissingFields(context.Background(), "send money", lowConfidencePayment(), []string{"amount"})
	require.NoError(t, err)
	assert.Nil(t, filled)
}

func TestMerge_PreservesTypeAndRawInput(t *testing.T) {
	base := lowConfidencePayment()
	merged, err := Merge(base, map[string]interface{}{
		"type":      "query_balance",
		"raw_input": "something else",
		"amount":    float64(100),
	})
	require.NoError(t, err)

	assert.Equal(t, models.IntentPayment, merged.IntentType())
	assert.Equal(t, base.RawInput, merged.GetRawInput())
	payment := merged.(*models.PaymentIntent)
	require.NotNil(t, payment.Amount)
	assert.Equal(t, 100.0, *payment.Amount)
}
