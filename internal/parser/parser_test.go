package parser

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-intent-parser/internal/common/config"
	"payment-intent-parser/internal/common/errors"
	"payment-intent-parser/internal/common/logger"
	"payment-intent-parser/internal/models"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.Set(&config.Config{
		Parser: config.ParserConfig{
			MaxInputLength:  1000,
			DefaultCurrency: "USD",
			DefaultUrgency:  "standard",
		},
	})
	t.Cleanup(config.Reset)
}

func newTestService(opts ...Option) *Service {
	return NewService(logger.NewNop(), opts...)
}

func TestParse_FullPayment(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	intent, err := svc.Parse(context.Background(), "send $500 to John in Manila")
	require.NoError(t, err)

	payment, ok := intent.(*models.PaymentIntent)
	require.True(t, ok)

	assert.Equal(t, models.IntentPayment, payment.Type)
	require.NotNil(t, payment.Amount)
	assert.Equal(t, 500.0, *payment.Amount)
	require.NotNil(t, payment.Currency)
	assert.Equal(t, "USD", *payment.Currency)
	require.NotNil(t, payment.Recipient)
	assert.Equal(t, "John", *payment.Recipient)
	require.NotNil(t, payment.DestinationCountry)
	assert.Equal(t, "PH", *payment.DestinationCountry)
	require.NotNil(t, payment.Corridor)
	assert.Equal(t, "USD-PHP", *payment.Corridor)
	assert.Equal(t, models.UrgencyStandard, payment.Urgency)
	assert.Greater(t, payment.Confidence, 0.9)
	assert.Equal(t, "send $500 to John in Manila", payment.RawInput)
	assert.Empty(t, payment.MissingFields)
	assert.Empty(t, payment.ClarificationNeeded)
}

func TestParse_VaguePayment(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	intent, err := svc.Parse(context.Background(), "send some money to my friend")
	require.NoError(t, err)

	payment, ok := intent.(*models.PaymentIntent)
	require.True(t, ok)

	assert.Nil(t, payment.Amount)
	assert.Nil(t, payment.Currency)
	assert.Nil(t, payment.DestinationCountry)
	assert.Nil(t, payment.Corridor)
	require.NotNil(t, payment.Recipient)
	assert.Equal(t, "my friend", *payment.Recipient)
	assert.ElementsMatch(t, []string{"amount", "currency", "destination_country"}, payment.MissingFields)
	assert.Equal(t, "How much would you like to send and in what currency?", payment.ClarificationNeeded)
	// Final confidence is the classifier signal; the field score alone is 0.25
	assert.InDelta(t, 0.9, payment.Confidence, 1e-9)
}

func TestParse_EmptyInput(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := svc.Parse(context.Background(), input)
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.ErrCodeEmptyInput))
	}
}

func TestParse_InputTooLong(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	_, err := svc.Parse(context.Background(), strings.Repeat("a", 1001))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInputTooLong))
}

func TestParse_FallbackMaxLengthWithoutConfig(t *testing.T) {
	config.Reset()
	svc := newTestService()

	_, err := svc.Parse(context.Background(), strings.Repeat("a", 1001))
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeInputTooLong))
}

func TestParse_StatusQueryConfidenceBump(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	intent, err := svc.Parse(context.Background(), "did my payment to John go through")
	require.NoError(t, err)

	status, ok := intent.(*models.QueryStatusIntent)
	require.True(t, ok)
	assert.Equal(t, models.IntentQueryStatus, status.Type)
	assert.Equal(t, "John", status.Recipient)
	// Identifying field adds 0.2 over the classifier base
	assert.GreaterOrEqual(t, status.Confidence, 0.9)
	assert.LessOrEqual(t, status.Confidence, 0.95)
}

func TestParse_SearchQueryConfidenceBump(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	intent, err := svc.Parse(context.Background(), "find my payment to Maria")
	require.NoError(t, err)

	search, ok := intent.(*models.QuerySearchIntent)
	require.True(t, ok)
	assert.Equal(t, "Maria", search.SearchTerm)
	assert.GreaterOrEqual(t, search.Confidence, 0.85)
	assert.LessOrEqual(t, search.Confidence, 0.95)
}

func TestParse_QueryTypes(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	tests := []struct {
		input    string
		expected models.IntentType
	}{
		{"show me the last 5 transactions", models.IntentQueryTransaction},
		{"what is my balance", models.IntentQueryBalance},
		{"show my payment history", models.IntentQueryHistory},
		{"list all my transactions", models.IntentQueryList},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			intent, err := svc.Parse(context.Background(), tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, intent.IntentType())
			assert.GreaterOrEqual(t, intent.GetConfidence(), 0.0)
			assert.LessOrEqual(t, intent.GetConfidence(), 1.0)
		})
	}
}

func TestParse_Idempotent(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	first, err := svc.Parse(context.Background(), "send $500 to John in Manila")
	require.NoError(t, err)
	second, err := svc.Parse(context.Background(), "send $500 to John in Manila")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParse_TrimsInput(t *testing.T) {
	setTestConfig(t)
	svc := newTestService()

	intent, err := svc.Parse(context.Background(), "  send $100 to Maria  ")
	require.NoError(t, err)
	assert.Equal(t, "send $100 to Maria", intent.GetRawInput())
}

type fakeEnhancer struct {
	result models.Intent
	err    error
	calls  int
}

func (f *fakeEnhancer) Enhance(ctx context.Context, input string, intent models.Intent) (models.Intent, error) {
	f.calls++
	return f.result, f.err
}

func TestParse_EnhancerDeclines(t *testing.T) {
	setTestConfig(t)
	fake := &fakeEnhancer{}
	svc := newTestService(WithEnhancer(fake))

	intent, err := svc.Parse(context.Background(), "send $500 to John in Manila")
	require.NoError(t, err)

	assert.Equal(t, 1, fake.calls)
	// Declined enhancement keeps the heuristic result
	payment, ok := intent.(*models.PaymentIntent)
	require.True(t, ok)
	assert.Equal(t, 1.0, payment.Confidence)
}

func TestParse_EnhancerReplaces(t *testing.T) {
	setTestConfig(t)
	enhanced := &models.PaymentIntent{
		BaseIntent: models.BaseIntent{
			Type:       models.IntentPayment,
			Confidence: 0.9,
			RawInput:   "send some money to my friend",
		},
		Amount: floatPtr(250),
	}
	fake := &fakeEnhancer{result: enhanced}
	svc := newTestService(WithEnhancer(fake))

	intent, err := svc.Parse(context.Background(), "send some money to my friend")
	require.NoError(t, err)
	assert.Same(t, enhanced, intent)
}

func TestParse_EnhancerErrorPropagates(t *testing.T) {
	setTestConfig(t)
	fake := &fakeEnhancer{err: errors.NewLLMProviderError("openai", fmt.Errorf("connection refused"))}
	svc := newTestService(WithEnhancer(fake))

	_, err := svc.Parse(context.Background(), "send some money to my friend")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeLLMProviderError))
}
