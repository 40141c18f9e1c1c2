package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"payment-intent-parser/internal/models"
)

func newTestCache(t *testing.T) (*ParseCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewWithClient(client, 5*time.Minute)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func samplePayment() *models.PaymentIntent {
	amount := 500.0
	currency := "USD"
	return &models.PaymentIntent{
		BaseIntent: models.BaseIntent{
			Type:       models.IntentPayment,
			Confidence: 1.0,
			RawInput:   "send $500 to John in Manila",
		},
		Amount:   &amount,
		Currency: &currency,
		Urgency:  models.UrgencyStandard,
	}
}

func TestParseCache_Miss(t *testing.T) {
	c, _ := newTestCache(t)

	intent, err := c.Get(context.Background(), "send $500 to John")
	require.NoError(t, err)
	assert.Nil(t, intent)
}

func TestParseCache_RoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	original := samplePayment()

	require.NoError(t, c.Set(ctx, original.RawInput, original))

	cached, err := c.Get(ctx, original.RawInput)
	require.NoError(t, err)
	require.NotNil(t, cached)

	payment, ok := cached.(*models.PaymentIntent)
	require.True(t, ok)
	assert.Equal(t, original, payment)
}

func TestParseCache_KeyIgnoresSurroundingWhitespace(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "send $500 to John", samplePayment()))

	cached, err := c.Get(ctx, "  send $500 to John  ")
	require.NoError(t, err)
	assert.NotNil(t, cached)
}

func TestParseCache_EntryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewWithClient(client, time.Second)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "send $500 to John", samplePayment()))
	mr.FastForward(2 * time.Second)

	cached, err := c.Get(ctx, "send $500 to John")
	require.NoError(t, err)
	assert.Nil(t, cached)
}

func TestParseCache_CorruptEntryDropped(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(cacheKey("send $500 to John"), "not json"))

	cached, err := c.Get(ctx, "send $500 to John")
	require.NoError(t, err)
	assert.Nil(t, cached)

	// The bad entry is deleted so the next write starts clean
	assert.False(t, mr.Exists(cacheKey("send $500 to John")))
}

func TestParseCache_DistinctInputsDistinctKeys(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "send $500 to John", samplePayment()))

	cached, err := c.Get(ctx, "send $600 to John")
	require.NoError(t, err)
	assert.Nil(t, cached)
}
