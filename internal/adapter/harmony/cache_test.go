package harmony

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/data-wizards/aqi-service/internal/domain"
	"github.com/data-wizards/aqi-service/internal/observability"
)

// --- mock for cache tests ---

type countingProvider struct {
	calls  int
	result domain.Concentration
	err    error
}

func (m *countingProvider) Fetch(_ context.Context, _, _ float64, _ domain.Pollutant) (domain.Concentration, error) {
	m.calls++
	return m.result, m.err
}

// --- CachedProvider tests ---

func TestCachedProvider_CacheHit(t *testing.T) {
	inner := &countingProvider{result: domain.Measured(1.06e17)}
	cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

	r1, err := cached.Fetch(context.Background(), 30.2672, -97.7431, domain.NO2)
	require.NoError(t, err)
	assert.Equal(t, 1.06e17, r1.Value)

	r2, err := cached.Fetch(context.Background(), 30.2672, -97.7431, domain.NO2)
	require.NoError(t, err)
	assert.Equal(t, 1.06e17, r2.Value)

	assert.Equal(t, 1, inner.calls, "should only call inner once")
}

func TestCachedProvider_KeyIncludesPollutant(t *testing.T) {
	inner := &countingProvider{result: domain.Measured(42)}
	cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

	_, err := cached.Fetch(context.Background(), 30.0, -97.0, domain.NO2)
	require.NoError(t, err)
	_, err = cached.Fetch(context.Background(), 30.0, -97.0, domain.HCHO)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestCachedProvider_NearbyCoordinatesShareEntry(t *testing.T) {
	inner := &countingProvider{result: domain.Measured(42)}
	cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

	_, err := cached.Fetch(context.Background(), 30.2671, -97.7431, domain.O3)
	require.NoError(t, err)
	_, err = cached.Fetch(context.Background(), 30.2674, -97.7432, domain.O3)
	require.NoError(t, err)

	assert.Equal(t, 1, inner.calls, "coordinates rounding to the same key should share one fetch")
}

func TestCachedProvider_DoesNotCacheMissing(t *testing.T) {
	inner := &countingProvider{result: domain.Missing()}
	cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

	for i := 0; i < 3; i++ {
		got, err := cached.Fetch(context.Background(), 30.0, -97.0, domain.NO2)
		require.NoError(t, err)
		assert.False(t, got.Valid)
	}

	assert.Equal(t, 3, inner.calls, "missing results must stay retryable")
}

func TestCachedProvider_DoesNotCacheErrors(t *testing.T) {
	inner := &countingProvider{err: errors.New("harmony unavailable")}
	cached := NewCachedProvider(inner, 10, observability.NewMetricsForTesting())

	_, err := cached.Fetch(context.Background(), 30.0, -97.0, domain.NO2)
	require.Error(t, err)
	_, err = cached.Fetch(context.Background(), 30.0, -97.0, domain.NO2)
	require.Error(t, err)

	assert.Equal(t, 2, inner.calls)
}

func TestLRUCache_Eviction(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.Measured(1))
	c.put("b", domain.Measured(2))

	// Touch "a" so "b" becomes least recently used.
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", domain.Measured(3))

	_, ok = c.get("b")
	assert.False(t, ok, "least recently used entry should be evicted")
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestLRUCache_UpdateExisting(t *testing.T) {
	c := newLRUCache(2)

	c.put("a", domain.Measured(1))
	c.put("a", domain.Measured(9))

	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 9.0, got.Value)
	assert.Len(t, c.entries, 1)
}

func TestLRUCache_ManyEntries(t *testing.T) {
	c := newLRUCache(50)

	for i := 0; i < 200; i++ {
		c.put(fmt.Sprintf("key-%d", i), domain.Measured(float64(i)))
	}

	assert.Len(t, c.entries, 50)
	got, ok := c.get("key-199")
	require.True(t, ok)
	assert.Equal(t, 199.0, got.Value)
}
