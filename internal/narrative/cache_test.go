package narrative

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextCache_SetAndGet(t *testing.T) {
	tc := NewTextCache(time.Minute, 10)
	key := keyFromFacts(sampleFacts())

	_, found := tc.Get(key)
	assert.False(t, found)

	tc.Set(key, "cached analysis")

	text, found := tc.Get(key)
	require.True(t, found)
	assert.Equal(t, "cached analysis", text)
	assert.Equal(t, 1, tc.Len())
}

func TestTextCache_KeyExcludesVolatileFields(t *testing.T) {
	a := sampleFacts()
	b := sampleFacts()
	b.Overround = 0.99
	b.AdditionalContext = "different context"

	// Only teams, recommendation, confidence and EV identify a narrative.
	assert.Equal(t, keyFromFacts(a).String(), keyFromFacts(b).String())

	c := sampleFacts()
	c.ExpectedValue = 0.99
	assert.NotEqual(t, keyFromFacts(a).String(), keyFromFacts(c).String())
}

func TestTextCache_Expiry(t *testing.T) {
	tc := NewTextCache(20*time.Millisecond, 10)
	key := keyFromFacts(sampleFacts())

	tc.Set(key, "short lived")
	time.Sleep(50 * time.Millisecond)

	_, found := tc.Get(key)
	assert.False(t, found)
}

type countingGenerator struct {
	calls int
	text  string
	err   error
}

func (g *countingGenerator) Generate(_ context.Context, _ Facts) (string, error) {
	g.calls++
	return g.text, g.err
}

func TestCachedGenerator_SecondCallHitsCache(t *testing.T) {
	inner := &countingGenerator{text: "the market underrates Arsenal"}
	cached := NewCachedGenerator(inner, time.Minute, 10, testLogger())

	for i := 0; i < 3; i++ {
		text, err := cached.Generate(context.Background(), sampleFacts())
		require.NoError(t, err)
		assert.Equal(t, "the market underrates Arsenal", text)
	}

	assert.Equal(t, 1, inner.calls)
}

func TestCachedGenerator_ErrorsPassThrough(t *testing.T) {
	inner := &countingGenerator{err: errors.New("boom")}
	cached := NewCachedGenerator(inner, time.Minute, 10, testLogger())

	_, err := cached.Generate(context.Background(), sampleFacts())
	assert.Error(t, err)

	_, err = cached.Generate(context.Background(), sampleFacts())
	assert.Error(t, err)
	assert.Equal(t, 2, inner.calls)
}

func TestCachedGenerator_EmptyTextNotCached(t *testing.T) {
	inner := &countingGenerator{text: ""}
	cached := NewCachedGenerator(inner, time.Minute, 10, testLogger())

	for i := 0; i < 2; i++ {
		text, err := cached.Generate(context.Background(), sampleFacts())
		require.NoError(t, err)
		assert.Empty(t, text)
	}

	// A recovered service gets asked again.
	assert.Equal(t, 2, inner.calls)
}
