package narrative

import (
	"fmt"
	"sync"
	"time"

	cache "github.com/patrickmn/go-cache"
)

// CacheKey identifies a narrative by the numbers that produced it. Two
// analyses with identical computed facts get identical text; the key
// deliberately excludes the analysis ID and timestamp. Only free text is
// cached here, never the recommendation itself.
type CacheKey struct {
	Team1          string
	Team2          string
	Recommendation string
	Confidence     float64
	ExpectedValue  float64
}

// String returns string representation of cache key
func (k CacheKey) String() string {
	return fmt.Sprintf("%s:%s:%s:%.6f:%.6f", k.Team1, k.Team2, k.Recommendation, k.Confidence, k.ExpectedValue)
}

// keyFromFacts builds the cache key for a fact set.
func keyFromFacts(facts Facts) CacheKey {
	return CacheKey{
		Team1:          facts.Team1,
		Team2:          facts.Team2,
		Recommendation: string(facts.Recommendation),
		Confidence:     facts.Confidence,
		ExpectedValue:  facts.ExpectedValue,
	}
}

// TextCache provides in-memory TTL caching for narrative text.
type TextCache struct {
	cache   *cache.Cache
	ttl     time.Duration
	maxSize int
	mu      sync.Mutex
}

// NewTextCache creates a new narrative text cache
func NewTextCache(ttl time.Duration, maxSize int) *TextCache {
	return &TextCache{
		cache:   cache.New(ttl, ttl*2),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

// Get retrieves cached narrative text. The second return reports a hit.
func (tc *TextCache) Get(key CacheKey) (string, bool) {
	if value, found := tc.cache.Get(key.String()); found {
		if text, ok := value.(string); ok {
			return text, true
		}
	}
	return "", false
}

// Set stores narrative text in the cache.
func (tc *TextCache) Set(key CacheKey, text string) {
	tc.mu.Lock()
	defer tc.mu.Unlock()

	// Check size limit
	if tc.cache.ItemCount() >= tc.maxSize {
		// Remove expired items first
		tc.cache.DeleteExpired()
	}

	tc.cache.Set(key.String(), text, tc.ttl)
}

// Len returns the number of cached entries.
func (tc *TextCache) Len() int {
	return tc.cache.ItemCount()
}
