package narrative

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/value-edge/internal/metrics"
)

// CachedGenerator wraps a Generator with TTL caching of its text so repeated
// analyses of the same numbers do not re-invoke the reasoning service.
type CachedGenerator struct {
	generator Generator
	cache     *TextCache
	logger    *logrus.Logger
}

// NewCachedGenerator creates a caching wrapper around a generator.
func NewCachedGenerator(generator Generator, ttl time.Duration, maxSize int, logger *logrus.Logger) *CachedGenerator {
	return &CachedGenerator{
		generator: generator,
		cache:     NewTextCache(ttl, maxSize),
		logger:    logger,
	}
}

// Generate returns cached text when the same fact set was narrated recently,
// otherwise calls through. Empty responses are not cached so a recovered
// service gets asked again.
func (c *CachedGenerator) Generate(ctx context.Context, facts Facts) (string, error) {
	key := keyFromFacts(facts)

	if text, found := c.cache.Get(key); found {
		metrics.NarrativeCacheHitsTotal.Inc()
		c.logger.WithField("cache_key", key.String()).Debug("Narrative cache hit")
		return text, nil
	}

	text, err := c.generator.Generate(ctx, facts)
	if err != nil {
		return "", err
	}

	if text != "" {
		c.cache.Set(key, text)
	}
	return text, nil
}
