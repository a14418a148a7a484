package db

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/dgraph-io/ristretto"
)

// SuggestionCache memoizes serialized suggestion responses keyed by the raw
// request body. The engine is deterministic for a given payload; the short
// TTL bounds drift of the trailing 30-day window.
type SuggestionCache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewSuggestionCache(ttl time.Duration) (*SuggestionCache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 10000, // number of keys to track frequency of
		MaxCost:     10000,
		BufferItems: 64, // number of keys per Get buffer
	})
	if err != nil {
		return nil, err
	}
	return &SuggestionCache{cache: cache, ttl: ttl}, nil
}

// Key derives the cache key for a request body.
func Key(body []byte) string {
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}

func (c *SuggestionCache) Get(key string) ([]byte, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}
	payload, ok := value.([]byte)
	return payload, ok
}

func (c *SuggestionCache) Set(key string, payload []byte) {
	c.cache.SetWithTTL(key, payload, 1, c.ttl)
}

// Wait blocks until buffered writes have been applied. Used for testing.
func (c *SuggestionCache) Wait() {
	c.cache.Wait()
}
