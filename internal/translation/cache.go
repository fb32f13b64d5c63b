package translation

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ResponseCache stores model answers in memory, keyed by prompt. It is
// safe for concurrent use.
type ResponseCache struct {
	items *cache.Cache
}

// NewResponseCache creates a cache whose entries expire after ttl. A
// non-positive ttl keeps entries for the life of the process.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	if ttl <= 0 {
		return &ResponseCache{items: cache.New(cache.NoExpiration, 0)}
	}
	return &ResponseCache{items: cache.New(ttl, 2*ttl)}
}

// Add adds an answer to the cache
func (rc *ResponseCache) Add(prompt, answer string) {
	rc.items.SetDefault(prompt, answer)
}

// Get retrieves an answer from the cache
func (rc *ResponseCache) Get(prompt string) (string, bool) {
	v, ok := rc.items.Get(prompt)
	if !ok {
		return "", false
	}
	answer, ok := v.(string)
	return answer, ok
}

// Count returns the number of cached answers, expired ones included
func (rc *ResponseCache) Count() int {
	return rc.items.ItemCount()
}
