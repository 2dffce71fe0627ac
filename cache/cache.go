// Package cache remembers resolution outcomes for a little while so a session
// doesn't hammer the API with the same names over and over. Entries expire
// after a fixed TTL, checked lazily on read; there is no background sweep and
// nothing survives the process.
package cache

import (
	"sync"
	"time"

	"github.com/avlowe/lineup/match"
	"github.com/avlowe/lineup/resolve"
)

const DefaultTTL = 10 * time.Minute

func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		ttl:     ttl,
		now:     time.Now,
		entries: map[string]entry{},
	}
}

type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]entry
}

type entry struct {
	outcome resolve.Outcome
	at      time.Time
}

// GetOrResolve returns the cached outcome for query if a live entry exists,
// and otherwise calls fn and stores whatever it returns. Not-found and error
// outcomes are cached too: a name that just failed will keep failing for the
// next ten minutes, and asking again won't help.
//
// Keys are normalized the same way the matcher normalizes names, so
// "Radiohead" and " radiohead " share an entry.
//
// fn runs outside the lock. Two concurrent first requests for the same key
// may therefore both miss and both hit the network; the second write wins.
// That duplicate call is harmless and cheaper than single-flight machinery.
func (c *Cache) GetOrResolve(query string, fn func() resolve.Outcome) resolve.Outcome {
	key := match.Normalize(query)

	c.mu.Lock()
	if ent, ok := c.entries[key]; ok && c.now().Sub(ent.at) < c.ttl {
		c.mu.Unlock()
		return ent.outcome
	}
	c.mu.Unlock()

	outcome := fn()

	c.mu.Lock()
	c.entries[key] = entry{outcome: outcome, at: c.now()}
	c.mu.Unlock()

	return outcome
}

// Len reports how many entries are stored, live or expired.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
