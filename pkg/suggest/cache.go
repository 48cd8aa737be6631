package suggest

import (
	"sync"

	"github.com/tchap/go-patricia/v2/patricia"
)

// prefixCache memoizes Enumerate results keyed by lower-cased prefix.
// Keys live in a patricia trie so an insert can find every cached prefix
// of the new word in one walk and drop just those entries.
type prefixCache struct {
	trie       *patricia.Trie
	maxEntries int
	entries    int
	hits       int
	misses     int
	mu         sync.Mutex
}

func newPrefixCache(maxEntries int) *prefixCache {
	return &prefixCache{
		trie:       patricia.NewTrie(),
		maxEntries: maxEntries,
	}
}

func (c *prefixCache) get(prefix string) ([]string, bool) {
	if c.maxEntries <= 0 || prefix == "" {
		return nil, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	item := c.trie.Get(patricia.Prefix(prefix))
	if item == nil {
		c.misses++
		return nil, false
	}
	c.hits++
	return item.([]string), true
}

func (c *prefixCache) put(prefix string, words []string) {
	if c.maxEntries <= 0 || prefix == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Full cache resets wholesale; entries are cheap to recompute.
	if c.entries >= c.maxEntries {
		c.trie = patricia.NewTrie()
		c.entries = 0
	}
	if c.trie.Insert(patricia.Prefix(prefix), words) {
		c.entries++
	}
}

// invalidate drops every cached prefix of word: those are exactly the
// enumerations whose result set grew when word was inserted.
func (c *prefixCache) invalidate(word string) {
	if c.maxEntries <= 0 || word == "" {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	var stale []patricia.Prefix
	_ = c.trie.VisitPrefixes(patricia.Prefix(word), func(p patricia.Prefix, _ patricia.Item) error {
		stale = append(stale, p)
		return nil
	})
	for _, p := range stale {
		if c.trie.Delete(p) {
			c.entries--
		}
	}
}

func (c *prefixCache) stats() map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return map[string]int{
		"cacheEntries": c.entries,
		"cacheHits":    c.hits,
		"cacheMisses":  c.misses,
		"cacheMax":     c.maxEntries,
	}
}
