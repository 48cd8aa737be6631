// Package suggest wraps the core index for interactive callers: result
// limits, capitalization restore and a cache of recently enumerated
// prefixes.
package suggest

import (
	"strings"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/index"
)

// Engine answers completion, lookup and correction queries against a
// single owned Trie. Construct one per dictionary; there is no global
// instance.
type Engine struct {
	trie  *index.Trie
	cache *prefixCache
}

// NewEngine returns an empty engine. cacheSize bounds the number of
// cached prefix enumerations; zero disables caching.
func NewEngine(cacheSize int) *Engine {
	return &Engine{
		trie:  index.NewTrie(),
		cache: newPrefixCache(cacheSize),
	}
}

// Insert adds a word to the index and drops any cached enumeration the
// new word belongs to.
func (e *Engine) Insert(word string) {
	e.trie.Insert(word)
	e.cache.invalidate(strings.ToLower(word))
}

// Complete returns dictionary words starting with prefix, capped at
// limit (0 means uncapped). The prefix itself is excluded from the
// results, and the caller's capitalization pattern is reapplied to each
// word.
func (e *Engine) Complete(prefix string, limit int) []string {
	lowerPrefix := strings.ToLower(prefix)

	words, ok := e.cache.get(lowerPrefix)
	if !ok {
		words = e.trie.Enumerate(lowerPrefix)
		e.cache.put(lowerPrefix, words)
	}

	// Remember which positions were capitalized
	capitalPositions := make([]bool, len(prefix))
	for i, r := range prefix {
		if i < len(capitalPositions) {
			capitalPositions[i] = r >= 'A' && r <= 'Z'
		}
	}

	filter := utils.NewSuggestionFilter(lowerPrefix)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if !filter.ShouldInclude(w) {
			continue
		}
		out = append(out, applyCapitalization(w, capitalPositions))
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// Lookup reports whether word itself is in the dictionary.
func (e *Engine) Lookup(word string) bool {
	return e.trie.Search(word)
}

// HasPrefix reports whether any dictionary word starts with prefix.
func (e *Engine) HasPrefix(prefix string) bool {
	return e.trie.HasPrefix(prefix)
}

// Correct proposes single-edit corrections for word, or reports that it
// is already spelled correctly.
func (e *Engine) Correct(word string) index.SuggestResult {
	return e.trie.Suggest(word)
}

// Len returns the number of words in the dictionary.
func (e *Engine) Len() int {
	return e.trie.Len()
}

// Stats returns counters for the index and the prefix cache.
func (e *Engine) Stats() map[string]int {
	stats := map[string]int{
		"totalWords": e.trie.Len(),
	}
	for k, v := range e.cache.stats() {
		stats[k] = v
	}
	return stats
}

// applyCapitalization re-applies the caller's upper-case positions onto
// a lower-cased dictionary word.
func applyCapitalization(word string, capitalPositions []bool) string {
	if len(capitalPositions) == 0 {
		return word
	}

	wordRunes := []rune(word)
	for i := 0; i < len(wordRunes) && i < len(capitalPositions); i++ {
		if capitalPositions[i] && wordRunes[i] >= 'a' && wordRunes[i] <= 'z' {
			wordRunes[i] = wordRunes[i] - 'a' + 'A'
		}
	}
	return string(wordRunes)
}
