/*
Package dictionary loads plain-text word lists into the index.

One word per line; lines are trimmed and anything non-alphabetic is
skipped. Loading never fails hard: a missing or unreadable file degrades
to a small builtin word set so the consuming index stays usable.
*/
package dictionary

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/charmbracelet/log"
)

// DefaultWords is the builtin fallback set used when no dictionary file
// is available.
var DefaultWords = []string{
	"apple", "apply", "appetizer",
	"banana", "band",
	"cat", "car", "cart",
	"dog", "doughnut",
}

// Inserter receives words one at a time. *index.Trie and
// *suggest.Engine both satisfy it.
type Inserter interface {
	Insert(word string)
}

// LoadResult reports what a load actually did.
type LoadResult struct {
	Loaded       int
	Skipped      int
	UsedFallback bool
}

// Load populates dst from the word list at path. An empty path or a
// missing file falls back to DefaultWords when allowFallback is set;
// with fallback disabled the error is returned and dst is left as-is
// (possibly empty, which is still a usable index).
func Load(dst Inserter, path string, allowFallback bool) (LoadResult, error) {
	if path == "" {
		if !allowFallback {
			return LoadResult{}, fmt.Errorf("no dictionary path configured")
		}
		log.Warn("No dictionary file configured, loading builtin default set")
		return loadDefaults(dst), nil
	}

	if !utils.FileExists(path) {
		if !allowFallback {
			return LoadResult{}, fmt.Errorf("dictionary file %s not found", path)
		}
		log.Warnf("Dictionary file %s not found, loading builtin default set", path)
		return loadDefaults(dst), nil
	}

	result, err := loadFile(dst, path)
	if err != nil {
		if !allowFallback {
			return LoadResult{}, err
		}
		log.Warnf("Failed to read dictionary %s: %v. Loading builtin default set", path, err)
		return loadDefaults(dst), nil
	}
	return result, nil
}

// loadFile reads path line by line and inserts every valid word.
func loadFile(dst Inserter, path string) (LoadResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return LoadResult{}, fmt.Errorf("failed to open dictionary %s: %w", path, err)
	}
	defer file.Close()

	var result LoadResult
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if !utils.IsAlphabetic(word) {
			result.Skipped++
			continue
		}
		dst.Insert(word)
		result.Loaded++
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed reading dictionary %s: %w", path, err)
	}

	log.Debugf("Loaded %d words from %s (%d lines skipped)", result.Loaded, path, result.Skipped)
	return result, nil
}

func loadDefaults(dst Inserter) LoadResult {
	for _, word := range DefaultWords {
		dst.Insert(word)
	}
	return LoadResult{Loaded: len(DefaultWords), UsedFallback: true}
}
