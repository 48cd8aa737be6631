package index

import "sort"

const letters = "abcdefghijklmnopqrstuvwxyz"

// SuggestResult is the outcome of a spelling suggestion request.
// AlreadyCorrect and Corrections are mutually exclusive: callers branch on
// AlreadyCorrect instead of inspecting the correction list, so a valid
// correction that happens to equal the input can never be confused with
// "the input was already a word".
type SuggestResult struct {
	AlreadyCorrect bool
	Corrections    []string
}

// Suggest proposes dictionary words within a single edit of word.
// If word itself is in the index the result reports AlreadyCorrect and
// carries no corrections. Otherwise every candidate one deletion,
// adjacent transposition, substitution or insertion away is checked
// against the index and the survivors are returned sorted and
// duplicate-free. An empty correction list means nothing was close.
func (t *Trie) Suggest(word string) SuggestResult {
	w := lowerASCII(word)
	if t.Search(w) {
		return SuggestResult{AlreadyCorrect: true}
	}

	var corrections []string
	for candidate := range editCandidates(w) {
		if t.Search(candidate) {
			corrections = append(corrections, candidate)
		}
	}
	sort.Strings(corrections)
	return SuggestResult{Corrections: corrections}
}

// editCandidates generates the set of strings exactly one edit away from
// w: deletions, adjacent transpositions, substitutions and insertions
// over a-z. Candidates are collected into a set since different edits can
// produce the same string.
func editCandidates(w string) map[string]struct{} {
	set := make(map[string]struct{}, (len(w)+1)*(2*len(letters)+2))

	// deletions
	for i := 0; i < len(w); i++ {
		set[w[:i]+w[i+1:]] = struct{}{}
	}

	// adjacent transpositions
	for i := 0; i+1 < len(w); i++ {
		set[w[:i]+string(w[i+1])+string(w[i])+w[i+2:]] = struct{}{}
	}

	// substitutions
	for i := 0; i < len(w); i++ {
		for j := 0; j < len(letters); j++ {
			set[w[:i]+string(letters[j])+w[i+1:]] = struct{}{}
		}
	}

	// insertions
	for i := 0; i <= len(w); i++ {
		for j := 0; j < len(letters); j++ {
			set[w[:i]+string(letters[j])+w[i:]] = struct{}{}
		}
	}

	return set
}
