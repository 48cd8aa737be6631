package index

import (
	"fmt"
	"testing"
)

func TestSuggestSingleEdits(t *testing.T) {
	trie := buildTrie("cat", "car", "cart")

	testCases := []struct {
		input       string
		expected    []string
		description string
	}{
		{"cet", []string{"cat"}, "substitution"},
		{"ca", []string{"car", "cat"}, "insertion at end"},
		{"cats", []string{"cat"}, "deletion at end"},
		{"act", []string{"cat"}, "adjacent transposition"},
		{"carrt", []string{"cart"}, "deletion in middle"},
		{"dog", nil, "no close match"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			res := trie.Suggest(tc.input)
			if res.AlreadyCorrect {
				t.Fatalf("Suggest(%q) reported already-correct", tc.input)
			}
			if len(res.Corrections) != len(tc.expected) {
				t.Fatalf("Suggest(%q) = %v, want %v", tc.input, res.Corrections, tc.expected)
			}
			for i := range res.Corrections {
				if res.Corrections[i] != tc.expected[i] {
					t.Errorf("Suggest(%q)[%d] = %q, want %q", tc.input, i, res.Corrections[i], tc.expected[i])
				}
			}
		})
	}
}

func TestSuggestMustNotInventWords(t *testing.T) {
	trie := buildTrie("cat", "car", "cart")
	res := trie.Suggest("cet")
	for _, w := range res.Corrections {
		if w == "dog" {
			t.Error("Suggest returned a word unrelated to the input")
		}
	}
}

// already-correct is a distinct signal, not a correction list containing
// the input
func TestSuggestAlreadyCorrect(t *testing.T) {
	trie := buildTrie("cat")

	res := trie.Suggest("cat")
	if !res.AlreadyCorrect {
		t.Fatal("Suggest(\"cat\") should report already-correct")
	}
	if len(res.Corrections) != 0 {
		t.Errorf("already-correct result carries corrections: %v", res.Corrections)
	}

	res = trie.Suggest("CAT")
	if !res.AlreadyCorrect {
		t.Error("already-correct check must be case-insensitive")
	}
}

func TestSuggestResultsSortedAndUnique(t *testing.T) {
	trie := buildTrie("bat", "cat", "eat", "fat", "hat", "mat", "oat", "pat", "rat", "sat")

	res := trie.Suggest("zat")
	seen := make(map[string]bool)
	prev := ""
	for _, w := range res.Corrections {
		if seen[w] {
			t.Errorf("duplicate correction %q", w)
		}
		seen[w] = true
		if w < prev {
			t.Errorf("corrections out of order: %q after %q", w, prev)
		}
		prev = w
	}
	if len(res.Corrections) != 10 {
		t.Errorf("Suggest(\"zat\") = %v, want all ten rhymes", res.Corrections)
	}
}

func TestEditCandidateCoverage(t *testing.T) {
	set := editCandidates("ab")

	// one representative of each edit class
	for _, want := range []string{"b", "a", "ba", "xb", "ax", "xab", "axb", "abx"} {
		if _, ok := set[want]; !ok {
			t.Errorf("editCandidates(\"ab\") missing %q", want)
		}
	}

	// L=2: 2 deletions + 1 transposition + 52 substitutions + 78 insertions,
	// minus overlaps collapsed by the set
	if len(set) > 133 {
		t.Errorf("editCandidates(\"ab\") produced %d candidates, want <= 133", len(set))
	}
}

func TestSuggestEmptyInput(t *testing.T) {
	trie := buildTrie("a", "i", "cat")

	res := trie.Suggest("")
	if res.AlreadyCorrect {
		t.Fatal("empty input on a dictionary without \"\" cannot be already-correct")
	}
	// only single-letter insertions are one edit from ""
	if len(res.Corrections) != 2 || res.Corrections[0] != "a" || res.Corrections[1] != "i" {
		t.Errorf("Suggest(\"\") = %v, want [a i]", res.Corrections)
	}
}

func BenchmarkSuggest(b *testing.B) {
	trie := NewTrie()
	for i := 0; i < 5000; i++ {
		trie.Insert(fmt.Sprintf("word%d", i))
	}

	inputs := []string{"wrd123", "word1x", "wordd2", "woord3", "wird4"}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie.Suggest(inputs[i%len(inputs)])
	}
}
