package index

import (
	"fmt"
	"sort"
	"testing"
)

func buildTrie(words ...string) *Trie {
	t := NewTrie()
	for _, w := range words {
		t.Insert(w)
	}
	return t
}

// insert then search must round-trip regardless of the case used on
// either side
func TestInsertSearchRoundTrip(t *testing.T) {
	testCases := []struct {
		insert string
		query  string
	}{
		{"apple", "apple"},
		{"apple", "Apple"},
		{"apple", "APPLE"},
		{"Banana", "banana"},
		{"CART", "cArT"},
	}

	for _, tc := range testCases {
		t.Run(tc.insert+"/"+tc.query, func(t *testing.T) {
			trie := buildTrie(tc.insert)
			if !trie.Search(tc.query) {
				t.Errorf("Search(%q) = false after Insert(%q)", tc.query, tc.insert)
			}
		})
	}
}

func TestSearchPrefixOnlyWord(t *testing.T) {
	trie := buildTrie("cart")

	// "car" exists only as a path, never as an inserted word
	if trie.Search("car") {
		t.Error("Search should be false for a string that is only a prefix")
	}
	if !trie.HasPrefix("car") {
		t.Error("HasPrefix should be true for a prefix of an inserted word")
	}
}

func TestHasPrefixMonotonicity(t *testing.T) {
	trie := buildTrie("appetizer", "apple", "apply")

	// every truncation of a reachable prefix must stay reachable
	full := "appetizer"
	for i := len(full); i >= 0; i-- {
		if !trie.HasPrefix(full[:i]) {
			t.Errorf("HasPrefix(%q) = false, want true", full[:i])
		}
	}

	if !trie.HasPrefix("") {
		t.Error("empty prefix must always be reachable")
	}
	if trie.HasPrefix("apq") {
		t.Error("HasPrefix(\"apq\") = true, want false")
	}
}

func TestEnumerateCompleteness(t *testing.T) {
	words := []string{"apple", "apply", "appetizer", "banana", "band", "cat", "car", "cart"}
	trie := buildTrie(words...)

	testCases := []struct {
		prefix   string
		expected []string
	}{
		{"app", []string{"appetizer", "apple", "apply"}},
		{"ban", []string{"banana", "band"}},
		{"ca", []string{"car", "cart", "cat"}},
		{"cart", []string{"cart"}},
		{"z", nil},
		{"", []string{"appetizer", "apple", "apply", "banana", "band", "car", "cart", "cat"}},
	}

	for _, tc := range testCases {
		t.Run("prefix_"+tc.prefix, func(t *testing.T) {
			got := trie.Enumerate(tc.prefix)
			if len(got) != len(tc.expected) {
				t.Fatalf("Enumerate(%q) = %v, want %v", tc.prefix, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Enumerate(%q)[%d] = %q, want %q", tc.prefix, i, got[i], tc.expected[i])
				}
			}
		})
	}
}

// committed ordering: Enumerate output is sorted lexicographically
func TestEnumerateOrderIsSorted(t *testing.T) {
	trie := buildTrie("zebra", "apple", "mango", "ant", "zone")
	got := trie.Enumerate("")
	if !sort.StringsAreSorted(got) {
		t.Errorf("Enumerate output not sorted: %v", got)
	}
}

func TestEnumerateCaseInsensitivePrefix(t *testing.T) {
	trie := buildTrie("Apple", "apply")
	got := trie.Enumerate("APP")
	if len(got) != 2 {
		t.Fatalf("Enumerate(\"APP\") = %v, want 2 lowercase words", got)
	}
	if got[0] != "apple" || got[1] != "apply" {
		t.Errorf("Enumerate(\"APP\") = %v, want [apple apply]", got)
	}
}

func TestInsertIdempotent(t *testing.T) {
	trie := NewTrie()
	for i := 0; i < 5; i++ {
		trie.Insert("banana")
		trie.Insert("BANANA")
	}

	if trie.Len() != 1 {
		t.Errorf("Len() = %d after repeated inserts, want 1", trie.Len())
	}
	if got := trie.Enumerate("ban"); len(got) != 1 || got[0] != "banana" {
		t.Errorf("Enumerate(\"ban\") = %v, want [banana]", got)
	}
}

func TestEmptyIndex(t *testing.T) {
	trie := NewTrie()

	if trie.Search("anything") {
		t.Error("Search on empty index should be false")
	}
	if trie.HasPrefix("a") {
		t.Error("HasPrefix on empty index should be false for non-empty prefix")
	}
	if got := trie.Enumerate("a"); len(got) != 0 {
		t.Errorf("Enumerate on empty index = %v, want empty", got)
	}

	res := trie.Suggest("word")
	if res.AlreadyCorrect {
		t.Error("Suggest on empty index can never be already-correct")
	}
	if len(res.Corrections) != 0 {
		t.Errorf("Suggest on empty index = %v, want no corrections", res.Corrections)
	}
}

// non-alphabetic bytes are ordinary edge labels and must not break the walk
func TestNonAlphabeticInput(t *testing.T) {
	trie := buildTrie("word2vec", "user-name", "café")

	if !trie.Search("word2vec") {
		t.Error("digits should survive insert and search")
	}
	if !trie.HasPrefix("user-") {
		t.Error("punctuation should survive prefix checks")
	}
	if !trie.Search("café") {
		t.Error("raw multi-byte runes should survive unmodified")
	}
	if trie.Search("!!!") {
		t.Error("unknown punctuation should simply miss")
	}
}

func TestEmptyStringInsertMarksRoot(t *testing.T) {
	trie := NewTrie()
	if trie.Search("") {
		t.Error("empty string should not be a word before insertion")
	}
	trie.Insert("")
	if !trie.Search("") {
		t.Error("inserting the empty string should mark the root terminal")
	}
	if trie.Len() != 1 {
		t.Errorf("Len() = %d, want 1", trie.Len())
	}
}

// full scenario across all four query operations
func TestEndToEndScenario(t *testing.T) {
	trie := buildTrie("apple", "apply", "appetizer")

	got := trie.Enumerate("app")
	want := map[string]bool{"apple": true, "apply": true, "appetizer": true}
	if len(got) != len(want) {
		t.Fatalf("Enumerate(\"app\") = %v, want exactly 3 words", got)
	}
	for _, w := range got {
		if !want[w] {
			t.Errorf("unexpected word %q in enumeration", w)
		}
	}

	if !trie.HasPrefix("appl") {
		t.Error("HasPrefix(\"appl\") = false, want true")
	}
	if trie.Search("app") {
		t.Error("Search(\"app\") = true, want false")
	}

	// both "apple" (a->e) and "apply" (a->y) are one substitution away
	res := trie.Suggest("appla")
	if res.AlreadyCorrect {
		t.Error("Suggest(\"appla\") should not be already-correct")
	}
	if len(res.Corrections) != 2 || res.Corrections[0] != "apple" || res.Corrections[1] != "apply" {
		t.Errorf("Suggest(\"appla\") = %v, want [apple apply]", res.Corrections)
	}
}

func BenchmarkEnumerate(b *testing.B) {
	trie := NewTrie()
	for i := 0; i < 5000; i++ {
		trie.Insert(fmt.Sprintf("word%d", i))
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		trie.Enumerate("word1")
	}
}
