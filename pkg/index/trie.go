/*
Package index implements the core prefix tree behind SpellServe.

The trie maps byte-labeled edges to child nodes and marks the nodes where
inserted words end. All operations lower-case ASCII letters before touching
the tree, so lookups are case-insensitive; any other byte (digits,
punctuation, raw UTF-8) is treated as an ordinary edge label and never
rejected.

The index is purely in-memory and not safe for concurrent mutation:
callers must not run Insert concurrently with any other operation.
*/
package index

import "sort"

// node is a single trie vertex. Each node exclusively owns its children,
// so the structure is a strict tree rooted at Trie.root.
type node struct {
	children map[byte]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Trie is a dictionary-backed word index supporting exact lookup, prefix
// checks, prefix enumeration and single-edit spelling suggestions.
type Trie struct {
	root  *node
	words int
}

// NewTrie returns an empty index whose root represents the empty prefix.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds word to the index. The word is lower-cased first and missing
// nodes are created along its path. Inserting the same word again leaves
// the tree unchanged. Inserting the empty string marks the root terminal,
// which makes Search("") true afterwards.
func (t *Trie) Insert(word string) {
	w := lowerASCII(word)
	n := t.root
	for i := 0; i < len(w); i++ {
		child, ok := n.children[w[i]]
		if !ok {
			child = newNode()
			n.children[w[i]] = child
		}
		n = child
	}
	if !n.terminal {
		n.terminal = true
		t.words++
	}
}

// traverse walks the lower-cased path s and returns the node reached, or
// nil the moment a byte has no matching child. The empty path returns the
// root. Callers lower-case before calling.
func (t *Trie) traverse(s string) *node {
	n := t.root
	for i := 0; i < len(s); i++ {
		child, ok := n.children[s[i]]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}

// Search reports whether word itself was inserted. A string that exists
// only as a prefix of longer words returns false.
func (t *Trie) Search(word string) bool {
	n := t.traverse(lowerASCII(word))
	return n != nil && n.terminal
}

// HasPrefix reports whether any inserted word starts with prefix. The
// empty prefix is always true since the root is always reachable.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.traverse(lowerASCII(prefix)) != nil
}

// Len returns the number of distinct words inserted.
func (t *Trie) Len() int {
	return t.words
}

// enumFrame is one pending step of the iterative enumeration walk.
type enumFrame struct {
	n      *node
	prefix string
}

// Enumerate returns every inserted word beginning with prefix, in
// lexicographic byte order. An unknown prefix yields an empty result.
// The walk uses an explicit stack so result depth is bounded by heap,
// not goroutine stack, even for pathologically long words.
func (t *Trie) Enumerate(prefix string) []string {
	p := lowerASCII(prefix)
	start := t.traverse(p)
	if start == nil {
		return nil
	}

	var words []string
	stack := []enumFrame{{n: start, prefix: p}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if frame.n.terminal {
			words = append(words, frame.prefix)
		}

		// Push in reverse byte order so the stack pops lexicographically.
		labels := make([]byte, 0, len(frame.n.children))
		for b := range frame.n.children {
			labels = append(labels, b)
		}
		sort.Slice(labels, func(i, j int) bool { return labels[i] > labels[j] })
		for _, b := range labels {
			stack = append(stack, enumFrame{
				n:      frame.n.children[b],
				prefix: frame.prefix + string(b),
			})
		}
	}
	return words
}

// lowerASCII folds 'A'..'Z' to lower case and leaves every other byte
// untouched. The index deliberately does no Unicode normalization.
func lowerASCII(s string) string {
	for i := 0; i < len(s); i++ {
		if s[i] >= 'A' && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if b[j] >= 'A' && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}
