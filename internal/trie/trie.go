// Package trie provides a prefix tree for matching known words at a position
// in a piece of text.
package trie

import (
	"errors"
	"fmt"
)

// ErrEmptyKey is returned when a word to insert is empty.
var ErrEmptyKey = errors.New("trie: empty key")

// Trie maps words to values. A node either carries a value (a complete word)
// or branches on the next rune.
type Trie struct {
	value    uint32
	terminal bool
	children map[rune]*Trie
}

// New builds a trie from word/value pairs.
func New(entries map[string]uint32) (*Trie, error) {
	root := &Trie{}
	for word, value := range entries {
		if err := root.Insert(word, value); err != nil {
			return nil, err
		}
	}
	return root, nil
}

// MustNew is like New but panics on error. It is meant for package-level
// tables built from literals.
func MustNew(entries map[string]uint32) *Trie {
	t, err := New(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Insert adds word with value. Inserting a word again with another value
// is an error.
func (t *Trie) Insert(word string, value uint32) error {
	if word == "" {
		return ErrEmptyKey
	}

	node := t
	for _, r := range word {
		if node.children == nil {
			node.children = map[rune]*Trie{}
		}
		next, ok := node.children[r]
		if !ok {
			next = &Trie{}
			node.children[r] = next
		}
		node = next
	}
	if node.terminal && node.value != value {
		return fmt.Errorf("trie: duplicate key %q", word)
	}
	node.value = value
	node.terminal = true
	return nil
}

// MatchAt returns the value of the word starting at text[start].
// The first complete word reached wins.
func (t *Trie) MatchAt(text []rune, start int) (uint32, bool) {
	node := t
	for i := start; i < len(text); i++ {
		next, ok := node.children[text[i]]
		if !ok {
			return 0, false
		}
		node = next
		if node.terminal {
			return node.value, true
		}
	}
	return 0, false
}

// FirstRunes returns the set of runes that can start a word.
func (t *Trie) FirstRunes() map[rune]bool {
	set := make(map[rune]bool, len(t.children))
	for r := range t.children {
		set[r] = true
	}
	return set
}
