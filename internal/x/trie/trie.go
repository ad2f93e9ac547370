// Copyright 2025 Dimitrij Drus <dadrus@gmx.de>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package trie

import (
	"errors"
	"fmt"
	"iter"
	"maps"
	"slices"
	"unicode/utf8"
)

var ErrInvalidKey = errors.New("invalid key")

type (
	node[V any] struct {
		// sorted by rune, children[i] hangs below indices[i]
		indices  []rune
		children []*node[V]

		end   bool
		value V
	}

	// Trie maps string keys to values of type V. Keys sharing a prefix share the
	// nodes of that prefix. A key is an ordered sequence of runes. The empty key
	// and keys which are not valid UTF-8 are not storable.
	//
	// A Trie is not safe for concurrent use. Callers mutating it from more than one
	// goroutine, or reading it while it is mutated, must serialize access themselves.
	Trie[V any] struct {
		root *node[V]
		size int

		defaultValue V
	}
)

func New[V any](opts ...Option[V]) *Trie[V] {
	t := &Trie[V]{root: &node[V]{}}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

func (n *node[V]) find(r rune) (int, bool) {
	return slices.BinarySearch(n.indices, r)
}

func (n *node[V]) child(r rune) *node[V] {
	if idx, found := n.find(r); found {
		return n.children[idx]
	}

	return nil
}

func (n *node[V]) addChild(r rune) *node[V] {
	idx, found := n.find(r)
	if found {
		return n.children[idx]
	}

	child := &node[V]{}

	n.indices = slices.Insert(n.indices, idx, r)
	n.children = slices.Insert(n.children, idx, child)

	return child
}

func (n *node[V]) deleteEdge(idx int) {
	n.indices = slices.Delete(n.indices, idx, idx+1)
	n.children = slices.Delete(n.children, idx, idx+1)
}

func (n *node[V]) dead() bool { return !n.end && len(n.children) == 0 }

// lookup descends along path and returns the node reached or nil, if the path does not
// exist. Paths which are not valid UTF-8 never exist.
func (n *node[V]) lookup(path string) *node[V] {
	if !utf8.ValidString(path) {
		return nil
	}

	current := n

	for _, r := range path {
		if current = current.child(r); current == nil {
			return nil
		}
	}

	return current
}

// deleteKey clears the end mark of the node reached by key and detaches every node
// on the way back up, which became childless and is not the end of another key.
func (n *node[V]) deleteKey(key string) bool {
	if len(key) == 0 {
		if !n.end {
			return false
		}

		var zero V

		n.end = false
		n.value = zero

		return true
	}

	r, size := utf8.DecodeRuneInString(key)

	idx, found := n.find(r)
	if !found {
		return false
	}

	child := n.children[idx]
	if !child.deleteKey(key[size:]) {
		return false
	}

	if child.dead() {
		n.deleteEdge(idx)
	}

	return true
}

// walk visits the subtree depth first, children in rune order. path holds the
// key of n. It returns false as soon as yield asks to stop.
func (n *node[V]) walk(path []byte, yield func(string, V) bool) bool {
	if n.end && !yield(string(path), n.value) {
		return false
	}

	for i, child := range n.children {
		if !child.walk(utf8.AppendRune(path, n.indices[i]), yield) {
			return false
		}
	}

	return true
}

func (n *node[V]) count() int {
	total := 1

	for _, child := range n.children {
		total += child.count()
	}

	return total
}

func validateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidKey)
	}

	if !utf8.ValidString(key) {
		return fmt.Errorf("%w: %q is not valid UTF-8", ErrInvalidKey, key)
	}

	return nil
}

func (t *Trie[V]) insert(key string, value V, overwrite bool) error {
	if err := validateKey(key); err != nil {
		return err
	}

	current := t.root
	for _, r := range key {
		current = current.addChild(r)
	}

	if !current.end {
		current.end = true
		current.value = value
		t.size++

		return nil
	}

	if overwrite {
		current.value = value
	}

	return nil
}

// Insert stores key without a dedicated value. The key is bound to the default
// value (see WithDefaultValue). Inserting an already present key does not change
// the trie.
func (t *Trie[V]) Insert(key string) error {
	return t.insert(key, t.defaultValue, false)
}

// InsertValue stores key and binds value to it. The value of an already present
// key is replaced.
func (t *Trie[V]) InsertValue(key string, value V) error {
	return t.insert(key, value, true)
}

// InsertAll inserts the given keys in order. It stops on the first invalid key,
// keys inserted before it remain in the trie.
func (t *Trie[V]) InsertAll(keys ...string) error {
	for _, key := range keys {
		if err := t.Insert(key); err != nil {
			return err
		}
	}

	return nil
}

// InsertMap inserts every entry of the given map. Entries are processed in key order.
func (t *Trie[V]) InsertMap(entries map[string]V) error {
	for _, key := range slices.Sorted(maps.Keys(entries)) {
		if err := t.InsertValue(key, entries[key]); err != nil {
			return err
		}
	}

	return nil
}

func (t *Trie[V]) Contains(key string) bool {
	n := t.root.lookup(key)

	return n != nil && n.end
}

func (t *Trie[V]) ContainsAll(keys ...string) bool {
	for _, key := range keys {
		if !t.Contains(key) {
			return false
		}
	}

	return true
}

// StartsWith reports whether the path for prefix exists, no matter whether any
// key ends on it. The empty prefix always exists.
func (t *Trie[V]) StartsWith(prefix string) bool {
	return t.root.lookup(prefix) != nil
}

func (t *Trie[V]) Get(key string) (V, bool) {
	n := t.root.lookup(key)
	if n == nil || !n.end {
		var zero V

		return zero, false
	}

	return n.value, true
}

// Set replaces the value of an existing key. It never adds keys and returns false
// if key is not stored.
func (t *Trie[V]) Set(key string, value V) (bool, error) {
	if err := validateKey(key); err != nil {
		return false, err
	}

	n := t.root.lookup(key)
	if n == nil || !n.end {
		return false, nil
	}

	n.value = value

	return true, nil
}

func (t *Trie[V]) Remove(key string) bool {
	if len(key) == 0 || !utf8.ValidString(key) || !t.root.deleteKey(key) {
		return false
	}

	t.size--

	return true
}

// RemoveAll removes every given key and reports whether all of them were present.
// Present keys are removed even if others are missing.
func (t *Trie[V]) RemoveAll(keys ...string) bool {
	removedAll := true

	for _, key := range keys {
		if !t.Remove(key) {
			removedAll = false
		}
	}

	return removedAll
}

// LongestPrefix returns the longest stored key which is a prefix of s.
func (t *Trie[V]) LongestPrefix(s string) (string, V, bool) {
	var (
		value V
		end   = -1
	)

	current := t.root

	for pos := 0; pos < len(s); {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if r == utf8.RuneError && size == 1 {
			break
		}

		if current = current.child(r); current == nil {
			break
		}

		pos += size

		if current.end {
			end = pos
			value = current.value
		}
	}

	if end == -1 {
		return "", value, false
	}

	return s[:end], value, true
}

func (t *Trie[V]) Empty() bool { return len(t.root.children) == 0 }

func (t *Trie[V]) Len() int { return t.size }

func (t *Trie[V]) Clear() {
	t.root = &node[V]{}
	t.size = 0
}

// Keys returns all stored keys in lexicographic order.
func (t *Trie[V]) Keys() iter.Seq[string] {
	return t.KeysWithPrefix("")
}

// KeysWithPrefix returns the stored keys starting with prefix in lexicographic order.
func (t *Trie[V]) KeysWithPrefix(prefix string) iter.Seq[string] {
	return keysOf(t.entries(prefix, -1))
}

// KeysWithPrefixLimit is like KeysWithPrefix, but produces at most limit keys. The
// traversal ends as soon as limit keys have been found.
func (t *Trie[V]) KeysWithPrefixLimit(prefix string, limit int) iter.Seq[string] {
	if limit <= 0 {
		return func(func(string) bool) {}
	}

	return keysOf(t.entries(prefix, limit))
}

// Values returns the stored keys starting with prefix together with their values.
func (t *Trie[V]) Values(prefix string) iter.Seq2[string, V] {
	return t.entries(prefix, -1)
}

// entries yields the key value pairs below prefix. A negative limit means no limit.
func (t *Trie[V]) entries(prefix string, limit int) iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		start := t.root.lookup(prefix)
		if start == nil {
			return
		}

		found := 0

		start.walk([]byte(prefix), func(key string, value V) bool {
			if !yield(key, value) {
				return false
			}

			found++

			return limit < 0 || found < limit
		})
	}
}

func keysOf[V any](seq iter.Seq2[string, V]) iter.Seq[string] {
	return func(yield func(string) bool) {
		for key := range seq {
			if !yield(key) {
				return
			}
		}
	}
}
