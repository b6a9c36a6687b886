// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedmap

import "iter"

// All returns an iterator over key-value pairs from m in insertion
// order.
func (m *Map[K, E]) All() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for e := m.Front(); e != nil; e = e.Next() {
			if !yield(e.key, e.elem) {
				return
			}
		}
	}
}

// Backward returns an iterator over key-value pairs from m, newest
// first.
func (m *Map[K, E]) Backward() iter.Seq2[K, E] {
	return func(yield func(K, E) bool) {
		for e := m.Back(); e != nil; e = e.Prev() {
			if !yield(e.key, e.elem) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in m in insertion order.
func (m *Map[K, E]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := m.Front(); e != nil; e = e.Next() {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values returns an iterator over values in m in insertion order.
func (m *Map[K, E]) Values() iter.Seq[E] {
	return func(yield func(E) bool) {
		for e := m.Front(); e != nil; e = e.Next() {
			if !yield(e.elem) {
				return
			}
		}
	}
}

// Collect instantiates a new Map holding the pairs of seq, in the
// order seq produces them. If a key is produced more than once the
// first pair wins. See [NewFunc] for discussion of the hash argument.
func Collect[K comparable, E any](seq iter.Seq2[K, E], hash HashFunc[K]) *Map[K, E] {
	m := NewHint[K, E](0, hash)
	m.InsertSeq(seq)
	return m
}

// InsertSeq inserts the pairs of seq into m. Keys already present
// keep their current element.
func (m *Map[K, E]) InsertSeq(seq iter.Seq2[K, E]) {
	for k, e := range seq {
		m.Insert(k, e)
	}
}
