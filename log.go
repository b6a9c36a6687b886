// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedmap

// The entry log holds every live key/elem pair of a Map in insertion
// order. It is the only owner of the pairs: the bucket index just
// holds *Entry handles into it.
//
// Entries are individually allocated and never move, so a handle
// stays valid across index growth. When an entry is removed its own
// next/prev links are left untouched. An iterator parked on a removed
// entry can therefore still reach the entries that followed (or
// preceded) it; those links only ever point further along in
// insertion order because new entries are always appended at the
// tail.

// Entry is a key/elem pair stored in a Map. Entries are returned by
// Find, Front and Back and stay valid until their key is deleted or
// the Map is cleared.
type Entry[K comparable, E any] struct {
	next, prev *Entry[K, E]
	// log is nil once the entry has been removed.
	log *entryLog[K, E]

	hash uint64
	key  K
	elem E
}

// Key returns the entry's key.
func (e *Entry[K, E]) Key() K {
	return e.key
}

// Elem returns the entry's element.
func (e *Entry[K, E]) Elem() E {
	return e.elem
}

// SetElem replaces the entry's element in place. The entry keeps its
// position in the iteration order.
func (e *Entry[K, E]) SetElem(elem E) {
	e.elem = elem
}

// ElemPtr returns a pointer to the entry's element.
func (e *Entry[K, E]) ElemPtr() *E {
	return &e.elem
}

// Removed reports whether the entry has been deleted from its Map.
func (e *Entry[K, E]) Removed() bool {
	return e.log == nil
}

// Next returns the next live entry in insertion order, or nil. It
// may be called on an entry that has since been removed.
func (e *Entry[K, E]) Next() *Entry[K, E] {
	n := e.next
	for n != nil && n.log == nil {
		n = n.next
	}
	return n
}

// Prev returns the previous live entry in insertion order, or nil. It
// may be called on an entry that has since been removed.
func (e *Entry[K, E]) Prev() *Entry[K, E] {
	p := e.prev
	for p != nil && p.log == nil {
		p = p.prev
	}
	return p
}

type entryLog[K comparable, E any] struct {
	head, tail *Entry[K, E]
	len        int
}

// append adds a new entry at the tail of l.
func (l *entryLog[K, E]) append(hash uint64, key K, elem E) *Entry[K, E] {
	e := &Entry[K, E]{log: l, hash: hash, key: key, elem: elem}
	if l.tail == nil {
		l.head = e
	} else {
		l.tail.next = e
		e.prev = l.tail
	}
	l.tail = e
	l.len++
	return e
}

// remove unlinks e from l. The neighbours are relinked around e but
// e keeps its own links, see the comment at the top of this file.
func (l *entryLog[K, E]) remove(e *Entry[K, E]) {
	if e.log != l {
		panic("linkedmap: entry does not belong to this map")
	}
	if e.prev == nil {
		l.head = e.next
	} else {
		e.prev.next = e.next
	}
	if e.next == nil {
		l.tail = e.prev
	} else {
		e.next.prev = e.prev
	}
	l.len--
	kill(e)
}

// clear removes every entry from l.
func (l *entryLog[K, E]) clear() {
	for e := l.head; e != nil; e = e.next {
		kill(e)
	}
	l.head = nil
	l.tail = nil
	l.len = 0
}

func kill[K comparable, E any](e *Entry[K, E]) {
	var (
		zeroK K
		zeroE E
	)
	// Clear key and elem in case they have pointers
	e.key = zeroK
	e.elem = zeroE
	e.log = nil
}
