// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linkedmap provides the Map type, a hash table that iterates
// over its entries in insertion order.
//
// Keys must be comparable; two keys are the same key if they are ==.
// Users may provide their own hash function. The following
// requirements are the user's responsibility to follow:
//   - a == b => hash(a) == hash(b)
//   - a == a must be true for all values of a. Be careful around NaN
//     float values: a NaN key can be inserted but never found again.
//   - If a key contains references -- such as pointers -- modifying
//     the referenced data in a way that affects the result of the hash
//     function will result in undefined behavior.
//   - For good performance hash functions should return uniformly
//     distributed data across the entire 64-bits of the value.
//
// A Map is not safe for concurrent use. Writes that overlap with
// another write are detected on a best effort basis and panic.
package linkedmap

// A Map is made of two structures:
//
// The entry log (log.go) is a doubly linked list of entries in
// insertion order. It owns the key/elem pairs and is what iteration
// walks, so iteration order does not depend on the hash table at all.
//
// The bucket index (index.go) is an array of buckets. Each bucket is
// a short slice of handles to the entries whose hash selects that
// bucket. It only accelerates lookup and delete by key.
//
// When the index reaches its maximum load it doubles and every entry
// is registered again. The entries are not moved, so *Entry handles
// and element pointers returned by Ref stay valid, and the iteration
// order is unchanged.

import (
	"hash/maphash"

	"github.com/go-faster/errors"
	"go.uber.org/zap"
)

const (
	// flags
	hashWriting = 4 // a goroutine is writing to the map
)

// ErrKeyNotFound is returned by At when the key is not in the Map.
var ErrKeyNotFound = errors.New("key not found")

// Map implements a hashmap that remembers insertion order.
//
// The zero Map is empty and ready to use with the default hash
// function. A Map must not be copied after first use; use Clone or
// Assign instead.
type Map[K comparable, E any] struct {
	// Only the first 8 bits are used.
	flags uint32

	entries entryLog[K, E]
	index   bucketIndex[K, E]

	// nbuckets is the index size the Map starts with and returns to
	// on Clear. Zero means initialBuckets.
	nbuckets int

	seed maphash.Seed
	hash HashFunc[K]

	logger *zap.Logger
}

// Iterator is instantiated by a call Iter(). It allows iterating over
// a Map in insertion order.
type Iterator[K comparable, E any] struct {
	key     K
	elem    E
	m       *Map[K, E]
	entry   *Entry[K, E]
	started bool
}

// Key returns the key at the iterator's current position. This is
// only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Key() K {
	return it.key
}

// Elem returns the element at the iterator's current position. This
// is only valid after a call to Next() that returns true.
func (it *Iterator[K, E]) Elem() E {
	return it.elem
}

// Entry returns the entry at the iterator's current position. It can
// be used to modify the element in place. This is only valid after a
// call to Next() that returns true.
func (it *Iterator[K, E]) Entry() *Entry[K, E] {
	return it.entry
}

// KeyElem contains a Key and Elem.
type KeyElem[K, E any] struct {
	Key  K
	Elem E
}

// New instantiates a new Map using the default hash function,
// initialized with any KeyElems passed. If a key is passed more than
// once the first KeyElem wins.
func New[K comparable, E any](kes ...KeyElem[K, E]) *Map[K, E] {
	return NewFunc(nil, kes...)
}

// NewFunc instantiates a new Map that hashes keys with hash,
// initialized with any KeyElems passed. A nil hash selects
// [ComparableHash]. See [HashFunc] for the requirements on hash.
func NewFunc[K comparable, E any](hash HashFunc[K], kes ...KeyElem[K, E]) *Map[K, E] {
	m := NewHint[K, E](0, hash)
	for _, ke := range kes {
		m.Insert(ke.Key, ke.Elem)
	}
	return m
}

// NewHint instantiates a new Map with a hint as to how many elements
// will be inserted. The Map returns to the hinted size on Clear. See
// [NewFunc] for discussion of the hash argument.
func NewHint[K comparable, E any](hint int, hash HashFunc[K]) *Map[K, E] {
	nbuckets := initialBuckets
	if hint > 0 {
		nbuckets = bucketsForHint(hint)
	}
	m := &Map[K, E]{nbuckets: nbuckets, hash: hash}
	m.init()
	return m
}

// init prepares a zero Map for its first write.
func (m *Map[K, E]) init() {
	if m.index.buckets != nil {
		return
	}
	if m.hash == nil {
		m.hash = ComparableHash[K]
	}
	if m.nbuckets == 0 {
		m.nbuckets = initialBuckets
	}
	m.seed = maphash.MakeSeed()
	m.index.buckets = make([][]*Entry[K, E], m.nbuckets)
}

// SetLogger sets the logger that index growth is reported to, at
// debug level. A nil logger disables logging.
func (m *Map[K, E]) SetLogger(logger *zap.Logger) {
	m.logger = logger
}

// HashFunction returns the function m hashes keys with.
func (m *Map[K, E]) HashFunction() HashFunc[K] {
	if m == nil || m.hash == nil {
		return ComparableHash[K]
	}
	return m.hash
}

// Len returns the count of occupied elements in m.
func (m *Map[K, E]) Len() int {
	if m == nil {
		return 0
	}
	return m.entries.len
}

// Empty reports whether m has no elements.
func (m *Map[K, E]) Empty() bool {
	return m.Len() == 0
}

// Buckets returns the current number of buckets in m's index.
func (m *Map[K, E]) Buckets() int {
	if m == nil {
		return 0
	}
	return m.index.size()
}

// LoadFactor returns the average number of elements per bucket.
func (m *Map[K, E]) LoadFactor() float64 {
	if m.Buckets() == 0 {
		return 0
	}
	return float64(m.entries.len) / float64(m.index.size())
}

// Find returns the entry for key, or nil if key is not in m.
func (m *Map[K, E]) Find(key K) *Entry[K, E] {
	if m == nil || m.entries.len == 0 {
		return nil
	}
	b, i := m.index.locate(m.hash(m.seed, key), key)
	if i < 0 {
		return nil
	}
	return m.index.buckets[b][i]
}

// Get returns the element associated with key and true if that key is
// in the Map, otherwise it returns the zero value of E and false.
func (m *Map[K, E]) Get(key K) (E, bool) {
	if e := m.Find(key); e != nil {
		return e.elem, true
	}
	var zeroE E
	return zeroE, false
}

// At returns the element associated with key. If key is not in the
// Map it returns an error matching [ErrKeyNotFound]; m is not
// modified.
func (m *Map[K, E]) At(key K) (E, error) {
	if e := m.Find(key); e != nil {
		return e.elem, nil
	}
	var zeroE E
	return zeroE, errors.Wrapf(ErrKeyNotFound, "lookup %v", key)
}

// Insert adds key with elem to m if key is not already present and
// reports whether it did. An existing element is left unchanged.
func (m *Map[K, E]) Insert(key K, elem E) bool {
	_, inserted := m.insert(key, elem, false)
	return inserted
}

// Set associates key with elem in m. If key is already present its
// element is replaced and it keeps its place in the iteration order.
func (m *Map[K, E]) Set(key K, elem E) {
	m.insert(key, elem, true)
}

// Ref returns a pointer to the element associated with key, first
// inserting the zero value of E at the end of the iteration order if
// key is absent. The pointer stays valid until key is deleted or m is
// cleared.
func (m *Map[K, E]) Ref(key K) *E {
	var zeroE E
	e, _ := m.insert(key, zeroE, false)
	return &e.elem
}

// Update calls fn with the current element for key, or the zero value
// of E if key is absent, and stores the result.
func (m *Map[K, E]) Update(key K, fn func(cur E) E) {
	p := m.Ref(key)
	*p = fn(*p)
}

func (m *Map[K, E]) insert(key K, elem E, overwrite bool) (*Entry[K, E], bool) {
	if m == nil {
		// We have to panic here rather than initialize an empty map
		// because there is nowhere to store it.
		panic("write to nil linkedmap.Map")
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.init()
	hash := m.hash(m.seed, key)
	// Set hashWriting after calling m.hash, since m.hash may panic,
	// in which case we have not actually done a write.
	m.flags ^= hashWriting

	var e *Entry[K, E]
	inserted := false
	if b, i := m.index.locate(hash, key); i >= 0 {
		e = m.index.buckets[b][i]
		if overwrite {
			e.elem = elem
		}
	} else {
		if overLoadFactor(m.entries.len+1, m.index.size()) {
			m.grow()
		}
		e = m.entries.append(hash, key, elem)
		m.index.register(e)
		inserted = true
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
	return e, inserted
}

// Delete removes key and its associated value from the map. Deleting
// an absent key is a no-op.
func (m *Map[K, E]) Delete(key K) {
	if m == nil || m.entries.len == 0 {
		return
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	hash := m.hash(m.seed, key)
	m.flags ^= hashWriting

	if b, i := m.index.locate(hash, key); i >= 0 {
		e := m.index.buckets[b][i]
		m.index.unregister(b, i)
		m.entries.remove(e)
		// Reset the hash seed to make it more difficult for attackers to
		// repeatedly trigger hash collisions. See issue 25237.
		if m.entries.len == 0 {
			m.seed = maphash.MakeSeed()
		}
	}

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}

// Clear deletes all keys from m and shrinks its index back to the
// size it was created with.
func (m *Map[K, E]) Clear() {
	if m == nil || m.index.buckets == nil {
		return
	}
	if m.flags&hashWriting != 0 {
		panic("concurrent map writes")
	}
	m.flags ^= hashWriting

	m.entries.clear()
	m.index.buckets = make([][]*Entry[K, E], m.nbuckets)
	m.seed = maphash.MakeSeed()

	if m.flags&hashWriting == 0 {
		panic("concurrent map writes")
	}
	m.flags &^= hashWriting
}

// Clone returns a copy of m with the same hash function and the same
// key/elem pairs in the same order. Elements are copied by
// assignment.
func (m *Map[K, E]) Clone() *Map[K, E] {
	if m == nil {
		return nil
	}
	c := &Map[K, E]{nbuckets: m.nbuckets, hash: m.hash, logger: m.logger}
	c.init()
	if n := m.index.size(); n > c.index.size() {
		// m's current size already fits its entries.
		c.index.buckets = make([][]*Entry[K, E], n)
	}
	for e := m.entries.head; e != nil; e = e.next {
		c.Insert(e.key, e.elem)
	}
	return c
}

// Assign replaces the contents of m with a copy of src, including its
// hash function. Entries previously obtained from m become invalid.
// Assigning a Map to itself is a no-op.
func (m *Map[K, E]) Assign(src *Map[K, E]) {
	if m == src {
		return
	}
	if m == nil {
		panic("write to nil linkedmap.Map")
	}
	if src != nil {
		m.hash = src.HashFunction()
	}
	m.Clear()
	for e := src.Front(); e != nil; e = e.Next() {
		m.Insert(e.key, e.elem)
	}
}

// Front returns the oldest entry of m, or nil if m is empty.
func (m *Map[K, E]) Front() *Entry[K, E] {
	if m == nil {
		return nil
	}
	return m.entries.head
}

// Back returns the newest entry of m, or nil if m is empty.
func (m *Map[K, E]) Back() *Entry[K, E] {
	if m == nil {
		return nil
	}
	return m.entries.tail
}

// Iter instantiates an Iterator to explore the elements of the Map in
// insertion order. Entries deleted before they are reached are not
// visited. Entries inserted during iteration are visited, but may be
// missed if the iterator's current entry has been deleted.
func (m *Map[K, E]) Iter() *Iterator[K, E] {
	return &Iterator[K, E]{m: m}
}

// Next moves the iterator to the next element. Next returns false
// when the iterator is complete.
func (it *Iterator[K, E]) Next() bool {
	if it.m == nil {
		return false
	}
	var e *Entry[K, E]
	if !it.started {
		it.started = true
		e = it.m.entries.head
	} else if it.entry != nil {
		e = it.entry.Next()
	}
	it.entry = e
	if e == nil {
		var (
			zeroK K
			zeroE E
		)
		it.key = zeroK
		it.elem = zeroE
		return false
	}
	it.key = e.key
	it.elem = e.elem
	return true
}

// grow doubles the index and registers every entry again.
func (m *Map[K, E]) grow() {
	oldsize := m.index.size()
	m.index.rebuild(oldsize*2, &m.entries)
	if m.logger != nil {
		m.logger.Debug("grew bucket index",
			zap.Int("entries", m.entries.len),
			zap.Int("buckets_old", oldsize),
			zap.Int("buckets_new", m.index.size()))
	}
}
