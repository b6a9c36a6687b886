// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedmap

import "golang.org/x/exp/slices"

const (
	// Number of buckets of a new (or cleared) Map.
	initialBuckets = 20

	// Maximum load of the index is 1/2 entry per bucket.
	// Represent as loadFactorNum/loadFactorDen, to allow integer math.
	loadFactorNum = 1
	loadFactorDen = 2
)

// bucketIndex maps hash(key) % len(buckets) to handles of the entries
// whose key hashes there. It owns no data: every handle points into
// the Map's entry log.
type bucketIndex[K comparable, E any] struct {
	buckets [][]*Entry[K, E]
}

func (x *bucketIndex[K, E]) size() int {
	return len(x.buckets)
}

func (x *bucketIndex[K, E]) bucket(hash uint64) int {
	return int(hash % uint64(len(x.buckets)))
}

// locate returns the bucket key hashes to and the position of its
// handle within that bucket, or -1 if key is absent.
func (x *bucketIndex[K, E]) locate(hash uint64, key K) (int, int) {
	b := x.bucket(hash)
	i := slices.IndexFunc(x.buckets[b], func(e *Entry[K, E]) bool {
		return e.hash == hash && e.key == key
	})
	return b, i
}

// register adds a handle for e. The caller must have checked that
// e's key is not already present.
func (x *bucketIndex[K, E]) register(e *Entry[K, E]) {
	b := x.bucket(e.hash)
	x.buckets[b] = append(x.buckets[b], e)
}

// unregister drops the handle at position i of bucket b.
func (x *bucketIndex[K, E]) unregister(b, i int) {
	bucket := x.buckets[b]
	n := len(bucket)
	bucket = slices.Delete(bucket, i, i+1)
	// Drop the stale handle left past the new length.
	bucket[:n][n-1] = nil
	x.buckets[b] = bucket
}

// rebuild replaces the table with nbuckets empty buckets and
// re-registers every entry of log. The entries themselves are not
// touched, so handles held by callers stay valid.
func (x *bucketIndex[K, E]) rebuild(nbuckets int, log *entryLog[K, E]) {
	x.buckets = make([][]*Entry[K, E], nbuckets)
	for e := log.head; e != nil; e = e.next {
		x.register(e)
	}
}

// overLoadFactor reports whether count entries placed in nbuckets
// buckets reach the maximum load.
func overLoadFactor(count int, nbuckets int) bool {
	return uint64(count)*loadFactorDen >= loadFactorNum*uint64(nbuckets)
}

// bucketsForHint returns the smallest table size, starting from
// initialBuckets and doubling, that holds hint entries under the
// maximum load.
func bucketsForHint(hint int) int {
	nbuckets := initialBuckets
	for overLoadFactor(hint, nbuckets) {
		nbuckets *= 2
	}
	return nbuckets
}
