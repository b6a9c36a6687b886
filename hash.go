// Modifications copyright (c) Arista Networks, Inc. 2024
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedmap

import (
	"encoding/binary"
	"hash/maphash"

	"golang.org/x/exp/constraints"
)

// HashFunc hashes a key. The seed is owned by the Map and is meant to
// be used with functions and types in the [hash/maphash] package,
// though it can be ignored. Functions such as [maphash.String] can be
// used as a HashFunc directly.
//
// If a == b then hash(seed, a) must equal hash(seed, b).
type HashFunc[K any] func(seed maphash.Seed, key K) uint64

// ComparableHash is the default HashFunc. It hashes any comparable
// key the way the built-in map does.
func ComparableHash[K comparable](seed maphash.Seed, key K) uint64 {
	return maphash.Comparable(seed, key)
}

// IntegerHash is a HashFunc for integer keys.
func IntegerHash[K constraints.Integer](seed maphash.Seed, key K) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))
	return maphash.Bytes(seed, buf[:])
}
