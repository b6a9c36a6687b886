// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedmap

import (
	"fmt"
	"strings"
)

const (
	strHeader = "linkedmap.Map["
	strFooter = "]"
)

// String converts m to a string representation using K's and E's
// String functions. Pairs are listed in insertion order.
func String[K interface {
	comparable
	fmt.Stringer
}, E fmt.Stringer](m *Map[K, E]) string {
	return StringFunc(m,
		func(key K) string { return key.String() },
		func(elem E) string { return elem.String() },
	)
}

// String converts m to a string representation, formatting keys and
// elems with the %v verb.
func (m *Map[K, E]) String() string {
	return StringFunc(m,
		func(key K) string { return fmt.Sprint(key) },
		func(elem E) string { return fmt.Sprint(elem) },
	)
}

type strKE struct {
	k string
	e string
}

// StringFunc converts m to a string representation with the help of
// strK and strE functions to stringify m's keys and elems. Pairs are
// listed in insertion order.
func StringFunc[K comparable, E any](m *Map[K, E],
	strK func(key K) string,
	strE func(elem E) string) string {
	if m == nil || m.Len() == 0 {
		return strHeader + strFooter
	}
	strs := make([]strKE, 0, m.Len())
	s := 0
	for it := m.Iter(); it.Next(); {
		ke := strKE{k: strK(it.Key()), e: strE(it.Elem())}
		s += len(ke.k) + len(ke.e)
		strs = append(strs, ke)
	}

	var b strings.Builder
	b.Grow(len(strHeader) + len(strFooter) + // space for header and footer
		len(strs)*2 - 1 + // space for delimiters
		s) // space for keys and elems
	b.WriteString(strHeader)
	for i, ke := range strs {
		if i != 0 {
			b.WriteByte(' ')
		}
		b.WriteString(ke.k)
		b.WriteByte(':')
		b.WriteString(ke.e)
	}
	b.WriteString(strFooter)
	return b.String()
}

// Equal returns true if the same set of keys and elems are in m1 and
// m2, regardless of order. Elements are compared using ==.
func Equal[K, E comparable](m1, m2 *Map[K, E]) bool {
	return EqualFunc(m1, m2, func(a, b E) bool { return a == b })
}

// EqualFunc returns true if the same set of keys and elems are in m1
// and m2, regardless of order. Elements are compared using eq.
func EqualFunc[K comparable, E any](m1, m2 *Map[K, E], eq func(E, E) bool) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	for it := m1.Iter(); it.Next(); {
		e2, ok := m2.Get(it.Key())
		if !ok || !eq(it.Elem(), e2) {
			return false
		}
	}
	return true
}

// EqualOrder returns true if m1 and m2 hold the same key/elem pairs
// in the same iteration order. Elements are compared using ==.
func EqualOrder[K, E comparable](m1, m2 *Map[K, E]) bool {
	if m1.Len() != m2.Len() {
		return false
	}
	e2 := m2.Front()
	for e1 := m1.Front(); e1 != nil; e1 = e1.Next() {
		if e2 == nil || e1.key != e2.key || e1.elem != e2.elem {
			return false
		}
		e2 = e2.Next()
	}
	return true
}
