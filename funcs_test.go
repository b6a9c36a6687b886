// Modifications copyright (c) Arista Networks, Inc. 2022
// Underlying
// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkedmap

import (
	"hash/maphash"
	"strings"
	"testing"
)

type name string

func (n name) String() string { return strings.ToUpper(string(n)) }

func TestString(t *testing.T) {
	m := NewFunc(maphash.String,
		KeyElem[string, struct{}]{"ghi", struct{}{}},
		KeyElem[string, struct{}]{"abc", struct{}{}},
		KeyElem[string, struct{}]{"def", struct{}{}},
	)
	s := m.String()
	expected := "linkedmap.Map[ghi:{} abc:{} def:{}]"
	if expected != s {
		t.Errorf("Got: %q Expected: %q", s, expected)
	}

	s = StringFunc(m,
		func(k string) string { return k },
		func(struct{}) string { return "✅" })
	expected = "linkedmap.Map[ghi:✅ abc:✅ def:✅]"
	if s != expected {
		t.Errorf("Got: %q Expected: %q", s, expected)
	}

	n := New(
		KeyElem[name, name]{"b", "x"},
		KeyElem[name, name]{"a", "y"},
	)
	s = String(n)
	expected = "linkedmap.Map[B:X A:Y]"
	if s != expected {
		t.Errorf("Got: %q Expected: %q", s, expected)
	}

	var empty *Map[string, int]
	if s := empty.String(); s != "linkedmap.Map[]" {
		t.Errorf("Got: %q for a nil map", s)
	}
}

func TestEqual(t *testing.T) {
	m1 := New(
		KeyElem[string, int]{"a", 1},
		KeyElem[string, int]{"b", 2},
	)
	m2 := New(
		KeyElem[string, int]{"b", 2},
		KeyElem[string, int]{"a", 1},
	)
	if !Equal(m1, m2) {
		t.Errorf("expected %s and %s to be equal", m1, m2)
	}
	if EqualOrder(m1, m2) {
		t.Errorf("expected %s and %s to differ in order", m1, m2)
	}
	if !EqualOrder(m1, m1.Clone()) {
		t.Errorf("expected a clone of %s to be equal in order", m1)
	}
	if !EqualFunc(m1, m2, func(a, b int) bool { return a%2 == b%2 }) {
		t.Errorf("expected %s and %s to be equal under EqualFunc", m1, m2)
	}
	m2.Set("a", 3)
	if Equal(m1, m2) {
		t.Errorf("expected %s and %s to differ", m1, m2)
	}
	if !EqualFunc(m1, m2, func(a, b int) bool { return a%2 == b%2 }) {
		t.Errorf("expected %s and %s to be equal under EqualFunc", m1, m2)
	}
	m2.Delete("a")
	if Equal(m1, m2) || EqualOrder(m1, m2) {
		t.Errorf("expected %s and %s to differ", m1, m2)
	}
}
