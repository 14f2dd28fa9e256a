// Copyright 2024 The dxf Authors. All rights reserved.
// Use of this source code is governed by an Apache v2 license
// that can be found in the LICENSE file.

package dxf

import (
	"reflect"
	"testing"
)

func TestPairIteratorPutBackReturnsSamePair(t *testing.T) {
	pairs := []CodePair{NewStringPair(0, "LINE"), NewInt16Pair(62, 3)}
	it := NewPairIterator(NewSlicePairSource(pairs))

	first, ok, err := it.Next()
	if err != nil || !ok {
		t.Fatalf("Next() = (%v, %v, %v), want a pair", first, ok, err)
	}
	it.PutBack(first)

	again, ok, err := it.Next()
	if err != nil || !ok || !reflect.DeepEqual(again, first) {
		t.Fatalf("Next() after PutBack = (%v, %v, %v), want %v", again, ok, err, first)
	}

	second, ok, err := it.Next()
	if err != nil || !ok || !reflect.DeepEqual(second, pairs[1]) {
		t.Fatalf("Next() = (%v, %v, %v), want %v", second, ok, err, pairs[1])
	}
}

func TestPairIteratorDoublePutBackPanics(t *testing.T) {
	it := NewPairIterator(NewSlicePairSource([]CodePair{NewStringPair(0, "LINE")}))
	p, _, _ := it.Next()

	defer func() {
		if recover() == nil {
			t.Error("expected a second PutBack to panic, it did not")
		}
	}()
	it.PutBack(p)
	it.PutBack(p)
}

func TestPairIteratorPeekDoesNotConsume(t *testing.T) {
	it := NewPairIterator(NewSlicePairSource([]CodePair{NewStringPair(0, "LINE")}))

	peeked, ok, err := it.Peek()
	if err != nil || !ok {
		t.Fatalf("Peek() = (%v, %v, %v), want a pair", peeked, ok, err)
	}
	next, ok, err := it.Next()
	if err != nil || !ok || !reflect.DeepEqual(next, peeked) {
		t.Fatalf("Next() after Peek() = (%v, %v, %v), want %v", next, ok, err, peeked)
	}
}

func TestPairIteratorExhausted(t *testing.T) {
	it := NewPairIterator(NewSlicePairSource(nil))
	_, ok, err := it.Next()
	if err != nil || ok {
		t.Fatalf("Next() on empty source = (ok=%v, err=%v), want (false, nil)", ok, err)
	}
}
