// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

// Package bidimap exposes a bidirectional map structure: a bijective
// association between two comparable key domains with lookup in either
// direction. Each association is stored once, in a slab shared by both
// indices. The map is not safe for concurrent use; callers needing
// concurrent access must add their own synchronization.
package bidimap

import (
	"fmt"

	"bidimap/slab"
)

// pair is the single authoritative copy of one association. Both indices
// reference its slot.
type pair[K, V comparable] struct {
	key   K
	value V
}

// Pair is one key/value association, used for bulk insertion.
type Pair[K, V comparable] struct {
	Key   K
	Value V
}

// Map is a bidirectional map.
type Map[K, V comparable] struct {
	forward map[K]slab.Ref
	inverse map[V]slab.Ref
	pairs   *slab.Slab[pair[K, V]]
}

// New returns a new bidirectional map from an existing map. The input may
// be nil. A non-bijective input is resolved by the usual insertion rules,
// in map iteration order.
func New[K, V comparable](input map[K]V) *Map[K, V] {
	output := &Map[K, V]{
		forward: make(map[K]slab.Ref, len(input)),
		inverse: make(map[V]slab.Ref, len(input)),
		pairs:   slab.New[pair[K, V]](),
	}
	for key, value := range input {
		output.Insert(key, value)
	}
	return output
}

// Insert inserts a new key/value pair. Any existing pair using the key or
// the value is removed first, so the map stays bijective. Overwriting is
// normal behavior, not an error.
func (bi *Map[K, V]) Insert(k K, v V) {
	if ref, ok := bi.inverse[v]; ok {
		// The value's old pair loses its forward entry. Its inverse
		// entry is overwritten below.
		delete(bi.forward, bi.pairs.Get(ref).key)
		bi.pairs.Take(ref)
	}
	if ref, ok := bi.forward[k]; ok {
		// Checked after the mutation above: when k and v belonged to
		// the same pair, that pair is already gone.
		delete(bi.inverse, bi.pairs.Get(ref).value)
		bi.pairs.Take(ref)
	}
	ref := bi.pairs.Put(pair[K, V]{key: k, value: v})
	bi.forward[k] = ref
	bi.inverse[v] = ref
}

// Extend inserts each pair of the given sequence in order. Later pairs
// override earlier ones by the usual insertion rules.
func (bi *Map[K, V]) Extend(pairs []Pair[K, V]) {
	for _, p := range pairs {
		bi.Insert(p.Key, p.Value)
	}
}

// LoadValue returns the value stored in the bidirectional map for a key.
func (bi *Map[K, V]) LoadValue(k K) (V, bool) {
	if ref, ok := bi.forward[k]; ok {
		return bi.pairs.Get(ref).value, true
	}
	var value V
	return value, false
}

// LoadKey returns the key stored in the bidirectional map for a value.
func (bi *Map[K, V]) LoadKey(v V) (K, bool) {
	if ref, ok := bi.inverse[v]; ok {
		return bi.pairs.Get(ref).key, true
	}
	var key K
	return key, false
}

// DeleteKey removes the pair using the given key and returns the value it
// mapped to.
func (bi *Map[K, V]) DeleteKey(k K) (V, bool) {
	ref, ok := bi.forward[k]
	if !ok {
		var value V
		return value, false
	}
	value := bi.pairs.Get(ref).value
	delete(bi.forward, k)
	delete(bi.inverse, value)
	bi.pairs.Take(ref)
	return value, true
}

// DeleteValue removes the pair using the given value and returns the key
// that mapped to it.
func (bi *Map[K, V]) DeleteValue(v V) (K, bool) {
	ref, ok := bi.inverse[v]
	if !ok {
		var key K
		return key, false
	}
	key := bi.pairs.Get(ref).key
	delete(bi.forward, key)
	delete(bi.inverse, v)
	bi.pairs.Take(ref)
	return key, true
}

// Len returns the number of pairs in the bidirectional map.
func (bi *Map[K, V]) Len() int {
	return len(bi.forward)
}

// Keys returns a slice of the keys in the bidirectional map.
func (bi *Map[K, V]) Keys() []K {
	var keys []K
	for k := range bi.forward {
		keys = append(keys, k)
	}
	return keys
}

// Values returns a slice of the values in the bidirectional map.
func (bi *Map[K, V]) Values() []V {
	var values []V
	for v := range bi.inverse {
		values = append(values, v)
	}
	return values
}

// String returns a string representation of the bidirectional map.
func (bi *Map[K, V]) String() string {
	flat := make(map[K]V, len(bi.forward))
	for k, ref := range bi.forward {
		flat[k] = bi.pairs.Get(ref).value
	}
	return fmt.Sprintf("Bi%v", flat)
}
