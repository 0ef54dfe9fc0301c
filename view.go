// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

package bidimap

import "fmt"

// Getter is the lookup capability shared by the two directional views.
type Getter[K, V comparable] interface {
	Load(k K) (V, bool)
}

var (
	_ Getter[int, string] = KeyView[int, string]{}
	_ Getter[string, int] = ValueView[int, string]{}
)

// KeyView presents the key-to-value direction of a bidirectional map as a
// plain lookup structure. It holds no data of its own and stays valid as
// long as the underlying map.
type KeyView[K, V comparable] struct {
	bidi *Map[K, V]
}

// ValueView presents the value-to-key direction of a bidirectional map as
// a plain lookup structure.
type ValueView[K, V comparable] struct {
	bidi *Map[K, V]
}

// AsMap returns a read-only view of the key-to-value direction.
func (bi *Map[K, V]) AsMap() KeyView[K, V] {
	return KeyView[K, V]{bidi: bi}
}

// AsInvMap returns a read-only view of the value-to-key direction.
func (bi *Map[K, V]) AsInvMap() ValueView[K, V] {
	return ValueView[K, V]{bidi: bi}
}

// Load returns the value stored for a key.
func (view KeyView[K, V]) Load(k K) (V, bool) {
	return view.bidi.LoadValue(k)
}

// Load returns the key stored for a value.
func (view ValueView[K, V]) Load(v V) (K, bool) {
	return view.bidi.LoadKey(v)
}

// Get returns the value stored for a key. It panics when the key is
// absent: callers use it only when presence is already established.
func (view KeyView[K, V]) Get(k K) V {
	v, ok := view.bidi.LoadValue(k)
	if !ok {
		panic(fmt.Sprintf("bidimap: key %v not present", k))
	}
	return v
}

// Get returns the key stored for a value. It panics when the value is
// absent.
func (view ValueView[K, V]) Get(v V) K {
	k, ok := view.bidi.LoadKey(v)
	if !ok {
		panic(fmt.Sprintf("bidimap: value %v not present", v))
	}
	return k
}
