// SPDX-FileCopyrightText: 2022 Free Mobile
// SPDX-License-Identifier: AGPL-3.0-only

// Package slab provides slot-addressed storage. A stored value is replaced
// by a small int and released slots are reused for later values.
package slab

// Ref is a reference to a stored value. 0 is not a valid reference value.
type Ref uint32

// Slab keeps values in contiguous slots, referred to by a Ref. A slot
// stays live until released with Take.
type Slab[T any] struct {
	values        []T
	availableRefs []Ref
}

// New creates a new empty slab.
func New[T any]() *Slab[T] {
	return &Slab[T]{
		values:        make([]T, 1), // first slot is reserved
		availableRefs: make([]Ref, 0),
	}
}

// Get retrieves a (copy of the) value from the slab using its reference.
func (s *Slab[T]) Get(ref Ref) T {
	return s.values[ref]
}

// Put adds a value to the slab, returning its reference. Released slots
// are reused before the slab grows.
func (s *Slab[T]) Put(value T) Ref {
	availCount := len(s.availableRefs)
	if availCount > 0 {
		ref := s.availableRefs[availCount-1]
		s.availableRefs = s.availableRefs[:availCount-1]
		s.values[ref] = value
		return ref
	}
	if len(s.values) == cap(s.values) {
		// We need to extend capacity first
		temp := make([]T, len(s.values), (cap(s.values)+1)*2)
		copy(temp, s.values)
		s.values = temp
	}
	ref := Ref(len(s.values))
	s.values = s.values[:ref+1]
	s.values[ref] = value
	return ref
}

// Take releases a slot, making its reference available for reuse. The slot
// is cleared so the stored value can be collected.
func (s *Slab[T]) Take(ref Ref) {
	var zero T
	s.values[ref] = zero
	s.availableRefs = append(s.availableRefs, ref)
}

// Len returns the number of live slots in the slab.
func (s *Slab[T]) Len() int {
	return len(s.values) - len(s.availableRefs) - 1
}
