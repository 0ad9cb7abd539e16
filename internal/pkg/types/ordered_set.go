package types

import (
	"iter"
	"slices"
)

// OrderedSet is a set that remembers the order in which elements were first
// added. Adding an element that is already present keeps its original
// position.
//
// The zero value is not usable; create instances with NewOrderedSet.
type OrderedSet[T comparable] struct {
	index Set[T]
	items []T
}

// NewOrderedSet creates an OrderedSet holding data in first-occurrence order.
func NewOrderedSet[T comparable](data ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{index: make(Set[T], len(data))}
	s.Add(data...)
	return s
}

// Add appends the values that are not yet present. It reports whether at
// least one new element was inserted.
func (s *OrderedSet[T]) Add(values ...T) bool {
	added := false
	for _, v := range values {
		if s.index.Has(v) {
			continue
		}

		s.index.Add(v)
		s.items = append(s.items, v)
		added = true
	}

	return added
}

// Has reports whether v is a member of the set.
func (s *OrderedSet[T]) Has(v T) bool {
	return s.index.Has(v)
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.items)
}

// All iterates over the elements in insertion order.
func (s *OrderedSet[T]) All() iter.Seq[T] {
	return slices.Values(s.items)
}

// ToSlice returns a copy of the elements in insertion order.
func (s *OrderedSet[T]) ToSlice() []T {
	return slices.Clone(s.items)
}
