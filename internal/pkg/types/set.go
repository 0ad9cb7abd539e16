// Package types holds small generic collections shared by the address book
// and the ledger generator.
package types

// Set is a hash set for comparable types. Iteration order is unspecified;
// use OrderedSet when output must follow insertion order.
type Set[T comparable] map[T]struct{}

func NewSet[T comparable](data ...T) Set[T] {
	set := make(Set[T], len(data))
	set.Add(data...)
	return set
}

func (s Set[T]) Add(values ...T) {
	for _, val := range values {
		s[val] = struct{}{}
	}
}

// Has reports whether v is a member of the set.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}
