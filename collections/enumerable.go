package collections

// Enumerable is the read-only surface of [Collection][T].
//
// Accept Enumerable in your own functions so that callers are not tied to
// the concrete *Collection type.
type Enumerable[T any] interface {
	// All returns a copy of every item as a plain Go slice.
	All() []T

	// Count returns the number of items.
	Count() int

	// Each calls fn for every item in order.
	Each(fn func(T))

	// Filter returns a new collection with only the items for which fn
	// returns true.
	Filter(fn func(T) bool) *Collection[T]

	// IsEmpty reports whether the collection contains no items.
	IsEmpty() bool
}

var _ Enumerable[int] = (*Collection[int])(nil)
