// Package collections provides a fluent, immutable Collection type over an
// ordered sequence, built on the slice helpers of package seq.
//
// # Overview
//
// The central type is [Collection][T], a generic wrapper around a slice of T
// with chainable, type-preserving methods:
//
//	evens := collections.New(1, 2, 3, 4, 5, 6, 7, 8, 9).
//	    Filter(func(n int) bool { return n%2 == 0 }).
//	    All() // → [2 4 6 8]
//
// # Immutability
//
// Every transformation returns a new Collection and leaves the receiver
// unchanged.
//
// # Type-transforming operations
//
// Methods cannot introduce type parameters, so operations that change the
// element type are package-level functions: [Map], [MapIndexed], [Enumerate],
// [FlatMap], [CompactMap], [Reduce] and [Collapse].
//
//	labels := collections.Map(collections.New(1, 2, 3), strconv.Itoa)
package collections
