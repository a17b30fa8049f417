package collections

import (
	"github.com/samber/mo"

	"github.com/hasbyte1/go-hof/seq"
)

// This file holds the operations that turn a Collection[T] into a
// Collection[U]. They compose with method chains:
//
//	labels := collections.Map(
//	    collections.New(1, 2, 3, 4).Filter(func(n int) bool { return n%2 == 0 }),
//	    strconv.Itoa,
//	)

// Map applies fn to every item and returns a new Collection[U].
func Map[T, U any](c *Collection[T], fn func(T) U) *Collection[U] {
	return &Collection[U]{items: seq.Map(c.items, fn)}
}

// MapIndexed is [Map] with the item index passed to fn.
func MapIndexed[T, U any](c *Collection[T], fn func(int, T) U) *Collection[U] {
	return &Collection[U]{items: seq.MapIndexed(c.items, fn)}
}

// Enumerate pairs every item with its index.
//
//	collections.Enumerate(collections.New("a", "b")) // → [(0, a), (1, b)]
func Enumerate[T any](c *Collection[T]) *Collection[Pair[int, T]] {
	return MapIndexed(c, func(i int, item T) Pair[int, T] { return Pair[int, T]{First: i, Second: item} })
}

// FlatMap applies fn to every item and flattens the resulting slices.
func FlatMap[T, U any](c *Collection[T], fn func(T) []U) *Collection[U] {
	return &Collection[U]{items: seq.FlatMap(c.items, fn)}
}

// CompactMap applies fn to every item and keeps the present results.
func CompactMap[T, U any](c *Collection[T], fn func(T) mo.Option[U]) *Collection[U] {
	return &Collection[U]{items: seq.CompactMap(c.items, fn)}
}

// Reduce reduces Collection[T] to a single value of type U.
//
//	sum := collections.Reduce(collections.New(1, 2, 3),
//	    func(acc, n int) int { return acc + n }, 0)
func Reduce[T, U any](c *Collection[T], fn func(U, T) U, initial U) U {
	return seq.Reduce(c.items, fn, initial)
}

// Collapse flattens a Collection[[]T] into a Collection[T] (one level only).
func Collapse[T any](c *Collection[[]T]) *Collection[T] {
	return &Collection[T]{items: seq.Flatten(c.items)}
}
