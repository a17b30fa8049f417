package collections

import (
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-hof/seq"
)

// Collection is an immutable ordered sequence of T.
//
//	c := collections.New(1, 2, 3)
//	c := collections.From([]string{"a", "b"})
//	c := collections.Empty[int]()
type Collection[T any] struct {
	items []T
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from a variadic list of items (copied).
func New[T any](items ...T) *Collection[T] { return From(items) }

// From creates a Collection from a slice (the slice is copied).
func From[T any](items []T) *Collection[T] {
	dst := make([]T, len(items))
	copy(dst, items)
	return &Collection[T]{items: dst}
}

// Empty creates an empty Collection of type T.
func Empty[T any]() *Collection[T] {
	return &Collection[T]{items: []T{}}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a copy of the underlying slice.
func (c *Collection[T]) All() []T {
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// Count returns the number of items in the collection.
func (c *Collection[T]) Count() int { return len(c.items) }

// IsEmpty reports whether the collection contains no items.
func (c *Collection[T]) IsEmpty() bool { return len(c.items) == 0 }

// Get returns the item at index together with a presence flag.
func (c *Collection[T]) Get(index int) (T, bool) {
	var zero T
	if index < 0 || index >= len(c.items) {
		return zero, false
	}
	return c.items[index], true
}

// ToJSON serialises the collection items to a JSON array.
func (c *Collection[T]) ToJSON() ([]byte, error) {
	return json.Marshal(c.items)
}

// String returns a JSON representation of the collection.
func (c *Collection[T]) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items)
	}
	return string(b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation (type-preserving)
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every item in order.
func (c *Collection[T]) Each(fn func(T)) {
	for _, item := range c.items {
		fn(item)
	}
}

// Filter returns a new collection with only the items for which fn returns
// true, in their original order.
func (c *Collection[T]) Filter(fn func(T) bool) *Collection[T] {
	return &Collection[T]{items: seq.Filter(c.items, fn)}
}

// Reject is the complement of [Collection.Filter].
func (c *Collection[T]) Reject(fn func(T) bool) *Collection[T] {
	return c.Filter(func(item T) bool { return !fn(item) })
}

// Transform returns a new collection with every item replaced by fn(item).
// For a different element type use the package-level [Map].
func (c *Collection[T]) Transform(fn func(T) T) *Collection[T] {
	return Map(c, fn)
}

// Reduce folds the collection left to right into a value of type T.
// For reductions that change the type use the package-level [Reduce].
func (c *Collection[T]) Reduce(fn func(carry, item T) T, initial T) T {
	return seq.Reduce(c.items, fn, initial)
}

// ReduceFirst folds the collection using its first item as the initial
// value. Returns [ErrEmptyCollection] when there is no first item.
func (c *Collection[T]) ReduceFirst(fn func(carry, item T) T) (T, error) {
	if len(c.items) == 0 {
		var zero T
		return zero, ErrEmptyCollection
	}
	return seq.Reduce(c.items[1:], fn, c.items[0]), nil
}
