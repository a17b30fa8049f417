package set

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Set is an unordered collection of unique elements. Create sets with
// [New], [Of] or [From]. The zero value is an empty set ready to use, and a
// nil *Set reads as empty; Add on a nil *Set panics.
//
// Floating-point NaN is not a valid element: NaN never equals itself, so
// it can be added repeatedly but never found.
type Set[T comparable] struct {
	m map[T]struct{}
}

// New returns an empty set.
func New[T comparable]() *Set[T] {
	return &Set[T]{m: make(map[T]struct{})}
}

// Of returns a set holding items, duplicates collapsed.
func Of[T comparable](items ...T) *Set[T] { return From(items) }

// From returns a set holding the elements of items.
func From[T comparable](items []T) *Set[T] {
	s := &Set[T]{m: make(map[T]struct{}, len(items))}
	for _, item := range items {
		s.m[item] = struct{}{}
	}
	return s
}

// Add inserts items in place and returns s.
func (s *Set[T]) Add(items ...T) *Set[T] {
	if s.m == nil {
		s.m = make(map[T]struct{}, len(items))
	}
	for _, item := range items {
		s.m[item] = struct{}{}
	}
	return s
}

// Has reports whether item is in s.
func (s *Set[T]) Has(item T) bool {
	if s == nil {
		return false
	}
	_, ok := s.m[item]
	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.m)
}

// IsEmpty reports whether s has no elements.
func (s *Set[T]) IsEmpty() bool { return s.Len() == 0 }

// Items returns the elements in unspecified order.
func (s *Set[T]) Items() []T {
	if s == nil {
		return []T{}
	}
	return lo.Keys(s.m)
}

// Equal reports whether s and other hold exactly the same elements.
func (s *Set[T]) Equal(other *Set[T]) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, item := range s.Items() {
		if !other.Has(item) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy of s.
func (s *Set[T]) Clone() *Set[T] { return From(s.Items()) }

// String returns the elements formatted as "{a b c}" in unspecified order.
func (s *Set[T]) String() string {
	inner := strings.TrimSuffix(strings.TrimPrefix(fmt.Sprint(s.Items()), "["), "]")
	return "{" + inner + "}"
}

// MarshalJSON encodes s as a JSON array.
func (s *Set[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Items())
}

// Sorted returns the elements of s in ascending order.
func Sorted[T constraints.Ordered](s *Set[T]) []T {
	items := s.Items()
	slices.Sort(items)
	return items
}
