package set

import (
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/hasbyte1/go-hof/opt"
)

// Map returns the set of f(x) for every x in s. Elements that map to the
// same value collapse.
func Map[T, U comparable](s *Set[T], f func(T) U) *Set[U] {
	return From(lo.Map(s.Items(), func(x T, _ int) U { return f(x) }))
}

// Filter returns the set of elements of s for which p returns true.
func Filter[T comparable](s *Set[T], p func(T) bool) *Set[T] {
	return From(lo.Filter(s.Items(), func(x T, _ int) bool { return p(x) }))
}

// Reduce folds every element of s into an accumulator, starting from
// initial. Iteration order is unspecified.
func Reduce[T comparable, R any](s *Set[T], f func(R, T) R, initial R) R {
	return lo.Reduce(s.Items(), func(acc R, x T, _ int) R { return f(acc, x) }, initial)
}

// FlatMap maps every element to a set and unions the results.
func FlatMap[T, U comparable](s *Set[T], f func(T) *Set[U]) *Set[U] {
	return From(lo.FlatMap(s.Items(), func(x T, _ int) []U { return f(x).Items() }))
}

// Flatten unions sets into one new set.
func Flatten[T comparable](sets ...*Set[T]) *Set[T] {
	return From(lo.FlatMap(sets, func(s *Set[T], _ int) []T { return s.Items() }))
}

// CompactMap applies f to every element and collects the present results.
func CompactMap[T, U comparable](s *Set[T], f func(T) mo.Option[U]) *Set[U] {
	return From(opt.Values(lo.Map(s.Items(), func(x T, _ int) mo.Option[U] { return f(x) })))
}
