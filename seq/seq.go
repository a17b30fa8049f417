package seq

import (
	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/hasbyte1/go-hof/opt"
)

// Map returns a slice of the same length where element i is f(xs[i]).
func Map[T, U any](xs []T, f func(T) U) []U {
	return lo.Map(xs, func(x T, _ int) U { return f(x) })
}

// MapIndexed is [Map] with the element index passed to f.
//
//	seq.MapIndexed([]int{1, 2}, func(i, n int) string { return fmt.Sprintf("%d : %d", i, n) })
//	// → ["0 : 1", "1 : 2"]
func MapIndexed[T, U any](xs []T, f func(int, T) U) []U {
	return lo.Map(xs, func(x T, i int) U { return f(i, x) })
}

// Filter returns the elements of xs for which p returns true, in their
// original relative order.
func Filter[T any](xs []T, p func(T) bool) []T {
	return lo.Filter(xs, func(x T, _ int) bool { return p(x) })
}

// Reduce folds xs left to right, starting from initial.
// An empty xs returns initial unchanged.
func Reduce[T, R any](xs []T, f func(R, T) R, initial R) R {
	return lo.Reduce(xs, func(acc R, x T, _ int) R { return f(acc, x) }, initial)
}

// Concat joins xs end to end. It is [Reduce] with string concatenation.
func Concat[S ~string](xs []S) S {
	return Reduce(xs, func(acc, s S) S { return acc + s }, "")
}

// FlatMap maps every element to a slice and flattens the results one level,
// outer order first then inner order.
func FlatMap[T, U any](xs []T, f func(T) []U) []U {
	return lo.FlatMap(xs, func(x T, _ int) []U { return f(x) })
}

// Flatten concatenates xss one level deep.
func Flatten[T any](xss [][]T) []T {
	return FlatMap(xss, func(xs []T) []T { return xs })
}

// Chars flattens s into its characters.
func Chars(s string) []string {
	return Map([]rune(s), func(r rune) string { return string(r) })
}

// FlatMapOptional maps every element to an optional and flattens, treating
// an absent result as zero elements and a present one as one element.
func FlatMapOptional[T, U any](xs []T, f func(T) mo.Option[U]) []U {
	return opt.Values(Map(xs, f))
}

// CompactMap applies f to every element and keeps the present results,
// unwrapped, in order.
func CompactMap[T, U any](xs []T, f func(T) mo.Option[U]) []U {
	return opt.Values(Map(xs, f))
}

// Compact drops the absent entries of xs and unwraps the rest.
func Compact[T any](xs []mo.Option[T]) []T {
	return opt.Values(xs)
}
