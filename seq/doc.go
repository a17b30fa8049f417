// Package seq provides map, filter, reduce, flatMap and compactMap over
// ordered sequences (plain Go slices).
//
// Every function returns a new slice and leaves its input untouched. Empty
// or nil input yields an empty, non-nil result.
//
//	tripled := seq.Map([]int{2, 3, 4}, func(n int) int { return n * 3 })    // → [6 9 12]
//	evens   := seq.Filter([]int{1, 2, 3, 4}, func(n int) bool { return n%2 == 0 }) // → [2 4]
//	sum     := seq.Reduce([]int{2, 4, 5, 6, 8}, func(acc, n int) int { return acc + n }, 0) // → 25
//
// # Optionals
//
// [FlatMapOptional] and [CompactMap] both drop absent results. They share one
// primitive ([opt.Values]) and always agree for the same transform.
package seq
