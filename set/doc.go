// Package set provides a generic unordered set of unique elements together
// with map, filter, reduce, flatMap and compactMap over it.
//
//	meters := set.Of(4.0, 6.2, 8.9)
//	feet   := set.Map(meters, func(m float64) float64 { return m * 3.2808 })
//	long   := set.Filter(meters, func(m float64) bool { return m > 5 })
//	all    := set.Flatten(meters, set.Of(9.9))
//
// Transforms always return a new set; duplicates produced by a transform
// collapse. Element order is unspecified; [Sorted] lists elements of an
// ordered type deterministically.
package set
