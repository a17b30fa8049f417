// Package dict provides map, filter, reduce, flatMap and compactMap over
// unique-key mappings (Go maps).
//
// Go map iteration order is unspecified, and so is the order of every
// sequence this package produces from a map. Reductions with a
// non-commutative combine function are therefore order-dependent; use
// [ReduceSorted] or [SortedEntries] when a deterministic order is needed.
//
// # Flattening and key collisions
//
// [FlatMap] flattens a sequence of mappings into a sequence of entries and
// never resolves collisions itself. [FromEntries] folds entries back into a
// single mapping with last-write-wins semantics:
//
//	entries := dict.FlatMap([]map[string]string{{"k": "a"}, {"k": "b"}})
//	dict.FromEntries(entries) // → map[k:b]
package dict
