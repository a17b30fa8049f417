package dict

import (
	"cmp"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"

	"github.com/hasbyte1/go-hof/opt"
)

// Entries returns every key/value pair of m in map iteration order.
func Entries[K comparable, V any](m map[K]V) []Entry[K, V] {
	return lo.MapToSlice(m, func(k K, v V) Entry[K, V] { return Entry[K, V]{Key: k, Value: v} })
}

// SortedEntries returns every key/value pair of m ordered by key.
func SortedEntries[K constraints.Ordered, V any](m map[K]V) []Entry[K, V] {
	entries := Entries(m)
	slices.SortFunc(entries, func(a, b Entry[K, V]) int { return cmp.Compare(a.Key, b.Key) })
	return entries
}

// FromEntries folds entries into a new mapping. When a key repeats, the
// last entry wins.
func FromEntries[K comparable, V any](entries []Entry[K, V]) map[K]V {
	return lo.FromEntries(lo.Map(entries, func(e Entry[K, V], _ int) lo.Entry[K, V] {
		return lo.Entry[K, V]{Key: e.Key, Value: e.Value}
	}))
}

// Map returns a sequence (not a mapping) holding f(key, value) for every
// entry of m.
func Map[K comparable, V, U any](m map[K]V, f func(K, V) U) []U {
	return lo.MapToSlice(m, f)
}

// Filter returns a new mapping with exactly the entries of m for which p
// returns true.
func Filter[K comparable, V any](m map[K]V, p func(K, V) bool) map[K]V {
	return lo.PickBy(m, p)
}

// Reduce folds every entry of m into an accumulator, starting from initial.
// Iteration order is that of the map.
func Reduce[K comparable, V, R any](m map[K]V, f func(R, Entry[K, V]) R, initial R) R {
	return lo.Reduce(Entries(m), func(acc R, e Entry[K, V], _ int) R { return f(acc, e) }, initial)
}

// ReduceSorted is [Reduce] over entries in ascending key order.
func ReduceSorted[K constraints.Ordered, V, R any](m map[K]V, f func(R, Entry[K, V]) R, initial R) R {
	return lo.Reduce(SortedEntries(m), func(acc R, e Entry[K, V], _ int) R { return f(acc, e) }, initial)
}

// FlatMap flattens ms into one sequence of entries, outer order first.
// Colliding keys are all kept; see [FromEntries].
func FlatMap[K comparable, V any](ms []map[K]V) []Entry[K, V] {
	return lo.FlatMap(ms, func(m map[K]V, _ int) []Entry[K, V] { return Entries(m) })
}

// Merge flattens ms and folds the result into one mapping, last write wins.
func Merge[K comparable, V any](ms ...map[K]V) map[K]V {
	return FromEntries(FlatMap(ms))
}

// CompactMap applies f to every entry and keeps the present results,
// unwrapped.
func CompactMap[K comparable, V, U any](m map[K]V, f func(K, V) mo.Option[U]) []U {
	return opt.Values(Map(m, f))
}

// CompactValues returns a new mapping without the entries whose value is
// absent, with present values unwrapped.
func CompactValues[K comparable, V any](m map[K]mo.Option[V]) map[K]V {
	present := Filter(m, func(_ K, v mo.Option[V]) bool { return v.IsPresent() })
	return lo.MapValues(present, func(v mo.Option[V], _ K) V { return v.MustGet() })
}
