package demo

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
	"golang.org/x/exp/slices"

	"github.com/hasbyte1/go-hof/collections"
	"github.com/hasbyte1/go-hof/dict"
	"github.com/hasbyte1/go-hof/fn"
	"github.com/hasbyte1/go-hof/opt"
	"github.com/hasbyte1/go-hof/seq"
	"github.com/hasbyte1/go-hof/set"
)

// Section names, in the order the tutorial presents them.
const (
	SectionFunctions  = "functions"
	SectionMap        = "map"
	SectionFilter     = "filter"
	SectionReduce     = "reduce"
	SectionFlatMap    = "flatmap"
	SectionCompactMap = "compactmap"
)

const metersToFeet = 3.2808

// Tutorial returns a new registry holding every example of the
// higher-order-function tutorial. Values computed from maps or sets are
// sorted so that output is stable between runs.
func Tutorial() *Registry {
	r := NewRegistry()
	for _, ex := range tutorialExamples() {
		r.MustRegister(ex)
	}
	return r
}

func tutorialExamples() []Example {
	return []Example{
		// Passing and returning functions.
		{SectionFunctions, "pass-multiply", func() any {
			return fn.CombineWithOperation(fn.Multiply[float64], 10, 10)
		}},
		{SectionFunctions, "pass-add", func() any {
			return fn.CombineWithOperation(fn.Add[float64], 15, 20)
		}},
		{SectionFunctions, "return-multiply", func() any {
			return fn.SelectOperation[float64](true)(2, 4)
		}},
		{SectionFunctions, "return-add", func() any {
			return fn.SelectOperation[float64](false)(5, 4)
		}},

		{SectionMap, "map-array", func() any {
			return seq.Map([]int{2, 3, 4, 5, 6, 7}, func(n int) int { return n * 3 })
		}},
		{SectionMap, "map-dictionary", func() any {
			books := map[string]float64{"harrypotter": 100, "junglebook": 100}
			names := dict.Map(books, func(k string, _ float64) string { return capitalize(k) })
			slices.Sort(names)
			return names
		}},
		{SectionMap, "map-set", func() any {
			meters := set.Of(4.0, 6.2, 8.9)
			return set.Sorted(set.Map(meters, func(m float64) float64 { return m * metersToFeet }))
		}},
		{SectionMap, "map-enumerated", func() any {
			pairs := collections.Enumerate(collections.New(1, 2, 3, 4, 5))
			return collections.Map(pairs, func(p collections.Pair[int, int]) string {
				return fmt.Sprintf("%d : %d", p.First, p.Second)
			}).All()
		}},

		{SectionFilter, "filter-array", func() any {
			return seq.Filter([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, func(n int) bool { return n%2 == 0 })
		}},
		{SectionFilter, "filter-dictionary", func() any {
			books := map[string]float64{"harrypotter": 100, "junglebook": 1000}
			return dict.Filter(books, func(_ string, v float64) bool { return v < 1000 })
		}},
		{SectionFilter, "filter-set", func() any {
			return set.Sorted(set.Filter(set.Of(4.0, 6.2, 8.9), func(m float64) bool { return m > 5 }))
		}},

		{SectionReduce, "reduce-sum", func() any {
			return seq.Reduce([]int{2, 4, 5, 6, 8}, fn.Add[int], 0)
		}},
		{SectionReduce, "reduce-strings", func() any {
			return seq.Concat([]string{"am", "by", "mb", "ayi"})
		}},
		{SectionReduce, "reduce-dictionary-values", func() any {
			return dict.Reduce(bookShelf(), func(acc float64, e dict.Entry[string, float64]) float64 {
				return acc + e.Value
			}, 10)
		}},
		{SectionReduce, "reduce-dictionary-keys", func() any {
			return dict.ReduceSorted(bookShelf(), func(acc string, e dict.Entry[string, float64]) string {
				return acc + e.Key
			}, "")
		}},

		{SectionFlatMap, "flatmap-nested", func() any {
			codes := [][]string{{"abs", "def", "ghe"}, {"abs", "khvy", "hdjr"}}
			return seq.FlatMap(codes, func(xs []string) []string { return seq.Map(xs, strings.ToUpper) })
		}},
		{SectionFlatMap, "flatmap-strings", func() any {
			return seq.FlatMap([]string{"abs", "def", "ghe"}, func(s string) []string {
				return seq.Chars(strings.ToUpper(s))
			})
		}},
		{SectionFlatMap, "flatmap-characters", func() any {
			return seq.Chars("amby mbayi heloo me")
		}},
		{SectionFlatMap, "flatmap-dictionary", func() any {
			entries := dict.FlatMap(dictGroups())
			slices.SortFunc(entries, func(a, b dict.Entry[string, string]) int { return strings.Compare(a.Key, b.Key) })
			return entries
		}},
		{SectionFlatMap, "flatmap-dictionary-merge", func() any {
			return dict.FromEntries(dict.FlatMap(dictGroups()))
		}},
		{SectionFlatMap, "flatmap-set", func() any {
			return set.Sorted(set.Flatten(set.Of(4.0, 6.2, 8.9), set.Of(9.9)))
		}},
		{SectionFlatMap, "flatmap-optionals", func() any {
			return seq.FlatMapOptional(people(), fn.Identity[mo.Option[string]])
		}},

		{SectionCompactMap, "compactmap-array", func() any {
			xs := []mo.Option[int]{opt.Present(1), opt.Absent[int](), opt.Present(2), opt.Present(4), opt.Absent[int]()}
			return seq.CompactMap(xs, fn.Identity[mo.Option[int]])
		}},
		{SectionCompactMap, "compactmap-optionals", func() any {
			return seq.CompactMap(people(), fn.Identity[mo.Option[string]])
		}},
		{SectionCompactMap, "compactmap-dictionary", func() any {
			return dict.CompactValues(map[string]mo.Option[int]{"a": opt.Present(1), "b": opt.Absent[int]()})
		}},
	}
}

func bookShelf() map[string]float64 {
	return map[string]float64{"ambyMbayi": 100, "kenya one": 90}
}

func dictGroups() []map[string]string {
	return []map[string]string{{"key1": "value1", "key2": "value2"}, {"key3": "value3"}}
}

func people() []mo.Option[string] {
	return []mo.Option[string]{
		opt.Present("amby"), opt.Absent[string](), opt.Present("peter"), opt.Absent[string](), opt.Present("harry"),
	}
}
