package seq_test

import (
	"strings"
	"testing"

	"github.com/samber/mo"

	"github.com/hasbyte1/go-hof/opt"
	"github.com/hasbyte1/go-hof/seq"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func isEven(n int) bool { return n%2 == 0 }

// ─────────────────────────────────────────────────────────────────────────────
// Map
// ─────────────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got := seq.Map([]int{2, 3, 4, 5, 6, 7}, func(n int) int { return n * 3 })
	assertSlice(t, got, []int{6, 9, 12, 15, 18, 21})
}

func TestMapDoesNotMutate(t *testing.T) {
	in := []int{1, 2, 3}
	seq.Map(in, func(n int) int { return n * 100 })
	assertSlice(t, in, []int{1, 2, 3})
}

func TestMapEmpty(t *testing.T) {
	got := seq.Map([]int(nil), func(n int) string { return "x" })
	if got == nil || len(got) != 0 {
		t.Fatalf("Map(nil) = %#v; want empty non-nil", got)
	}
}

func TestMapIndexed(t *testing.T) {
	got := seq.MapIndexed([]int{1, 2, 3}, func(i, n int) string {
		return strings.Repeat("*", i) + string(rune('a'+n-1))
	})
	assertSlice(t, got, []string{"a", "*b", "**c"})
}

// ─────────────────────────────────────────────────────────────────────────────
// Filter
// ─────────────────────────────────────────────────────────────────────────────

func TestFilter(t *testing.T) {
	got := seq.Filter([]int{1, 2, 3, 4, 5, 6, 7, 8, 9}, isEven)
	assertSlice(t, got, []int{2, 4, 6, 8})
}

func TestFilterNone(t *testing.T) {
	got := seq.Filter([]int{1, 3, 5}, isEven)
	if got == nil || len(got) != 0 {
		t.Fatalf("Filter = %#v; want empty non-nil", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reduce
// ─────────────────────────────────────────────────────────────────────────────

func TestReduce(t *testing.T) {
	sum := func(acc, n int) int { return acc + n }
	if got := seq.Reduce([]int{2, 4, 5, 6, 8}, sum, 0); got != 25 {
		t.Fatalf("Reduce = %d; want 25", got)
	}
	if got := seq.Reduce([]int{}, sum, 0); got != 0 {
		t.Fatalf("Reduce(empty) = %d; want 0", got)
	}
	if got := seq.Reduce(nil, sum, 7); got != 7 {
		t.Fatalf("Reduce(nil, 7) = %d; want 7", got)
	}
}

func TestReduceLeftToRight(t *testing.T) {
	got := seq.Reduce([]int{1, 2, 3}, func(acc string, n int) string {
		return "(" + acc + "," + string(rune('0'+n)) + ")"
	}, "")
	if got != "(((,1),2),3)" {
		t.Fatalf("Reduce order = %q", got)
	}
}

func TestConcat(t *testing.T) {
	if got := seq.Concat([]string{"am", "by", "mb", "ayi"}); got != "ambymbayi" {
		t.Fatalf("Concat = %q; want \"ambymbayi\"", got)
	}
	if got := seq.Concat([]string{}); got != "" {
		t.Fatalf("Concat(empty) = %q", got)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// FlatMap
// ─────────────────────────────────────────────────────────────────────────────

func TestFlatMap(t *testing.T) {
	codes := [][]string{{"abs", "def", "ghe"}, {"abs", "khvy", "hdjr"}}
	got := seq.FlatMap(codes, func(xs []string) []string {
		return seq.Map(xs, strings.ToUpper)
	})
	assertSlice(t, got, []string{"ABS", "DEF", "GHE", "ABS", "KHVY", "HDJR"})
}

func TestFlatten(t *testing.T) {
	assertSlice(t, seq.Flatten([][]int{{1, 2}, {}, {3}}), []int{1, 2, 3})
}

func TestChars(t *testing.T) {
	assertSlice(t, seq.Chars("ab c"), []string{"a", "b", " ", "c"})
	assertSlice(t, seq.Chars("né"), []string{"n", "é"})
}

func TestFlatMapOptional(t *testing.T) {
	people := []mo.Option[string]{
		opt.Present("amby"), opt.Absent[string](), opt.Present("peter"), opt.Absent[string](), opt.Present("harry"),
	}
	got := seq.FlatMapOptional(people, func(o mo.Option[string]) mo.Option[string] { return o })
	assertSlice(t, got, []string{"amby", "peter", "harry"})
}

// ─────────────────────────────────────────────────────────────────────────────
// CompactMap
// ─────────────────────────────────────────────────────────────────────────────

func TestCompact(t *testing.T) {
	got := seq.Compact([]mo.Option[int]{
		opt.Present(1), opt.Absent[int](), opt.Present(2), opt.Present(4), opt.Absent[int](),
	})
	assertSlice(t, got, []int{1, 2, 4})
}

func TestCompactMap(t *testing.T) {
	parse := func(s string) mo.Option[int] {
		if s == "" {
			return opt.Absent[int]()
		}
		return opt.Present(len(s))
	}
	assertSlice(t, seq.CompactMap([]string{"a", "", "abc"}, parse), []int{1, 3})
}
