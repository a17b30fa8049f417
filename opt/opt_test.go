package opt_test

import (
	"testing"

	"github.com/samber/mo"

	"github.com/hasbyte1/go-hof/opt"
)

func TestPresentAbsent(t *testing.T) {
	if v, ok := opt.Present(3).Get(); !ok || v != 3 {
		t.Fatalf("Present(3).Get() = %v, %v", v, ok)
	}
	if opt.Absent[int]().IsPresent() {
		t.Fatal("Absent should not be present")
	}
}

func TestFromPtr(t *testing.T) {
	n := 0
	if o := opt.FromPtr(&n); !o.IsPresent() || o.MustGet() != 0 {
		t.Fatalf("FromPtr(&0) = %v", o)
	}
	if opt.FromPtr[int](nil).IsPresent() {
		t.Fatal("FromPtr(nil) should be absent")
	}
}

func TestValues(t *testing.T) {
	got := opt.Values([]mo.Option[int]{
		opt.Present(1), opt.Absent[int](), opt.Present(0), opt.Present(4), opt.Absent[int](),
	})
	want := []int{1, 0, 4}
	if len(got) != len(want) {
		t.Fatalf("Values = %v; want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values[%d] = %d; want %d", i, got[i], want[i])
		}
	}
}

func TestValuesEmpty(t *testing.T) {
	got := opt.Values[string](nil)
	if got == nil || len(got) != 0 {
		t.Fatalf("Values(nil) = %#v; want empty non-nil slice", got)
	}
}
