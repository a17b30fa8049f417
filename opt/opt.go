// Package opt is the optional sum type used across go-hof: a value is either
// Present (holding exactly one value) or Absent.
//
// The type itself is [mo.Option]; this package adds the constructors and the
// single unwrap primitive every "drop the absent values" transform in
// go-hof is built on.
package opt

import (
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Present wraps v as a present optional.
func Present[T any](v T) mo.Option[T] { return mo.Some(v) }

// Absent returns an empty optional of type T.
func Absent[T any]() mo.Option[T] { return mo.None[T]() }

// FromPtr returns Absent for a nil pointer and Present(*p) otherwise.
func FromPtr[T any](p *T) mo.Option[T] {
	if p == nil {
		return mo.None[T]()
	}
	return mo.Some(*p)
}

// Values keeps the present optionals of items, unwrapped, in their original
// order. It filters first and unwraps second, so a present zero value is
// kept.
func Values[T any](items []mo.Option[T]) []T {
	present := lo.Filter(items, func(o mo.Option[T], _ int) bool { return o.IsPresent() })
	return lo.Map(present, func(o mo.Option[T], _ int) T { return o.MustGet() })
}
