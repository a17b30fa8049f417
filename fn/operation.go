package fn

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Number is the numeric domain binary operations are defined over.
type Number interface {
	constraints.Integer | constraints.Float
}

// Operation is a total binary operation over N.
type Operation[N Number] func(a, b N) N

// Add returns a + b.
func Add[N Number](a, b N) N { return a + b }

// Multiply returns a * b.
func Multiply[N Number](a, b N) N { return a * b }

// CombineWithOperation applies op to a and b and returns the result.
//
// A nil op panics with an error wrapping [ErrNilOperation].
func CombineWithOperation[N Number](op Operation[N], a, b N) N {
	if op == nil {
		panic(fmt.Errorf("%w: CombineWithOperation(%v, %v)", ErrNilOperation, a, b))
	}
	return op(a, b)
}

// SelectOperation returns [Multiply] when wantMultiply is true and [Add]
// otherwise.
func SelectOperation[N Number](wantMultiply bool) Operation[N] {
	if wantMultiply {
		return Multiply[N]
	}
	return Add[N]
}
