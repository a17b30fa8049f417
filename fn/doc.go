// Package fn provides small function-value utilities: binary numeric
// operations passed as arguments, operations returned from functions, and
// composition of unary transforms.
//
// # Passing a function to a function
//
//	fn.CombineWithOperation(fn.Multiply[float64], 10, 10) // → 100
//	fn.CombineWithOperation(fn.Add[float64], 15, 20)      // → 35
//
// # Returning a function from a function
//
//	mul := fn.SelectOperation[float64](true)
//	add := fn.SelectOperation[float64](false)
//	mul(2, 4) // → 8
//	add(5, 4) // → 9
//
// Operations are plain Go func values. They carry no state and may be shared
// freely between callers.
package fn
