package fn

// Identity returns v unchanged.
func Identity[T any](v T) T { return v }

// Compose returns the function x → g(f(x)).
//
//	inc := func(n int) int { return n + 1 }
//	dbl := func(n int) int { return n * 2 }
//	fn.Compose(dbl, inc)(3) // → 8
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C { return g(f(a)) }
}
