// Package fib computes Fibonacci numbers.
//
// Both functions use int64 and wrap silently once the result exceeds
// math.MaxInt64, which happens for n > 92. Negative n is outside the domain;
// it is returned verbatim.
//
// The cross-check of Iterative against Recursive for n up to 50 takes
// minutes. It runs only when FIB_CROSSCHECK_LARGE=1 is set.
package fib

// MaxExact is the largest n whose Fibonacci number fits in int64.
const MaxExact = 92

// Iterative returns F(n) in O(n) time and constant space.
func Iterative(n int) int64 {
	if n <= 1 {
		return int64(n)
	}

	var a, b int64 = 0, 1
	for i := 2; i <= n; i++ {
		a, b = b, a+b
	}
	return b
}

// Recursive returns F(n) using the naive double recursion. It takes
// exponential time and is kept unoptimized on purpose as the slow side of the
// comparison.
func Recursive(n int) int64 {
	if n <= 1 {
		return int64(n)
	}
	return Recursive(n-1) + Recursive(n-2)
}

// RecursiveCalls returns how many calls Recursive(n) makes, including the
// outermost one. It follows calls(n) = 1 + calls(n-1) + calls(n-2), which is
// 2*F(n+1) - 1, so it is computed without running the recursion.
func RecursiveCalls(n int) int64 {
	if n <= 1 {
		return 1
	}
	return 2*Iterative(n+1) - 1
}
