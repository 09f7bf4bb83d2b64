// Package mathutil provides small integer helpers that sit outside the
// recorded calculator operations.
package mathutil

// Factorial returns n!. Values of n below 2 yield 1. The result
// overflows int64 for n > 20.
func Factorial(n int) int64 {
	result := int64(1)
	for i := int64(2); i <= int64(n); i++ {
		result *= i
	}
	return result
}

// Fibonacci returns the nth Fibonacci number, with Fibonacci(0) == 0
// and Fibonacci(1) == 1. Values of n below 0 yield 0.
func Fibonacci(n int) int {
	if n <= 0 {
		return 0
	}
	if n == 1 {
		return 1
	}

	prev, curr := 0, 1
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}
	return curr
}

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
