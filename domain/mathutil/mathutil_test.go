package mathutil

import "testing"

func TestFactorial(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int64
	}{
		{
			name: "zero",
			n:    0,
			want: 1,
		},
		{
			name: "one",
			n:    1,
			want: 1,
		},
		{
			name: "five",
			n:    5,
			want: 120,
		},
		{
			name: "ten",
			n:    10,
			want: 3628800,
		},
		{
			name: "twenty fits in int64",
			n:    20,
			want: 2432902008176640000,
		},
		{
			name: "negative yields one",
			n:    -3,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Factorial(tt.n); got != tt.want {
				t.Errorf("Factorial(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestFibonacci(t *testing.T) {
	want := []int{0, 1, 1, 2, 3, 5, 8, 13, 21, 34, 55}
	for n, expected := range want {
		if got := Fibonacci(n); got != expected {
			t.Errorf("Fibonacci(%d) = %d, want %d", n, got, expected)
		}
	}

	if got := Fibonacci(-5); got != 0 {
		t.Errorf("Fibonacci(-5) = %d, want 0", got)
	}
}

func TestIsPrime(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want bool
	}{
		{
			name: "two",
			n:    2,
			want: true,
		},
		{
			name: "three",
			n:    3,
			want: true,
		},
		{
			name: "seventeen",
			n:    17,
			want: true,
		},
		{
			name: "large prime",
			n:    7919,
			want: true,
		},
		{
			name: "one",
			n:    1,
			want: false,
		},
		{
			name: "zero",
			n:    0,
			want: false,
		},
		{
			name: "negative",
			n:    -7,
			want: false,
		},
		{
			name: "even composite",
			n:    100,
			want: false,
		},
		{
			name: "odd composite",
			n:    9,
			want: false,
		},
		{
			name: "square of prime",
			n:    49,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPrime(tt.n); got != tt.want {
				t.Errorf("IsPrime(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
