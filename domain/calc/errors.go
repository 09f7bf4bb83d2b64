package calc

import "errors"

var (
	// ErrDivisionByZero indicates the divisor was exactly zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidOperation indicates an unrecognized operation name.
	ErrInvalidOperation = errors.New("invalid operation")
	// ErrNegativeSquareRoot indicates a square root of a negative operand.
	ErrNegativeSquareRoot = errors.New("cannot take square root of negative number")
)
