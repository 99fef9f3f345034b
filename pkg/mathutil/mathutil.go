package mathutil

import (
	"github.com/cecil-the-coder/utilkit/pkg/types"
)

// Number covers the numeric types Add and Multiply accept.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Add returns the sum of a and b. No validation is performed; overflow and
// floating-point precision follow Go's rules for T.
func Add[T Number](a, b T) T {
	return a + b
}

// Multiply returns the product of a and b. Same contract as Add.
func Multiply[T Number](a, b T) T {
	return a * b
}

// Factorial returns n! as an int64. Negative input is the only error
// condition and yields a *types.InvalidArgumentError. The implementation is
// iterative; results past 20! overflow int64 silently, matching the
// no-validation contract of the other arithmetic helpers.
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, types.NewInvalidArgumentError("factorial", "Factorial not defined for negative numbers")
	}

	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}
	return result, nil
}
