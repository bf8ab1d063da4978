package solver

// GCD computes the greatest common divisor of a and b using the
// iterative Euclidean algorithm.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
