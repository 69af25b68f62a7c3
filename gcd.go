package archimedes

// GCD returns the greatest common divisor (GCD) of a and b.
// The GCD is the largest integer that divides both a and b.
// GCD(a, 0) == a and GCD(0, b) == b; in particular GCD(0, 0) == 0.
// No ordering between a and b is required.
func GCD(a, b uint64) uint64 {
	// Euclid; the remainder strictly decreases, so this terminates in
	// O(log min(a, b)) steps
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
