package archimedes

// IsPrime reports whether n is prime.
// It uses deterministic trial division and costs O(sqrt(n)).
func IsPrime(n uint64) bool {
	if n <= 14 {
		switch n {
		case 0, 1, 9:
			return false
		case 2:
			return true
		default:
			return n%2 == 1
		}
	}
	if n%2 == 0 || n%3 == 0 || n%5 == 0 {
		return false
	}
	// any composite n has a factor k with k*k <= n; since n has no factor
	// below 7 here, that k also satisfies 7*k <= n
	const start = 7
	for k := uint64(start); k <= n/start; k += 2 {
		if n%k == 0 {
			return false
		}
	}
	return true
}
