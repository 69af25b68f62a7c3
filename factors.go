package archimedes

import "golang.org/x/exp/slices"

// Factors returns every positive divisor of n in ascending order, including
// 1 and n itself. Factors(0) returns nil since every integer divides 0.
func Factors(n uint64) []uint64 {
	if n == 0 {
		return nil
	}
	var factors []uint64
	// the loop condition is written so that k never wraps past n
	for k := uint64(1); ; k++ {
		if n%k == 0 {
			factors = append(factors, k)
		}
		if k == n {
			break
		}
	}
	return factors
}

// PrimeFactors returns the prime factorization of n in ascending order, with
// each prime repeated according to its multiplicity (e.g. 12 -> [2 2 3]).
// PrimeFactors returns an empty result for 0 and 1.
func PrimeFactors(n uint64) []uint64 {
	factors := make([]uint64, 0)
	if n == 0 {
		return factors
	}
	for n%2 == 0 {
		factors = append(factors, 2)
		n /= 2
	}
	// divisors are only ever tried in ascending order, so every divisor found
	// is prime
	for k := uint64(3); n > 1; k += 2 {
		if k > n/k {
			// no divisor up to sqrt(n) remains, so n itself is prime
			factors = append(factors, n)
			break
		}
		for n%k == 0 {
			factors = append(factors, k)
			n /= k
		}
	}
	return factors
}

// Coprimes returns every integer k in [2, n) that shares no prime factor with
// n, in ascending order.
func Coprimes(n uint64) []uint64 {
	var coprimes []uint64
	if n < 3 {
		return coprimes
	}
	nFactors := PrimeFactors(n)
	for k := uint64(2); k < n; k++ {
		if !sharesFactor(PrimeFactors(k), nFactors) {
			coprimes = append(coprimes, k)
		}
	}
	return coprimes
}

// sharesFactor reports whether any element of a occurs in b.
// b must be sorted in ascending order.
func sharesFactor(a, b []uint64) bool {
	for _, f := range a {
		if _, found := slices.BinarySearch(b, f); found {
			return true
		}
	}
	return false
}
