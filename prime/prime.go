// Package prime provides the primality predicate evaluated by the workers.
package prime

var smallPrimes = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19}

// IsPrime reports whether n is prime. 0 and 1 are not prime.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range smallPrimes {
		if n == p {
			return true
		}
		if n%p == 0 {
			return false
		}
	}
	// n has no factor below 23; d <= n/d avoids overflowing d*d
	for d := uint64(23); d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}
	return true
}
