package hash

import "math"

// DefaultLoadFactor - Ratio of expected records to table size used when sizing a new table
const DefaultLoadFactor float64 = 1.5

// MaxTableSize - Upper limit for a table size computed from expected records and load factor
const MaxTableSize int64 = 1 << 30

// FourKPlusThree - Returns the table size for n expected records given a load factor.
// The search starts at n / loadFactor rounded up, moved up to the next odd number if even, and then walks the
// odd numbers until it finds a prime p where p mod 4 == 3.
//   - n is the expected number of records
//   - loadFactor is the target ratio of records to buckets, anything but a finite positive number falls back to
//     DefaultLoadFactor
//
// The search never starts above MaxTableSize.
func FourKPlusThree(n int64, loadFactor float64) (prime int64) {
	if !ValidLoadFactor(loadFactor) {
		loadFactor = DefaultLoadFactor
	}
	if n < 0 {
		n = 0
	}

	start := math.Ceil(float64(n) / loadFactor)
	if start > float64(MaxTableSize) {
		start = float64(MaxTableSize)
	}

	prime = int64(start)
	if prime%2 == 0 {
		prime++
	}

	for !IsPrime(prime) || prime%4 != 3 {
		prime += 2
	}

	return
}

// ValidLoadFactor - Returns true if loadFactor is a finite number higher than 0 (zero)
func ValidLoadFactor(loadFactor float64) bool {
	return loadFactor > 0 && !math.IsInf(loadFactor, 0)
}

// IsPrime - Returns true if v is a prime, tested by trial division up to the rounded square root of v
func IsPrime(v int64) bool {
	if v < 2 {
		return false
	}

	highDivisor := int64(math.Sqrt(float64(v)) + 0.5)
	for d := highDivisor; d > 1; d-- {
		if v%d == 0 {
			return false
		}
	}

	return true
}
