//go:build unit

package hash

import (
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

func TestIsPrime(t *testing.T) {
	t.Run("recognizes primes and composites", func(t *testing.T) {
		// Prepare
		primes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 97, 7919}
		composites := []int64{-7, 0, 1, 4, 9, 15, 21, 25, 49, 91, 121, 7917}

		// Execute and Check
		for _, p := range primes {
			assert.True(t, IsPrime(p), "%d is prime", p)
		}
		for _, c := range composites {
			assert.False(t, IsPrime(c), "%d is not prime", c)
		}
	})
}

func TestFourKPlusThree(t *testing.T) {
	t.Run("returns known table sizes", func(t *testing.T) {
		// Prepare
		input := []int64{0, 1, 10, 20, 30, 100, 500}
		expected := []int64{3, 3, 7, 19, 23, 67, 347}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			assert.Equal(t, expected[i], FourKPlusThree(input[i], DefaultLoadFactor), "table size for %d", input[i])
		}
	})

	t.Run("table size is a 4k+3 prime not below n/f", func(t *testing.T) {
		for n := int64(0); n <= 5000; n++ {
			// Execute
			c := FourKPlusThree(n, DefaultLoadFactor)

			// Check
			if !IsPrime(c) || c%4 != 3 || float64(c) < float64(n)/DefaultLoadFactor {
				assert.Fail(t, "invalid table size", "n=%d gave %d", n, c)
				return
			}
		}
	})

	t.Run("holds for other load factors", func(t *testing.T) {
		for _, f := range []float64{0.5, 0.75, 1, 2, 3.3} {
			for n := int64(0); n <= 1000; n += 7 {
				c := FourKPlusThree(n, f)
				if !IsPrime(c) || c%4 != 3 || float64(c) < float64(n)/f {
					assert.Fail(t, "invalid table size", "n=%d f=%f gave %d", n, f, c)
					return
				}
			}
		}
	})

	t.Run("non positive load factor falls back to default", func(t *testing.T) {
		// Execute
		c := FourKPlusThree(20, 0)

		// Check
		assert.Equal(t, int64(19), c, "default load factor used")
	})

	t.Run("load factor that is not a finite positive number falls back to default", func(t *testing.T) {
		for _, f := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
			// Execute
			c := FourKPlusThree(20, f)

			// Check
			assert.Equal(t, int64(19), c, "default load factor used for %f", f)
		}
	})

	t.Run("search starts at most at the max table size", func(t *testing.T) {
		// Execute
		c := FourKPlusThree(math.MaxInt64, 1e-20)

		// Check
		assert.GreaterOrEqual(t, c, MaxTableSize, "not below the max table size")
		assert.True(t, IsPrime(c), "prime")
		assert.Equal(t, int64(3), c%4, "4k+3")
	})
}

func TestValidLoadFactor(t *testing.T) {
	t.Run("accepts only finite positive numbers", func(t *testing.T) {
		assert.True(t, ValidLoadFactor(1.5), "1.5")
		assert.True(t, ValidLoadFactor(1e-9), "tiny positive")
		assert.False(t, ValidLoadFactor(0), "zero")
		assert.False(t, ValidLoadFactor(-1), "negative")
		assert.False(t, ValidLoadFactor(math.NaN()), "NaN")
		assert.False(t, ValidLoadFactor(math.Inf(1)), "+Inf")
		assert.False(t, ValidLoadFactor(math.Inf(-1)), "-Inf")
	})
}
