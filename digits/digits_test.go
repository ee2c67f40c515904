package digits_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/lvlnum/digits"
	"github.com/stretchr/testify/assert"
)

// TestSum covers small fixtures, signs, and two classic large values:
// the digit sum of 2^1000 is 1366 and of 100! is 648.
func TestSum(t *testing.T) {
	assert.Equal(t, int64(0), digits.Sum(big.NewInt(0)), "zero sums to zero")
	assert.Equal(t, int64(6), digits.Sum(big.NewInt(123)), "1+2+3")
	assert.Equal(t, int64(6), digits.Sum(big.NewInt(-123)), "sign is ignored")
	assert.Equal(t, int64(0), digits.Sum(nil), "nil sums to zero")

	pow := new(big.Int).Exp(big.NewInt(2), big.NewInt(1000), nil)
	assert.Equal(t, int64(1366), digits.Sum(pow), "digit sum of 2^1000")

	fact := big.NewInt(1)
	for i := int64(2); i <= 100; i++ {
		fact.Mul(fact, big.NewInt(i))
	}
	assert.Equal(t, int64(648), digits.Sum(fact), "digit sum of 100!")
}

// TestCount checks digit counts across signs and magnitudes.
func TestCount(t *testing.T) {
	assert.Equal(t, 1, digits.Count(big.NewInt(0)), "zero has one digit")
	assert.Equal(t, 1, digits.Count(nil), "nil counts as zero")
	assert.Equal(t, 3, digits.Count(big.NewInt(123)), "three digits")
	assert.Equal(t, 3, digits.Count(big.NewInt(-123)), "sign does not count")

	pow := new(big.Int).Exp(big.NewInt(10), big.NewInt(99), nil)
	assert.Equal(t, 100, digits.Count(pow), "10^99 has 100 digits")
}

// TestSumInt64 covers the fixed-width variant, including the overflow
// corner at math.MinInt64.
func TestSumInt64(t *testing.T) {
	assert.Equal(t, int64(0), digits.SumInt64(0), "zero sums to zero")
	assert.Equal(t, int64(10), digits.SumInt64(1234), "1+2+3+4")
	assert.Equal(t, int64(10), digits.SumInt64(-1234), "sign is ignored")
	// -9223372036854775808 → 9+2+2+3+3+7+2+0+3+6+8+5+4+7+7+5+8+0+8 = 89
	assert.Equal(t, int64(89), digits.SumInt64(math.MinInt64), "MinInt64 must not overflow")
}
