package digits

import "math/big"

// Sum returns the sum of the decimal digits of n. The sign is ignored:
// Sum(-12) == Sum(12) == 3. A nil n sums to 0.
func Sum(n *big.Int) int64 {
	if n == nil {
		return 0
	}

	var sum int64
	for _, ch := range n.Text(10) {
		if ch == '-' {
			continue
		}
		sum += int64(ch - '0')
	}

	return sum
}

// Count returns the number of decimal digits of n, ignoring the sign.
// Zero (and nil) count as one digit.
func Count(n *big.Int) int {
	if n == nil || n.Sign() == 0 {
		return 1
	}

	s := n.Text(10)
	if s[0] == '-' {
		return len(s) - 1
	}

	return len(s)
}

// SumInt64 returns the sum of the decimal digits of n, ignoring the sign.
// Works digit-by-digit, so even math.MinInt64 is handled.
func SumInt64(n int64) int64 {
	var sum int64
	for n != 0 {
		d := n % 10
		if d < 0 {
			d = -d
		}
		sum += d
		n /= 10
	}

	return sum
}
