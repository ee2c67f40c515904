package contfrac

import (
	"fmt"
	"math"
)

// FromSqrt derives the continued fraction of sqrt(n) for an integer
// radicand n ≥ 2.
//
// Description:
//
//	The head is a0 = floor(sqrt(n)). For a non-square n the cycle is
//	produced by the exact integer recurrence over the state (m, d, a):
//
//	    m' = d·a − m
//	    d' = (n − m'²) / d     (the division is always exact)
//	    a' = (a0 + m') / d'
//
//	starting from (m, d, a) = (0, 1, a0). The cycle closes on the first
//	term equal to 2·a0; that closing term is the last element of the
//	stored tail. sqrt(2) therefore yields [1; (2)] and sqrt(3) yields
//	[1; (1, 2)].
//
// Returns:
//
//   - For a perfect square, a finite single-term value (sqrt(n) is an
//     integer); Periodic on it reports ErrNoPeriodicPart.
//   - ErrInvalidRadicand if n < 2.
//
// Complexity: O(p) single-pass steps where p is the period length,
// p = O(sqrt(n)) in the worst case; working state is three int64 scalars
// plus the accumulating tail.
func FromSqrt(n int64) (*ContinuedFraction, error) {
	// 1) Reject invalid radicands before any expansion work.
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidRadicand, n)
	}

	// 2) Head term: integer square root of n.
	a0 := isqrt(n)
	if a0*a0 == n {
		// Perfect square: sqrt(n) is rational, no periodic tail exists.
		return &ContinuedFraction{head: a0}, nil
	}

	// 3) Step the (m, d, a) state until the cycle closes on 2·a0.
	var (
		m     int64
		d     = int64(1)
		a     = a0
		cycle []int64
	)
	for {
		m = d*a - m
		d = (n - m*m) / d // exact: d always divides n − m²
		a = (a0 + m) / d
		cycle = append(cycle, a)
		if a == 2*a0 {
			break
		}
	}

	return &ContinuedFraction{head: a0, periodic: cycle}, nil
}

// isqrt returns floor(sqrt(n)) for n ≥ 0. The float seed is corrected in
// both directions, so radicands near the top of the int64 range where
// float64 loses integer precision still round correctly. The upward check
// uses division to stay overflow-free.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}
