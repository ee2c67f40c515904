// Package contfrac provides simple continued fractions with exact,
// arbitrary-precision convergents.
//
// What
//
//   - A ContinuedFraction value represents
//     a0 + 1/(a1 + 1/(a2 + 1/(...)))
//     as a head term, a finite list of following terms (each ≥ 1) and an
//     optional periodic tail that repeats forever after the finite part.
//   - FromSqrt derives the expansion of sqrt(n) for an integer radicand
//     n ≥ 2: a head floor(sqrt(n)) plus, for non-squares, one full period
//     of the cycle. Perfect squares yield a finite, single-term value.
//   - E builds the classic expansion of Euler's number
//     [2; 1, 2, 1, 1, 4, 1, 1, 6, ...] truncated to a given term count.
//   - Convergents returns a fresh lazy generator over the best rational
//     approximations h/k of the value, computed on math/big integers with
//     the standard recurrence
//     h(i) = a(i)·h(i-1) + h(i-2),  k(i) = a(i)·k(i-1) + k(i-2),
//     which keeps every pair fully reduced (gcd(h, k) = 1) by itself.
//
// Why
//
//   - Periodic expansions classify quadratic surds (e.g. odd/even period).
//   - Convergents solve Pell's equation and approximate irrationals to any
//     precision without floating-point error.
//   - Numerators and denominators grow at least exponentially, so the
//     generator works on *big.Int; fixed-width integers overflow after a
//     handful of terms.
//
// Determinism
//
//	A ContinuedFraction is immutable after construction. Every call to
//	Convergents returns an independent generator with its own cursor and
//	state; two generators over equal values produce identical sequences.
//
// Complexity (p = period length, i = convergents pulled)
//
//   - FromSqrt: O(p) steps, p = O(sqrt(n)) worst case, three scalars of
//     working state.
//   - Next: O(1) big-integer multiply-adds per pull; retained state is the
//     last two h/k pairs plus a cursor, independent of i.
//
// Usage
//
//	cf, err := contfrac.FromSqrt(2) // [1; (2)]
//	if err != nil {
//	    // handle ErrInvalidRadicand
//	}
//	gen := cf.Convergents()
//	for i := 0; i < 5; i++ {
//	    c, _ := gen.Next()
//	    fmt.Printf("%s/%s\n", c.Num, c.Den) // 1/1, 3/2, 7/5, 17/12, 41/29
//	}
package contfrac
