// Package digits provides decimal-digit utilities over arbitrary-precision
// integers.
//
// Convergent numerators and denominators outgrow every fixed-width integer
// after a few dozen terms, yet the classic questions asked of them are
// digit-level: "what is the digit sum of the 100th numerator of e?",
// "how many digits does this solution have?". This package answers those
// without ever leaving exact arithmetic.
//
//   - Sum — sum of the decimal digits of a *big.Int (sign ignored).
//   - Count — number of decimal digits (0 counts as one digit).
//   - SumInt64 — the same digit sum for plain int64 values.
//
// Complexity: O(d) over the d decimal digits of the argument.
package digits
