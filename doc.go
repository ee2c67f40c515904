// Package lvlnum is your in-memory toolkit for exact integer arithmetic over
// continued fractions — from periodic square-root expansions to
// arbitrary-precision convergents and Pell's-equation solutions.
//
// 🚀 What is lvlnum?
//
//	A small, deterministic, pure-computation library that brings together:
//		• Continued fractions: build from a radicand or an explicit term list
//		• Square-root expansion: exact periodic cycles via the (m, d, a) recurrence
//		• Convergents: lazy, pull-based best rational approximations on math/big
//		• Pell's equation: fundamental solutions of x² − d·y² = 1
//		• Digit helpers: decimal digit sums and counts of big integers
//
// ✨ Why choose lvlnum?
//
//   - Exact by construction – arbitrary precision everywhere, no float drift
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden deps, no global state
//   - Deterministic – same input, same terms, same convergents, every time
//
// Everything is organized under three subpackages:
//
//	contfrac/ — ContinuedFraction values, square-root expansion & convergent generators
//	pell/     — minimal solutions of Pell's equation on top of contfrac
//	digits/   — decimal-digit utilities over *big.Int
//
// Quick ASCII example:
//
//	    sqrt(2) = [1; 2, 2, 2, ...]
//	              convergents: 1/1, 3/2, 7/5, 17/12, 41/29, ...
//
//	each convergent is the best rational approximation of its size.
//
// Dive into the per-package doc.go files for full examples and complexity
// notes.
//
//	go get github.com/katalvlaran/lvlnum
package lvlnum
