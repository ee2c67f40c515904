// Package pell finds fundamental solutions of Pell's equation
//
//	x² − d·y² = 1
//
// for a non-square integer d ≥ 2, by scanning the convergents of the
// continued fraction of sqrt(d).
//
// What
//
//   - Minimal — the first convergent x/y of sqrt(d) satisfying the
//     relation; by classical theory this is the fundamental (smallest
//     positive) solution, and it always appears among the convergents.
//   - Record — the d within [2, maxD] whose fundamental solution has the
//     largest x.
//
// Why
//
//	The naive search over y is hopeless: for d = 661 the minimal x has 26
//	digits. Convergents reach it in a few dozen exact big-integer steps.
//
// Stopping policy
//
//	This package is the caller of the lazy convergent generator, so the
//	iteration cap lives here: Options.MaxConvergents bounds how many
//	convergents are examined before Minimal gives up with ErrNoSolution.
//	The default cap is far beyond what any d in the int64 range needs.
//
// Errors
//
//   - ErrInvalidD      — d (or maxD) below 2.
//   - ErrPerfectSquare — d is a perfect square; x² − d·y² = 1 then has no
//     solution with y > 0, and sqrt(d) has no convergent sequence to scan.
//   - ErrNoSolution    — the caller-imposed cap was hit first.
//
// Complexity: O(c) convergent steps for a cap of c, each a constant number
// of big-integer multiply-adds.
package pell
