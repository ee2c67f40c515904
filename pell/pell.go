package pell

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/katalvlaran/lvlnum/contfrac"
)

var (
	// ErrInvalidD indicates d below 2 was supplied.
	ErrInvalidD = errors.New("pell: d must be at least 2")

	// ErrPerfectSquare indicates d is a perfect square, for which
	// x² − d·y² = 1 has no solution in positive integers.
	ErrPerfectSquare = errors.New("pell: d must not be a perfect square")

	// ErrNoSolution indicates the convergent cap was reached before a
	// solution appeared. With the default cap this signals a caller-chosen
	// cap that is too small, not a missing solution.
	ErrNoSolution = errors.New("pell: no solution within MaxConvergents")
)

// DefaultMaxConvergents bounds the convergent scan when the caller does not
// choose a cap. The period of sqrt(d) is O(sqrt(d)) and the fundamental
// solution appears within two periods, so 2000 covers every d a survey over
// an int64 range will meet.
const DefaultMaxConvergents = 2000

// Options configures the convergent scan.
//
// Fields:
//   - MaxConvergents — how many convergents of sqrt(d) are examined before
//     Minimal reports ErrNoSolution. Values below 1 fall back to
//     DefaultMaxConvergents.
type Options struct {
	MaxConvergents int
}

// DefaultOptions returns Options with the default scan cap.
func DefaultOptions() Options {
	return Options{MaxConvergents: DefaultMaxConvergents}
}

// Solution is one solution of x² − d·y² = 1 in positive integers.
// X and Y are owned by the caller.
type Solution struct {
	// D is the non-square coefficient of the equation.
	D int64

	// X, Y satisfy X² − D·Y² = 1 with X, Y > 0.
	X, Y *big.Int
}

// String renders the solution as its equation instance.
func (s Solution) String() string {
	return fmt.Sprintf("%s² − %d·%s² = 1", s.X, s.D, s.Y)
}

// Minimal returns the fundamental solution of x² − d·y² = 1: the first
// convergent x/y of sqrt(d) satisfying the relation. Pass opts as nil for
// defaults.
//
// Returns ErrInvalidD for d < 2, ErrPerfectSquare when d is a perfect
// square, and ErrNoSolution when the cap runs out first.
func Minimal(d int64, opts *Options) (Solution, error) {
	// 1) Validate d before expanding anything.
	if d < 2 {
		return Solution{}, fmt.Errorf("%w: got %d", ErrInvalidD, d)
	}

	// 2) Expand sqrt(d); a finite expansion means d is a perfect square.
	cf, err := contfrac.FromSqrt(d)
	if err != nil {
		return Solution{}, err
	}
	if cf.Finite() {
		return Solution{}, fmt.Errorf("%w: got %d", ErrPerfectSquare, d)
	}

	// 3) Resolve the scan cap.
	limit := DefaultMaxConvergents
	if opts != nil && opts.MaxConvergents > 0 {
		limit = opts.MaxConvergents
	}

	// 4) Scan convergents until x² − d·y² = 1 holds.
	var (
		gen  = cf.Convergents()
		dBig = big.NewInt(d)
		one  = big.NewInt(1)
		lhs  = new(big.Int)
		dy2  = new(big.Int)
		c    contfrac.Convergent
	)
	for i := 0; i < limit; i++ {
		if c, err = gen.Next(); err != nil {
			// Unreachable for a periodic value; surface it regardless.
			return Solution{}, err
		}
		lhs.Mul(c.Num, c.Num)
		dy2.Mul(c.Den, c.Den)
		dy2.Mul(dy2, dBig)
		lhs.Sub(lhs, dy2)
		if lhs.Cmp(one) == 0 {
			return Solution{D: d, X: c.Num, Y: c.Den}, nil
		}
	}

	return Solution{}, fmt.Errorf("%w: d=%d, cap=%d", ErrNoSolution, d, limit)
}

// Record returns the d in [2, maxD] whose fundamental solution has the
// largest x, skipping perfect squares. Pass opts as nil for defaults.
//
// Returns ErrInvalidD for maxD < 2, and propagates ErrNoSolution if the
// cap cuts off any d in range.
func Record(maxD int64, opts *Options) (Solution, error) {
	if maxD < 2 {
		return Solution{}, fmt.Errorf("%w: got maxD=%d", ErrInvalidD, maxD)
	}

	var best Solution
	for d := int64(2); d <= maxD; d++ {
		s, err := Minimal(d, opts)
		if errors.Is(err, ErrPerfectSquare) {
			continue
		}
		if err != nil {
			return Solution{}, err
		}
		if best.X == nil || s.X.Cmp(best.X) > 0 {
			best = s
		}
	}

	return best, nil
}
