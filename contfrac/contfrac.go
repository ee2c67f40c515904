package contfrac

import (
	"fmt"
	"strings"
)

// ContinuedFraction represents a simple continued fraction
//
//	a0 + 1/(a1 + 1/(a2 + 1/(...)))
//
// as a head term a0, the finite terms that follow it, and an optional
// periodic tail that repeats forever once the finite terms run out.
//
// The zero value is the number 0; use New, FromSqrt or E for anything else.
// A ContinuedFraction is immutable after construction and safe to share:
// all accessors return copies, and generators built from it never write
// back into it.
type ContinuedFraction struct {
	head     int64   // a0, the integer part
	terms    []int64 // finite terms after the head, each ≥ 1
	periodic []int64 // repeating tail; nil when absent, never empty when set
}

// New constructs a ContinuedFraction from an explicit term list.
//
// head is a0; terms are the finite terms after it; periodic, when non-nil,
// is the tail that repeats forever after the finite terms. Pass periodic as
// nil for a finite (terminating) fraction.
//
// Returns:
//
//   - ErrNonPositiveTerm if any term after the head is below 1 (simple
//     continued fractions keep all terms past a0 positive).
//   - ErrEmptyPeriodic if periodic is non-nil but has no elements.
//
// Input slices are copied; the caller keeps ownership of its arguments.
func New(head int64, terms, periodic []int64) (*ContinuedFraction, error) {
	// 1) Validate every term after the head.
	var t int64
	for _, t = range terms {
		if t < 1 {
			return nil, fmt.Errorf("%w: got %d", ErrNonPositiveTerm, t)
		}
	}

	// 2) Validate the periodic tail: present means non-empty, and positive.
	if periodic != nil {
		if len(periodic) == 0 {
			return nil, ErrEmptyPeriodic
		}
		for _, t = range periodic {
			if t < 1 {
				return nil, fmt.Errorf("%w: got %d in periodic tail", ErrNonPositiveTerm, t)
			}
		}
	}

	// 3) Copy both slices so later caller mutation cannot leak in.
	cf := &ContinuedFraction{head: head}
	if len(terms) > 0 {
		cf.terms = append([]int64(nil), terms...)
	}
	if periodic != nil {
		cf.periodic = append([]int64(nil), periodic...)
	}

	return cf, nil
}

// E returns the continued fraction of Euler's number truncated to the given
// number of terms after the head:
//
//	[2; 1, 2, 1, 1, 4, 1, 1, 6, 1, 1, 8, ...]
//
// The k-th term after the head is 2·(k/3 + 1) when k ≡ 1 (mod 3) and 1
// otherwise. The result is a finite value (no periodic tail); terms below 0
// is treated as 0, yielding just the head [2].
func E(terms int) *ContinuedFraction {
	cf := &ContinuedFraction{head: 2}
	var k int
	for k = 0; k < terms; k++ {
		if k%3 == 1 {
			cf.terms = append(cf.terms, int64(2*(k/3+1)))
		} else {
			cf.terms = append(cf.terms, 1)
		}
	}

	return cf
}

// Head returns the head term a0 (the integer part).
func (cf *ContinuedFraction) Head() int64 { return cf.head }

// Terms returns a copy of the finite terms after the head.
func (cf *ContinuedFraction) Terms() []int64 {
	if len(cf.terms) == 0 {
		return nil
	}

	return append([]int64(nil), cf.terms...)
}

// NonPeriodic returns a copy of the non-repeating terms: the head followed
// by the finite terms after it.
func (cf *ContinuedFraction) NonPeriodic() []int64 {
	out := make([]int64, 0, 1+len(cf.terms))
	out = append(out, cf.head)

	return append(out, cf.terms...)
}

// Periodic returns a copy of the periodic tail.
//
// Returns ErrNoPeriodicPart when the value is finite — a perfect-square
// radicand or an explicit term list without a tail. That outcome is not a
// failure of the expansion; it is a distinct result the caller must handle.
func (cf *ContinuedFraction) Periodic() ([]int64, error) {
	if cf.periodic == nil {
		return nil, ErrNoPeriodicPart
	}

	return append([]int64(nil), cf.periodic...), nil
}

// Finite reports whether the term stream terminates (no periodic tail).
func (cf *ContinuedFraction) Finite() bool { return cf.periodic == nil }

// String renders the value in bracket notation, with the periodic tail in
// parentheses: sqrt(3) prints as "[1; (1, 2)]", a finite [2; 1, 2] as
// "[2; 1, 2]".
func (cf *ContinuedFraction) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "[%d", cf.head)
	for i, t := range cf.terms {
		if i == 0 {
			sb.WriteString("; ")
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", t)
	}
	if cf.periodic != nil {
		if len(cf.terms) == 0 {
			sb.WriteString("; (")
		} else {
			sb.WriteString(", (")
		}
		for i, t := range cf.periodic {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", t)
		}
		sb.WriteString(")")
	}
	sb.WriteString("]")

	return sb.String()
}

// term returns the i-th term of the effective stream
// head, terms..., periodic repeated forever. ok is false once a finite
// stream is out of terms.
func (cf *ContinuedFraction) term(i int) (int64, bool) {
	if i == 0 {
		return cf.head, true
	}
	if i <= len(cf.terms) {
		return cf.terms[i-1], true
	}
	if cf.periodic == nil {
		return 0, false
	}

	// Wrap into the tail with a modulo cursor; never materialize the cycle.
	return cf.periodic[(i-1-len(cf.terms))%len(cf.periodic)], true
}
