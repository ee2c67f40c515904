package contfrac

import "errors"

var (
	// ErrInvalidRadicand indicates a radicand below 2 was passed to FromSqrt.
	ErrInvalidRadicand = errors.New("contfrac: radicand must be at least 2")

	// ErrNoPeriodicPart indicates the value is finite and has no periodic
	// tail (a perfect-square radicand, or an explicit term list without one).
	ErrNoPeriodicPart = errors.New("contfrac: continued fraction has no periodic part")

	// ErrExhausted indicates a finite term stream has been fully consumed.
	ErrExhausted = errors.New("contfrac: convergent sequence exhausted")

	// ErrNegativeIndex indicates a negative convergent index was requested.
	ErrNegativeIndex = errors.New("contfrac: convergent index must be non-negative")

	// ErrNonPositiveTerm indicates a term after the head is below 1.
	ErrNonPositiveTerm = errors.New("contfrac: terms after the head must be positive")

	// ErrEmptyPeriodic indicates an explicitly supplied periodic tail is empty.
	ErrEmptyPeriodic = errors.New("contfrac: periodic tail must be non-empty when supplied")
)
