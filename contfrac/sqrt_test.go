package contfrac_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/contfrac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFromSqrt_InvalidRadicand verifies that radicands below 2 are rejected
// before any expansion work begins.
func TestFromSqrt_InvalidRadicand(t *testing.T) {
	for _, n := range []int64{1, 0, -1, -100} {
		_, err := contfrac.FromSqrt(n)
		assert.ErrorIs(t, err, contfrac.ErrInvalidRadicand, "radicand %d must be rejected", n)
	}
}

// TestFromSqrt_PerfectSquare verifies that perfect squares produce a finite
// single-term value and an explicit absent-periodic-part result.
func TestFromSqrt_PerfectSquare(t *testing.T) {
	cases := []struct {
		n    int64
		head int64
	}{
		{4, 2},
		{9, 3},
		{144, 12},
		{10000, 100},
	}
	for _, tc := range cases {
		cf, err := contfrac.FromSqrt(tc.n)
		require.NoError(t, err, "perfect square %d is a valid radicand", tc.n)
		assert.Equal(t, tc.head, cf.Head(), "head of sqrt(%d)", tc.n)
		assert.True(t, cf.Finite(), "sqrt(%d) is rational, value must be finite", tc.n)

		_, err = cf.Periodic()
		assert.ErrorIs(t, err, contfrac.ErrNoPeriodicPart, "sqrt(%d) has no periodic tail", tc.n)
	}
}

// TestFromSqrt_KnownExpansions checks classic expansions against their
// textbook cycles, including the 2·a0 closing term as the last element.
func TestFromSqrt_KnownExpansions(t *testing.T) {
	cases := []struct {
		n        int64
		head     int64
		periodic []int64
	}{
		{2, 1, []int64{2}},
		{3, 1, []int64{1, 2}},
		{7, 2, []int64{1, 1, 1, 4}},
		{13, 3, []int64{1, 1, 1, 1, 6}},
		{23, 4, []int64{1, 3, 1, 8}},
	}
	for _, tc := range cases {
		cf, err := contfrac.FromSqrt(tc.n)
		require.NoError(t, err, "sqrt(%d) must expand", tc.n)
		assert.Equal(t, tc.head, cf.Head(), "head of sqrt(%d)", tc.n)

		periodic, err := cf.Periodic()
		require.NoError(t, err, "sqrt(%d) is irrational, tail must exist", tc.n)
		assert.Equal(t, tc.periodic, periodic, "cycle of sqrt(%d)", tc.n)
	}
}

// TestFromSqrt_CycleClosesOnDoubleHead verifies the termination invariant:
// every non-square cycle ends with exactly 2·a0.
func TestFromSqrt_CycleClosesOnDoubleHead(t *testing.T) {
	for n := int64(2); n <= 500; n++ {
		cf, err := contfrac.FromSqrt(n)
		require.NoError(t, err, "sqrt(%d) must expand", n)
		if cf.Finite() {
			continue
		}
		periodic, err := cf.Periodic()
		require.NoError(t, err, "non-square %d must have a tail", n)
		require.NotEmpty(t, periodic, "tail of sqrt(%d) must be non-empty", n)
		assert.Equal(t, 2*cf.Head(), periodic[len(periodic)-1],
			"cycle of sqrt(%d) must close on 2·a0", n)
	}
}

// TestFromSqrt_OddPeriodCensus counts odd-length periods over the full
// range [2, 10000]; the aggregate is a fixed, known constant.
func TestFromSqrt_OddPeriodCensus(t *testing.T) {
	odd := 0
	for n := int64(2); n <= 10000; n++ {
		cf, err := contfrac.FromSqrt(n)
		require.NoError(t, err, "sqrt(%d) must expand", n)

		periodic, err := cf.Periodic()
		if err != nil {
			// Perfect square: no period to count.
			require.ErrorIs(t, err, contfrac.ErrNoPeriodicPart, "only perfect squares lack a tail")
			continue
		}
		require.NotEmpty(t, periodic, "non-square %d must have a non-empty period", n)
		if len(periodic)%2 == 1 {
			odd++
		}
	}
	assert.Equal(t, 1322, odd, "odd-period count over [2,10000]")
}
