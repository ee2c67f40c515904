package contfrac_test

import (
	"testing"

	"github.com/katalvlaran/lvlnum/contfrac"
)

// BenchmarkFromSqrt expands a radicand with a long period (sqrt(9949) has
// one of the longest cycles below 10000).
func BenchmarkFromSqrt(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := contfrac.FromSqrt(9949); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConvergentsNext measures one pull deep into the sequence, where
// the big-integer pairs dominate the cost.
func BenchmarkConvergentsNext(b *testing.B) {
	cf, err := contfrac.FromSqrt(2)
	if err != nil {
		b.Fatal(err)
	}
	gen := cf.Convergents()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = gen.Next(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkConvergentN100 builds the 100th convergent of e from scratch.
func BenchmarkConvergentN100(b *testing.B) {
	cf := contfrac.E(99)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cf.ConvergentN(99); err != nil {
			b.Fatal(err)
		}
	}
}
