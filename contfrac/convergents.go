package contfrac

import "math/big"

// Convergent is one best rational approximation h/k of a continued
// fraction, produced by truncating the term stream at Index.
//
// The recurrence that builds it guarantees gcd(Num, Den) = 1, so the pair
// is always fully reduced. Num and Den are owned by the caller; mutating
// them does not disturb the generator that produced them.
type Convergent struct {
	// Num is the numerator h at this index.
	Num *big.Int

	// Den is the denominator k at this index.
	Den *big.Int

	// Index is the 0-based position in the term stream; index 0 is the
	// head-only approximation a0/1.
	Index int
}

// Convergents lazily produces the convergent sequence of one
// ContinuedFraction. Build one with ContinuedFraction.Convergents.
//
// The generator retains O(1) state between pulls: the last two numerator
// and denominator values plus a cursor into the term stream. It is not
// restartable — to iterate from the beginning again, build a fresh
// generator from the same (immutable) value. A generator is inherently
// sequential and must not be advanced from more than one goroutine without
// external synchronization.
type Convergents struct {
	cf   *ContinuedFraction
	next int // index of the next term to consume

	// Sliding recurrence window: h2/k2 hold h(i-2)/k(i-2), h1/k1 hold
	// h(i-1)/k(i-1), seeded with h(-2)=0, h(-1)=1, k(-2)=1, k(-1)=0.
	h2, h1 *big.Int
	k2, k1 *big.Int
}

// Convergents returns a fresh, independent lazy generator over the
// convergents of cf. Any number of generators may be built from the same
// value; they share nothing and advance independently.
func (cf *ContinuedFraction) Convergents() *Convergents {
	return &Convergents{
		cf: cf,
		h2: big.NewInt(0),
		h1: big.NewInt(1),
		k2: big.NewInt(1),
		k1: big.NewInt(0),
	}
}

// Next advances the generator by exactly one term and returns the new
// convergent.
//
//	h(i) = a(i)·h(i-1) + h(i-2)
//	k(i) = a(i)·k(i-1) + k(i-2)
//
// For a value with a periodic tail the sequence never ends. For a finite
// value, Next returns ErrExhausted once every term has been consumed.
//
// Complexity: one big-integer multiply-add per side; retained state stays
// at the last two pairs regardless of how far the sequence has advanced.
func (g *Convergents) Next() (Convergent, error) {
	a, ok := g.cf.term(g.next)
	if !ok {
		return Convergent{}, ErrExhausted
	}

	// h(i) = a·h(i-1) + h(i-2), and the same shape for k.
	aBig := big.NewInt(a)
	h := new(big.Int).Mul(aBig, g.h1)
	h.Add(h, g.h2)
	k := new(big.Int).Mul(aBig, g.k1)
	k.Add(k, g.k2)

	// Slide the recurrence window.
	g.h2, g.h1 = g.h1, h
	g.k2, g.k1 = g.k1, k

	idx := g.next
	g.next++

	// Hand out copies so the caller cannot corrupt generator state.
	return Convergent{
		Num:   new(big.Int).Set(h),
		Den:   new(big.Int).Set(k),
		Index: idx,
	}, nil
}

// ConvergentN returns the convergent at 0-based index n by pulling a fresh
// generator n+1 times. cf itself is never mutated.
//
// Returns ErrNegativeIndex for n < 0, and ErrExhausted when a finite term
// stream ends before reaching n.
func (cf *ContinuedFraction) ConvergentN(n int) (Convergent, error) {
	if n < 0 {
		return Convergent{}, ErrNegativeIndex
	}

	g := cf.Convergents()
	var (
		c   Convergent
		err error
	)
	for i := 0; i <= n; i++ {
		if c, err = g.Next(); err != nil {
			return Convergent{}, err
		}
	}

	return c, nil
}
