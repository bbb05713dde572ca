package lin

import (
	"errors"
	"math/big"

	"github.com/KCATurner/four/letters"
	"github.com/KCATurner/four/periods"
)

// ErrUnreachableLength indicates a target below three letters; the sterile
// lengths 0, 1 and 2 are not the name length of any positive integer.
var ErrUnreachableLength = errors.New("lin: no number name has fewer than three letters")

// lettersPerRewrite is what turning a leading 373 period into a 001 period
// saves: |"three hundred seventy-three"| − |"one"|.
const lettersPerRewrite = 21

// First returns the smallest positive integer whose English name has
// exactly target letters, as a period-list compression.
//
// See the package documentation for the three-stage algorithm. Targets at
// chain scale (~10^30) resolve in a few hundred evaluations of L.
func First(target *big.Int) (periods.Number, error) {
	if target == nil || target.Cmp(big.NewInt(3)) < 0 {
		return periods.Number{}, ErrUnreachableLength
	}
	if target.IsInt64() && target.Int64() <= 24 {
		return periods.FromInt64(int64(smallestOfLength[target.Int64()]))
	}

	// Phase 1: bracket the repeat count n so that L(E_{n−1}) < target ≤
	// L(E_n). The estimator lands near the answer; doubling repairs any
	// undershoot, bisection sharpens the bracket.
	hi := estimateRepeats(target)
	for eLetters(hi).Cmp(target) < 0 {
		hi.Lsh(hi, 1)
	}
	lo := new(big.Int) // E_0 is empty: L ≡ 0 < target
	gap := new(big.Int)
	for gap.Sub(hi, lo).Cmp(oneInt) > 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Rsh(mid, 1)
		if eLetters(mid).Cmp(target) < 0 {
			lo.Set(mid)
		} else {
			hi.Set(mid)
		}
	}
	n := hi
	total := eLetters(n)
	if total.Cmp(target) == 0 {
		return periods.New(periods.RBig(373, n))
	}

	// Phase 2: rewrite the m most significant periods to 001, then repay
	// the shortfall d through a two-period window.
	excess := new(big.Int).Sub(total, target)
	m := ceilDiv(excess, lettersPerRewrite)
	rest := new(big.Int).Sub(n, m)
	x0, err := periods.Join(periods.RBig(1, m), periods.RBig(373, rest))
	if err != nil {
		return periods.Number{}, err
	}
	short := new(big.Int).Sub(target, letters.InName(x0))
	if short.Sign() == 0 {
		return x0, nil
	}

	d := int(short.Int64()) // by construction d ∈ [1, 20]
	ones := new(big.Int).Sub(m, oneInt)
	if rest.Sign() == 0 {
		// Nothing left of the 373 tail: a single period of length d+3
		// closes the gap (and stays clear of the 323 exceptions, which
		// only pay off ahead of a 373 run).
		return periods.Join(periods.RBig(1, ones), periods.R(smallestOfLength[d+3], 1))
	}
	w := offsetWindows[d]
	return periods.Join(
		periods.RBig(1, ones),
		periods.R(w.y, 1),
		periods.R(w.z, 1),
		periods.RBig(373, new(big.Int).Sub(rest, oneInt)),
	)
}

// eLetters evaluates L(E_n) for E_n = [(373,n)], the letter-count ceiling
// among n-period numbers.
func eLetters(n *big.Int) *big.Int {
	e, err := periods.New(periods.RBig(373, n))
	if err != nil {
		return new(big.Int) // unreachable: n ≥ 1 throughout the search
	}
	return letters.InName(e)
}

// estimateRepeats seeds the phase-1 search: the quotient fit over the first
// letter-efficient targets predicts the period count of the answer as the
// value of E_P divided by 711, where P is the period count of the target
// itself.
func estimateRepeats(target *big.Int) *big.Int {
	p := 0
	rest := new(big.Int).Set(target)
	for rest.Sign() > 0 {
		rest.Quo(rest, big.NewInt(1000))
		p++
	}
	e := new(big.Int).Exp(big.NewInt(1000), big.NewInt(int64(p)), nil)
	e.Sub(e, oneInt)
	e.Quo(e, big.NewInt(999))
	e.Mul(e, big.NewInt(373))
	e.Quo(e, big.NewInt(711))
	if e.Sign() < 1 {
		e.SetInt64(1)
	}
	return e
}

// ceilDiv returns ⌈x/d⌉ for non-negative x.
func ceilDiv(x *big.Int, d int64) *big.Int {
	out := new(big.Int).Add(x, big.NewInt(d-1))
	return out.Quo(out, big.NewInt(d))
}

var oneInt = big.NewInt(1)
