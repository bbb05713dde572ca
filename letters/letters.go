package letters

import (
	"math/big"

	"github.com/KCATurner/four/lexicon"
	"github.com/KCATurner/four/periods"
)

// InName returns L(x), the total letter count of x's English name.
// L is total on valid Numbers; it never fails.
func InName(x periods.Number) *big.Int {
	total := InValues(x)
	return total.Add(total, InNames(x))
}

// InValues counts the letters attributed to period values: Σ V[v]·r over
// the runs of x. The number zero spells "zero".
func InValues(x periods.Number) *big.Int {
	if x.IsZero() {
		return big.NewInt(4)
	}
	total := new(big.Int)
	tmp := new(big.Int)
	for _, r := range x.Runs() {
		v, err := lexicon.ValueLetters(r.Value)
		if err != nil {
			continue // unreachable: run values are validated to [0,1000)
		}
		tmp.Mul(big.NewInt(int64(v)), r.Repeat)
		total.Add(total, tmp)
	}
	return total
}

// InNames counts the letters attributed to period names ("thousand",
// "million", "…illion"). Zero-valued periods carry no name, so the span of
// every zero run's zillion range is subtracted from the span of the whole.
func InNames(x periods.Number) *big.Int {
	runs := x.Runs()
	zillion := big.NewInt(-1)
	missing := new(big.Int)
	for i := len(runs) - 1; i >= 0; i-- {
		zillion.Add(zillion, runs[i].Repeat)
		if runs[i].Value == 0 {
			lo := new(big.Int).Sub(zillion, runs[i].Repeat)
			missing.Add(missing, span(lo, zillion))
		}
	}
	total := span(new(big.Int), zillion)
	return total.Sub(total, missing)
}

// span counts the name letters of the zillion indices in [a, z): two per
// index for the "on" suffix, N[d] per base-1000 digit occurrence for the
// "…illi" stems, and one extra letter when the range covers zillion 0
// ("thousand" is one letter longer than "nillion"). A negative lower bound
// is clamped; the clamp is what keeps the least significant period of a
// number nameless.
func span(a, z *big.Int) *big.Int {
	lo := a
	if lo.Sign() < 0 {
		lo = new(big.Int)
	}
	total := new(big.Int)
	if z.Cmp(lo) <= 0 {
		return total
	}
	total.Sub(z, lo)
	total.Mul(total, two)
	if a.Sign() <= 0 && z.Sign() > 0 {
		total.Add(total, one)
	}

	start, err := periods.FromInt(lo)
	if err != nil {
		return total
	}
	limit, err := periods.FromInt(z)
	if err != nil {
		return total
	}
	tmp := new(big.Int)
	for d := 0; d < 1000; d++ {
		occ, err := periods.Occurrences(d, start, limit)
		if err != nil {
			continue // unreachable: d < 1000 and zillion bounds are tiny PLCs
		}
		n, err := lexicon.PrefixLetters(d)
		if err != nil {
			continue
		}
		tmp.Mul(occ, big.NewInt(int64(n)))
		total.Add(total, tmp)
	}
	return total
}

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)
