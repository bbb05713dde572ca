package periods

import (
	"fmt"
	"math/big"
)

// Occurrences counts how many times the base-1000 digit occurs across all
// base-1000 digits of all integers in the half-open interval [start, limit).
//
// Both bounds are period-list compressions; the count is produced in closed
// form over their runs (never period by period), following the classic
// per-position decomposition: for each digit c of the limit at place p,
//
//	b^p · ⌊limit/b^(p+1)⌋  +  b^p·[c > digit]  +  (limit mod b^p)·[c = digit]
//	− b^p·[digit = 0],  plus one final +1 when digit = 0,
//
// with every place of a run summed analytically.
//
// Errors: ErrDigitRange when digit is outside [0,1000); ErrTooLarge when a
// bound is beyond dense-count scale (the count itself would be unwritable).
func Occurrences(digit int, start, limit Number) (*big.Int, error) {
	if digit < 0 || digit >= base {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrDigitRange, digit, base)
	}
	if limit.Cmp(start) <= 0 {
		return new(big.Int), nil
	}
	high, err := occurrencesBelow(digit, limit)
	if err != nil {
		return nil, err
	}
	if start.IsZero() {
		return high, nil
	}
	low, err := occurrencesBelow(digit, start)
	if err != nil {
		return nil, err
	}
	return high.Sub(high, low), nil
}

// occurrencesBelow counts occurrences of digit across [0, x).
func occurrencesBelow(digit int, x Number) (*big.Int, error) {
	if x.IsZero() {
		return new(big.Int), nil
	}
	if count := x.PeriodCount(); !count.IsInt64() || count.Int64() > maxDensePeriods {
		return nil, ErrTooLarge
	}

	k := len(x.runs)
	b := big.NewInt(base)
	bm1 := big.NewInt(base - 1)
	d := big.NewInt(int64(digit))

	// Suffix pass: for each run, the value strictly below it (tail), the
	// power of 1000 at its least significant place (floor), and 1000^repeat.
	tails := make([]*big.Int, k)
	floors := make([]*big.Int, k)
	pows := make([]*big.Int, k)
	tail := new(big.Int)
	floor := big.NewInt(1)
	for i := k - 1; i >= 0; i-- {
		tails[i] = new(big.Int).Set(tail)
		floors[i] = new(big.Int).Set(floor)
		pows[i] = new(big.Int).Exp(b, x.runs[i].repeat, nil)

		// tail += v·(1000^r − 1)/999 · floor; floor *= 1000^r
		seg := new(big.Int).Sub(pows[i], oneInt)
		seg.Quo(seg, bm1)
		seg.Mul(seg, big.NewInt(int64(x.runs[i].value)))
		seg.Mul(seg, floor)
		tail.Add(tail, seg)
		floor.Mul(floor, pows[i])
	}

	count := new(big.Int)
	if digit == 0 {
		count.SetInt64(1)
	}

	// Forward pass, most significant run first; prefix carries the value of
	// all periods above the current run.
	prefix := new(big.Int)
	tmp := new(big.Int)
	for i := 0; i < k; i++ {
		v := big.NewInt(int64(x.runs[i].value))
		r := x.runs[i].repeat

		// ceil = 1000^hi; geo = Σ 1000^p over the run's places.
		ceil := new(big.Int).Mul(floors[i], pows[i])
		ceil.Quo(ceil, b)
		geo := new(big.Int).Sub(pows[i], oneInt)
		geo.Quo(geo, bm1)
		geo.Mul(geo, floors[i])

		// Σ_p 1000^p·⌊x/1000^(p+1)⌋ = r·prefix·ceil + v·(r·ceil − geo)/999
		tmp.Mul(r, prefix)
		tmp.Mul(tmp, ceil)
		count.Add(count, tmp)
		tmp.Mul(r, ceil)
		tmp.Sub(tmp, geo)
		tmp.Quo(tmp, bm1)
		tmp.Mul(tmp, v)
		count.Add(count, tmp)

		switch {
		case d.Cmp(v) < 0:
			count.Add(count, geo)
		case d.Cmp(v) == 0:
			// Σ_p (x mod 1000^p) = v·(geo − r·1000^lo)/999 + r·tail
			tmp.Mul(r, floors[i])
			tmp.Sub(geo, tmp)
			tmp.Quo(tmp, bm1)
			tmp.Mul(tmp, v)
			count.Add(count, tmp)
			tmp.Mul(r, tails[i])
			count.Add(count, tmp)
		}
		if digit == 0 {
			count.Sub(count, geo)
		}

		// prefix = prefix·1000^r + v·(1000^r − 1)/999
		prefix.Mul(prefix, pows[i])
		tmp.Sub(pows[i], oneInt)
		tmp.Quo(tmp, bm1)
		tmp.Mul(tmp, v)
		prefix.Add(prefix, tmp)
	}
	return count, nil
}

// CountDigit counts occurrences of digit across all base-b digits of all
// integers in [start, limit), for dense bounds in an arbitrary base ≥ 2.
// Negative bounds are clamped to zero. It is the dense, any-base sibling of
// Occurrences, useful for small oracles and spot checks.
func CountDigit(digit int, start, limit *big.Int, b int) (*big.Int, error) {
	if b < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrBadBase, b)
	}
	if digit < 0 || digit >= b {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrDigitRange, digit, b)
	}
	lo := start
	if lo == nil || lo.Sign() < 0 {
		lo = new(big.Int)
	}
	if limit == nil || limit.Cmp(lo) <= 0 {
		return new(big.Int), nil
	}
	count := countDigitBelow(digit, limit, b)
	if lo.Sign() > 0 {
		count.Sub(count, countDigitBelow(digit, lo, b))
	}
	return count, nil
}

// countDigitBelow counts occurrences of digit across [0, x) in base b.
func countDigitBelow(digit int, x *big.Int, b int) *big.Int {
	count := new(big.Int)
	if digit == 0 {
		count.SetInt64(1)
	}

	bb := big.NewInt(int64(b))
	d := big.NewInt(int64(digit))
	rest := new(big.Int).Set(x)
	c := new(big.Int)
	pow := big.NewInt(1)
	low := new(big.Int) // x mod b^p
	tmp := new(big.Int)
	for rest.Sign() > 0 {
		rest.QuoRem(rest, bb, c)
		// rest = ⌊x/b^(p+1)⌋, c = digit at place p, low = x mod b^p.
		tmp.Mul(pow, rest)
		count.Add(count, tmp)
		switch {
		case d.Cmp(c) < 0:
			count.Add(count, pow)
		case d.Cmp(c) == 0:
			count.Add(count, low)
		}
		if digit == 0 {
			count.Sub(count, pow)
		}
		tmp.Mul(c, pow)
		low.Add(low, tmp)
		pow.Mul(pow, bb)
	}
	return count
}
