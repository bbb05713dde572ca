package periods

import "math/big"

// Runs returns a defensive copy of the run list, most significant first.
func (n Number) Runs() []Run {
	out := make([]Run, len(n.runs))
	for i, r := range n.runs {
		out[i] = Run{Value: r.value, Repeat: new(big.Int).Set(r.repeat)}
	}
	return out
}

// PeriodCount returns P(n), the total number of base-1000 periods: the sum
// of all run repeats.
func (n Number) PeriodCount() *big.Int {
	total := new(big.Int)
	for _, r := range n.runs {
		total.Add(total, r.repeat)
	}
	return total
}

// Zillion returns the zillion index of the leading period: P(n) − 1.
func (n Number) Zillion() *big.Int {
	z := n.PeriodCount()
	return z.Sub(z, oneInt)
}

// IsZero reports whether n is the canonical zero [(0,1)].
func (n Number) IsZero() bool {
	return len(n.runs) == 1 && n.runs[0].value == 0
}

// Equal reports whether n and other have identical run lists. Because runs
// are maximal, run-list equality coincides with numeric equality.
func (n Number) Equal(other Number) bool {
	if len(n.runs) != len(other.runs) {
		return false
	}
	for i, r := range n.runs {
		o := other.runs[i]
		if r.value != o.value || r.repeat.Cmp(o.repeat) != 0 {
			return false
		}
	}
	return true
}

// Cmp orders two Numbers, returning -1, 0, or +1.
//
// Numbers with fewer periods are smaller; at equal period counts the digit
// streams are compared most significant first, consuming the overlap of
// misaligned runs until a value differs. Complexity is O(runs), never
// O(periods).
func (n Number) Cmp(other Number) int {
	if c := n.PeriodCount().Cmp(other.PeriodCount()); c != 0 {
		return c
	}

	i, j := 0, 0
	var left, right *big.Int // periods still unconsumed in runs i and j
	for i < len(n.runs) && j < len(other.runs) {
		if left == nil {
			left = new(big.Int).Set(n.runs[i].repeat)
		}
		if right == nil {
			right = new(big.Int).Set(other.runs[j].repeat)
		}
		if n.runs[i].value != other.runs[j].value {
			if n.runs[i].value < other.runs[j].value {
				return -1
			}
			return 1
		}
		// Same value: consume the shorter overlap from both sides.
		switch left.Cmp(right) {
		case 0:
			left, right = nil, nil
			i++
			j++
		case -1:
			right.Sub(right, left)
			left = nil
			i++
		case 1:
			left.Sub(left, right)
			right = nil
			j++
		}
	}
	// Equal period counts guarantee both walks end together.
	return 0
}

// Int materializes n as a dense big.Int.
//
// Numbers above 100000 periods are refused with ErrTooLarge: a dense carrier
// at chain scale would need ~10^28 digits.
func (n Number) Int() (*big.Int, error) {
	count := n.PeriodCount()
	if !count.IsInt64() || count.Int64() > maxDensePeriods {
		return nil, ErrTooLarge
	}

	b := big.NewInt(base)
	bm1 := big.NewInt(base - 1)
	out := new(big.Int)
	tmp := new(big.Int)
	for _, r := range n.runs {
		// out = out·1000^r + v·(1000^r − 1)/999
		pow := new(big.Int).Exp(b, r.repeat, nil)
		out.Mul(out, pow)
		tmp.Sub(pow, oneInt)
		tmp.Quo(tmp, bm1)
		tmp.Mul(tmp, big.NewInt(int64(r.value)))
		out.Add(out, tmp)
	}
	return out, nil
}
