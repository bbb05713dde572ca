package lin

import (
	"math/big"

	"github.com/KCATurner/four/periods"
)

// lastOfLength answers Last for the targets too short to afford "ten"
// plus any period name.
var lastOfLength = [10]int64{3: 10, 4: 9, 5: 60, 6: 90, 7: 70, 8: 66, 9: 96}

// Last returns the largest positive integer whose English name has exactly
// target letters, as a period-list compression.
//
// Past the single-period range the largest number is "ten <zillion>illion"
// for the tallest zillion affordable: after "ten" and the closing "on",
// every five remaining letters buy one "billi" link in the zillion's name,
// so the zillion index is a chain of 002 digits, with a short head digit
// (3, 10, 100, or 100003) soaking up the remainder — and "nine centillion"
// covering the one case the head trick cannot.
//
// Errors: ErrUnreachableLength below three letters; periods.ErrTooLarge
// when the zillion index itself would be too wide to write down.
func Last(target *big.Int) (periods.Number, error) {
	if target == nil || target.Cmp(big.NewInt(3)) < 0 {
		return periods.Number{}, ErrUnreachableLength
	}
	if target.IsInt64() && target.Int64() <= 9 {
		return periods.FromInt64(lastOfLength[target.Int64()])
	}

	budget := new(big.Int).Sub(target, big.NewInt(int64(len("ten")+len("on"))))
	q, rem := new(big.Int).QuoRem(budget, big.NewInt(5), new(big.Int))
	if !q.IsInt64() || q.Int64() > maxZillionLinks {
		return periods.Number{}, periods.ErrTooLarge
	}
	links := q.Int64()

	var zillion *big.Int
	switch rem.Int64() {
	case 0:
		zillion = chain002(links)
	case 1:
		zillion = headChain(3, links-1)
	case 2:
		zillion = headChain(10, links-1)
	case 3:
		zillion = headChain(100, links-1)
	default: // 4
		if links == 1 {
			return periods.New(periods.R(9, 1), periods.R(0, 101)) // nine centillion
		}
		zillion = headChain(100003, links-2)
	}
	zillion.Add(zillion, big.NewInt(1))
	return periods.New(periods.R(10, 1), periods.RBig(0, zillion))
}

// maxZillionLinks caps the width of a materialized zillion index; each link
// is three decimal digits of the zero-run repeat.
const maxZillionLinks = 100000

// chain002 returns the decimal concatenation of k "002" groups:
// 2·(10^(3k) − 1)/999.
func chain002(k int64) *big.Int {
	out := new(big.Int).Exp(big.NewInt(10), big.NewInt(3*k), nil)
	out.Sub(out, big.NewInt(1))
	out.Quo(out, big.NewInt(999))
	return out.Mul(out, big.NewInt(2))
}

// headChain returns head followed by k "002" groups in decimal.
func headChain(head int64, k int64) *big.Int {
	out := new(big.Int).Exp(big.NewInt(10), big.NewInt(3*k), nil)
	out.Mul(out, big.NewInt(head))
	return out.Add(out, chain002(k))
}
