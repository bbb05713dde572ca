package chain

import (
	"errors"

	"github.com/KCATurner/four/lin"
	"github.com/KCATurner/four/periods"
)

// ErrChainLength indicates a requested chain length below one.
var ErrChainLength = errors.New("chain: length must be at least 1")

// seed is the canonical minimal chain of length seven, root-first. The
// detours at positions two and four route around the sterile values: after
// 4 the smallest four-letter number 0 has no preimage, and after 3 the
// three-letter numbers 1 and 2 dead-end the same way, so 5 and 6 survive.
var seed = [7]int64{4, 5, 3, 6, 11, 23, 323}

// Minimal returns the minimal four-chain of length n, root-first: the chain
// whose elements are the smallest possible at every position among all
// four-chains of that length.
//
// Lengths up to seven come from the seed; every further link is
// lin.First of the previous link's value. Lengths whose target value
// cannot be materialized (n ≥ 10) surface periods.ErrTooLarge.
func Minimal(n int) ([]periods.Number, error) {
	if n < 1 {
		return nil, ErrChainLength
	}

	out := make([]periods.Number, 0, n)
	for i := 0; i < n && i < len(seed); i++ {
		link, err := periods.FromInt64(seed[i])
		if err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	for k := len(out); k < n; k++ {
		target, err := out[k-1].Int()
		if err != nil {
			return nil, err
		}
		link, err := lin.First(target)
		if err != nil {
			return nil, err
		}
		out = append(out, link)
	}
	return out, nil
}
