package periods

import (
	"fmt"
	"math/big"
)

// base is the radix of a period: every period value lies in [0, base).
const base = 1000

// maxDensePeriods bounds dense materialization (Int) and dense-bound
// counting: beyond it the flat representation itself stops being viable.
const maxDensePeriods = 100000

// Run is one (value, repeat) pair of a period-list compression: the period
// value repeated that many consecutive times. Repeat is a big.Int because
// run lengths reach ~5·10^27 for chain targets.
type Run struct {
	// Value is the period value, in [0, 1000).
	Value int

	// Repeat is the number of consecutive occurrences, ≥ 1.
	Repeat *big.Int
}

// R builds a Run from small integers; the common case in call sites and
// tests.
func R(value int, repeat int64) Run {
	return Run{Value: value, Repeat: big.NewInt(repeat)}
}

// RBig builds a Run with an arbitrary-precision repeat count.
func RBig(value int, repeat *big.Int) Run {
	return Run{Value: value, Repeat: repeat}
}

// run is the internal, owned form of a Run. The repeat pointer is never
// shared outside the package.
type run struct {
	value  int
	repeat *big.Int
}

// Number is an immutable period-list compression of a non-negative integer:
// maximal runs of identical base-1000 periods, most significant first.
// The zero value of the type is not a valid Number; use the constructors.
type Number struct {
	runs []run
}

// New builds a Number from explicit runs, most significant first, and
// validates every PLC invariant strictly. Adjacent runs sharing a value are
// rejected (use Join to coalesce instead).
//
// Returns ErrInvalidPeriods describing the first violation found.
func New(runs ...Run) (Number, error) {
	owned, err := ownRuns(runs)
	if err != nil {
		return Number{}, err
	}
	for i := 1; i < len(owned); i++ {
		if owned[i].value == owned[i-1].value {
			return Number{}, fmt.Errorf("%w: adjacent runs share value %d", ErrInvalidPeriods, owned[i].value)
		}
	}
	return finish(owned)
}

// Join builds a Number from runs, most significant first, coalescing
// adjacent runs with equal values and dropping runs with a zero repeat
// beforehand. It is the assembly constructor used by algorithms that stitch
// run fragments together; the remaining invariants are validated as in New.
func Join(runs ...Run) (Number, error) {
	kept := make([]Run, 0, len(runs))
	for _, r := range runs {
		if r.Repeat != nil && r.Repeat.Sign() == 0 {
			continue
		}
		kept = append(kept, r)
	}
	owned, err := ownRuns(kept)
	if err != nil {
		return Number{}, err
	}
	merged := owned[:0]
	for _, r := range owned {
		if n := len(merged); n > 0 && merged[n-1].value == r.value {
			merged[n-1].repeat.Add(merged[n-1].repeat, r.repeat)
			continue
		}
		merged = append(merged, r)
	}
	return finish(merged)
}

// FromInt converts a dense non-negative big integer into its PLC.
func FromInt(x *big.Int) (Number, error) {
	if x == nil || x.Sign() < 0 {
		return Number{}, fmt.Errorf("%w: dense input must be a non-negative integer", ErrInvalidPeriods)
	}
	if x.Sign() == 0 {
		return Number{runs: []run{{value: 0, repeat: big.NewInt(1)}}}, nil
	}

	// Peel base-1000 digits least significant first, then reverse into runs.
	var digits []int
	rest := new(big.Int).Set(x)
	mod := new(big.Int)
	b := big.NewInt(base)
	for rest.Sign() > 0 {
		rest.QuoRem(rest, b, mod)
		digits = append(digits, int(mod.Int64()))
	}

	var runs []run
	for i := len(digits) - 1; i >= 0; i-- {
		if n := len(runs); n > 0 && runs[n-1].value == digits[i] {
			runs[n-1].repeat.Add(runs[n-1].repeat, oneInt)
			continue
		}
		runs = append(runs, run{value: digits[i], repeat: big.NewInt(1)})
	}
	return Number{runs: runs}, nil
}

// FromInt64 converts a dense non-negative int64 into its PLC.
func FromInt64(x int64) (Number, error) {
	if x < 0 {
		return Number{}, fmt.Errorf("%w: dense input must be a non-negative integer", ErrInvalidPeriods)
	}
	return FromInt(big.NewInt(x))
}

// ownRuns copies caller runs into package-owned storage, validating the
// per-run invariants (value range, repeat ≥ 1).
func ownRuns(runs []Run) ([]run, error) {
	owned := make([]run, 0, len(runs))
	for _, r := range runs {
		if r.Value < 0 || r.Value >= base {
			return nil, fmt.Errorf("%w: period value %d outside [0,%d)", ErrInvalidPeriods, r.Value, base)
		}
		if r.Repeat == nil || r.Repeat.Sign() < 1 {
			return nil, fmt.Errorf("%w: repeat must be at least 1", ErrInvalidPeriods)
		}
		owned = append(owned, run{value: r.Value, repeat: new(big.Int).Set(r.Repeat)})
	}
	return owned, nil
}

// finish applies the whole-number invariants shared by every constructor:
// non-emptiness and the leading-zero rule.
func finish(runs []run) (Number, error) {
	if len(runs) == 0 {
		return Number{}, fmt.Errorf("%w: a number needs at least one period", ErrInvalidPeriods)
	}
	if runs[0].value == 0 && !(len(runs) == 1 && runs[0].repeat.Cmp(oneInt) == 0) {
		return Number{}, fmt.Errorf("%w: leading zero run", ErrInvalidPeriods)
	}
	return Number{runs: runs}, nil
}

// Shared small constants; never mutated.
var (
	oneInt = big.NewInt(1)
)
