// Package periods implements the period-list compression (PLC): a run-length
// representation of non-negative integers in base 1000.
//
// 🚀 What is a period-list compression?
//
//	Written in decimal, a large number splits into three-digit groups called
//	periods ("123,456,789" has periods 123, 456, 789). A PLC stores maximal
//	runs of identical periods as (value, repeat) pairs, most significant
//	first, so
//
//	    1,373,373,373  ⇒  [(1,1), (373,3)]  ⇒  "1[373]{3}"
//
//	The numbers this library hunts have ~10^28 periods; the PLC is the only
//	viable carrier, and every operation here iterates over runs, never over
//	individual periods. Int and Occurrences still build powers of 1000 as
//	wide as a run, so they refuse numbers above 100000 periods.
//
// ✨ Key features:
//   - Number — an immutable, validated PLC value
//   - construction from runs, dense big.Ints, or "[vvv]{r}" notation
//   - total ordering (Cmp), period counts and zillion indices as big.Ints
//   - Occurrences / CountDigit — how many times a digit occurs across all
//     digits of all integers in [start, limit), in closed form over runs
//
// Invariants (enforced at construction):
//   - runs are maximal: adjacent runs carry distinct values
//   - values lie in [0,1000), repeats are ≥ 1
//   - no leading zero run, except the canonical zero [(0,1)]
//
// Errors:
//   - ErrInvalidPeriods  — a structural invariant is violated.
//   - ErrInvalidNotation — "[vvv]{r}" text cannot be scanned.
//   - ErrDigitRange      — digit outside the base handed to a counter.
//   - ErrBadBase         — CountDigit base below 2.
//   - ErrTooLarge        — a dense materialization was refused.
package periods
