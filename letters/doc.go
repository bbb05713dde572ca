// Package letters computes L(x): the number of letters in the English
// (Conway–Wechsler, short scale) name of x, where x is a period-list
// compression that may hold ~10^28 periods — without ever spelling x.
//
// The count splits in two:
//
//	L(x) = InValues(x) + InNames(x)
//
// InValues charges each run (v, r) its value word, V[v]·r letters.
//
// InNames charges the period names. Over a range of zillion indices [a, z)
// the names cost
//
//	span(a, z) = 2·(z − a)                    // one "on" per period
//	           + Σ_d N[d]·O(d, a, z)          // "…illi" stems, per digit
//	           + 1 when a ≤ 0 < z             // "thousand" for "nillion"
//
// where O is the digit-occurrence counter of package periods. Zero-valued
// periods have no name at all, so InNames takes span over the whole zillion
// range and subtracts the span of every zero run.
//
// All results are exact big.Ints; for a chain-9 element the letter count is
// a 31-digit integer.
package letters
