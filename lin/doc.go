// Package lin locates letter-inefficient numbers: for a target letter count
// ℓ, First returns the smallest positive integer whose English name has
// exactly ℓ letters, as a period-list compression; Last returns the largest.
//
// Algorithm Outline (First):
//  1. ℓ ≤ 24 — a period value from the letter-inefficient table answers
//     directly (3→"one", 24→"three hundred seventy-three").
//  2. Repeat-count search — over E_n = [(373,n)], the most letter-expensive
//     n-period number, L is strictly increasing in n. Seed n from the
//     quotient estimator (≈ value of E_P / 711 for a P-period target),
//     double until L(E_n) ≥ ℓ, then bisect so that
//     L(E_{n−1}) < ℓ ≤ L(E_n). An exact hit returns E_n.
//  3. Refinement — rewriting a leading 373 period as 001 removes exactly
//     |"three hundred seventy-three"| − |"one"| = 21 letters and never
//     touches period names, so m = ⌈(L(E_n) − ℓ)/21⌉ leading rewrites land
//     within 20 letters below ℓ. The shortfall d = ℓ − L(x₀) is repaid by a
//     two-period window (y, z) from a fixed 21-entry table with
//     V[y] + V[z] = 27 + d, spliced between the ones and the remaining 373s.
//
// The result maximizes the period count, then the number of leading one
// periods, which is what makes it the smallest integer of its letter count.
//
// Complexity: O(log(ℓ)) evaluations of L, each polynomial in run count.
//
// Errors:
//   - ErrUnreachableLength — ℓ < 3; no positive integer has a shorter name
//     (0, 1 and 2 are the sterile lengths).
package lin
