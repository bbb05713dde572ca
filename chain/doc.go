// Package chain assembles minimal four-chains.
//
// A four-chain is a sequence in which every element is the letter count of
// its successor's English name, ending at the fixed point 4. Chains are
// returned root-first:
//
//	4 ← 5 ← 3 ← 6 ← 11 ← 23 ← 323 ← …
//
// (read ← as "counts the letters of"). The minimal chain of length n is the
// one with the smallest element at every position; each new link is the
// smallest integer whose name length equals the previous link's value —
// exactly lin.First applied to the tail.
//
// The first seven links are seeded rather than derived: below length seven
// the smallest candidates 0, 1 and 2 are sterile (no name has fewer than
// three letters, and nothing maps to 0), so the survivors deviate from a
// naive greedy descent.
//
// Minimal(9) is the practical ceiling: its tail has ~4.7·10^27 periods, and
// the length-10 link would need that tail's value — not its letter count —
// as a target, which no dense integer can carry.
package chain
