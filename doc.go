// Package four finds "four-chains": sequences of positive integers in which
// every element is the number of letters in the English (Conway–Wechsler,
// short scale) name of the next, ending at the fixed point 4 ("four" has four
// letters).
//
// 🚀 What is four?
//
//	A pure, dependency-light library that locates the smallest four-chain of
//	a given length — even when the last element has on the order of 10^28
//	base-1000 periods and can never be written out digit by digit:
//		• periods — the period-list compression (PLC), a run-length view of
//		  astronomically large integers, plus digit-occurrence counting
//		• lexicon — letter-length tables for small numerals and for
//		  Conway–Wechsler zillion prefixes
//		• letters — the letter-counting function L, computed without ever
//		  spelling the number
//		• lin     — letter-inefficient numbers: the smallest (and largest)
//		  integer whose name has exactly ℓ letters
//		• chain   — the minimal four-chain assembler
//
// ✨ Why choose four?
//
//   - Exact – all arithmetic in math/big; no floats, no rounding
//   - Compressed – every operation iterates over runs, never over
//     individual periods
//   - Pure Go – no cgo, deterministic, no hidden state
//
// A taste:
//
//	c, _ := chain.Minimal(8)
//	fmt.Println(c[len(c)-1]) // 1103323[373]{8}
//
// The number above has 11 periods; the next link of the chain has about
// 4.7·10^27 of them. Dive into each package's doc.go for the details.
package four
