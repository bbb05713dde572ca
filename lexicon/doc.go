// Package lexicon holds the English letter-length tables behind the
// letter-counting machinery: the short-form names of the integers in
// [0,1000) and the Conway–Wechsler zillion prefixes for the same range.
//
// Both tables are assembled once, at package init, from small embedded
// component lists, and are immutable for the process lifetime.
//
// The prefix table is the interesting one. Under the Conway–Wechsler system
// a period name for zillion index z is built from the base-1000 digits of z:
// each digit contributes its prefix followed by "illi", and the whole name
// ends in one "on" — so zillion 1001 ("millimillion") never needs a table
// entry of its own; only digit prefixes do. Composite digit prefixes follow
// the unit/tens/hundreds combination rules, including the s/x/m/n joining
// letters (23 → "tresvigint", 86 → "sexoctogint", 107 → "septencent") and
// final-vowel elision.
//
// Zillion 0 is "nilli"; the swap of "nillion" for "thousand" on whole
// numbers is an off-by-one owned by package letters, not by these tables.
package lexicon
