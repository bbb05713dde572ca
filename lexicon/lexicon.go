package lexicon

import (
	"errors"
	"strings"
)

// ErrOutOfRange indicates a table index outside [0, 1000).
var ErrOutOfRange = errors.New("lexicon: index out of range [0,1000)")

// smallWords covers 0–19; index 0 is empty because a zero period contributes
// no value word (whole-number "zero" is the caller's special case).
var smallWords = [20]string{
	"", "one", "two", "three", "four", "five", "six", "seven", "eight",
	"nine", "ten", "eleven", "twelve", "thirteen", "fourteen", "fifteen",
	"sixteen", "seventeen", "eighteen", "nineteen",
}

// tensWords covers the multiples of ten below one hundred.
var tensWords = [10]string{
	"", "ten", "twenty", "thirty", "forty", "fifty", "sixty", "seventy",
	"eighty", "ninety",
}

// uniquePrefixes are the Conway–Wechsler prefixes for single-digit zillions;
// index 0 is the "nilli" stem.
var uniquePrefixes = [10]string{
	"n", "m", "b", "tr", "quadr", "quint", "sext", "sept", "oct", "non",
}

// component is one Latin building block of a composite zillion prefix.
// marks lists the joining letters the component offers to a preceding unit
// (Conway–Wechsler's parenthesized s/x/m/n annotations).
type component struct {
	word  string
	marks string
}

var unitComponents = [10]component{
	{"", ""}, {"un", ""}, {"duo", ""}, {"tre", "sx"}, {"quattuor", ""},
	{"quinqua", ""}, {"se", "sx"}, {"septe", "mn"}, {"octo", ""},
	{"nove", "mn"},
}

var tensComponents = [10]component{
	{"", ""}, {"deci", "n"}, {"viginti", "ms"}, {"triginta", "ns"},
	{"quadraginta", "ns"}, {"quinquaginta", "ns"}, {"sexaginta", "n"},
	{"septuaginta", "n"}, {"octoginta", "mx"}, {"nonaginta", ""},
}

var hundredComponents = [10]component{
	{"", ""}, {"centi", "nx"}, {"ducenti", "n"}, {"trecenti", "ns"},
	{"quadringenti", "ns"}, {"quingenti", "ns"}, {"sescenti", "n"},
	{"septingenti", "n"}, {"octingenti", "mx"}, {"nongenti", ""},
}

var (
	valueNames      [1000]string
	valueLetters    [1000]int
	zillionPrefixes [1000]string
	prefixLetters   [1000]int
)

func init() {
	for v := 0; v < 1000; v++ {
		valueNames[v] = buildValueName(v)
		valueLetters[v] = countLetters(valueNames[v])
		zillionPrefixes[v] = buildZillionPrefix(v)
		prefixLetters[v] = len(zillionPrefixes[v]) + len("illi")
	}
}

// buildValueName spells v ∈ [0,1000) in English short form; 0 is empty.
func buildValueName(v int) string {
	var parts []string
	if h := v / 100; h > 0 {
		parts = append(parts, smallWords[h]+" hundred")
	}
	switch r := v % 100; {
	case r >= 20:
		word := tensWords[r/10]
		if r%10 > 0 {
			word += "-" + smallWords[r%10]
		}
		parts = append(parts, word)
	case r > 0:
		parts = append(parts, smallWords[r])
	}
	return strings.Join(parts, " ")
}

// buildZillionPrefix assembles the Conway–Wechsler prefix for zillion digit
// z ∈ [0,1000), final vowel elided.
func buildZillionPrefix(z int) string {
	if z < 10 {
		return uniquePrefixes[z]
	}
	u, t, h := z%10, z/10%10, z/100

	unit := unitComponents[u].word
	if u > 0 {
		next := hundredComponents[h]
		if t > 0 {
			next = tensComponents[t]
		}
		unit += joiner(u, next.marks)
	}
	prefix := unit + tensComponents[t].word + hundredComponents[h].word
	return prefix[:len(prefix)-1] // elide the final vowel before "illi"
}

// joiner picks the letter a unit component takes before the marks of the
// component that follows it: tre/se claim s (se also x), septe/nove claim
// m or n.
func joiner(unit int, marks string) string {
	switch offered := unitComponents[unit].marks; offered {
	case "sx":
		if strings.ContainsAny(marks, offered) {
			if unit == 6 && strings.Contains(marks, "x") {
				return "x"
			}
			return "s"
		}
	case "mn":
		if strings.Contains(marks, "m") {
			return "m"
		}
		if strings.Contains(marks, "n") {
			return "n"
		}
	}
	return ""
}

// countLetters counts ASCII letters, ignoring spaces and hyphens.
func countLetters(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			n++
		}
	}
	return n
}

// ValueName returns the English short-form numeral for v ∈ [0,1000).
// The zero period has no value word; ValueName(0) is the empty string.
func ValueName(v int) (string, error) {
	if v < 0 || v >= 1000 {
		return "", ErrOutOfRange
	}
	return valueNames[v], nil
}

// ValueLetters returns table V: the letter count of the short-form numeral
// for v ∈ [0,1000), spaces and hyphens excluded; V[0] = 0.
func ValueLetters(v int) (int, error) {
	if v < 0 || v >= 1000 {
		return 0, ErrOutOfRange
	}
	return valueLetters[v], nil
}

// ZillionPrefix returns the Conway–Wechsler prefix for zillion digit
// z ∈ [0,1000) with its final vowel elided, e.g. 23 → "tresvigint"
// (as in "tresvigintillion").
func ZillionPrefix(z int) (string, error) {
	if z < 0 || z >= 1000 {
		return "", ErrOutOfRange
	}
	return zillionPrefixes[z], nil
}

// PrefixLetters returns table N: the letters zillion digit z contributes
// inside a composite period name, len(prefix + "illi"); N[0] = 5 ("nilli").
func PrefixLetters(z int) (int, error) {
	if z < 0 || z >= 1000 {
		return 0, ErrOutOfRange
	}
	return prefixLetters[z], nil
}
