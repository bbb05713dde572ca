package lin

// smallestOfLength maps a letter count ℓ ∈ [3,24] to the smallest period
// value whose numeral has exactly ℓ letters. These are the single-period
// letter-inefficient numbers; every F(ℓ) in the range is one of them.
var smallestOfLength = [25]int{
	3:  1,   // one
	4:  4,   // four
	5:  3,   // three
	6:  11,  // eleven
	7:  15,  // fifteen
	8:  13,  // thirteen
	9:  17,  // seventeen
	10: 24,  // twenty-four
	11: 23,  // twenty-three
	12: 73,  // seventy-three
	13: 101, // one hundred one
	14: 104, // one hundred four
	15: 103, // one hundred three
	16: 111, // one hundred eleven
	17: 115, // one hundred fifteen
	18: 113, // one hundred thirteen
	19: 117, // one hundred seventeen
	20: 124, // one hundred twenty-four
	21: 123, // one hundred twenty-three
	22: 173, // one hundred seventy-three
	23: 323, // three hundred twenty-three
	24: 373, // three hundred seventy-three
}

// window is one two-period transition (y, z) of the refinement step.
type window struct {
	y, z int
}

// offsetWindows is indexed by the shortfall d = ℓ − L(x₀) ∈ [1,21] and
// satisfies V[y] + V[z] = 27 + d: replacing one 001 period by y and one 373
// period by z adds exactly d letters. Where the single period of length
// d+3 loses to a (smaller, 323) pair — 4 beats 3 only alone — the window
// carries the exception already applied.
var offsetWindows = [22]window{
	1:  {3, 323},
	2:  {3, 373},
	3:  {11, 373},
	4:  {13, 323},
	5:  {13, 373},
	6:  {17, 373},
	7:  {23, 323},
	8:  {23, 373},
	9:  {73, 373},
	10: {101, 373},
	11: {103, 323},
	12: {103, 373},
	13: {111, 373},
	14: {113, 323},
	15: {113, 373},
	16: {117, 373},
	17: {123, 323},
	18: {123, 373},
	19: {173, 373},
	20: {323, 373},
	21: {373, 373},
}
