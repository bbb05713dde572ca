package periods_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/KCATurner/four/periods"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects every structural invariant
// violation with ErrInvalidPeriods.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		runs []periods.Run
	}{
		{"Empty", nil},
		{"ValueTooBig", []periods.Run{periods.R(1000, 1)}},
		{"ValueNegative", []periods.Run{periods.R(-1, 1)}},
		{"RepeatZero", []periods.Run{periods.R(373, 0)}},
		{"RepeatNil", []periods.Run{{Value: 373}}},
		{"AdjacentEqual", []periods.Run{periods.R(1, 1), periods.R(1, 2)}},
		{"LeadingZeroRun", []periods.Run{periods.R(0, 2)}},
		{"LeadingZero", []periods.Run{periods.R(0, 1), periods.R(5, 1)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := periods.New(tc.runs...); !errors.Is(err, periods.ErrInvalidPeriods) {
				t.Errorf("New(%v) error = %v; want ErrInvalidPeriods", tc.runs, err)
			}
		})
	}
}

// TestJoin_Coalesce checks that Join merges adjacent equal-valued runs and
// drops zero repeats before validating.
func TestJoin_Coalesce(t *testing.T) {
	got, err := periods.Join(
		periods.R(1, 2), periods.R(1, 3),
		periods.R(323, 0),
		periods.R(373, 1), periods.R(373, 7),
	)
	if err != nil {
		t.Fatalf("Join error: %v", err)
	}
	want, err := periods.New(periods.R(1, 5), periods.R(373, 8))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !got.Equal(want) {
		t.Errorf("Join = %v; want %v", got, want)
	}
}

// TestFromInt covers dense conversion, including zero and run compaction.
func TestFromInt(t *testing.T) {
	cases := []struct {
		dense int64
		want  string
	}{
		{0, "0"},
		{4, "4"},
		{999, "999"},
		{1000, "1[000]{1}"}, // renders as 1000; see TestString
		{123000000000, "123[000]{3}"},
		{373373373, "[373]{3}"},
		{1103323, "1103323"},
	}
	for _, tc := range cases {
		n, err := periods.FromInt64(tc.dense)
		if err != nil {
			t.Fatalf("FromInt64(%d) error: %v", tc.dense, err)
		}
		want, err := periods.Parse(tc.want)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.want, err)
		}
		if !n.Equal(want) {
			t.Errorf("FromInt64(%d) = %v; want %v", tc.dense, n, want)
		}
	}

	if _, err := periods.FromInt64(-1); !errors.Is(err, periods.ErrInvalidPeriods) {
		t.Errorf("FromInt64(-1) error = %v; want ErrInvalidPeriods", err)
	}
}

//----------------------------------------------------------------------------//
// Notation Tests
//----------------------------------------------------------------------------//

// TestString spells a few canonical forms.
func TestString(t *testing.T) {
	cases := []struct {
		runs []periods.Run
		want string
	}{
		{[]periods.Run{periods.R(0, 1)}, "0"},
		{[]periods.Run{periods.R(4, 1)}, "4"},
		{[]periods.Run{periods.R(1, 1), periods.R(0, 1)}, "1000"},
		{[]periods.Run{periods.R(373, 2)}, "[373]{2}"},
		{[]periods.Run{periods.R(1, 1), periods.R(103, 1), periods.R(323, 1), periods.R(373, 8)}, "1103323[373]{8}"},
		{[]periods.Run{periods.R(1, 5), periods.R(103, 1), periods.R(323, 1)}, "[001]{5}103323"},
	}
	for _, tc := range cases {
		n, err := periods.New(tc.runs...)
		if err != nil {
			t.Fatalf("New error: %v", err)
		}
		if got := n.String(); got != tc.want {
			t.Errorf("String() = %q; want %q", got, tc.want)
		}
	}
}

// TestParse_RoundTrip checks Parse∘String is the identity on valid Numbers.
func TestParse_RoundTrip(t *testing.T) {
	inputs := []string{
		"0", "4", "323", "1000", "1103323[373]{8}",
		"[001]{5}103323[373]{4664040982447497675590741019}",
		"12345[678]{9}[000]{3}",
	}
	for _, s := range inputs {
		n, err := periods.Parse(s)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", s, err)
		}
		back, err := periods.Parse(n.String())
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", n.String(), err)
		}
		if !back.Equal(n) {
			t.Errorf("round trip of %q: %v != %v", s, back, n)
		}
	}
}

// TestParse_Forms covers the bare-segment side of the grammar,
// including a short leading period and post-run digit groups.
func TestParse_Forms(t *testing.T) {
	n, err := periods.Parse("12345[678]{9}000")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want, err := periods.New(periods.R(12, 1), periods.R(345, 1), periods.R(678, 9), periods.R(0, 1))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !n.Equal(want) {
		t.Errorf("Parse = %v; want %v", n, want)
	}

	// Adjacent equal periods coalesce, exactly like the run constructors.
	n, err = periods.Parse("[987]{6}543543")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want, err = periods.New(periods.R(987, 6), periods.R(543, 2))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !n.Equal(want) {
		t.Errorf("Parse = %v; want %v", n, want)
	}
}

// TestParse_Errors rejects malformed notation and invalid structure.
func TestParse_Errors(t *testing.T) {
	notation := []string{
		"", "12a", "[67]{2}", "[678]{}", "[678]{0}", "[678]", "123[456]{2}00", "{3}",
	}
	for _, s := range notation {
		if _, err := periods.Parse(s); !errors.Is(err, periods.ErrInvalidNotation) {
			t.Errorf("Parse(%q) error = %v; want ErrInvalidNotation", s, err)
		}
	}
	structural := []string{"000123", "[000]{2}"}
	for _, s := range structural {
		if _, err := periods.Parse(s); !errors.Is(err, periods.ErrInvalidPeriods) {
			t.Errorf("Parse(%q) error = %v; want ErrInvalidPeriods", s, err)
		}
	}
}

//----------------------------------------------------------------------------//
// Ordering and Counting Tests
//----------------------------------------------------------------------------//

// TestCmp exercises ordering across aligned and misaligned runs.
func TestCmp(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"0", "0", 0},
		{"4", "5", -1},
		{"999", "1000", -1},
		{"[373]{3}", "[373]{2}372", 1},
		{"[001]{2}373", "1[373]{2}", -1},
		{"1103323[373]{8}", "1103323[373]{8}", 0},
		{"[373]{10}", "1[373]{10}", -1},
	}
	for _, tc := range cases {
		a, err := periods.Parse(tc.a)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.a, err)
		}
		b, err := periods.Parse(tc.b)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", tc.b, err)
		}
		if got := a.Cmp(b); got != tc.want {
			t.Errorf("Cmp(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}
		if got := b.Cmp(a); got != -tc.want {
			t.Errorf("Cmp(%q, %q) = %d; want %d", tc.b, tc.a, got, -tc.want)
		}
	}
}

// TestPeriodCount checks P(x) = ⌊log1000 x⌋ + 1 on dense inputs (1 for 0).
func TestPeriodCount(t *testing.T) {
	for _, dense := range []int64{0, 1, 999, 1000, 999999, 1000000, 123456789012345678} {
		n, err := periods.FromInt64(dense)
		if err != nil {
			t.Fatalf("FromInt64(%d) error: %v", dense, err)
		}
		want := int64(1)
		for rest := dense / 1000; rest > 0; rest /= 1000 {
			want++
		}
		if got := n.PeriodCount(); got.Cmp(big.NewInt(want)) != 0 {
			t.Errorf("PeriodCount(%d) = %v; want %d", dense, got, want)
		}
	}

	huge, err := periods.Parse("[001]{5}103323[373]{4664040982447497675590741019}")
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	want, _ := new(big.Int).SetString("4664040982447497675590741026", 10)
	if got := huge.PeriodCount(); got.Cmp(want) != 0 {
		t.Errorf("PeriodCount = %v; want %v", got, want)
	}
}

// TestInt_RoundTrip materializes dense values back out of their PLCs.
func TestInt_RoundTrip(t *testing.T) {
	for _, dense := range []int64{0, 1, 999, 1000, 1001, 373373373, 123456789012345678} {
		n, err := periods.FromInt64(dense)
		if err != nil {
			t.Fatalf("FromInt64(%d) error: %v", dense, err)
		}
		got, err := n.Int()
		if err != nil {
			t.Fatalf("Int() error: %v", err)
		}
		if got.Cmp(big.NewInt(dense)) != 0 {
			t.Errorf("Int() = %v; want %d", got, dense)
		}
	}
}

// TestInt_TooLarge refuses chain-scale materialization.
func TestInt_TooLarge(t *testing.T) {
	repeat, _ := new(big.Int).SetString("4664040982447497675590741019", 10)
	n, err := periods.New(periods.RBig(373, repeat))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err = n.Int(); !errors.Is(err, periods.ErrTooLarge) {
		t.Errorf("Int() error = %v; want ErrTooLarge", err)
	}
}

// TestRuns_Immutable makes sure returned runs do not alias internal state.
func TestRuns_Immutable(t *testing.T) {
	n, err := periods.New(periods.R(373, 8))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	n.Runs()[0].Repeat.SetInt64(99)
	if got := n.PeriodCount(); got.Cmp(big.NewInt(8)) != 0 {
		t.Errorf("PeriodCount after mutating Runs() copy = %v; want 8", got)
	}
}
