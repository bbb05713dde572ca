package letters_test

import (
	"math/big"
	"testing"

	"github.com/KCATurner/four/letters"
	"github.com/KCATurner/four/periods"
)

// benchmarkInName measures L on [373]{n}; the cost tracks the run count of
// the zillion bounds, not n itself.
func benchmarkInName(b *testing.B, repeat string) {
	r, ok := new(big.Int).SetString(repeat, 10)
	if !ok {
		b.Fatal("bad repeat literal")
	}
	n, err := periods.New(periods.RBig(373, r))
	if err != nil {
		b.Fatalf("New failed: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		letters.InName(n)
	}
}

func BenchmarkInName_Thousand(b *testing.B) {
	benchmarkInName(b, "1000")
}

func BenchmarkInName_Quintillion(b *testing.B) {
	benchmarkInName(b, "1000000000000000000")
}

func BenchmarkInName_ChainScale(b *testing.B) {
	benchmarkInName(b, "4664040982447497675590741019")
}
