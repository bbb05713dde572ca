package lin_test

import (
	"math/big"
	"testing"

	"github.com/KCATurner/four/lin"
)

// benchmarkFirst runs lin.First on a fixed target, failing on any error.
func benchmarkFirst(b *testing.B, target *big.Int) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := lin.First(target); err != nil {
			b.Fatalf("First failed: %v", err)
		}
	}
}

// BenchmarkFirst_Table resolves a target inside the lookup range.
func BenchmarkFirst_Table(b *testing.B) {
	benchmarkFirst(b, big.NewInt(23))
}

// BenchmarkFirst_Chain8 resolves the length-eight chain target.
func BenchmarkFirst_Chain8(b *testing.B) {
	benchmarkFirst(b, big.NewInt(323))
}

// BenchmarkFirst_Chain9 resolves the length-nine chain target: a 31-digit
// letter count bisected over ~10^27 repeat counts.
func BenchmarkFirst_Chain9(b *testing.B) {
	target, ok := new(big.Int).SetString("1103323373373373373373373373373", 10)
	if !ok {
		b.Fatal("bad target literal")
	}
	benchmarkFirst(b, target)
}
