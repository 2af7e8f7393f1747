package softdtw_test

import (
	"testing"

	"github.com/katalvlaran/softdp/softdtw"
)

// benchmarkValue runs the forward pass on n×m sequences of predictable
// increasing values, resetting the timer after setup.
func benchmarkValue(b *testing.B, n, m int) {
	x := make([]float64, n)
	y := make([]float64, m)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
	}
	for j := 0; j < m; j++ {
		y[j] = float64(j) * 1.1
	}
	d := softdtw.FromSequences(x, y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := softdtw.Value(d, 0.5); err != nil {
			b.Fatalf("Value failed: %v", err)
		}
	}
}

// benchmarkValueAndGradient runs forward+backward on n×m sequences.
func benchmarkValueAndGradient(b *testing.B, n, m int) {
	x := make([]float64, n)
	y := make([]float64, m)
	for i := 0; i < n; i++ {
		x[i] = float64(i)
	}
	for j := 0; j < m; j++ {
		y[j] = float64(j) * 1.1
	}
	d := softdtw.FromSequences(x, y)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := softdtw.ValueAndGradient(d, 0.5); err != nil {
			b.Fatalf("ValueAndGradient failed: %v", err)
		}
	}
}

// BenchmarkValue_Small benchmarks the forward pass on 100×100 sequences.
func BenchmarkValue_Small(b *testing.B) { benchmarkValue(b, 100, 100) }

// BenchmarkValue_Medium benchmarks the forward pass on 500×500 sequences.
func BenchmarkValue_Medium(b *testing.B) { benchmarkValue(b, 500, 500) }

// BenchmarkValueAndGradient_Small benchmarks forward+backward on 100×100.
func BenchmarkValueAndGradient_Small(b *testing.B) { benchmarkValueAndGradient(b, 100, 100) }

// BenchmarkValueAndGradient_Medium benchmarks forward+backward on 500×500.
func BenchmarkValueAndGradient_Medium(b *testing.B) { benchmarkValueAndGradient(b, 500, 500) }

// BenchmarkDivergenceSequences benchmarks the three-pass divergence on
// 200-point sequences.
func BenchmarkDivergenceSequences(b *testing.B) {
	x := make([]float64, 200)
	y := make([]float64, 200)
	for i := range x {
		x[i] = float64(i % 13)
		y[i] = float64((i + 5) % 13)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := softdtw.DivergenceSequences(x, y, 0.5); err != nil {
			b.Fatalf("DivergenceSequences failed: %v", err)
		}
	}
}
